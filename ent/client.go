// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/halehq/hale/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/halehq/hale/ent/checkupevent"
	"github.com/halehq/hale/ent/lookupevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// CheckupEvent is the client for interacting with the CheckupEvent builders.
	CheckupEvent *CheckupEventClient
	// LookupEvent is the client for interacting with the LookupEvent builders.
	LookupEvent *LookupEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.CheckupEvent = NewCheckupEventClient(c.config)
	c.LookupEvent = NewLookupEventClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:          ctx,
		config:       cfg,
		CheckupEvent: NewCheckupEventClient(cfg),
		LookupEvent:  NewLookupEventClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:          ctx,
		config:       cfg,
		CheckupEvent: NewCheckupEventClient(cfg),
		LookupEvent:  NewLookupEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		CheckupEvent.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.CheckupEvent.Use(hooks...)
	c.LookupEvent.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.CheckupEvent.Intercept(interceptors...)
	c.LookupEvent.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CheckupEventMutation:
		return c.CheckupEvent.mutate(ctx, m)
	case *LookupEventMutation:
		return c.LookupEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CheckupEventClient is a client for the CheckupEvent schema.
type CheckupEventClient struct {
	config
}

// NewCheckupEventClient returns a client for the CheckupEvent from the given config.
func NewCheckupEventClient(c config) *CheckupEventClient {
	return &CheckupEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `checkupevent.Hooks(f(g(h())))`.
func (c *CheckupEventClient) Use(hooks ...Hook) {
	c.hooks.CheckupEvent = append(c.hooks.CheckupEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `checkupevent.Intercept(f(g(h())))`.
func (c *CheckupEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.CheckupEvent = append(c.inters.CheckupEvent, interceptors...)
}

// Create returns a builder for creating a CheckupEvent entity.
func (c *CheckupEventClient) Create() *CheckupEventCreate {
	mutation := newCheckupEventMutation(c.config, OpCreate)
	return &CheckupEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CheckupEvent entities.
func (c *CheckupEventClient) CreateBulk(builders ...*CheckupEventCreate) *CheckupEventCreateBulk {
	return &CheckupEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CheckupEventClient) MapCreateBulk(slice any, setFunc func(*CheckupEventCreate, int)) *CheckupEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CheckupEventCreateBulk{err: fmt.Errorf("calling to CheckupEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CheckupEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CheckupEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CheckupEvent.
func (c *CheckupEventClient) Update() *CheckupEventUpdate {
	mutation := newCheckupEventMutation(c.config, OpUpdate)
	return &CheckupEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CheckupEventClient) UpdateOne(_m *CheckupEvent) *CheckupEventUpdateOne {
	mutation := newCheckupEventMutation(c.config, OpUpdateOne, withCheckupEvent(_m))
	return &CheckupEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CheckupEventClient) UpdateOneID(id int) *CheckupEventUpdateOne {
	mutation := newCheckupEventMutation(c.config, OpUpdateOne, withCheckupEventID(id))
	return &CheckupEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CheckupEvent.
func (c *CheckupEventClient) Delete() *CheckupEventDelete {
	mutation := newCheckupEventMutation(c.config, OpDelete)
	return &CheckupEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CheckupEventClient) DeleteOne(_m *CheckupEvent) *CheckupEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CheckupEventClient) DeleteOneID(id int) *CheckupEventDeleteOne {
	builder := c.Delete().Where(checkupevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CheckupEventDeleteOne{builder}
}

// Query returns a query builder for CheckupEvent.
func (c *CheckupEventClient) Query() *CheckupEventQuery {
	return &CheckupEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCheckupEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a CheckupEvent entity by its id.
func (c *CheckupEventClient) Get(ctx context.Context, id int) (*CheckupEvent, error) {
	return c.Query().Where(checkupevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CheckupEventClient) GetX(ctx context.Context, id int) *CheckupEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CheckupEventClient) Hooks() []Hook {
	return c.hooks.CheckupEvent
}

// Interceptors returns the client interceptors.
func (c *CheckupEventClient) Interceptors() []Interceptor {
	return c.inters.CheckupEvent
}

func (c *CheckupEventClient) mutate(ctx context.Context, m *CheckupEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CheckupEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CheckupEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CheckupEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CheckupEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CheckupEvent mutation op: %q", m.Op())
	}
}

// LookupEventClient is a client for the LookupEvent schema.
type LookupEventClient struct {
	config
}

// NewLookupEventClient returns a client for the LookupEvent from the given config.
func NewLookupEventClient(c config) *LookupEventClient {
	return &LookupEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `lookupevent.Hooks(f(g(h())))`.
func (c *LookupEventClient) Use(hooks ...Hook) {
	c.hooks.LookupEvent = append(c.hooks.LookupEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `lookupevent.Intercept(f(g(h())))`.
func (c *LookupEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LookupEvent = append(c.inters.LookupEvent, interceptors...)
}

// Create returns a builder for creating a LookupEvent entity.
func (c *LookupEventClient) Create() *LookupEventCreate {
	mutation := newLookupEventMutation(c.config, OpCreate)
	return &LookupEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LookupEvent entities.
func (c *LookupEventClient) CreateBulk(builders ...*LookupEventCreate) *LookupEventCreateBulk {
	return &LookupEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LookupEventClient) MapCreateBulk(slice any, setFunc func(*LookupEventCreate, int)) *LookupEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LookupEventCreateBulk{err: fmt.Errorf("calling to LookupEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LookupEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LookupEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LookupEvent.
func (c *LookupEventClient) Update() *LookupEventUpdate {
	mutation := newLookupEventMutation(c.config, OpUpdate)
	return &LookupEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LookupEventClient) UpdateOne(_m *LookupEvent) *LookupEventUpdateOne {
	mutation := newLookupEventMutation(c.config, OpUpdateOne, withLookupEvent(_m))
	return &LookupEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LookupEventClient) UpdateOneID(id int) *LookupEventUpdateOne {
	mutation := newLookupEventMutation(c.config, OpUpdateOne, withLookupEventID(id))
	return &LookupEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LookupEvent.
func (c *LookupEventClient) Delete() *LookupEventDelete {
	mutation := newLookupEventMutation(c.config, OpDelete)
	return &LookupEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LookupEventClient) DeleteOne(_m *LookupEvent) *LookupEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LookupEventClient) DeleteOneID(id int) *LookupEventDeleteOne {
	builder := c.Delete().Where(lookupevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LookupEventDeleteOne{builder}
}

// Query returns a query builder for LookupEvent.
func (c *LookupEventClient) Query() *LookupEventQuery {
	return &LookupEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLookupEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LookupEvent entity by its id.
func (c *LookupEventClient) Get(ctx context.Context, id int) (*LookupEvent, error) {
	return c.Query().Where(lookupevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LookupEventClient) GetX(ctx context.Context, id int) *LookupEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LookupEventClient) Hooks() []Hook {
	return c.hooks.LookupEvent
}

// Interceptors returns the client interceptors.
func (c *LookupEventClient) Interceptors() []Interceptor {
	return c.inters.LookupEvent
}

func (c *LookupEventClient) mutate(ctx context.Context, m *LookupEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LookupEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LookupEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LookupEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LookupEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LookupEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		CheckupEvent, LookupEvent []ent.Hook
	}
	inters struct {
		CheckupEvent, LookupEvent []ent.Interceptor
	}
)
