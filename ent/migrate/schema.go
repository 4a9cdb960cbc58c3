// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CheckupEventsColumns holds the columns for the "checkup_events" table.
	CheckupEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "checkup_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "bmi", Type: field.TypeFloat64, Default: 0},
		{Name: "category", Type: field.TypeString, Default: ""},
		{Name: "goal", Type: field.TypeString, Default: ""},
		{Name: "lookup_count", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// CheckupEventsTable holds the schema information for the "checkup_events" table.
	CheckupEventsTable = &schema.Table{
		Name:       "checkup_events",
		Columns:    CheckupEventsColumns,
		PrimaryKey: []*schema.Column{CheckupEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "checkupevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{CheckupEventsColumns[1]},
			},
			{
				Name:    "checkupevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{CheckupEventsColumns[2]},
			},
			{
				Name:    "checkupevent_checkup_id",
				Unique:  false,
				Columns: []*schema.Column{CheckupEventsColumns[3]},
			},
			{
				Name:    "checkupevent_action",
				Unique:  false,
				Columns: []*schema.Column{CheckupEventsColumns[4]},
			},
		},
	}
	// LookupEventsColumns holds the columns for the "lookup_events" table.
	LookupEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "checkup_id", Type: field.TypeString},
		{Name: "query", Type: field.TypeString},
		{Name: "source", Type: field.TypeString},
		{Name: "condition", Type: field.TypeString, Default: ""},
	}
	// LookupEventsTable holds the schema information for the "lookup_events" table.
	LookupEventsTable = &schema.Table{
		Name:       "lookup_events",
		Columns:    LookupEventsColumns,
		PrimaryKey: []*schema.Column{LookupEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lookupevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LookupEventsColumns[1]},
			},
			{
				Name:    "lookupevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LookupEventsColumns[2]},
			},
			{
				Name:    "lookupevent_checkup_id",
				Unique:  false,
				Columns: []*schema.Column{LookupEventsColumns[3]},
			},
			{
				Name:    "lookupevent_source",
				Unique:  false,
				Columns: []*schema.Column{LookupEventsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CheckupEventsTable,
		LookupEventsTable,
	}
)

func init() {
}
