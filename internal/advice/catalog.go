package advice

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/halehq/hale/internal/textclass"
)

//go:embed catalog.json
var catalogJSON []byte

// Catalog bundles the shipped advice records with the classifier training
// corpus. Both come from the embedded catalog file.
type Catalog struct {
	Version int
	Records []Record
	Corpus  []textclass.Document
}

// catalogSchema constrains the embedded catalog file. The file is
// compiled into the binary, so this guards edits during development, not
// user input.
var catalogSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"version": map[string]any{
			"type":    "integer",
			"minimum": 1,
		},
		"conditions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name":      map[string]any{"type": "string", "minLength": 1},
					"symptoms":  map[string]any{"type": "array", "items": map[string]any{"type": "string", "minLength": 1}, "minItems": 1},
					"medicines": map[string]any{"type": "string", "minLength": 1},
					"lifestyle": map[string]any{"type": "string", "minLength": 1},
					"warning":   map[string]any{"type": "string", "minLength": 1},
				},
				"required":             []any{"name", "symptoms", "medicines", "lifestyle", "warning"},
				"additionalProperties": false,
			},
		},
		"corpus": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"text":  map[string]any{"type": "string", "minLength": 1},
					"label": map[string]any{"type": "string", "minLength": 1},
				},
				"required":             []any{"text", "label"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"version", "conditions", "corpus"},
	"additionalProperties": false,
}

var (
	compileSchemaOnce sync.Once
	compiledSchema    *jsonschema.Schema
	compileSchemaErr  error
)

// compiledCatalogSchema compiles catalogSchema once per process.
func compiledCatalogSchema() (*jsonschema.Schema, error) {
	compileSchemaOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, not raw
		// bytes. Marshal then unmarshal to get a clean representation.
		defBytes, err := json.Marshal(catalogSchema)
		if err != nil {
			compileSchemaErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileSchemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://advice-catalog.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileSchemaErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileSchemaErr
}

type catalogFile struct {
	Version    int              `json:"version"`
	Conditions []conditionEntry `json:"conditions"`
	Corpus     []corpusEntry    `json:"corpus"`
}

type conditionEntry struct {
	Name      string   `json:"name"`
	Symptoms  []string `json:"symptoms"`
	Medicines string   `json:"medicines"`
	Lifestyle string   `json:"lifestyle"`
	Warning   string   `json:"warning"`
}

type corpusEntry struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// LoadCatalog parses and validates the embedded catalog.
func LoadCatalog() (*Catalog, error) {
	return parseCatalog(catalogJSON)
}

// parseCatalog validates raw catalog JSON against the schema, decodes it,
// and checks that every corpus label names a shipped condition.
func parseCatalog(raw []byte) (*Catalog, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	schema, err := compiledCatalogSchema()
	if err != nil {
		return nil, fmt.Errorf("compile catalog schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("catalog schema validation: %w", err)
	}

	var file catalogFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	known := make(map[string]bool, len(file.Conditions))
	cat := &Catalog{Version: file.Version}
	for _, c := range file.Conditions {
		known[Normalize(c.Name)] = true
		cat.Records = append(cat.Records, Record{
			Condition: Normalize(c.Name),
			Symptoms:  c.Symptoms,
			Medicines: c.Medicines,
			Lifestyle: c.Lifestyle,
			Warning:   c.Warning,
		})
	}
	for _, d := range file.Corpus {
		label := Normalize(d.Label)
		if !known[label] {
			return nil, fmt.Errorf("catalog corpus references unknown condition %q", d.Label)
		}
		cat.Corpus = append(cat.Corpus, textclass.Document{Text: d.Text, Label: label})
	}
	return cat, nil
}
