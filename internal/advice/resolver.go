package advice

import (
	"strings"

	"github.com/halehq/hale/internal/textclass"
)

// Source says how a resolution was reached.
type Source string

const (
	SourceExact      Source = "exact"
	SourceClassifier Source = "classifier"
	SourceNone       Source = "none"
)

// Resolution is the outcome of resolving one piece of user input.
// Record is nil exactly when Source is SourceNone.
type Resolution struct {
	Record *Record
	Query  string
	Source Source
	Score  float64
}

// Found reports whether the resolution carries a record.
func (r Resolution) Found() bool {
	return r.Record != nil
}

// Predictor scores free text against known condition labels.
// *textclass.Model satisfies it.
type Predictor interface {
	Predict(text string) textclass.Prediction
}

// Resolver turns free-form condition input into an advice record: exact
// store lookup first, classifier fallback second. Results are
// deterministic for a given store and predictor.
type Resolver struct {
	store     *Store
	predictor Predictor
}

// NewResolver builds a resolver. predictor may be nil, which disables the
// fallback step.
func NewResolver(store *Store, predictor Predictor) *Resolver {
	return &Resolver{store: store, predictor: predictor}
}

// Conditions lists the condition names the resolver can answer for.
func (r *Resolver) Conditions() []string {
	return r.store.Conditions()
}

// Resolve maps the input to a record. Empty input resolves to nothing
// without touching the predictor, and an exact name match never invokes
// the predictor either.
func (r *Resolver) Resolve(freeText string) Resolution {
	query := strings.TrimSpace(freeText)
	if query == "" {
		return Resolution{Query: query, Source: SourceNone}
	}

	if rec, ok := r.store.Lookup(query); ok {
		return Resolution{Record: rec, Query: query, Source: SourceExact, Score: 1}
	}

	if r.predictor == nil {
		return Resolution{Query: query, Source: SourceNone}
	}
	p := r.predictor.Predict(query)
	if p.Label == "" || p.Score <= 0 {
		return Resolution{Query: query, Source: SourceNone}
	}
	rec, ok := r.store.Lookup(p.Label)
	if !ok {
		return Resolution{Query: query, Source: SourceNone}
	}
	return Resolution{Record: rec, Query: query, Source: SourceClassifier, Score: p.Score}
}
