package advice

import (
	"testing"

	"github.com/halehq/hale/internal/textclass"
)

// spyPredictor counts invocations and returns a fixed prediction.
type spyPredictor struct {
	calls int
	pred  textclass.Prediction
}

func (s *spyPredictor) Predict(string) textclass.Prediction {
	s.calls++
	return s.pred
}

func catalogResolver(t *testing.T) *Resolver {
	t.Helper()
	cat, err := LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog() returned error: %v", err)
	}
	return NewResolver(NewStore(cat.Records), textclass.Train(cat.Corpus))
}

func TestResolveExactMatchSkipsPredictor(t *testing.T) {
	spy := &spyPredictor{pred: textclass.Prediction{Label: "fever", Score: 0.9}}
	r := NewResolver(NewStore(testRecords()), spy)

	for _, query := range []string{"fever", "FEVER", "  Fever  "} {
		res := r.Resolve(query)
		if res.Source != SourceExact {
			t.Errorf("Resolve(%q).Source = %q, want %q", query, res.Source, SourceExact)
		}
		if !res.Found() || res.Record.Condition != "fever" {
			t.Errorf("Resolve(%q) did not return the fever record", query)
		}
	}
	if spy.calls != 0 {
		t.Errorf("predictor invoked %d times for exact matches, want 0", spy.calls)
	}
}

func TestResolveEmptyInputSkipsPredictor(t *testing.T) {
	spy := &spyPredictor{pred: textclass.Prediction{Label: "fever", Score: 0.9}}
	r := NewResolver(NewStore(testRecords()), spy)

	for _, query := range []string{"", "   ", "\t\n"} {
		res := r.Resolve(query)
		if res.Source != SourceNone || res.Found() {
			t.Errorf("Resolve(%q) = %+v, want a miss", query, res)
		}
	}
	if spy.calls != 0 {
		t.Errorf("predictor invoked %d times for empty input, want 0", spy.calls)
	}
}

func TestResolveFallsBackToClassifier(t *testing.T) {
	r := catalogResolver(t)

	res := r.Resolve("I have chills and a high temperature")
	if res.Source != SourceClassifier {
		t.Fatalf("Source = %q, want %q", res.Source, SourceClassifier)
	}
	if !res.Found() || res.Record.Condition != "fever" {
		t.Fatalf("Record = %+v, want the fever record", res.Record)
	}
	if res.Score <= 0 {
		t.Errorf("Score = %v, want > 0", res.Score)
	}
}

func TestResolveUnknownInputMisses(t *testing.T) {
	r := catalogResolver(t)

	res := r.Resolve("unknown ailment xyz")
	if res.Source != SourceNone || res.Found() {
		t.Errorf("Resolve(unknown ailment xyz) = %+v, want a miss", res)
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	r := catalogResolver(t)

	first := r.Resolve("feeling hot and shivery")
	for i := 0; i < 5; i++ {
		again := r.Resolve("feeling hot and shivery")
		if again != first {
			t.Fatalf("Resolve varied across calls: %+v vs %+v", first, again)
		}
	}
}

func TestResolveWithoutPredictor(t *testing.T) {
	r := NewResolver(NewStore(testRecords()), nil)

	if res := r.Resolve("chills"); res.Source != SourceNone {
		t.Errorf("Resolve(chills) = %+v, want a miss without a predictor", res)
	}
	if res := r.Resolve("fever"); res.Source != SourceExact {
		t.Errorf("Resolve(fever) = %+v, want an exact hit", res)
	}
}

func TestResolveIgnoresPredictionForUnknownLabel(t *testing.T) {
	spy := &spyPredictor{pred: textclass.Prediction{Label: "ghost", Score: 0.8}}
	r := NewResolver(NewStore(testRecords()), spy)

	res := r.Resolve("strange symptoms")
	if res.Source != SourceNone || res.Found() {
		t.Errorf("Resolve = %+v, want a miss when the label has no record", res)
	}
	if spy.calls != 1 {
		t.Errorf("predictor invoked %d times, want 1", spy.calls)
	}
}
