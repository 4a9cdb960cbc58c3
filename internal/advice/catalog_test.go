package advice

import (
	"reflect"
	"strings"
	"testing"
)

func TestLoadCatalog(t *testing.T) {
	cat, err := LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog() returned error: %v", err)
	}

	if cat.Version < 1 {
		t.Errorf("Version = %d, want >= 1", cat.Version)
	}
	if len(cat.Records) == 0 {
		t.Fatal("catalog shipped no records")
	}

	store := NewStore(cat.Records)
	fever, ok := store.Lookup("fever")
	if !ok {
		t.Fatal("catalog is missing the fever record")
	}
	wantSymptoms := []string{"high temperature", "chills", "body aches"}
	if !reflect.DeepEqual(fever.Symptoms, wantSymptoms) {
		t.Errorf("fever symptoms = %v, want %v", fever.Symptoms, wantSymptoms)
	}
	for _, field := range []string{fever.Medicines, fever.Lifestyle, fever.Warning} {
		if field == "" {
			t.Error("fever record has an empty advice field")
		}
	}

	if len(cat.Corpus) == 0 {
		t.Fatal("catalog shipped no training corpus")
	}
	for _, doc := range cat.Corpus {
		if _, ok := store.Lookup(doc.Label); !ok {
			t.Errorf("corpus document %q labeled with unknown condition %q", doc.Text, doc.Label)
		}
	}
}

func TestParseCatalogRejectsBrokenInput(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr string
	}{
		{
			name:    "malformed JSON",
			raw:     `{"version": 1,`,
			wantErr: "parse catalog",
		},
		{
			name:    "missing conditions",
			raw:     `{"version": 1, "corpus": [{"text": "chills", "label": "fever"}]}`,
			wantErr: "schema validation",
		},
		{
			name:    "empty symptom list",
			raw:     `{"version": 1, "conditions": [{"name": "fever", "symptoms": [], "medicines": "m", "lifestyle": "l", "warning": "w"}], "corpus": [{"text": "chills", "label": "fever"}]}`,
			wantErr: "schema validation",
		},
		{
			name:    "unexpected top-level field",
			raw:     `{"version": 1, "conditions": [{"name": "fever", "symptoms": ["chills"], "medicines": "m", "lifestyle": "l", "warning": "w"}], "corpus": [{"text": "chills", "label": "fever"}], "extra": true}`,
			wantErr: "schema validation",
		},
		{
			name:    "corpus label without condition",
			raw:     `{"version": 1, "conditions": [{"name": "fever", "symptoms": ["chills"], "medicines": "m", "lifestyle": "l", "warning": "w"}], "corpus": [{"text": "sneezing", "label": "cold"}]}`,
			wantErr: "unknown condition",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseCatalog([]byte(tt.raw))
			if err == nil {
				t.Fatal("parseCatalog accepted broken input")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}
