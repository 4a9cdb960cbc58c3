package advice

import (
	"reflect"
	"testing"
)

func testRecords() []Record {
	return []Record{
		{
			Condition: "fever",
			Symptoms:  []string{"high temperature", "chills", "body aches"},
			Medicines: "paracetamol",
			Lifestyle: "rest and fluids",
			Warning:   "see a doctor if it persists",
		},
	}
}

func TestStoreLookupNormalizes(t *testing.T) {
	s := NewStore(testRecords())

	tests := []struct {
		name  string
		query string
		found bool
	}{
		{"exact", "fever", true},
		{"uppercase", "FEVER", true},
		{"mixed case", "FeVeR", true},
		{"surrounding space", "  fever  ", true},
		{"unknown", "migraine", false},
		{"empty", "", false},
		{"substring is not a match", "feve", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, ok := s.Lookup(tt.query)
			if ok != tt.found {
				t.Fatalf("Lookup(%q) found = %v, want %v", tt.query, ok, tt.found)
			}
			if ok && rec.Condition != "fever" {
				t.Errorf("Lookup(%q).Condition = %q, want %q", tt.query, rec.Condition, "fever")
			}
			if !ok && rec != nil {
				t.Errorf("Lookup(%q) returned record %+v on a miss", tt.query, rec)
			}
		})
	}
}

func TestStoreConditions(t *testing.T) {
	s := NewStore([]Record{
		{Condition: "Migraine"},
		{Condition: "fever"},
	})

	if got := s.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}
	want := []string{"fever", "migraine"}
	if got := s.Conditions(); !reflect.DeepEqual(got, want) {
		t.Errorf("Conditions() = %v, want %v", got, want)
	}
}

func TestStoreLaterDuplicateWins(t *testing.T) {
	s := NewStore([]Record{
		{Condition: "fever", Medicines: "old"},
		{Condition: "FEVER", Medicines: "new"},
	})

	rec, ok := s.Lookup("fever")
	if !ok {
		t.Fatal("Lookup(fever) missed")
	}
	if rec.Medicines != "new" {
		t.Errorf("Medicines = %q, want %q", rec.Medicines, "new")
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}
