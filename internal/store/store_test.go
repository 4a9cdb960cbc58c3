package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testRepo(t *testing.T) EventRepo {
	t.Helper()
	s := openTestStore(t)
	repo, err := s.EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	return repo
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is not asserted here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounterMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	prev, err := sc.Next(ctx)
	if err != nil {
		t.Fatalf("first next: %v", err)
	}
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if seq <= prev {
			t.Fatalf("sequence went from %d to %d, want strictly increasing", prev, seq)
		}
		prev = seq
	}
}

func TestCheckupEventsRoundTrip(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	start := CheckupEventData{CheckupID: "chk-1", Action: ActionStart}
	if err := repo.AppendCheckupEvent(ctx, start); err != nil {
		t.Fatalf("append start: %v", err)
	}
	end := CheckupEventData{
		CheckupID:    "chk-1",
		Action:       ActionEnd,
		BMI:          22.857,
		Category:     "Normal",
		Goal:         "Stay fit",
		LookupCount:  2,
		DurationSecs: 95,
	}
	if err := repo.AppendCheckupEvent(ctx, end); err != nil {
		t.Fatalf("append end: %v", err)
	}

	summaries, err := repo.QueryCheckupSummaries(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query summaries: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("got %d summaries, want 1 (start events must not appear)", len(summaries))
	}
	got := summaries[0]
	if got.CheckupID != "chk-1" || got.BMI != 22.857 || got.Category != "Normal" {
		t.Errorf("summary = %+v, want the end event's data", got)
	}
	if got.Goal != "Stay fit" || got.LookupCount != 2 || got.DurationSecs != 95 {
		t.Errorf("summary = %+v, want goal/lookups/duration carried through", got)
	}
	if got.Timestamp.IsZero() {
		t.Error("summary has no timestamp")
	}
}

func TestQueryCheckupSummariesNewestFirstWithLimit(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	for _, id := range []string{"chk-a", "chk-b", "chk-c"} {
		if err := repo.AppendCheckupEvent(ctx, CheckupEventData{CheckupID: id, Action: ActionEnd, BMI: 22}); err != nil {
			t.Fatalf("append %s: %v", id, err)
		}
	}

	summaries, err := repo.QueryCheckupSummaries(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query summaries: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("got %d summaries, want 2", len(summaries))
	}
	if summaries[0].CheckupID != "chk-c" || summaries[1].CheckupID != "chk-b" {
		t.Errorf("order = %s, %s, want chk-c then chk-b", summaries[0].CheckupID, summaries[1].CheckupID)
	}
}

func TestLatestCheckup(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	latest, err := repo.LatestCheckup(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if latest != nil {
		t.Fatalf("latest on empty store = %+v, want nil", latest)
	}

	if err := repo.AppendCheckupEvent(ctx, CheckupEventData{CheckupID: "chk-old", Action: ActionEnd, BMI: 20}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := repo.AppendCheckupEvent(ctx, CheckupEventData{CheckupID: "chk-new", Action: ActionEnd, BMI: 26, Category: "Overweight"}); err != nil {
		t.Fatalf("append: %v", err)
	}

	latest, err = repo.LatestCheckup(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest == nil || latest.CheckupID != "chk-new" {
		t.Fatalf("latest = %+v, want chk-new", latest)
	}
}

func TestLookupEventsRoundTrip(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	lookups := []LookupEventData{
		{CheckupID: "chk-1", Query: "fever", Source: "exact", Condition: "fever"},
		{CheckupID: "chk-1", Query: "unknown ailment xyz", Source: "none"},
		{CheckupID: "chk-2", Query: "chills", Source: "classifier", Condition: "fever"},
	}
	for _, l := range lookups {
		if err := repo.AppendLookupEvent(ctx, l); err != nil {
			t.Fatalf("append lookup %q: %v", l.Query, err)
		}
	}

	got, err := repo.QueryLookupEvents(ctx, "chk-1")
	if err != nil {
		t.Fatalf("query lookups: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d lookups for chk-1, want 2", len(got))
	}
	if got[0].Query != "fever" || got[1].Query != "unknown ailment xyz" {
		t.Errorf("lookups out of order: %+v", got)
	}
	if got[0].Condition != "fever" || got[1].Condition != "" {
		t.Errorf("conditions = %q, %q, want fever then empty", got[0].Condition, got[1].Condition)
	}

	other, err := repo.QueryLookupEvents(ctx, "chk-absent")
	if err != nil {
		t.Fatalf("query lookups (absent): %v", err)
	}
	if len(other) != 0 {
		t.Errorf("got %d lookups for unknown check-up, want 0", len(other))
	}
}
