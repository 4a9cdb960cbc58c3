package store

import (
	"context"
	"fmt"

	"github.com/halehq/hale/ent"
	"github.com/halehq/hale/ent/checkupevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence
// counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendCheckupEvent(ctx context.Context, data CheckupEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.CheckupEvent.Create().
		SetSequence(seqNum).
		SetCheckupID(data.CheckupID).
		SetAction(data.Action).
		SetBmi(data.BMI).
		SetCategory(data.Category).
		SetGoal(data.Goal).
		SetLookupCount(data.LookupCount).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save checkup event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryCheckupSummaries(ctx context.Context, opts QueryOpts) ([]CheckupSummary, error) {
	query := r.client.CheckupEvent.Query().
		Where(checkupevent.Action(ActionEnd)).
		Order(ent.Desc(checkupevent.FieldSequence))

	if !opts.From.IsZero() {
		query = query.Where(checkupevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(checkupevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query checkup summaries: %w", err)
	}

	records := make([]CheckupSummary, len(events))
	for i, e := range events {
		records[i] = CheckupSummary{
			CheckupID:    e.CheckupID,
			Timestamp:    e.Timestamp,
			BMI:          e.Bmi,
			Category:     e.Category,
			Goal:         e.Goal,
			LookupCount:  e.LookupCount,
			DurationSecs: e.DurationSecs,
		}
	}
	return records, nil
}

func (r *eventRepo) LatestCheckup(ctx context.Context) (*CheckupSummary, error) {
	e, err := r.client.CheckupEvent.Query().
		Where(checkupevent.Action(ActionEnd)).
		Order(ent.Desc(checkupevent.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest checkup: %w", err)
	}
	return &CheckupSummary{
		CheckupID:    e.CheckupID,
		Timestamp:    e.Timestamp,
		BMI:          e.Bmi,
		Category:     e.Category,
		Goal:         e.Goal,
		LookupCount:  e.LookupCount,
		DurationSecs: e.DurationSecs,
	}, nil
}
