package store

import (
	"context"
	"fmt"

	"github.com/halehq/hale/ent"
	"github.com/halehq/hale/ent/lookupevent"
)

func (r *eventRepo) AppendLookupEvent(ctx context.Context, data LookupEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LookupEvent.Create().
		SetSequence(seqNum).
		SetCheckupID(data.CheckupID).
		SetQuery(data.Query).
		SetSource(data.Source).
		SetCondition(data.Condition).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save lookup event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLookupEvents(ctx context.Context, checkupID string) ([]LookupRecord, error) {
	events, err := r.client.LookupEvent.Query().
		Where(lookupevent.CheckupID(checkupID)).
		Order(ent.Asc(lookupevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query lookup events: %w", err)
	}

	records := make([]LookupRecord, len(events))
	for i, e := range events {
		records[i] = LookupRecord{
			Timestamp: e.Timestamp,
			Query:     e.Query,
			Source:    e.Source,
			Condition: e.Condition,
		}
	}
	return records, nil
}
