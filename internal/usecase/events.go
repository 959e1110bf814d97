package usecase

import (
	"context"
	"time"
)

const (
	OpInsert = "insert"
	OpUpdate = "update"
	OpUpsert = "upsert"
	OpDelete = "delete"
)

// RecordEvent describes one DML mutation applied to a batch of records of a
// single object type. Published to the broker after the mutation commits.
type RecordEvent struct {
	Object     string    `json:"object"` // Account, Contact, Opportunity, Lead, Case
	Op         string    `json:"op"`     // insert, update, upsert, delete
	RecordIDs  []string  `json:"record_ids"`
	OccurredAt time.Time `json:"occurred_at"`
}

// publishRecordEvent is best effort. Events are advisory and must never fail
// the DML call that produced them; the producer logs publish errors.
func publishRecordEvent(ctx context.Context, events RecordEventPublisherInterface, object, op string, ids ...string) {
	if events == nil || len(ids) == 0 {
		return
	}

	_ = events.PublishRecordEvent(ctx, RecordEvent{
		Object:     object,
		Op:         op,
		RecordIDs:  ids,
		OccurredAt: time.Now(),
	})
}
