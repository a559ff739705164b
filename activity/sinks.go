package activity

import (
	"context"
	"sync"

	"github.com/goliatone/go-masker"
	"github.com/goliatone/go-users-graphql/pkg/types"
)

// LogSink writes sanitized activity records to a logger.
type LogSink struct {
	Logger types.Logger
	Masker *masker.Masker
}

var _ types.ActivitySink = (*LogSink)(nil)

// NewLogSink constructs a LogSink using the default masker.
func NewLogSink(logger types.Logger) *LogSink {
	if logger == nil {
		logger = types.NopLogger{}
	}
	return &LogSink{Logger: logger, Masker: DefaultMasker()}
}

// Log implements types.ActivitySink.
func (s *LogSink) Log(_ context.Context, record types.ActivityRecord) error {
	if s == nil || s.Logger == nil {
		return types.ErrMissingActivitySink
	}
	clean := SanitizeRecord(s.Masker, record)
	s.Logger.Info("activity",
		"id", clean.ID,
		"verb", clean.Verb,
		"object_type", clean.ObjectType,
		"object_id", clean.ObjectID,
		"channel", clean.Channel,
		"data", clean.Data,
		"occurred_at", clean.OccurredAt,
	)
	return nil
}

// MemorySink keeps every record in memory in arrival order.
type MemorySink struct {
	mu      sync.RWMutex
	records []types.ActivityRecord
}

var _ types.ActivitySink = (*MemorySink)(nil)

// NewMemorySink constructs an empty MemorySink.
func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

// Log implements types.ActivitySink.
func (s *MemorySink) Log(_ context.Context, record types.ActivityRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	record.Data = cloneData(record.Data)
	s.records = append(s.records, record)
	return nil
}

// Records returns a copy of the stored records.
func (s *MemorySink) Records() []types.ActivityRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.ActivityRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Fanout forwards every record to each sink and returns the first error.
type Fanout []types.ActivitySink

var _ types.ActivitySink = (Fanout)(nil)

// Log implements types.ActivitySink.
func (f Fanout) Log(ctx context.Context, record types.ActivityRecord) error {
	var first error
	for _, sink := range f {
		if sink == nil {
			continue
		}
		if err := sink.Log(ctx, record); err != nil && first == nil {
			first = err
		}
	}
	return first
}
