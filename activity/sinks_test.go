package activity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goliatone/go-users-graphql/pkg/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestSanitizeRecord_MasksEmailWithoutMutatingInput(t *testing.T) {
	record := types.ActivityRecord{
		Verb: "user.created",
		Data: map[string]any{
			"name":  "Amy Lee",
			"email": "amy@example.com",
		},
	}

	clean := SanitizeRecord(nil, record)

	require.Equal(t, "amy@example.com", record.Data["email"], "input must not be modified")
	require.Equal(t, "Amy Lee", clean.Data["name"])
	require.NotEqual(t, "amy@example.com", clean.Data["email"])
}

func TestSanitizeRecord_EmptyData(t *testing.T) {
	record := types.ActivityRecord{Verb: "user.updated"}
	require.Equal(t, record, SanitizeRecord(nil, record))
}

func TestMemorySink_RecordsInOrder(t *testing.T) {
	sink := NewMemorySink()
	ctx := context.Background()

	require.NoError(t, sink.Log(ctx, types.ActivityRecord{Verb: "user.created", ObjectID: "4"}))
	require.NoError(t, sink.Log(ctx, types.ActivityRecord{Verb: "user.updated", ObjectID: "4"}))

	records := sink.Records()
	require.Len(t, records, 2)
	require.Equal(t, "user.created", records[0].Verb)
	require.Equal(t, "user.updated", records[1].Verb)
}

func TestLogSink_WritesSanitizedRecord(t *testing.T) {
	logger := &recordingLogger{}
	sink := NewLogSink(logger)

	err := sink.Log(context.Background(), types.ActivityRecord{
		ID:         uuid.New(),
		Verb:       "user.created",
		ObjectType: "user",
		ObjectID:   "4",
		Data:       map[string]any{"email": "amy@example.com"},
		OccurredAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	})

	require.NoError(t, err)
	require.Equal(t, []string{"activity"}, logger.messages)
	data, ok := fieldValue(logger.fields[0], "data").(map[string]any)
	require.True(t, ok)
	require.NotEqual(t, "amy@example.com", data["email"])
}

func TestLogSink_NilSink(t *testing.T) {
	var sink *LogSink
	require.ErrorIs(t, sink.Log(context.Background(), types.ActivityRecord{}), types.ErrMissingActivitySink)
}

func TestFanout_ForwardsAndReportsFirstError(t *testing.T) {
	first := NewMemorySink()
	second := NewMemorySink()
	boom := errors.New("boom")

	err := Fanout{first, failingSink{err: boom}, nil, second}.Log(context.Background(), types.ActivityRecord{Verb: "user.created"})

	require.ErrorIs(t, err, boom)
	require.Len(t, first.Records(), 1)
	require.Len(t, second.Records(), 1)
}

type failingSink struct {
	err error
}

func (s failingSink) Log(context.Context, types.ActivityRecord) error {
	return s.err
}

type recordingLogger struct {
	messages []string
	fields   [][]any
}

func (l *recordingLogger) Debug(string, ...any) {}

func (l *recordingLogger) Info(msg string, fields ...any) {
	l.messages = append(l.messages, msg)
	l.fields = append(l.fields, fields)
}

func (l *recordingLogger) Error(string, error, ...any) {}

func fieldValue(fields []any, key string) any {
	for i := 0; i+1 < len(fields); i += 2 {
		if fields[i] == key {
			return fields[i+1]
		}
	}
	return nil
}
