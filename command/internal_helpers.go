package command

import (
	"context"
	"strconv"
	"time"

	"github.com/goliatone/go-users-graphql/pkg/types"
)

func safeClock(clock types.Clock) types.Clock {
	if clock != nil {
		return clock
	}
	return types.SystemClock{}
}

func safeLogger(logger types.Logger) types.Logger {
	if logger != nil {
		return logger
	}
	return types.NopLogger{}
}

func safeIDGenerator(gen types.IDGenerator) types.IDGenerator {
	if gen != nil {
		return gen
	}
	return types.UUIDGenerator{}
}

func now(clock types.Clock) time.Time {
	if clock == nil {
		return time.Now().UTC()
	}
	return clock.Now()
}

func userActivity(verb string, user types.User, occurredAt time.Time, id types.IDGenerator) types.ActivityRecord {
	return types.ActivityRecord{
		ID:         id.UUID(),
		Verb:       verb,
		ObjectType: "user",
		ObjectID:   strconv.FormatInt(user.ID, 10),
		Channel:    "users",
		Data: map[string]any{
			"name":  user.Name,
			"email": user.Email,
		},
		OccurredAt: occurredAt,
	}
}

func logActivity(ctx context.Context, sink types.ActivitySink, logger types.Logger, record types.ActivityRecord) {
	if sink == nil {
		return
	}
	if err := sink.Log(ctx, record); err != nil {
		logger.Error("activity sink failed", err, "verb", record.Verb, "object_id", record.ObjectID)
	}
}

func emitActivityHook(ctx context.Context, hooks types.Hooks, record types.ActivityRecord) {
	if hooks.AfterActivity == nil {
		return
	}
	hooks.AfterActivity(ctx, record)
}

func emitUserHook(ctx context.Context, hooks types.Hooks, event types.UserEvent) {
	if hooks.AfterUserChange == nil {
		return
	}
	hooks.AfterUserChange(ctx, event)
}
