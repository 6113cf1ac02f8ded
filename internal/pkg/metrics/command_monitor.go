package metrics

import (
	"context"

	"go.mongodb.org/mongo-driver/event"
)

// NewCommandMonitor returns a driver command monitor that records the
// duration of every MongoDB command in MongoCommandDuration.
func NewCommandMonitor() *event.CommandMonitor {
	return &event.CommandMonitor{
		Succeeded: func(_ context.Context, evt *event.CommandSucceededEvent) {
			MongoCommandDuration.WithLabelValues(evt.CommandName, "ok").
				Observe(evt.Duration.Seconds())
		},
		Failed: func(_ context.Context, evt *event.CommandFailedEvent) {
			MongoCommandDuration.WithLabelValues(evt.CommandName, "error").
				Observe(evt.Duration.Seconds())
		},
	}
}
