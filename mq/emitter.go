package mq

import (
	"context"
	"encoding/json"
	"log"

	"trekhub/metrics"
	"trekhub/models"
	"trekhub/rdx"
)

// Channel carrying entity-change events from write handlers to the
// livefeed hub. Every create/update/delete publishes here so subscribed
// dashboards re-query instead of trusting stale state.
const ChangeChannel = "change-events"

// Emit publishes a change event. Failures are logged, never fatal:
// a missed event only delays a dashboard refresh.
func Emit(collection, method, entityID string) {
	event := models.ChangeEvent{
		Collection: collection,
		Method:     method,
		EntityID:   entityID,
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("[Emit] Failed to marshal change event: %v", err)
		return
	}

	if err := rdx.Conn.Publish(context.Background(), ChangeChannel, data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish change event: %v", err)
		return
	}
	metrics.ChangeEventsPublished.WithLabelValues(collection).Inc()
}

// Subscribe returns a channel of decoded change events. The caller owns
// the goroutine lifetime via ctx.
func Subscribe(ctx context.Context) <-chan models.ChangeEvent {
	out := make(chan models.ChangeEvent)
	sub := rdx.Conn.Subscribe(ctx, ChangeChannel)

	go func() {
		defer close(out)
		defer sub.Close()
		for msg := range sub.Channel() {
			var event models.ChangeEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				log.Printf("[Subscribe] Failed to parse change event: %v", err)
				continue
			}
			select {
			case out <- event:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}
