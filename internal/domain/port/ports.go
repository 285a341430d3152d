package port

import (
	"context"

	"github.com/Abayommy/genai-payment-intent-clarifier/internal/domain/event"
)

// InferenceClient is the narrow contract to the text-generation oracle. The
// oracle returns unstructured free text; callers must validate everything it
// returns before trusting it.
type InferenceClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// EventPublisher publishes domain events to downstream consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.Event) error
}
