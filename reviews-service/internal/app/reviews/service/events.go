package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"servicereviews/pkg/logger"
	"servicereviews/reviews-service/internal/app/reviews/entity"
	"servicereviews/reviews-service/internal/app/reviews/infrastructure"
)

// eventPublisher отправляет доменные события; ошибки только логируются,
// так как запись в хранилище уже выполнена
type eventPublisher struct {
	publisher infrastructure.MessagePublisher
}

func (p eventPublisher) publish(ctx context.Context, event entity.DomainEvent) {
	if p.publisher == nil {
		return
	}
	event.Timestamp = time.Now()

	if err := p.send(ctx, event); err != nil {
		logger.Warn().
			Err(err).
			Str("event_type", event.EventType).
			Str("document_id", event.DocumentID).
			Msg("Failed to publish domain event")
	}
}

func (p eventPublisher) send(ctx context.Context, event entity.DomainEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := p.publisher.PublishMessage(ctx, event.DocumentID, data); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}
