package service

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/heidelpay-go/core/domain"
)

// WebhookService manages the urls the gateway posts events to.
type WebhookService struct {
	resources *ResourceService
	logger    *slog.Logger
}

func NewWebhookService(resources *ResourceService, logger *slog.Logger) *WebhookService {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &WebhookService{
		resources: resources,
		logger:    logger,
	}
}

func (s *WebhookService) CreateWebhook(ctx context.Context, webhookURL string, event domain.WebhookEvent) (*domain.Webhook, error) {
	webhook := domain.NewWebhook(webhookURL, event)
	if err := s.resources.Create(ctx, webhook); err != nil {
		return nil, err
	}
	s.logger.Info("webhook registered", "webhook_id", webhook.ID, "event", webhook.Event)
	return webhook, nil
}

func (s *WebhookService) FetchWebhook(ctx context.Context, webhookID string) (*domain.Webhook, error) {
	webhook := &domain.Webhook{}
	if err := s.resources.fetchByID(ctx, webhook, webhookID); err != nil {
		return nil, err
	}
	return webhook, nil
}

func (s *WebhookService) UpdateWebhook(ctx context.Context, webhook *domain.Webhook) (*domain.Webhook, error) {
	if err := s.resources.Update(ctx, webhook); err != nil {
		return nil, err
	}
	return webhook, nil
}

func (s *WebhookService) DeleteWebhook(ctx context.Context, webhookID string) error {
	webhook := &domain.Webhook{}
	webhook.ID = webhookID
	return s.resources.Delete(ctx, webhook)
}

func (s *WebhookService) FetchAllWebhooks(ctx context.Context) ([]*domain.Webhook, error) {
	list := &domain.WebhookList{}
	if err := s.resources.Fetch(ctx, list); err != nil {
		return nil, err
	}
	return list.Events, nil
}

// DeleteAllWebhooks removes every webhook registered for the keypair.
func (s *WebhookService) DeleteAllWebhooks(ctx context.Context) error {
	list := &domain.WebhookList{}
	if err := s.resources.Send(ctx, http.MethodDelete, list.URI(false), list, ""); err != nil {
		return err
	}
	s.logger.Info("all webhooks deleted")
	return nil
}

// RegisterMultipleWebhooks registers webhookURL for all events in one call.
func (s *WebhookService) RegisterMultipleWebhooks(ctx context.Context, webhookURL string, events ...domain.WebhookEvent) ([]*domain.Webhook, error) {
	if len(events) == 0 {
		return nil, domain.NewInvalidArgumentError("events", errNoEvents)
	}
	list := &domain.WebhookList{URL: webhookURL, EventList: events}
	if err := s.resources.Create(ctx, list); err != nil {
		return nil, err
	}
	s.logger.Info("webhooks registered", "url", webhookURL, "count", len(list.Events))
	return list.Events, nil
}
