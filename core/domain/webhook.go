package domain

import (
	"encoding/json"
	"errors"
	"net/url"
	"strings"
)

var errMissingRetrieveURL = errors.New("retrieveUrl is missing")

type Webhook struct {
	Entity
	URL   string       `json:"url" validate:"required,url"`
	Event WebhookEvent `json:"event" validate:"required"`
}

func NewWebhook(webhookURL string, event WebhookEvent) *Webhook {
	return &Webhook{URL: webhookURL, Event: event}
}

func (w *Webhook) URI(appendID bool) string {
	return resourceURI("webhooks", w.ID, appendID)
}

// WebhookList registers one url for several events at once and holds the
// webhooks returned by list and bulk calls.
type WebhookList struct {
	URL       string         `json:"url,omitempty"`
	EventList []WebhookEvent `json:"eventList,omitempty"`
	Events    []*Webhook     `json:"events,omitempty"`
}

func (l *WebhookList) GetID() string { return "" }

func (l *WebhookList) SetID(string) {}

func (l *WebhookList) URI(bool) string { return "webhooks" }

// EventPayload is the body the gateway posts to a registered webhook url.
type EventPayload struct {
	Event       WebhookEvent `json:"event"`
	PublicKey   string       `json:"publicKey"`
	RetrieveURL string       `json:"retrieveUrl"`
	PaymentID   string       `json:"paymentId,omitempty"`
}

func ParseEventPayload(body []byte) (*EventPayload, error) {
	var payload EventPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, NewInvalidArgumentError("event payload", err)
	}
	if payload.RetrieveURL == "" {
		return nil, NewInvalidArgumentError("event payload", errMissingRetrieveURL)
	}
	return &payload, nil
}

// ResourcePath returns the retrieve url relative to the API version root,
// e.g. "payments/s-pay-1/charges/s-chg-1".
func (e *EventPayload) ResourcePath() (string, error) {
	u, err := url.Parse(e.RetrieveURL)
	if err != nil {
		return "", NewInvalidArgumentError("retrieveUrl", err)
	}
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	// the first segment is the API version
	if len(segments) < 2 {
		return "", NewUnknownResourceError(e.RetrieveURL)
	}
	return strings.Join(segments[1:], "/"), nil
}
