package service

import (
	"context"
	"errors"
	"strings"

	"github.com/DanielPopoola/heidelpay-go/core/domain"
)

var errNoEvents = errors.New("at least one event is required")

// FetchResourceFromEvent fetches the resource an event notification refers to.
// The concrete type of the result depends on the event, e.g. *domain.Charge
// for charge events or *domain.Customer for customer events.
func (s *ResourceService) FetchResourceFromEvent(ctx context.Context, body []byte) (domain.Resource, error) {
	payload, err := domain.ParseEventPayload(body)
	if err != nil {
		return nil, err
	}
	path, err := payload.ResourcePath()
	if err != nil {
		return nil, err
	}

	resource, err := resourceForPath(path)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("fetching event resource", "event", payload.Event, "path", path)

	if err := s.Fetch(ctx, resource); err != nil {
		return nil, err
	}
	return resource, nil
}

// resourceForPath builds an empty resource whose URI is path.
func resourceForPath(path string) (domain.Resource, error) {
	segments := strings.Split(path, "/")
	last := segments[len(segments)-1]

	switch segments[0] {
	case "payments":
		return transactionForPath(path, segments[1:])
	case "customers":
		if len(segments) != 2 {
			break
		}
		customer := &domain.Customer{}
		customer.ID = last
		return customer, nil
	case "baskets":
		if len(segments) != 2 {
			break
		}
		basket := &domain.Basket{}
		basket.ID = last
		return basket, nil
	case "metadata":
		if len(segments) != 2 {
			break
		}
		metadata := domain.NewMetadata()
		metadata.ID = last
		return metadata, nil
	case "types":
		if len(segments) < 2 {
			break
		}
		return domain.NewPaymentTypeFromID(last)
	}
	return nil, domain.NewUnknownResourceError(path)
}

// transactionForPath resolves paths below payments/, where segments starts with the payment id.
func transactionForPath(path string, segments []string) (domain.Resource, error) {
	if len(segments) == 0 || segments[0] == "" {
		return nil, domain.NewUnknownResourceError(path)
	}
	payment := domain.NewPayment(segments[0])
	if len(segments) == 1 {
		return payment, nil
	}
	if len(segments)%2 != 1 {
		return nil, domain.NewUnknownResourceError(path)
	}

	var parent domain.Resource
	for i := 1; i < len(segments); i += 2 {
		kind, id := segments[i], segments[i+1]
		var current domain.Resource

		switch kind {
		case "authorize":
			auth := &domain.Authorization{}
			auth.SetPayment(payment)
			current = auth
		case "charges":
			charge := &domain.Charge{}
			charge.SetPayment(payment)
			current = charge
		case "shipments":
			shipment := &domain.Shipment{}
			shipment.SetPayment(payment)
			current = shipment
		case "payouts":
			payout := &domain.Payout{}
			payout.SetPayment(payment)
			current = payout
		case "cancels":
			if parent == nil {
				return nil, domain.NewUnknownResourceError(path)
			}
			cancellation := &domain.Cancellation{}
			cancellation.SetParent(parent)
			current = cancellation
		default:
			return nil, domain.NewUnknownResourceError(path)
		}

		current.SetID(id)
		parent = current
	}
	return parent, nil
}
