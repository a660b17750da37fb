// ABOUTME: CRUD for the three approval-tracked request kinds
// ABOUTME: Payment requests, travel requests, and gift-card distributions
package store

import (
	"fmt"
	"time"

	"github.com/harperreed/grantdesk/charm"
	"github.com/harperreed/grantdesk/models"
)

// PaymentRequests returns a snapshot of the payment-request collection.
func (s *Store) PaymentRequests() []models.PaymentRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.PaymentRequest, len(s.paymentRequests))
	copy(out, s.paymentRequests)
	return out
}

// AddPaymentRequest assigns defaults and appends the request.
func (s *Store) AddPaymentRequest(r *models.PaymentRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	if r.ID == "" {
		r.ID = models.NewID()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	r.UpdatedAt = now
	if r.Status == "" {
		r.Status = models.ApprovalPending
	}

	s.paymentRequests = append(s.paymentRequests, *r)
	s.persist(charm.KeyPaymentRequests)
	s.record("payment_request", r.ID, "created", r.Payee)
}

// UpdatePaymentRequest replaces the stored request with the same id.
func (s *Store) UpdatePaymentRequest(r models.PaymentRequest) (models.PaymentRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.paymentRequests {
		if s.paymentRequests[i].ID == r.ID {
			r.CreatedAt = s.paymentRequests[i].CreatedAt
			r.UpdatedAt = time.Now().UTC()
			s.paymentRequests[i] = r
			s.persist(charm.KeyPaymentRequests)
			s.record("payment_request", r.ID, "updated", r.Status)
			return r, nil
		}
	}
	return models.PaymentRequest{}, fmt.Errorf("payment request %s: %w", r.ID, ErrNotFound)
}

// DeletePaymentRequest removes a payment request by id.
func (s *Store) DeletePaymentRequest(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.paymentRequests {
		if s.paymentRequests[i].ID == id {
			s.paymentRequests = append(s.paymentRequests[:i], s.paymentRequests[i+1:]...)
			s.persist(charm.KeyPaymentRequests)
			s.record("payment_request", id, "deleted", "")
			return nil
		}
	}
	return fmt.Errorf("payment request %s: %w", id, ErrNotFound)
}

// TravelRequests returns a snapshot of the travel-request collection.
func (s *Store) TravelRequests() []models.TravelRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.TravelRequest, len(s.travelRequests))
	copy(out, s.travelRequests)
	return out
}

// AddTravelRequest assigns defaults and appends the request.
func (s *Store) AddTravelRequest(r *models.TravelRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	if r.ID == "" {
		r.ID = models.NewID()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	r.UpdatedAt = now
	if r.Status == "" {
		r.Status = models.ApprovalPending
	}

	s.travelRequests = append(s.travelRequests, *r)
	s.persist(charm.KeyTravelRequests)
	s.record("travel_request", r.ID, "created", r.Traveler)
}

// UpdateTravelRequest replaces the stored request with the same id.
func (s *Store) UpdateTravelRequest(r models.TravelRequest) (models.TravelRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.travelRequests {
		if s.travelRequests[i].ID == r.ID {
			r.CreatedAt = s.travelRequests[i].CreatedAt
			r.UpdatedAt = time.Now().UTC()
			s.travelRequests[i] = r
			s.persist(charm.KeyTravelRequests)
			s.record("travel_request", r.ID, "updated", r.Status)
			return r, nil
		}
	}
	return models.TravelRequest{}, fmt.Errorf("travel request %s: %w", r.ID, ErrNotFound)
}

// DeleteTravelRequest removes a travel request by id.
func (s *Store) DeleteTravelRequest(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.travelRequests {
		if s.travelRequests[i].ID == id {
			s.travelRequests = append(s.travelRequests[:i], s.travelRequests[i+1:]...)
			s.persist(charm.KeyTravelRequests)
			s.record("travel_request", id, "deleted", "")
			return nil
		}
	}
	return fmt.Errorf("travel request %s: %w", id, ErrNotFound)
}

// GiftCardDistributions returns a snapshot of the gift-card collection.
func (s *Store) GiftCardDistributions() []models.GiftCardDistribution {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.GiftCardDistribution, len(s.giftCards))
	copy(out, s.giftCards)
	return out
}

// AddGiftCardDistribution assigns defaults and appends the distribution.
func (s *Store) AddGiftCardDistribution(r *models.GiftCardDistribution) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	if r.ID == "" {
		r.ID = models.NewID()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	r.UpdatedAt = now
	if r.Status == "" {
		r.Status = models.ApprovalPending
	}

	s.giftCards = append(s.giftCards, *r)
	s.persist(charm.KeyGiftCards)
	s.record("gift_card_distribution", r.ID, "created", r.Recipient)
}

// UpdateGiftCardDistribution replaces the stored distribution with the same id.
func (s *Store) UpdateGiftCardDistribution(r models.GiftCardDistribution) (models.GiftCardDistribution, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.giftCards {
		if s.giftCards[i].ID == r.ID {
			r.CreatedAt = s.giftCards[i].CreatedAt
			r.UpdatedAt = time.Now().UTC()
			s.giftCards[i] = r
			s.persist(charm.KeyGiftCards)
			s.record("gift_card_distribution", r.ID, "updated", r.Status)
			return r, nil
		}
	}
	return models.GiftCardDistribution{}, fmt.Errorf("gift card distribution %s: %w", r.ID, ErrNotFound)
}

// DeleteGiftCardDistribution removes a distribution by id.
func (s *Store) DeleteGiftCardDistribution(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.giftCards {
		if s.giftCards[i].ID == id {
			s.giftCards = append(s.giftCards[:i], s.giftCards[i+1:]...)
			s.persist(charm.KeyGiftCards)
			s.record("gift_card_distribution", id, "deleted", "")
			return nil
		}
	}
	return fmt.Errorf("gift card distribution %s: %w", id, ErrNotFound)
}
