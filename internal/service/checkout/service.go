package checkout

import (
	"context"
	"errors"
	"io"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"shopflow/internal/checkout"
	"shopflow/internal/domain"
)

// Session is one shopper's in-flight checkout. Sessions live in memory only
// and are discarded on submit; the wizard state is deliberately not durable.
type Session struct {
	ID   string        `json:"id"`
	Form checkout.Form `json:"form"`
}

// OrderPlacer receives the assembled order at the end of a checkout. The
// wizard's contract ends at this hand-off.
type OrderPlacer interface {
	Place(ctx context.Context, order domain.Order) error
}

type Service struct {
	placer OrderPlacer
	logger *log.Logger

	mu       sync.RWMutex
	sessions map[string]checkout.Form
}

func New(placer OrderPlacer, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{
		placer:   placer,
		logger:   logger,
		sessions: make(map[string]checkout.Form),
	}
}

// Create starts a new checkout session with an empty form.
func (s *Service) Create() Session {
	id := uuid.NewString()
	form := checkout.NewForm()

	s.mu.Lock()
	s.sessions[id] = form
	s.mu.Unlock()

	s.logger.Printf("checkout: session created id=%s", id)
	return Session{ID: id, Form: form}
}

func (s *Service) Get(id string) (Session, error) {
	s.mu.RLock()
	form, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return Session{}, domain.ErrNotFound
	}
	return Session{ID: id, Form: form}, nil
}

// Apply dispatches field-change actions against a session's form. Actions
// apply atomically: on the first failure the stored form is left as it was.
func (s *Service) Apply(id string, actions []checkout.Action) (Session, error) {
	if len(actions) == 0 {
		return Session{}, errors.New("actions required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	form, ok := s.sessions[id]
	if !ok {
		return Session{}, domain.ErrNotFound
	}

	next := form
	for _, action := range actions {
		var err error
		next, err = checkout.ApplyAction(next, action)
		if err != nil {
			return Session{}, err
		}
	}

	s.sessions[id] = next
	return Session{ID: id, Form: next}, nil
}

// Advance moves a session forward one step, enforcing the gating rules.
func (s *Service) Advance(id string) (Session, error) {
	return s.transition(id, checkout.Advance)
}

// Retreat moves a session back one step; never gated.
func (s *Service) Retreat(id string) (Session, error) {
	return s.transition(id, checkout.Retreat)
}

func (s *Service) transition(id string, step func(checkout.Form) (checkout.Form, error)) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	form, ok := s.sessions[id]
	if !ok {
		return Session{}, domain.ErrNotFound
	}

	next, err := step(form)
	if err != nil {
		return Session{ID: id, Form: form}, err
	}

	s.sessions[id] = next
	s.logger.Printf("checkout: session id=%s step=%s", id, next.Step)
	return Session{ID: id, Form: next}, nil
}

// Submit completes a session from the review step: the form transitions to
// its terminal state, the order is handed to the placer, and the session is
// discarded. If the placer fails the session stays at review.
func (s *Service) Submit(ctx context.Context, id string) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	form, ok := s.sessions[id]
	if !ok {
		return domain.Order{}, domain.ErrNotFound
	}
	if form.Step == checkout.StepSubmitted {
		return domain.Order{}, domain.ErrSubmitted
	}
	if form.Step != checkout.StepReview {
		return domain.Order{}, domain.ErrInvalidTransition
	}

	order := orderFromForm(form)
	if err := s.placer.Place(ctx, order); err != nil {
		return domain.Order{}, err
	}

	delete(s.sessions, id)
	s.logger.Printf("checkout: session id=%s submitted order=%s", id, order.ID)
	return order, nil
}

func orderFromForm(f checkout.Form) domain.Order {
	return domain.Order{
		ID:            uuid.NewString(),
		Email:         f.Shipping.Email,
		FirstName:     f.Shipping.FirstName,
		LastName:      f.Shipping.LastName,
		Address:       f.Shipping.Address,
		City:          f.Shipping.City,
		State:         f.Shipping.State,
		ZipCode:       f.Shipping.ZipCode,
		Country:       f.Shipping.Country,
		PaymentMethod: string(f.Payment.Method),
		PlacedAt:      time.Now().UTC(),
	}
}
