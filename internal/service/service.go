// Package service implements the business operations exposed to handlers,
// on top of the in-memory catalog.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Shivanand-hulikatti/eventease-catalog/internal/clock"
	"github.com/Shivanand-hulikatti/eventease-catalog/internal/logger"
	"github.com/Shivanand-hulikatti/eventease-catalog/internal/model"
	"github.com/Shivanand-hulikatti/eventease-catalog/internal/repository"
	"github.com/google/uuid"
)

// ErrInvalidID is returned for event ids that can never exist.
var ErrInvalidID = errors.New("event id must be a positive integer")

// EventService orchestrates event-related business operations.
type EventService struct {
	catalog *repository.Catalog
	clock   clock.Clock
	newID   func() string
}

// Option customises an EventService.
type Option func(*EventService)

// WithClock overrides the system clock.
func WithClock(c clock.Clock) Option {
	return func(s *EventService) { s.clock = c }
}

// WithIDGenerator overrides how confirmation ids are minted.
func WithIDGenerator(fn func() string) Option {
	return func(s *EventService) { s.newID = fn }
}

// NewEventService constructs an EventService over catalog.
func NewEventService(catalog *repository.Catalog, opts ...Option) *EventService {
	s := &EventService{
		catalog: catalog,
		clock:   clock.NewSystem(),
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListEvents returns all events.
func (s *EventService) ListEvents(ctx context.Context) []model.Event {
	return s.catalog.All()
}

// EventsByLocation returns events whose location contains query,
// case-insensitively. Surrounding whitespace in query is ignored.
func (s *EventService) EventsByLocation(ctx context.Context, query string) []model.Event {
	return s.catalog.ByLocation(strings.TrimSpace(query))
}

// UpcomingEvents returns events after the current time, earliest first.
func (s *EventService) UpcomingEvents(ctx context.Context) []model.Event {
	return s.catalog.Upcoming(s.clock.Now())
}

// GetEvent returns a single event by ID.
func (s *EventService) GetEvent(ctx context.Context, id int) (model.Event, error) {
	if id <= 0 {
		return model.Event{}, ErrInvalidID
	}
	e, ok := s.catalog.ByID(id)
	if !ok {
		return model.Event{}, repository.ErrNotFound
	}
	return e, nil
}

// Register takes one seat on the event. Domain errors from the catalog are
// returned unwrapped so handlers can map them to status codes.
func (s *EventService) Register(ctx context.Context, id int) (model.Registration, error) {
	log := logger.From(ctx).With(slog.Int("event_id", id))

	if id <= 0 {
		return model.Registration{}, ErrInvalidID
	}

	e, err := s.catalog.TryRegister(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrEventFull) {
			log.Info("registration rejected", "reason", err.Error())
			return model.Registration{}, err
		}
		return model.Registration{}, fmt.Errorf("register for event: %w", err)
	}

	reg := model.Registration{
		ConfirmationID: s.newID(),
		EventID:        e.ID,
		Remaining:      e.Remaining(),
		RegisteredAt:   s.clock.Now(),
	}
	log.Info("registration accepted",
		"confirmation_id", reg.ConfirmationID,
		"registered_count", e.RegisteredCount,
		"capacity", e.Capacity,
	)
	return reg, nil
}
