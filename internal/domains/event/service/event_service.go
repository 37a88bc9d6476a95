package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"djbooking-backend/internal/domains/event"
	"djbooking-backend/internal/domains/event/model"
	"djbooking-backend/internal/domains/event/repository"
	"djbooking-backend/internal/shared/response"
)

type eventService struct {
	repo repository.RepositoryInterface
}

func NewEventService(repo repository.RepositoryInterface) ServiceInterface {
	return &eventService{repo: repo}
}

func (s *eventService) Create(ctx context.Context, req *model.CreateEventRequest, principalID uuid.UUID) (*model.Event, error) {
	date, err := req.ParsedDate()
	if err != nil {
		return nil, event.ErrEventDateFormat
	}

	if err := checkEventDate(date); err != nil {
		return nil, err
	}

	newEvent := &model.Event{
		UserID:    principalID,
		Name:      req.Name,
		Country:   req.Country,
		City:      req.City,
		VenueName: req.VenueName,
		EventDate: date,
		EventTime: req.EventTime,
	}

	return s.repo.Create(ctx, newEvent)
}

func (s *eventService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateEventRequest, principalID uuid.UUID) (*model.Event, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Ownership first, then the temporal freeze on the stored date. The
	// payload date never unfreezes a past event.
	if current.UserID != principalID {
		return nil, event.ErrNotEventOwner
	}

	if current.EventDate.Before(model.TodayUTC()) {
		return nil, event.ErrEventInPast
	}

	date, err := req.ParsedDate()
	if err != nil {
		return nil, event.ErrEventDateFormat
	}

	if err := checkEventDate(date); err != nil {
		return nil, err
	}

	updatedEvent := &model.Event{
		ID:        id,
		Name:      req.Name,
		Country:   req.Country,
		City:      req.City,
		VenueName: req.VenueName,
		EventDate: date,
		EventTime: req.EventTime,
	}

	return s.repo.Update(ctx, updatedEvent)
}

func (s *eventService) Delete(ctx context.Context, id uuid.UUID, principalID uuid.UUID) error {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if current.UserID != principalID {
		return event.ErrNotEventOwner
	}

	if current.EventDate.Before(model.TodayUTC()) {
		return event.ErrEventInPast
	}

	return s.repo.Delete(ctx, id)
}

func (s *eventService) Get(ctx context.Context, id uuid.UUID) (*model.EventDetail, error) {
	if id == uuid.Nil {
		return nil, event.ErrEventNotFound
	}

	return s.repo.GetWithOwner(ctx, id)
}

func (s *eventService) List(ctx context.Context, criteria model.ListCriteria) ([]model.Event, int64, error) {
	criteria.Page, criteria.Limit = response.ClampPage(criteria.Page, criteria.Limit)

	events, total, err := s.repo.List(ctx, criteria)
	if err != nil {
		return nil, 0, err
	}

	return events, total, nil
}

// checkEventDate enforces the creation window: today or later, and no
// more than one year ahead.
func checkEventDate(date time.Time) error {
	today := model.TodayUTC()

	if date.Before(today) {
		return event.ErrEventDateInPast
	}

	if date.After(today.AddDate(0, model.MaxMonthsInFuture, 0)) {
		return event.ErrEventDateTooFar
	}

	return nil
}
