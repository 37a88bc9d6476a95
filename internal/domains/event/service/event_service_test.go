package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"djbooking-backend/internal/domains/event"
	"djbooking-backend/internal/domains/event/model"
	"djbooking-backend/internal/shared/apperrors"
)

type fakeEventRepo struct {
	events map[uuid.UUID]*model.Event

	listResult   []model.Event
	listTotal    int64
	lastCriteria model.ListCriteria
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: make(map[uuid.UUID]*model.Event)}
}

func (f *fakeEventRepo) Create(_ context.Context, e *model.Event) (*model.Event, error) {
	stored := *e
	stored.ID = uuid.New()
	f.events[stored.ID] = &stored
	return &stored, nil
}

func (f *fakeEventRepo) Update(_ context.Context, e *model.Event) (*model.Event, error) {
	stored, ok := f.events[e.ID]
	if !ok {
		return nil, event.ErrEventNotFound
	}

	stored.Name = e.Name
	stored.Country = e.Country
	stored.City = e.City
	stored.VenueName = e.VenueName
	stored.EventDate = e.EventDate
	stored.EventTime = e.EventTime
	return stored, nil
}

func (f *fakeEventRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.events[id]; !ok {
		return event.ErrEventNotFound
	}
	delete(f.events, id)
	return nil
}

func (f *fakeEventRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Event, error) {
	e, ok := f.events[id]
	if !ok {
		return nil, event.ErrEventNotFound
	}
	return e, nil
}

func (f *fakeEventRepo) GetWithOwner(_ context.Context, id uuid.UUID) (*model.EventDetail, error) {
	e, ok := f.events[id]
	if !ok {
		return nil, event.ErrEventNotFound
	}
	return &model.EventDetail{
		Event:  *e,
		Artist: model.OwnerSummary{ID: e.UserID, DisplayName: "owner"},
	}, nil
}

func (f *fakeEventRepo) List(_ context.Context, criteria model.ListCriteria) ([]model.Event, int64, error) {
	f.lastCriteria = criteria
	return f.listResult, f.listTotal, nil
}

func newTestEventService() (*fakeEventRepo, ServiceInterface) {
	repo := newFakeEventRepo()
	return repo, NewEventService(repo)
}

func createEventRequest(date string) *model.CreateEventRequest {
	return &model.CreateEventRequest{
		Name:      "Warehouse Night",
		Country:   "Germany",
		City:      "Berlin",
		VenueName: "Tresor",
		EventDate: date,
	}
}

func updateEventRequest(date string) *model.UpdateEventRequest {
	return &model.UpdateEventRequest{
		Name:      "Renamed Night",
		Country:   "Germany",
		City:      "Berlin",
		VenueName: "Berghain",
		EventDate: date,
	}
}

func dateString(daysFromToday int) string {
	return model.TodayUTC().AddDate(0, 0, daysFromToday).Format(model.DateLayout)
}

func TestEventService_CreateToday(t *testing.T) {
	_, svc := newTestEventService()
	principal := uuid.New()

	created, err := svc.Create(context.Background(), createEventRequest(dateString(0)), principal)

	require.NoError(t, err)
	assert.Equal(t, principal, created.UserID)
	assert.Equal(t, "Warehouse Night", created.Name)
}

func TestEventService_CreateYesterdayRejected(t *testing.T) {
	_, svc := newTestEventService()

	_, err := svc.Create(context.Background(), createEventRequest(dateString(-1)), uuid.New())

	assert.ErrorIs(t, err, event.ErrEventDateInPast)
}

func TestEventService_CreateMalformedDate(t *testing.T) {
	_, svc := newTestEventService()

	_, err := svc.Create(context.Background(), createEventRequest("not-a-date"), uuid.New())

	require.ErrorIs(t, err, event.ErrEventDateFormat)
	assert.Equal(t, apperrors.KindValidation, apperrors.Classify(err).Kind)
}

func TestEventService_UpdateMalformedDate(t *testing.T) {
	_, svc := newTestEventService()
	owner := uuid.New()

	created, err := svc.Create(context.Background(), createEventRequest(dateString(7)), owner)
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), created.ID, updateEventRequest("2026-13-99"), owner)

	assert.ErrorIs(t, err, event.ErrEventDateFormat)
}

func TestEventService_CreateOneYearBoundary(t *testing.T) {
	_, svc := newTestEventService()
	oneYear := model.TodayUTC().AddDate(0, model.MaxMonthsInFuture, 0)

	_, err := svc.Create(context.Background(),
		createEventRequest(oneYear.Format(model.DateLayout)), uuid.New())
	assert.NoError(t, err, "exactly one year ahead is allowed")

	_, err = svc.Create(context.Background(),
		createEventRequest(oneYear.AddDate(0, 0, 1).Format(model.DateLayout)), uuid.New())
	assert.ErrorIs(t, err, event.ErrEventDateTooFar)
}

func TestEventService_UpdateByOwner(t *testing.T) {
	_, svc := newTestEventService()
	owner := uuid.New()

	created, err := svc.Create(context.Background(), createEventRequest(dateString(7)), owner)
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, updateEventRequest(dateString(14)), owner)

	require.NoError(t, err)
	assert.Equal(t, "Renamed Night", updated.Name)
	assert.Equal(t, "Berghain", updated.VenueName)
	assert.Equal(t, owner, updated.UserID)
}

func TestEventService_UpdateByOtherPrincipalForbidden(t *testing.T) {
	_, svc := newTestEventService()
	owner := uuid.New()

	created, err := svc.Create(context.Background(), createEventRequest(dateString(7)), owner)
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), created.ID, updateEventRequest(dateString(14)), uuid.New())

	require.ErrorIs(t, err, event.ErrNotEventOwner)
	assert.Equal(t, apperrors.KindAuthorization, apperrors.Classify(err).Kind)
}

func TestEventService_UpdatePastEventFrozen(t *testing.T) {
	repo, svc := newTestEventService()
	owner := uuid.New()

	past := &model.Event{
		ID:        uuid.New(),
		UserID:    owner,
		Name:      "Old Night",
		EventDate: model.TodayUTC().AddDate(0, 0, -3),
	}
	repo.events[past.ID] = past

	// A future payload date does not unfreeze an event whose stored
	// date has passed.
	_, err := svc.Update(context.Background(), past.ID, updateEventRequest(dateString(7)), owner)

	require.ErrorIs(t, err, event.ErrEventInPast)
	assert.Equal(t, apperrors.KindBusinessLogic, apperrors.Classify(err).Kind)
}

func TestEventService_UpdateOwnershipCheckedBeforeFreeze(t *testing.T) {
	repo, svc := newTestEventService()

	past := &model.Event{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		EventDate: model.TodayUTC().AddDate(0, 0, -3),
	}
	repo.events[past.ID] = past

	_, err := svc.Update(context.Background(), past.ID, updateEventRequest(dateString(7)), uuid.New())

	assert.ErrorIs(t, err, event.ErrNotEventOwner)
}

func TestEventService_UpdateUnknownEvent(t *testing.T) {
	_, svc := newTestEventService()

	_, err := svc.Update(context.Background(), uuid.New(), updateEventRequest(dateString(7)), uuid.New())

	assert.ErrorIs(t, err, event.ErrEventNotFound)
}

func TestEventService_DeleteByOwner(t *testing.T) {
	repo, svc := newTestEventService()
	owner := uuid.New()

	created, err := svc.Create(context.Background(), createEventRequest(dateString(7)), owner)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID, owner))
	assert.Empty(t, repo.events)
}

func TestEventService_DeleteByOtherPrincipalForbidden(t *testing.T) {
	_, svc := newTestEventService()
	owner := uuid.New()

	created, err := svc.Create(context.Background(), createEventRequest(dateString(7)), owner)
	require.NoError(t, err)

	err = svc.Delete(context.Background(), created.ID, uuid.New())

	assert.ErrorIs(t, err, event.ErrNotEventOwner)
}

func TestEventService_DeletePastEventFrozen(t *testing.T) {
	repo, svc := newTestEventService()
	owner := uuid.New()

	past := &model.Event{
		ID:        uuid.New(),
		UserID:    owner,
		EventDate: model.TodayUTC().AddDate(0, 0, -1),
	}
	repo.events[past.ID] = past

	err := svc.Delete(context.Background(), past.ID, owner)

	require.ErrorIs(t, err, event.ErrEventInPast)
	assert.Contains(t, repo.events, past.ID)
}

func TestEventService_GetNilID(t *testing.T) {
	_, svc := newTestEventService()

	_, err := svc.Get(context.Background(), uuid.Nil)

	assert.ErrorIs(t, err, event.ErrEventNotFound)
}

func TestEventService_GetIncludesOwner(t *testing.T) {
	_, svc := newTestEventService()
	owner := uuid.New()

	created, err := svc.Create(context.Background(), createEventRequest(dateString(7)), owner)
	require.NoError(t, err)

	detail, err := svc.Get(context.Background(), created.ID)

	require.NoError(t, err)
	assert.Equal(t, owner, detail.Artist.ID)
	assert.Equal(t, "owner", detail.Artist.DisplayName)
}

func TestEventService_ListClampsPagination(t *testing.T) {
	repo, svc := newTestEventService()

	_, _, err := svc.List(context.Background(), model.ListCriteria{Page: 0, Limit: 9999})

	require.NoError(t, err)
	assert.Equal(t, 1, repo.lastCriteria.Page)
	assert.Equal(t, 100, repo.lastCriteria.Limit)
}
