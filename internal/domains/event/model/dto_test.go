package model

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateEvent() CreateEventRequest {
	return CreateEventRequest{
		Name:      "Warehouse Night",
		Country:   "Germany",
		City:      "Berlin",
		VenueName: "Tresor",
		EventDate: "2026-09-12",
	}
}

func TestCreateEventRequest_Valid(t *testing.T) {
	req := validCreateEvent()

	req.Normalize()
	assert.NoError(t, req.Validate())
}

func TestCreateEventRequest_NormalizeTrims(t *testing.T) {
	req := CreateEventRequest{
		Name:      "  Warehouse Night  ",
		Country:   " Germany ",
		City:      " Berlin ",
		VenueName: " Tresor ",
		EventDate: " 2026-09-12 ",
	}

	req.Normalize()

	assert.Equal(t, "Warehouse Night", req.Name)
	assert.Equal(t, "Tresor", req.VenueName)
	assert.NoError(t, req.Validate())
}

func TestCreateEventRequest_RequiredFields(t *testing.T) {
	req := CreateEventRequest{}
	req.Normalize()

	err := req.Validate()
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "name")
	assert.Contains(t, msg, "country")
	assert.Contains(t, msg, "city")
	assert.Contains(t, msg, "venue_name")
	assert.Contains(t, msg, "event_date")
}

func TestCreateEventRequest_FieldLengths(t *testing.T) {
	req := validCreateEvent()
	req.Country = strings.Repeat("x", MaxCountryLength+1)
	assert.Error(t, req.Validate())

	req = validCreateEvent()
	req.VenueName = strings.Repeat("x", MaxVenueLength)
	assert.NoError(t, req.Validate())
}

func TestCreateEventRequest_MalformedDateRejected(t *testing.T) {
	for _, bad := range []string{"12-09-2026", "2026/09/12", "2026-13-01", "not a date"} {
		req := validCreateEvent()
		req.EventDate = bad

		assert.Error(t, req.Validate(), bad)
	}
}

func TestCreateEventRequest_EventTime(t *testing.T) {
	tests := []struct {
		value string
		ok    bool
	}{
		{"00:00", true},
		{"23:59", true},
		{"09:30", true},
		{"24:00", false},
		{"9:30", false},
		{"12:60", false},
		{"noon", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			req := validCreateEvent()
			v := tt.value
			req.EventTime = &v

			err := req.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestCreateEventRequest_BlankTimeDropsToNil(t *testing.T) {
	blank := "  "
	req := validCreateEvent()
	req.EventTime = &blank

	req.Normalize()

	assert.Nil(t, req.EventTime)
	assert.NoError(t, req.Validate())
}

func TestListEventsQuery_DateOrder(t *testing.T) {
	q := ListEventsQuery{
		DateFrom: "2026-09-10",
		DateTo:   "2026-09-01",
	}

	assert.Error(t, q.Validate())

	q.DateTo = "2026-09-10"
	assert.NoError(t, q.Validate())
}

func TestListEventsQuery_InvalidUserIDRejected(t *testing.T) {
	q := ListEventsQuery{UserID: "not-a-uuid"}

	assert.Error(t, q.Validate())
}

func TestListEventsQuery_ToCriteria(t *testing.T) {
	userID := uuid.New()
	q := ListEventsQuery{
		UserID:       userID.String(),
		Country:      "Germany",
		City:         "Berlin",
		Venue:        "Tresor",
		DateFrom:     "2026-09-01",
		DateTo:       "2026-09-30",
		UpcomingOnly: true,
		Page:         3,
		Limit:        15,
	}

	c := q.ToCriteria()

	require.NotNil(t, c.UserID)
	assert.Equal(t, userID, *c.UserID)
	assert.Equal(t, "Germany", c.Country)
	assert.True(t, c.UpcomingOnly)
	require.NotNil(t, c.DateFrom)
	require.NotNil(t, c.DateTo)
	assert.Equal(t, "2026-09-01", c.DateFrom.Format(DateLayout))
	assert.Equal(t, 30, c.Offset())
}

func TestListEventsQuery_EmptyFiltersStayUnset(t *testing.T) {
	c := ListEventsQuery{Page: 1, Limit: 20}.ToCriteria()

	assert.Nil(t, c.UserID)
	assert.Nil(t, c.DateFrom)
	assert.Nil(t, c.DateTo)
	assert.False(t, c.UpcomingOnly)
}
