package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"djbooking-backend/internal/domains/event"
	"djbooking-backend/internal/domains/event/model"
	"djbooking-backend/internal/domains/event/service"
	"djbooking-backend/internal/shared/response"
)

type EventHandler struct {
	service  service.ServiceInterface
	reporter *response.Reporter
}

func NewEventHandler(svc service.ServiceInterface, reporter *response.Reporter) *EventHandler {
	return &EventHandler{
		service:  svc,
		reporter: reporter,
	}
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /events
// ════════════════════════════════════════════════════════════════

func (h *EventHandler) Create(c *gin.Context) {
	principalID := c.MustGet("userID").(uuid.UUID)

	var req model.CreateEventRequest
	if err := c.BindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		h.reporter.Fail(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req, principalID)
	if err != nil {
		h.reporter.Fail(c, err)
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// ════════════════════════════════════════════════════════════════
// READ: GetByID - GET /events/:id
// ════════════════════════════════════════════════════════════════

func (h *EventHandler) GetByID(c *gin.Context) {
	// A malformed id is rejected before any store access.
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.reporter.Fail(c, event.ErrInvalidEventID)
		return
	}

	detail, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.reporter.Fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, detail)
}

// ════════════════════════════════════════════════════════════════
// READ: List - GET /events?user_id=&country=&city=&venue=&date_from=&date_to=&upcoming_only=&page=&limit=
// ════════════════════════════════════════════════════════════════

func (h *EventHandler) List(c *gin.Context) {
	query := model.ListEventsQuery{
		UserID:       c.Query("user_id"),
		Country:      c.Query("country"),
		City:         c.Query("city"),
		Venue:        c.Query("venue"),
		DateFrom:     c.Query("date_from"),
		DateTo:       c.Query("date_to"),
		UpcomingOnly: c.Query("upcoming_only") == "true",
		Page:         parseIntQuery(c, "page", response.DefaultPage),
		Limit:        parseIntQuery(c, "limit", response.DefaultLimit),
	}

	query.Normalize()
	if err := query.Validate(); err != nil {
		h.reporter.Fail(c, err)
		return
	}

	criteria := query.ToCriteria()
	criteria.Page, criteria.Limit = response.ClampPage(criteria.Page, criteria.Limit)

	events, total, err := h.service.List(c.Request.Context(), criteria)
	if err != nil {
		h.reporter.Fail(c, err)
		return
	}

	if events == nil {
		events = []model.Event{}
	}

	response.Paginated(c, http.StatusOK, events, response.NewPagination(criteria.Page, criteria.Limit, total))
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT /events/:id
// ════════════════════════════════════════════════════════════════

func (h *EventHandler) Update(c *gin.Context) {
	principalID := c.MustGet("userID").(uuid.UUID)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.reporter.Fail(c, event.ErrInvalidEventID)
		return
	}

	var req model.UpdateEventRequest
	if err := c.BindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		h.reporter.Fail(c, err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req, principalID)
	if err != nil {
		h.reporter.Fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /events/:id
// ════════════════════════════════════════════════════════════════

func (h *EventHandler) Delete(c *gin.Context) {
	principalID := c.MustGet("userID").(uuid.UUID)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.reporter.Fail(c, event.ErrInvalidEventID)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, principalID); err != nil {
		h.reporter.Fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "event deleted"})
}

func parseIntQuery(c *gin.Context, name string, fallback int) int {
	if raw := c.Query(name); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return fallback
}
