package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"djbooking-backend/internal/domains/artist"
	"djbooking-backend/internal/domains/artist/model"
	"djbooking-backend/internal/domains/artist/service"
	"djbooking-backend/internal/shared/response"
)

type ArtistHandler struct {
	service  service.ServiceInterface
	reporter *response.Reporter
}

func NewArtistHandler(svc service.ServiceInterface, reporter *response.Reporter) *ArtistHandler {
	return &ArtistHandler{
		service:  svc,
		reporter: reporter,
	}
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /artists
// ════════════════════════════════════════════════════════════════

func (h *ArtistHandler) Create(c *gin.Context) {
	principalID := c.MustGet("userID").(uuid.UUID)

	var req model.CreateArtistRequest
	if err := c.BindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		h.reporter.Fail(c, err)
		return
	}

	detail, err := h.service.Create(c.Request.Context(), &req, principalID)
	if err != nil {
		h.reporter.Fail(c, err)
		return
	}

	response.Success(c, http.StatusCreated, detail)
}

// ════════════════════════════════════════════════════════════════
// READ: GetByID - GET /artists/:id
// ════════════════════════════════════════════════════════════════

func (h *ArtistHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.reporter.Fail(c, artist.ErrArtistNotFound)
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
// READ: Search - GET /artists?search=&music_styles=&location=&available_from=&available_to=&page=&limit=
// ════════════════════════════════════════════════════════════════

func (h *ArtistHandler) Search(c *gin.Context) {
	query := model.SearchArtistsQuery{
		Search:        c.Query("search"),
		Location:      c.Query("location"),
		AvailableFrom: c.Query("available_from"),
		AvailableTo:   c.Query("available_to"),
		Page:          parseIntQuery(c, "page", response.DefaultPage),
		Limit:         parseIntQuery(c, "limit", response.DefaultLimit),
	}
	if raw := c.Query("music_styles"); raw != "" {
		query.MusicStyles = strings.Split(raw, ",")
	}

	query.Normalize()
	if err := query.Validate(); err != nil {
		h.reporter.Fail(c, err)
		return
	}

	criteria := query.ToCriteria()
	criteria.Page, criteria.Limit = response.ClampPage(criteria.Page, criteria.Limit)

	items, total, err := h.service.Search(c.Request.Context(), criteria)
	if err != nil {
		h.reporter.Fail(c, err)
		return
	}

	if items == nil {
		items = []model.ArtistListItem{}
	}

	response.Paginated(c, http.StatusOK, items, response.NewPagination(criteria.Page, criteria.Limit, total))
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT /artists/:id
// ════════════════════════════════════════════════════════════════

func (h *ArtistHandler) Update(c *gin.Context) {
	principalID := c.MustGet("userID").(uuid.UUID)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.reporter.Fail(c, artist.ErrArtistNotFound)
		return
	}

	var req model.UpdateArtistRequest
	if err := c.BindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		h.reporter.Fail(c, err)
		return
	}

	detail, err := h.service.Update(c.Request.Context(), id, &req, principalID)
	if err != nil {
		h.reporter.Fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, detail)
}

func parseIntQuery(c *gin.Context, name string, fallback int) int {
	if raw := c.Query(name); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return fallback
}
