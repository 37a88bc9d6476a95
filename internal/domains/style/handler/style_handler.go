package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"djbooking-backend/internal/domains/style/service"
	"djbooking-backend/internal/shared/response"
)

type StyleHandler struct {
	service  service.ServiceInterface
	reporter *response.Reporter
}

func NewStyleHandler(svc service.ServiceInterface, reporter *response.Reporter) *StyleHandler {
	return &StyleHandler{
		service:  svc,
		reporter: reporter,
	}
}

// List - GET /styles
func (h *StyleHandler) List(c *gin.Context) {
	styles, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.reporter.Fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"data": styles})
}
