package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"djbooking-backend/internal/domains/user/model"
	"djbooking-backend/internal/domains/user/service"
	"djbooking-backend/internal/shared/response"
)

type UserHandler struct {
	service  service.ServiceInterface
	reporter *response.Reporter
}

func NewUserHandler(svc service.ServiceInterface, reporter *response.Reporter) *UserHandler {
	return &UserHandler{
		service:  svc,
		reporter: reporter,
	}
}

// ════════════════════════════════════════════════════════════════
// AUTH: POST /auth/register
// ════════════════════════════════════════════════════════════════

func (h *UserHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.BindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		h.reporter.Fail(c, err)
		return
	}

	auth, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		h.reporter.Fail(c, err)
		return
	}

	response.Success(c, http.StatusCreated, auth)
}

// ════════════════════════════════════════════════════════════════
// AUTH: POST /auth/login
// ════════════════════════════════════════════════════════════════

func (h *UserHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.BindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		h.reporter.Fail(c, err)
		return
	}

	auth, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		h.reporter.Fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, auth)
}

// ════════════════════════════════════════════════════════════════
// AUTH: POST /auth/refresh
// ════════════════════════════════════════════════════════════════

func (h *UserHandler) Refresh(c *gin.Context) {
	var req model.RefreshTokenRequest
	if err := c.BindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		h.reporter.Fail(c, err)
		return
	}

	tokens, err := h.service.Refresh(c.Request.Context(), &req)
	if err != nil {
		h.reporter.Fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, tokens)
}
