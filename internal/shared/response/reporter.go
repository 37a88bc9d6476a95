package response

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"djbooking-backend/internal/shared/apperrors"
)

// RequestInfo captures the request context recorded with a failure.
// Authorization header values and other secrets never go in here.
type RequestInfo struct {
	URL       string
	Method    string
	UserAgent string
	UserID    *uuid.UUID
	Body      string
}

// Recorder persists one classified failure record. Implementations must
// never let a failed write escape.
type Recorder interface {
	Record(ctx context.Context, appErr *apperrors.AppError, info RequestInfo)
}

// Reporter classifies service errors, records them, and writes the
// external envelope. Every handler failure path funnels through here.
type Reporter struct {
	recorder Recorder
}

func NewReporter(recorder Recorder) *Reporter {
	return &Reporter{recorder: recorder}
}

// Fail classifies err, records it with request context, and emits the
// externally-safe error envelope.
func (r *Reporter) Fail(c *gin.Context, err error) {
	appErr := apperrors.Classify(err)

	info := RequestInfo{
		URL:       c.Request.URL.String(),
		Method:    c.Request.Method,
		UserAgent: c.Request.UserAgent(),
		Body:      c.GetString("request_body"),
	}
	if id, ok := c.Get("userID"); ok {
		if uid, ok := id.(uuid.UUID); ok {
			info.UserID = &uid
		}
	}

	if r.recorder != nil {
		r.recorder.Record(c.Request.Context(), appErr, info)
	}

	if appErr.Details != nil {
		ErrorWithDetails(c, appErr.Status, appErr.Code, appErr.Message, appErr.Details)
		return
	}
	Error(c, appErr.Status, appErr.Code, appErr.Message)
}
