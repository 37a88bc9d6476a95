package service

import (
	"context"
	"runtime/debug"

	"djbooking-backend/internal/domains/errorlog/model"
	"djbooking-backend/internal/domains/errorlog/repository"
	"djbooking-backend/internal/shared/apperrors"
	"djbooking-backend/internal/shared/response"
	"djbooking-backend/pkg/logger"
)

const maxMessageLength = 2000

// errorLogService persists one record per classified failure. A failed
// log write must never throw past this boundary; it falls back to the
// structured logger and the original error still reaches the caller.
type errorLogService struct {
	repo repository.RepositoryInterface
}

func NewErrorLogService(repo repository.RepositoryInterface) response.Recorder {
	return &errorLogService{repo: repo}
}

func (s *errorLogService) Record(ctx context.Context, appErr *apperrors.AppError, info response.RequestInfo) {
	// Internal detail (wrapped cause included) goes to the log record;
	// the caller only ever sees appErr.Message.
	message := truncate(appErr.Error(), maxMessageLength)
	if info.Body != "" {
		message = message + " | body: " + truncate(info.Body, maxMessageLength)
	}

	record := &model.ErrorLog{
		Message:   message,
		ErrorKind: string(appErr.Kind),
		UserID:    info.UserID,
	}
	if info.URL != "" {
		record.RequestURL = &info.URL
	}
	if info.Method != "" {
		record.HTTPMethod = &info.Method
	}
	if info.UserAgent != "" {
		record.UserAgent = &info.UserAgent
	}

	// Only unexpected failures carry a trace; expected domain failures
	// would just bloat the table.
	if appErr.Kind == apperrors.KindInternal || appErr.Kind == apperrors.KindDatabase {
		stack := string(debug.Stack())
		record.StackTrace = &stack
	}

	if err := s.repo.Insert(ctx, record); err != nil {
		logger.Error("failed to persist error log, falling back to stderr", err)
		logger.Warn("unpersisted error record", map[string]interface{}{
			"kind":    record.ErrorKind,
			"message": record.Message,
			"url":     info.URL,
			"method":  info.Method,
		})
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
