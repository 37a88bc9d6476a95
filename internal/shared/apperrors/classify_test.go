package apperrors

import (
	"errors"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_NilError(t *testing.T) {
	assert.Nil(t, Classify(nil))
}

func TestClassify_AppErrorPassesThrough(t *testing.T) {
	original := NewConflict("display name already exists")

	classified := Classify(original)

	assert.Same(t, original, classified)
}

func TestClassify_WrappedAppErrorUnwraps(t *testing.T) {
	original := NewNotFound("artist not found")
	wrapped := errors.Join(errors.New("context"), original)

	classified := Classify(wrapped)

	assert.Equal(t, KindNotFound, classified.Kind)
	assert.Equal(t, "artist not found", classified.Message)
}

func TestClassify_ValidationErrors(t *testing.T) {
	vErrs := validation.Errors{
		"display_name": errors.New("display name is required"),
		"biography":    errors.New("biography is required"),
	}

	classified := Classify(vErrs)

	require.Equal(t, KindValidation, classified.Kind)
	assert.Equal(t, 400, classified.Status)

	violations, ok := classified.Details.([]FieldViolation)
	require.True(t, ok)
	require.Len(t, violations, 2)

	// Violations come out sorted by field path.
	assert.Equal(t, "biography", violations[0].Field)
	assert.Equal(t, "display_name", violations[1].Field)
}

func TestClassify_NestedValidationErrorsKeepDottedPaths(t *testing.T) {
	vErrs := validation.Errors{
		"music_style_ids": validation.Errors{
			"0": errors.New("must be a valid music style ID"),
		},
	}

	classified := Classify(vErrs)

	violations, ok := classified.Details.([]FieldViolation)
	require.True(t, ok)
	require.Len(t, violations, 1)
	assert.Equal(t, "music_style_ids.0", violations[0].Field)
}

func TestClassify_MessageVocabulary(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantKind   Kind
		wantStatus int
	}{
		{"not found", errors.New("event not found"), KindNotFound, 404},
		{"conflict", errors.New("email already exists"), KindConflict, 409},
		{"ownership", errors.New("cannot modify other user's events"), KindAuthorization, 403},
		{"frozen event", errors.New("cannot modify past events"), KindBusinessLogic, 400},
		{"bad style ids", errors.New("invalid music style IDs: [abc]"), KindValidation, 400},
		{"bad event id", errors.New("invalid event ID format"), KindValidation, 400},
		{"date window", errors.New("event date must be today or in the future"), KindValidation, 400},
		{"credentials", errors.New("invalid credentials"), KindAuthentication, 401},
		{"missing header", errors.New("missing authorization header"), KindAuthentication, 401},
		{"db refused", errors.New("dial tcp: connection refused"), KindDatabase, 500},
		{"unknown", errors.New("something odd happened"), KindInternal, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classified := Classify(tt.err)

			assert.Equal(t, tt.wantKind, classified.Kind)
			assert.Equal(t, tt.wantStatus, classified.Status)
		})
	}
}

func TestClassify_InternalKeepsCause(t *testing.T) {
	cause := errors.New("something odd happened")

	classified := Classify(cause)

	// External message stays generic; the cause survives for logging.
	assert.Equal(t, "internal server error", classified.Message)
	assert.Equal(t, cause, classified.Err)
}

func TestStatusFor_UnknownKindFallsThrough(t *testing.T) {
	assert.Equal(t, 500, StatusFor(Kind("SOMETHING_ELSE")))
	assert.Equal(t, 500, StatusFor(KindExternal))
}
