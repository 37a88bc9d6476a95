package artist

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrArtistNotFound    = errors.New("artist not found")
	ErrDisplayNameExists = errors.New("display name already exists")
	ErrProfileExists     = errors.New("user profile already exists")
)

// InvalidStyleIDsError lists the style ids that don't refer to real
// reference data, so the caller can fix the exact entries.
type InvalidStyleIDsError struct {
	IDs []uuid.UUID
}

func (e *InvalidStyleIDsError) Error() string {
	strs := make([]string, len(e.IDs))
	for i, id := range e.IDs {
		strs[i] = id.String()
	}
	return fmt.Sprintf("invalid music style IDs: [%s]", strings.Join(strs, ", "))
}
