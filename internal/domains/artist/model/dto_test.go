package model

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateRequest() CreateArtistRequest {
	return CreateArtistRequest{
		DisplayName: "DJ Shadow",
		Biography:   "Two decades behind the decks.",
		StyleIDs:    []string{uuid.New().String()},
	}
}

func TestCreateArtistRequest_Valid(t *testing.T) {
	req := validCreateRequest()

	req.Normalize()
	assert.NoError(t, req.Validate())
}

func TestCreateArtistRequest_NormalizeTrims(t *testing.T) {
	site := "  https://example.com  "
	req := CreateArtistRequest{
		DisplayName: "  DJ Shadow  ",
		Biography:   "\tbio\n",
		WebsiteURL:  &site,
		StyleIDs:    []string{" " + uuid.New().String() + " "},
	}

	req.Normalize()

	assert.Equal(t, "DJ Shadow", req.DisplayName)
	assert.Equal(t, "bio", req.Biography)
	require.NotNil(t, req.WebsiteURL)
	assert.Equal(t, "https://example.com", *req.WebsiteURL)
	assert.NoError(t, req.Validate())
}

func TestCreateArtistRequest_WhitespaceOnlyOptionalBecomesNil(t *testing.T) {
	blank := "   "
	req := validCreateRequest()
	req.MixcloudURL = &blank

	req.Normalize()

	assert.Nil(t, req.MixcloudURL)
	assert.NoError(t, req.Validate())
}

func TestCreateArtistRequest_WhitespaceOnlyNameRejected(t *testing.T) {
	req := validCreateRequest()
	req.DisplayName = "   "

	req.Normalize()
	assert.Error(t, req.Validate())
}

func TestCreateArtistRequest_NameTooLong(t *testing.T) {
	req := validCreateRequest()
	req.DisplayName = strings.Repeat("x", MaxNameLength+1)

	assert.Error(t, req.Validate())
}

func TestCreateArtistRequest_BiographyAtLimit(t *testing.T) {
	req := validCreateRequest()
	req.Biography = strings.Repeat("x", MaxBioLength)

	assert.NoError(t, req.Validate())

	req.Biography += "x"
	assert.Error(t, req.Validate())
}

func TestCreateArtistRequest_StyleBounds(t *testing.T) {
	req := validCreateRequest()

	req.StyleIDs = nil
	assert.Error(t, req.Validate(), "empty style set")

	ids := make([]string, MaxStyles)
	for i := range ids {
		ids[i] = uuid.New().String()
	}
	req.StyleIDs = ids
	assert.NoError(t, req.Validate(), "fifty styles allowed")

	req.StyleIDs = append(ids, uuid.New().String())
	assert.Error(t, req.Validate(), "fifty-one styles rejected")
}

func TestCreateArtistRequest_DuplicateStylesRejected(t *testing.T) {
	id := uuid.New().String()
	req := validCreateRequest()
	req.StyleIDs = []string{id, id}

	assert.Error(t, req.Validate())
}

func TestCreateArtistRequest_MalformedStyleIDRejected(t *testing.T) {
	req := validCreateRequest()
	req.StyleIDs = []string{"not-a-uuid"}

	assert.Error(t, req.Validate())
}

func TestCreateArtistRequest_InvalidURLRejected(t *testing.T) {
	bad := "not a url"
	req := validCreateRequest()
	req.WebsiteURL = &bad

	assert.Error(t, req.Validate())
}

func TestCreateArtistRequest_ValidateReportsAllViolations(t *testing.T) {
	req := CreateArtistRequest{
		DisplayName: "",
		Biography:   "",
		StyleIDs:    nil,
	}

	err := req.Validate()
	require.Error(t, err)

	// All three violations surface in one pass.
	msg := err.Error()
	assert.Contains(t, msg, "display_name")
	assert.Contains(t, msg, "biography")
	assert.Contains(t, msg, "music_style_ids")
}

func TestUpdateArtistRequest_NilStylesAllowed(t *testing.T) {
	req := UpdateArtistRequest{
		DisplayName: "DJ Shadow",
		Biography:   "bio",
		StyleIDs:    nil,
	}

	assert.NoError(t, req.Validate())
	assert.Nil(t, req.ParsedStyleIDs())
}

func TestUpdateArtistRequest_EmptyStylesRejected(t *testing.T) {
	req := UpdateArtistRequest{
		DisplayName: "DJ Shadow",
		Biography:   "bio",
		StyleIDs:    []string{},
	}

	assert.Error(t, req.Validate())
}

func TestSearchArtistsQuery_DateOrder(t *testing.T) {
	q := SearchArtistsQuery{
		AvailableFrom: "2026-09-10",
		AvailableTo:   "2026-09-01",
	}

	assert.Error(t, q.Validate())

	q.AvailableTo = "2026-09-10"
	assert.NoError(t, q.Validate(), "equal bounds form a one-day window")
}

func TestSearchArtistsQuery_MalformedDateRejected(t *testing.T) {
	q := SearchArtistsQuery{AvailableFrom: "10-09-2026"}

	assert.Error(t, q.Validate())
}

func TestSearchArtistsQuery_ToCriteria(t *testing.T) {
	styleID := uuid.New()
	q := SearchArtistsQuery{
		Search:        "shadow",
		MusicStyles:   []string{styleID.String()},
		Location:      "Berlin",
		AvailableFrom: "2026-09-01",
		AvailableTo:   "2026-09-30",
		Page:          2,
		Limit:         10,
	}

	c := q.ToCriteria()

	assert.Equal(t, "shadow", c.Search)
	assert.Equal(t, []uuid.UUID{styleID}, c.StyleIDs)
	assert.Equal(t, "Berlin", c.Location)
	require.NotNil(t, c.AvailableFrom)
	require.NotNil(t, c.AvailableTo)
	assert.Equal(t, "2026-09-01", c.AvailableFrom.Format(DateLayout))
	assert.Equal(t, "2026-09-30", c.AvailableTo.Format(DateLayout))
	assert.Equal(t, 10, c.Offset())
}

func TestSearchArtistsQuery_NormalizeDropsBlankStyles(t *testing.T) {
	id := uuid.New().String()
	q := SearchArtistsQuery{MusicStyles: []string{fmt.Sprintf("  %s  ", id), "  ", ""}}

	q.Normalize()

	assert.Equal(t, []string{id}, q.MusicStyles)
}
