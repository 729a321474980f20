package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memorial-park-svc/internal/listview"
	"memorial-park-svc/internal/models"
	"memorial-park-svc/pkg/logger"
)

type memPreferenceRepo struct {
	sizes map[string]int
}

func (r *memPreferenceRepo) Get(actor, pageType string) (*models.ListPreference, error) {
	size, ok := r.sizes[actor+"/"+pageType]
	if !ok {
		return nil, nil
	}
	return &models.ListPreference{Actor: actor, PageType: pageType, PageSize: size}, nil
}

func (r *memPreferenceRepo) Upsert(actor, pageType string, pageSize int) error {
	r.sizes[actor+"/"+pageType] = pageSize
	return nil
}

func TestPreferenceService(t *testing.T) {
	repo := &memPreferenceRepo{sizes: map[string]int{"staff01/lots": 7}}
	svc := NewPreferenceService(repo, logger.NewNopLogger())

	assert.Equal(t, listview.DefaultPageSize, svc.PageSize("staff01", "accounts"))
	assert.Equal(t, listview.DefaultPageSize, svc.PageSize("staff01", "lots"), "sizes no longer offered fall back")

	require.NoError(t, svc.SetPageSize("staff01", "accounts", 25))
	assert.Equal(t, 25, svc.PageSize("staff01", "accounts"))
	assert.Equal(t, listview.DefaultPageSize, svc.PageSize("staff02", "accounts"))

	assert.ErrorIs(t, svc.SetPageSize("staff01", "accounts", 30), ErrInvalidPageSize)
}
