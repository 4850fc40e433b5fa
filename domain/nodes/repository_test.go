package nodes

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"

	"github.com/chonost/manuscript-os/domain/manuscripts"
	"github.com/chonost/manuscript-os/internal/testutil"
)

func newTestServices(t *testing.T) (*Service, *manuscripts.Service, *bun.DB) {
	t.Helper()
	db := testutil.NewTestDB(t)
	cfg := testutil.NewTestConfig()
	log := slog.New(slog.DiscardHandler)

	nodeSvc := NewService(NewRepository(db, cfg, log), log)
	msSvc := manuscripts.NewService(manuscripts.NewRepository(db, cfg, log), log)
	return nodeSvc, msSvc, db
}

func TestService_CreateWithinManuscript(t *testing.T) {
	svc, msSvc, _ := newTestServices(t)
	ctx := context.Background()

	m, err := msSvc.Create(ctx, manuscripts.CreateRequest{Title: "Novel"})
	require.NoError(t, err)

	n, err := svc.Create(ctx, CreateRequest{
		Title:        "Hero",
		Type:         "character",
		ManuscriptID: &m.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, TypeCharacter, n.Type)
	require.NotNil(t, n.ManuscriptID)
	assert.Equal(t, m.ID, *n.ManuscriptID)
}

func TestService_CreateStandalone(t *testing.T) {
	svc, _, _ := newTestServices(t)

	n, err := svc.Create(context.Background(), CreateRequest{Title: "Loose Note", Type: "note"})
	require.NoError(t, err)
	assert.Nil(t, n.ManuscriptID)
}

func TestService_CreateDanglingManuscriptIsBadRequest(t *testing.T) {
	svc, _, _ := newTestServices(t)

	missing := "does-not-exist"
	_, err := svc.Create(context.Background(), CreateRequest{
		Title:        "Orphan",
		Type:         "character",
		ManuscriptID: &missing,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad_request")
}

func TestService_ListFilters(t *testing.T) {
	svc, msSvc, _ := newTestServices(t)
	ctx := context.Background()

	m, err := msSvc.Create(ctx, manuscripts.CreateRequest{Title: "Novel"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateRequest{Title: "Hero", Type: "character", ManuscriptID: &m.ID})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateRequest{Title: "Castle", Type: "location", ManuscriptID: &m.ID})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateRequest{Title: "Stray", Type: "character"})
	require.NoError(t, err)

	characters, err := svc.List(ctx, ListParams{Type: "character", Limit: 100})
	require.NoError(t, err)
	assert.Len(t, characters, 2)

	inManuscript, err := svc.List(ctx, ListParams{ManuscriptID: m.ID, Limit: 100})
	require.NoError(t, err)
	assert.Len(t, inManuscript, 2)

	both, err := svc.List(ctx, ListParams{Type: "character", ManuscriptID: m.ID, Limit: 100})
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, "Hero", both[0].Title)

	_, err = svc.List(ctx, ListParams{Type: "Character", Limit: 100})
	require.Error(t, err)
}

func TestService_ManuscriptDeleteCascades(t *testing.T) {
	svc, msSvc, _ := newTestServices(t)
	ctx := context.Background()

	m, err := msSvc.Create(ctx, manuscripts.CreateRequest{Title: "Novel"})
	require.NoError(t, err)

	n, err := svc.Create(ctx, CreateRequest{Title: "Hero", Type: "character", ManuscriptID: &m.ID})
	require.NoError(t, err)

	require.NoError(t, msSvc.Delete(ctx, m.ID))

	_, err = svc.Get(ctx, n.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestService_UpdateMutableFieldsOnly(t *testing.T) {
	svc, _, _ := newTestServices(t)
	ctx := context.Background()

	n, err := svc.Create(ctx, CreateRequest{Title: "Hero", Type: "character"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, n.ID, UpdateRequest{
		Title:    strPtr("Protagonist"),
		Manifest: map[string]any{"age": "30"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Protagonist", updated.Title)
	assert.Equal(t, TypeCharacter, updated.Type)
	require.NotNil(t, updated.UpdatedAt)
}
