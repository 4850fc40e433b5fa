package manuscripts

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chonost/manuscript-os/internal/testutil"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	db := testutil.NewTestDB(t)
	log := slog.New(slog.DiscardHandler)
	return NewService(NewRepository(db, testutil.NewTestConfig(), log), log)
}

func TestService_CreateAndGet(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateRequest{
		Title:    "Draft One",
		Content:  strPtr("chapter text"),
		Manifest: map[string]any{"genre": "fantasy"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Nil(t, created.UpdatedAt)
	assert.False(t, created.IsArchived)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Draft One", got.Title)
	assert.Equal(t, map[string]any{"genre": "fantasy"}, got.Manifest)
}

func TestService_CreateOverLengthColumnIsBadRequest(t *testing.T) {
	svc := newTestService(t)

	// file_path exceeds its varchar(1024) column; the store rejects it and
	// the failure must surface as a client error, not a 500.
	longPath := strings.Repeat("p", 2000)
	_, err := svc.Create(context.Background(), CreateRequest{
		Title:    "Draft",
		FilePath: &longPath,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad_request")
}

func TestService_GetMissing(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Get(context.Background(), "no-such-id")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestService_UpdateBumpsTimestampOnlyOnChange(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	m, err := svc.Create(ctx, CreateRequest{Title: "Draft"})
	require.NoError(t, err)

	// Same value: no write, no timestamp.
	same, err := svc.Update(ctx, m.ID, UpdateRequest{Title: strPtr("Draft")})
	require.NoError(t, err)
	assert.Nil(t, same.UpdatedAt)

	renamed, err := svc.Update(ctx, m.ID, UpdateRequest{Title: strPtr("Final")})
	require.NoError(t, err)
	assert.Equal(t, "Final", renamed.Title)
	require.NotNil(t, renamed.UpdatedAt)
}

func TestService_ListFilters(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	alice := strPtr("alice")
	bob := strPtr("bob")

	first, err := svc.Create(ctx, CreateRequest{Title: "First", UserID: alice})
	require.NoError(t, err)
	second, err := svc.Create(ctx, CreateRequest{Title: "Second", UserID: bob})
	require.NoError(t, err)

	archived := true
	_, err = svc.Update(ctx, second.ID, UpdateRequest{IsArchived: &archived})
	require.NoError(t, err)

	// Archived rows are hidden by default.
	visible, err := svc.List(ctx, ListParams{Limit: 100})
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, first.ID, visible[0].ID)

	all, err := svc.List(ctx, ListParams{IncludeArchived: true, Limit: 100})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	bobOnly, err := svc.List(ctx, ListParams{IncludeArchived: true, UserID: "bob", Limit: 100})
	require.NoError(t, err)
	require.Len(t, bobOnly, 1)
	assert.Equal(t, second.ID, bobOnly[0].ID)

	empty, err := svc.List(ctx, ListParams{Limit: 0})
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestService_Delete(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	m, err := svc.Create(ctx, CreateRequest{Title: "Doomed"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, m.ID))

	_, err = svc.Get(ctx, m.ID)
	require.Error(t, err)

	err = svc.Delete(ctx, m.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
