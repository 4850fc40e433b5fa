package edges

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chonost/manuscript-os/domain/nodes"
	"github.com/chonost/manuscript-os/internal/testutil"
)

func newTestServices(t *testing.T) (*Service, *nodes.Service) {
	t.Helper()
	db := testutil.NewTestDB(t)
	cfg := testutil.NewTestConfig()
	log := slog.New(slog.DiscardHandler)

	edgeSvc := NewService(NewRepository(db, cfg, log), log)
	nodeSvc := nodes.NewService(nodes.NewRepository(db, cfg, log), log)
	return edgeSvc, nodeSvc
}

func createNode(t *testing.T, svc *nodes.Service, title string) string {
	t.Helper()
	n, err := svc.Create(context.Background(), nodes.CreateRequest{Title: title, Type: "character"})
	require.NoError(t, err)
	return n.ID
}

func TestService_CreateDefaults(t *testing.T) {
	svc, nodeSvc := newTestServices(t)
	ctx := context.Background()

	hero := createNode(t, nodeSvc, "Hero")
	villain := createNode(t, nodeSvc, "Villain")

	e, err := svc.Create(ctx, CreateRequest{SourceID: hero, TargetID: villain, Type: "conflicts_with"})
	require.NoError(t, err)
	assert.Equal(t, 1.0, e.Strength)
	assert.True(t, e.IsExplicit)
	assert.Equal(t, TypeConflictsWith, e.Type)
}

func TestService_CreateWithStrengthAndExplicitness(t *testing.T) {
	svc, nodeSvc := newTestServices(t)
	ctx := context.Background()

	hero := createNode(t, nodeSvc, "Hero")
	mentor := createNode(t, nodeSvc, "Mentor")

	strength := 0.8
	explicit := false
	e, err := svc.Create(ctx, CreateRequest{
		SourceID:   mentor,
		TargetID:   hero,
		Type:       "supports",
		Strength:   &strength,
		IsExplicit: &explicit,
	})
	require.NoError(t, err)
	assert.Equal(t, 0.8, e.Strength)
	assert.False(t, e.IsExplicit)
}

func TestService_CreateDanglingEndpointIsBadRequest(t *testing.T) {
	svc, nodeSvc := newTestServices(t)
	ctx := context.Background()

	hero := createNode(t, nodeSvc, "Hero")

	_, err := svc.Create(ctx, CreateRequest{SourceID: hero, TargetID: "missing", Type: "related_to"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "target_id")

	_, err = svc.Create(ctx, CreateRequest{SourceID: "missing", TargetID: hero, Type: "related_to"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "source_id")
}

func TestService_SelfAndParallelEdges(t *testing.T) {
	svc, nodeSvc := newTestServices(t)
	ctx := context.Background()

	hero := createNode(t, nodeSvc, "Hero")
	villain := createNode(t, nodeSvc, "Villain")

	_, err := svc.Create(ctx, CreateRequest{SourceID: hero, TargetID: hero, Type: "conflicts_with"})
	require.NoError(t, err)

	first, err := svc.Create(ctx, CreateRequest{SourceID: hero, TargetID: villain, Type: "related_to"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, CreateRequest{SourceID: hero, TargetID: villain, Type: "related_to"})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestService_ListFilters(t *testing.T) {
	svc, nodeSvc := newTestServices(t)
	ctx := context.Background()

	hero := createNode(t, nodeSvc, "Hero")
	villain := createNode(t, nodeSvc, "Villain")
	castle := createNode(t, nodeSvc, "Castle")

	_, err := svc.Create(ctx, CreateRequest{SourceID: hero, TargetID: villain, Type: "conflicts_with"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateRequest{SourceID: castle, TargetID: hero, Type: "location_of"})
	require.NoError(t, err)

	fromHero, err := svc.List(ctx, ListParams{SourceID: hero, Limit: 100})
	require.NoError(t, err)
	assert.Len(t, fromHero, 1)

	conflicts, err := svc.List(ctx, ListParams{Type: "conflicts_with", Limit: 100})
	require.NoError(t, err)
	assert.Len(t, conflicts, 1)

	toHero, err := svc.List(ctx, ListParams{TargetID: hero, Limit: 100})
	require.NoError(t, err)
	assert.Len(t, toHero, 1)

	_, err = svc.List(ctx, ListParams{Type: "bogus", Limit: 100})
	require.Error(t, err)
}

func TestService_NodeDeleteCascadesToEdges(t *testing.T) {
	svc, nodeSvc := newTestServices(t)
	ctx := context.Background()

	hero := createNode(t, nodeSvc, "Hero")
	villain := createNode(t, nodeSvc, "Villain")

	asSource, err := svc.Create(ctx, CreateRequest{SourceID: hero, TargetID: villain, Type: "conflicts_with"})
	require.NoError(t, err)
	asTarget, err := svc.Create(ctx, CreateRequest{SourceID: villain, TargetID: hero, Type: "related_to"})
	require.NoError(t, err)

	require.NoError(t, nodeSvc.Delete(ctx, hero))

	_, err = svc.Get(ctx, asSource.ID)
	require.Error(t, err)
	_, err = svc.Get(ctx, asTarget.ID)
	require.Error(t, err)
}

func TestService_UpdateMutableFieldsOnly(t *testing.T) {
	svc, nodeSvc := newTestServices(t)
	ctx := context.Background()

	hero := createNode(t, nodeSvc, "Hero")
	villain := createNode(t, nodeSvc, "Villain")

	e, err := svc.Create(ctx, CreateRequest{SourceID: hero, TargetID: villain, Type: "conflicts_with"})
	require.NoError(t, err)

	strength := 0.3
	updated, err := svc.Update(ctx, e.ID, UpdateRequest{
		Label:    strPtr("ancient rivalry"),
		Strength: &strength,
	})
	require.NoError(t, err)
	assert.Equal(t, 0.3, updated.Strength)
	require.NotNil(t, updated.Label)
	assert.Equal(t, "ancient rivalry", *updated.Label)
	assert.Equal(t, TypeConflictsWith, updated.Type)
	require.NotNil(t, updated.UpdatedAt)
}
