package edges

import (
	"context"
	"log/slog"
	"reflect"
	"time"

	"github.com/google/uuid"

	"github.com/chonost/manuscript-os/pkg/apperror"
	"github.com/chonost/manuscript-os/pkg/logger"
)

// Service implements edge business logic.
type Service struct {
	repo *Repository
	log  *slog.Logger
}

// NewService creates a new edge service.
func NewService(repo *Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With(logger.Scope("edges.service")),
	}
}

// List returns a page of edges matching the filters.
func (s *Service) List(ctx context.Context, params ListParams) ([]Edge, error) {
	if params.Type != "" {
		if _, err := ParseEdgeType(params.Type); err != nil {
			return nil, apperror.NewBadRequest(err.Error())
		}
	}
	if params.Limit == 0 {
		return []Edge{}, nil
	}
	return s.repo.List(ctx, params)
}

// Get returns a single edge by ID.
func (s *Service) Get(ctx context.Context, id string) (*Edge, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, apperror.NewNotFound("Edge")
	}
	return e, nil
}

// Create validates and persists a new edge. Strength defaults to 1.0 and
// explicitness to true when the client omits them.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Edge, error) {
	edgeType, appErr := req.Validate()
	if appErr != nil {
		return nil, appErr
	}

	e := &Edge{
		ID:         uuid.NewString(),
		SourceID:   req.SourceID,
		TargetID:   req.TargetID,
		Type:       edgeType,
		Label:      req.Label,
		Strength:   1.0,
		IsExplicit: true,
		Manifest:   req.Manifest,
	}
	if req.Strength != nil {
		e.Strength = *req.Strength
	}
	if req.IsExplicit != nil {
		e.IsExplicit = *req.IsExplicit
	}

	if err := s.repo.Insert(ctx, e); err != nil {
		return nil, err
	}

	s.log.Info("edge created",
		slog.String("id", e.ID),
		slog.String("type", string(e.Type)),
		slog.String("source_id", e.SourceID),
		slog.String("target_id", e.TargetID),
	)
	return e, nil
}

// Update applies a partial update to the mutable attributes. Endpoints,
// type and explicitness never change after creation.
func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (*Edge, error) {
	if appErr := req.Validate(); appErr != nil {
		return nil, appErr
	}

	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, apperror.NewNotFound("Edge")
	}

	changed := false

	if req.Label != nil && !equalStrPtr(req.Label, e.Label) {
		e.Label = req.Label
		changed = true
	}
	if req.Strength != nil && *req.Strength != e.Strength {
		e.Strength = *req.Strength
		changed = true
	}
	if req.Manifest != nil && !reflect.DeepEqual(req.Manifest, e.Manifest) {
		e.Manifest = req.Manifest
		changed = true
	}

	if !changed {
		return e, nil
	}

	now := time.Now().UTC()
	e.UpdatedAt = &now

	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}

	s.log.Info("edge updated", slog.String("id", e.ID))
	return e, nil
}

// Delete removes an edge.
func (s *Service) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.NewNotFound("Edge")
	}

	s.log.Info("edge deleted", slog.String("id", id))
	return nil
}

func equalStrPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
