package nodes

import (
	"context"
	"log/slog"
	"reflect"
	"time"

	"github.com/google/uuid"

	"github.com/chonost/manuscript-os/pkg/apperror"
	"github.com/chonost/manuscript-os/pkg/logger"
)

// Service implements node business logic.
type Service struct {
	repo *Repository
	log  *slog.Logger
}

// NewService creates a new node service.
func NewService(repo *Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With(logger.Scope("nodes.service")),
	}
}

// List returns a page of nodes matching the filters.
func (s *Service) List(ctx context.Context, params ListParams) ([]Node, error) {
	if params.Type != "" {
		if _, err := ParseNodeType(params.Type); err != nil {
			return nil, apperror.NewBadRequest(err.Error())
		}
	}
	if params.Limit == 0 {
		return []Node{}, nil
	}
	return s.repo.List(ctx, params)
}

// Get returns a single node by ID.
func (s *Service) Get(ctx context.Context, id string) (*Node, error) {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, apperror.NewNotFound("Node")
	}
	return n, nil
}

// Create validates and persists a new node.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Node, error) {
	nodeType, appErr := req.Validate()
	if appErr != nil {
		return nil, appErr
	}

	n := &Node{
		ID:           uuid.NewString(),
		Title:        req.Title,
		Content:      req.Content,
		Type:         nodeType,
		Manifest:     req.Manifest,
		ManuscriptID: req.ManuscriptID,
	}

	if err := s.repo.Insert(ctx, n); err != nil {
		return nil, err
	}

	s.log.Info("node created", slog.String("id", n.ID), slog.String("type", string(n.Type)))
	return n, nil
}

// Update applies a partial update to the mutable attributes. The node's
// type and manuscript binding never change after creation.
func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (*Node, error) {
	if appErr := req.Validate(); appErr != nil {
		return nil, appErr
	}

	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, apperror.NewNotFound("Node")
	}

	changed := false

	if req.Title != nil && *req.Title != n.Title {
		n.Title = *req.Title
		changed = true
	}
	if req.Content != nil && !equalStrPtr(req.Content, n.Content) {
		n.Content = req.Content
		changed = true
	}
	if req.Manifest != nil && !reflect.DeepEqual(req.Manifest, n.Manifest) {
		n.Manifest = req.Manifest
		changed = true
	}

	if !changed {
		return n, nil
	}

	now := time.Now().UTC()
	n.UpdatedAt = &now

	if err := s.repo.Update(ctx, n); err != nil {
		return nil, err
	}

	s.log.Info("node updated", slog.String("id", n.ID))
	return n, nil
}

// Delete removes a node and every edge attached to it.
func (s *Service) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.NewNotFound("Node")
	}

	s.log.Info("node deleted", slog.String("id", id))
	return nil
}

func equalStrPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
