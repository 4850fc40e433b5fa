package manuscripts

import (
	"context"
	"log/slog"
	"reflect"
	"time"

	"github.com/google/uuid"

	"github.com/chonost/manuscript-os/pkg/apperror"
	"github.com/chonost/manuscript-os/pkg/logger"
)

// Service implements manuscript business logic.
type Service struct {
	repo *Repository
	log  *slog.Logger
}

// NewService creates a new manuscript service.
func NewService(repo *Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With(logger.Scope("manuscripts.service")),
	}
}

// List returns a page of manuscripts. A zero limit short-circuits to an
// empty page without touching the store.
func (s *Service) List(ctx context.Context, params ListParams) ([]Manuscript, error) {
	if params.Limit == 0 {
		return []Manuscript{}, nil
	}
	return s.repo.List(ctx, params)
}

// Get returns a single manuscript by ID.
func (s *Service) Get(ctx context.Context, id string) (*Manuscript, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, apperror.NewNotFound("Manuscript")
	}
	return m, nil
}

// Create validates and persists a new manuscript. The ID is generated
// server side; created_at comes from the store.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Manuscript, error) {
	if appErr := req.Validate(); appErr != nil {
		return nil, appErr
	}

	m := &Manuscript{
		ID:       uuid.NewString(),
		Title:    req.Title,
		Content:  req.Content,
		FilePath: req.FilePath,
		FileType: req.FileType,
		FileSize: req.FileSize,
		Manifest: req.Manifest,
		UserID:   req.UserID,
	}

	if err := s.repo.Insert(ctx, m); err != nil {
		return nil, err
	}

	s.log.Info("manuscript created", slog.String("id", m.ID))
	return m, nil
}

// Update applies a partial update. Fields absent from the request are left
// untouched; updated_at is bumped only when a value actually changes.
func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (*Manuscript, error) {
	if appErr := req.Validate(); appErr != nil {
		return nil, appErr
	}

	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, apperror.NewNotFound("Manuscript")
	}

	changed := false

	if req.Title != nil && *req.Title != m.Title {
		m.Title = *req.Title
		changed = true
	}
	if req.Content != nil && !equalStrPtr(req.Content, m.Content) {
		m.Content = req.Content
		changed = true
	}
	if req.FilePath != nil && !equalStrPtr(req.FilePath, m.FilePath) {
		m.FilePath = req.FilePath
		changed = true
	}
	if req.FileType != nil && !equalStrPtr(req.FileType, m.FileType) {
		m.FileType = req.FileType
		changed = true
	}
	if req.FileSize != nil && !equalStrPtr(req.FileSize, m.FileSize) {
		m.FileSize = req.FileSize
		changed = true
	}
	if req.IsArchived != nil && *req.IsArchived != m.IsArchived {
		m.IsArchived = *req.IsArchived
		changed = true
	}
	if req.Manifest != nil && !reflect.DeepEqual(req.Manifest, m.Manifest) {
		m.Manifest = req.Manifest
		changed = true
	}

	if !changed {
		return m, nil
	}

	now := time.Now().UTC()
	m.UpdatedAt = &now

	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}

	s.log.Info("manuscript updated", slog.String("id", m.ID))
	return m, nil
}

// Delete removes a manuscript and everything hanging off it.
func (s *Service) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.NewNotFound("Manuscript")
	}

	s.log.Info("manuscript deleted", slog.String("id", id))
	return nil
}

func equalStrPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
