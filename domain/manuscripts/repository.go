package manuscripts

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/uptrace/bun"

	"github.com/chonost/manuscript-os/internal/config"
	"github.com/chonost/manuscript-os/pkg/apperror"
	"github.com/chonost/manuscript-os/pkg/logger"
	"github.com/chonost/manuscript-os/pkg/pgutils"
)

// Repository handles database operations for manuscripts.
type Repository struct {
	db      bun.IDB
	log     *slog.Logger
	timeout time.Duration
}

// NewRepository creates a new manuscript repository.
func NewRepository(db bun.IDB, cfg *config.Config, log *slog.Logger) *Repository {
	return &Repository{
		db:      db,
		log:     log.With(logger.Scope("manuscripts.repo")),
		timeout: cfg.Database.QueryTimeout,
	}
}

// opCtx bounds a single database round trip.
func (r *Repository) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

// wrapErr maps store failures onto the error taxonomy.
func (r *Repository) wrapErr(err error, op string) *apperror.Error {
	if pgutils.IsUnavailable(err) {
		r.log.Warn("store unavailable", slog.String("op", op), logger.Error(err))
		return apperror.ErrStoreUnavailable.WithInternal(err)
	}
	r.log.Error("store failure", slog.String("op", op), logger.Error(err))
	return apperror.ErrDatabase.WithInternal(err)
}

// List returns manuscripts ordered by creation time (id as tiebreak).
// Archived manuscripts are suppressed unless IncludeArchived is set.
func (r *Repository) List(ctx context.Context, params ListParams) ([]Manuscript, error) {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	ms := make([]Manuscript, 0)

	query := r.db.NewSelect().
		Model(&ms).
		Order("m.created_at ASC", "m.id ASC").
		Limit(params.Limit).
		Offset(params.Offset)

	if !params.IncludeArchived {
		query = query.Where("m.is_archived = false")
	}
	if params.UserID != "" {
		query = query.Where("m.user_id = ?", params.UserID)
	}

	if err := query.Scan(ctx); err != nil {
		return nil, r.wrapErr(err, "list")
	}

	return ms, nil
}

// GetByID returns a manuscript by ID, or nil when absent.
func (r *Repository) GetByID(ctx context.Context, id string) (*Manuscript, error) {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	var m Manuscript
	err := r.db.NewSelect().
		Model(&m).
		Where("m.id = ?", id).
		Scan(ctx)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, r.wrapErr(err, "get")
	}

	return &m, nil
}

// Insert persists a new manuscript and reads back the stored row.
func (r *Repository) Insert(ctx context.Context, m *Manuscript) error {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	_, err := r.db.NewInsert().
		Model(m).
		Returning("*").
		Exec(ctx)

	if err != nil {
		if pgutils.IsCheckViolation(err) || pgutils.IsNotNullViolation(err) || pgutils.IsDataException(err) {
			return apperror.NewBadRequest("manuscript violates a schema constraint").WithInternal(err)
		}
		return r.wrapErr(err, "insert")
	}

	return nil
}

// Update persists every column of the given manuscript.
func (r *Repository) Update(ctx context.Context, m *Manuscript) error {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	_, err := r.db.NewUpdate().
		Model(m).
		WherePK().
		Returning("*").
		Exec(ctx)

	if err != nil {
		if pgutils.IsCheckViolation(err) || pgutils.IsNotNullViolation(err) || pgutils.IsDataException(err) {
			return apperror.NewBadRequest("manuscript violates a schema constraint").WithInternal(err)
		}
		return r.wrapErr(err, "update")
	}

	return nil
}

// Delete removes a manuscript. The database cascades to its nodes and to
// every edge touching those nodes.
func (r *Repository) Delete(ctx context.Context, id string) (bool, error) {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	result, err := r.db.NewDelete().
		Model((*Manuscript)(nil)).
		Where("id = ?", id).
		Exec(ctx)

	if err != nil {
		return false, r.wrapErr(err, "delete")
	}

	rowsAffected, _ := result.RowsAffected()
	return rowsAffected > 0, nil
}
