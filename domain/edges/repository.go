package edges

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/uptrace/bun"

	"github.com/chonost/manuscript-os/internal/config"
	"github.com/chonost/manuscript-os/internal/database"
	"github.com/chonost/manuscript-os/pkg/apperror"
	"github.com/chonost/manuscript-os/pkg/logger"
	"github.com/chonost/manuscript-os/pkg/pgutils"
)

// Repository handles database operations for edges.
type Repository struct {
	db      bun.IDB
	log     *slog.Logger
	timeout time.Duration
}

// NewRepository creates a new edge repository.
func NewRepository(db bun.IDB, cfg *config.Config, log *slog.Logger) *Repository {
	return &Repository{
		db:      db,
		log:     log.With(logger.Scope("edges.repo")),
		timeout: cfg.Database.QueryTimeout,
	}
}

func (r *Repository) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *Repository) wrapErr(err error, op string) *apperror.Error {
	if pgutils.IsUnavailable(err) {
		r.log.Warn("store unavailable", slog.String("op", op), logger.Error(err))
		return apperror.ErrStoreUnavailable.WithInternal(err)
	}
	r.log.Error("store failure", slog.String("op", op), logger.Error(err))
	return apperror.ErrDatabase.WithInternal(err)
}

// List returns edges matching the filters, ordered by creation time.
func (r *Repository) List(ctx context.Context, params ListParams) ([]Edge, error) {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	es := make([]Edge, 0)

	query := r.db.NewSelect().
		Model(&es).
		Order("e.created_at ASC", "e.id ASC").
		Limit(params.Limit).
		Offset(params.Offset)

	if params.SourceID != "" {
		query = query.Where("e.source_id = ?", params.SourceID)
	}
	if params.TargetID != "" {
		query = query.Where("e.target_id = ?", params.TargetID)
	}
	if params.Type != "" {
		query = query.Where("e.type = ?", params.Type)
	}

	if err := query.Scan(ctx); err != nil {
		return nil, r.wrapErr(err, "list")
	}

	return es, nil
}

// GetByID returns an edge by ID, or nil when absent.
func (r *Repository) GetByID(ctx context.Context, id string) (*Edge, error) {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	var e Edge
	err := r.db.NewSelect().
		Model(&e).
		Where("e.id = ?", id).
		Scan(ctx)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, r.wrapErr(err, "get")
	}

	return &e, nil
}

// Insert persists a new edge inside a transaction. Both endpoints are
// verified first so a dangling reference fails as a malformed request
// rather than a raw constraint error.
func (r *Repository) Insert(ctx context.Context, e *Edge) error {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	tx, err := database.BeginSafeTx(ctx, r.db)
	if err != nil {
		return r.wrapErr(err, "insert.begin")
	}
	defer tx.Rollback()

	for _, endpoint := range []struct{ name, id string }{
		{"source_id", e.SourceID},
		{"target_id", e.TargetID},
	} {
		exists, err := tx.NewSelect().
			Table("nodes").
			Where("id = ?", endpoint.id).
			Exists(ctx)
		if err != nil {
			return r.wrapErr(err, "insert.check_node")
		}
		if !exists {
			return apperror.NewBadRequest(endpoint.name + " references a non-existent node")
		}
	}

	if _, err := tx.NewInsert().Model(e).Returning("*").Exec(ctx); err != nil {
		// A node may vanish between the check and the insert.
		if pgutils.IsForeignKeyViolation(err) {
			return apperror.NewBadRequest("edge references a non-existent node").WithInternal(err)
		}
		if pgutils.IsCheckViolation(err) || pgutils.IsNotNullViolation(err) || pgutils.IsDataException(err) {
			return apperror.NewBadRequest("edge violates a schema constraint").WithInternal(err)
		}
		return r.wrapErr(err, "insert")
	}

	if err := tx.Commit(); err != nil {
		return r.wrapErr(err, "insert.commit")
	}

	return nil
}

// Update persists every column of the given edge.
func (r *Repository) Update(ctx context.Context, e *Edge) error {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	_, err := r.db.NewUpdate().
		Model(e).
		WherePK().
		Returning("*").
		Exec(ctx)

	if err != nil {
		if pgutils.IsCheckViolation(err) || pgutils.IsNotNullViolation(err) || pgutils.IsDataException(err) {
			return apperror.NewBadRequest("edge violates a schema constraint").WithInternal(err)
		}
		return r.wrapErr(err, "update")
	}

	return nil
}

// Delete removes an edge.
func (r *Repository) Delete(ctx context.Context, id string) (bool, error) {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	result, err := r.db.NewDelete().
		Model((*Edge)(nil)).
		Where("id = ?", id).
		Exec(ctx)

	if err != nil {
		return false, r.wrapErr(err, "delete")
	}

	rowsAffected, _ := result.RowsAffected()
	return rowsAffected > 0, nil
}
