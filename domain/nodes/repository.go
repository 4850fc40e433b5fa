package nodes

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

// Repository handles database operations for nodes.
type Repository struct {
	db      bun.IDB
	log     *slog.Logger
	timeout time.Duration
}

// NewRepository creates a new node repository.
func NewRepository(db bun.IDB, cfg *config.Config, log *slog.Logger) *Repository {
	return &Repository{
		db:      db,
		log:     log.With(logger.Scope("nodes.repo")),
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

// List returns nodes matching the filters, ordered by creation time.
func (r *Repository) List(ctx context.Context, params ListParams) ([]Node, error) {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	ns := make([]Node, 0)

	query := r.db.NewSelect().
		Model(&ns).
		Order("n.created_at ASC", "n.id ASC").
		Limit(params.Limit).
		Offset(params.Offset)

	if params.Type != "" {
		query = query.Where("n.type = ?", params.Type)
	}
	if params.ManuscriptID != "" {
		query = query.Where("n.manuscript_id = ?", params.ManuscriptID)
	}

	if err := query.Scan(ctx); err != nil {
		return nil, r.wrapErr(err, "list")
	}

	return ns, nil
}

// GetByID returns a node by ID, or nil when absent.
func (r *Repository) GetByID(ctx context.Context, id string) (*Node, error) {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	var n Node
	err := r.db.NewSelect().
		Model(&n).
		Where("n.id = ?", id).
		Scan(ctx)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, r.wrapErr(err, "get")
	}

	return &n, nil
}

// Insert persists a new node inside a transaction. When the node names a
// manuscript, its existence is verified first so a dangling reference fails
// as a malformed request rather than a raw constraint error.
func (r *Repository) Insert(ctx context.Context, n *Node) error {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	tx, err := database.BeginSafeTx(ctx, r.db)
	if err != nil {
		return r.wrapErr(err, "insert.begin")
	}
	defer tx.Rollback()

	if n.ManuscriptID != nil {
		exists, err := tx.NewSelect().
			Table("manuscripts").
			Where("id = ?", *n.ManuscriptID).
			Exists(ctx)
		if err != nil {
			return r.wrapErr(err, "insert.check_manuscript")
		}
		if !exists {
			return apperror.NewBadRequest("manuscript_id references a non-existent manuscript")
		}
	}

	if _, err := tx.NewInsert().Model(n).Returning("*").Exec(ctx); err != nil {
		// The manuscript may vanish between the check and the insert.
		if pgutils.IsForeignKeyViolation(err) {
			return apperror.NewBadRequest("manuscript_id references a non-existent manuscript").WithInternal(err)
		}
		if pgutils.IsCheckViolation(err) || pgutils.IsNotNullViolation(err) || pgutils.IsDataException(err) {
			return apperror.NewBadRequest("node violates a schema constraint").WithInternal(err)
		}
		return r.wrapErr(err, "insert")
	}

	if err := tx.Commit(); err != nil {
		return r.wrapErr(err, "insert.commit")
	}

	return nil
}

// Update persists every column of the given node.
func (r *Repository) Update(ctx context.Context, n *Node) error {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	_, err := r.db.NewUpdate().
		Model(n).
		WherePK().
		Returning("*").
		Exec(ctx)

	if err != nil {
		if pgutils.IsCheckViolation(err) || pgutils.IsNotNullViolation(err) || pgutils.IsDataException(err) {
			return apperror.NewBadRequest("node violates a schema constraint").WithInternal(err)
		}
		return r.wrapErr(err, "update")
	}

	return nil
}

// Delete removes a node. The database cascades to edges on either side.
func (r *Repository) Delete(ctx context.Context, id string) (bool, error) {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	result, err := r.db.NewDelete().
		Model((*Node)(nil)).
		Where("id = ?", id).
		Exec(ctx)

	if err != nil {
		return false, r.wrapErr(err, "delete")
	}

	rowsAffected, _ := result.RowsAffected()
	return rowsAffected > 0, nil
}
