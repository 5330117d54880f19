package repository

import (
	"context"
	"fmt"

	"cinema-checkout/internal/data/entity"
	"cinema-checkout/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type SnackRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Snack, error)
	FindAll(ctx context.Context) ([]*entity.Snack, error)
}

type snackRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSnackRepository(db database.PgxIface, log *zap.Logger) SnackRepository {
	return &snackRepository{
		db:  db,
		log: log.With(zap.String("repository", "snack")),
	}
}

func (r *snackRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Snack, error) {
	query := `
		SELECT id, name, description, price, created_at, updated_at
		FROM snacks
		WHERE id = $1
	`

	var snack entity.Snack
	err := r.db.QueryRow(ctx, query, id).Scan(
		&snack.ID,
		&snack.Name,
		&snack.Description,
		&snack.Price,
		&snack.CreatedAt,
		&snack.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find snack by ID",
			zap.Error(err),
			zap.String("snack_id", id.String()),
		)
		return nil, fmt.Errorf("find snack by ID %s: %w", id.String(), err)
	}

	return &snack, nil
}

func (r *snackRepository) FindAll(ctx context.Context) ([]*entity.Snack, error) {
	query := `
		SELECT id, name, description, price, created_at, updated_at
		FROM snacks
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find snacks", zap.Error(err))
		return nil, fmt.Errorf("find snacks: %w", err)
	}
	defer rows.Close()

	var snacks []*entity.Snack
	for rows.Next() {
		var snack entity.Snack
		err := rows.Scan(
			&snack.ID,
			&snack.Name,
			&snack.Description,
			&snack.Price,
			&snack.CreatedAt,
			&snack.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan snack row", zap.Error(err))
			return nil, fmt.Errorf("scan snack row: %w", err)
		}
		snacks = append(snacks, &snack)
	}

	return snacks, nil
}
