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

type PersonRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Person, error)
	// IsDiscountEligible reports whether the person qualifies for the
	// reduced ticket price on the direct sale path.
	IsDiscountEligible(ctx context.Context, id uuid.UUID) (bool, error)
}

type personRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPersonRepository(db database.PgxIface, log *zap.Logger) PersonRepository {
	return &personRepository{
		db:  db,
		log: log.With(zap.String("repository", "person")),
	}
}

func (r *personRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Person, error) {
	query := `
		SELECT id, first_name, last_name, is_client, is_discount_holder, created_at, updated_at
		FROM persons
		WHERE id = $1
	`

	var person entity.Person
	err := r.db.QueryRow(ctx, query, id).Scan(
		&person.ID,
		&person.FirstName,
		&person.LastName,
		&person.IsClient,
		&person.IsDiscountHolder,
		&person.CreatedAt,
		&person.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find person by ID",
			zap.Error(err),
			zap.String("person_id", id.String()),
		)
		return nil, fmt.Errorf("find person by ID %s: %w", id.String(), err)
	}

	return &person, nil
}

func (r *personRepository) IsDiscountEligible(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `SELECT is_discount_holder FROM persons WHERE id = $1`

	var eligible bool
	err := r.db.QueryRow(ctx, query, id).Scan(&eligible)

	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		r.log.Error("Failed to check discount eligibility",
			zap.Error(err),
			zap.String("person_id", id.String()),
		)
		return false, fmt.Errorf("check discount eligibility for %s: %w", id.String(), err)
	}

	return eligible, nil
}
