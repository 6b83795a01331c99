package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"socialnetwork-backend/internal/domains/person/model"
)

// postgresRepository implements PersonRepository.
// Uses pgxpool for PostgreSQL connection management.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new person repository instance.
// Dependency injection pattern - receives pool from container.
func NewPostgresRepository(pool *pgxpool.Pool) PersonRepository {
	return &postgresRepository{pool: pool}
}

const personColumns = `id, name, type, status, notes, location, met_since, connections`

func scanPerson(row pgx.Row) (*model.Person, error) {
	var p model.Person
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Type,
		&p.Status,
		&p.Notes,
		&p.Location,
		&p.MetSince,
		&p.Connections,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List retrieves all people ordered by insertion.
func (r *postgresRepository) List(ctx context.Context) ([]model.Person, error) {
	query := `
    SELECT ` + personColumns + `
    FROM people
    ORDER BY id
  `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}
	defer rows.Close()

	people := make([]model.Person, 0)
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan person row: %w", err)
		}
		people = append(people, *p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating person rows: %w", err)
	}

	return people, nil
}

// GetByID retrieves a person by id. Returns (nil, nil) when absent.
func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Person, error) {
	query := `
    SELECT ` + personColumns + `
    FROM people
    WHERE id = $1
  `

	p, err := scanPerson(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get person by id: %w", err)
	}

	return p, nil
}

// Create inserts a new person record and returns it with the assigned id.
func (r *postgresRepository) Create(ctx context.Context, p *model.Person) (*model.Person, error) {
	query := `
    INSERT INTO people (name, type, status, notes, location, met_since, connections)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING ` + personColumns + `
  `

	created, err := scanPerson(r.pool.QueryRow(ctx, query,
		p.Name, p.Type, p.Status, p.Notes, p.Location, p.MetSince, p.Connections,
	))
	if err != nil {
		return nil, model.NewCreatePersonError(err)
	}

	return created, nil
}

// Update replaces all mutable fields. Returns (nil, nil) when absent.
// id and met_since are immutable and never touched.
func (r *postgresRepository) Update(ctx context.Context, id int64, p *model.Person) (*model.Person, error) {
	query := `
    UPDATE people
    SET name = $1, type = $2, status = $3, notes = $4, location = $5, connections = $6
    WHERE id = $7
    RETURNING ` + personColumns + `
  `

	updated, err := scanPerson(r.pool.QueryRow(ctx, query,
		p.Name, p.Type, p.Status, p.Notes, p.Location, p.Connections, id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, model.NewUpdatePersonError(err)
	}

	return updated, nil
}

// UpdateStatus changes only the status column. Returns (nil, nil) when absent.
func (r *postgresRepository) UpdateStatus(ctx context.Context, id int64, status string) (*model.Person, error) {
	query := `
    UPDATE people
    SET status = $1
    WHERE id = $2
    RETURNING ` + personColumns + `
  `

	updated, err := scanPerson(r.pool.QueryRow(ctx, query, status, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, model.NewUpdatePersonError(err)
	}

	return updated, nil
}

// Delete hard-deletes the person (no tombstone).
func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM people WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return model.NewDeletePersonError(err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrPersonNotFound
	}

	return nil
}

// Stats returns the total plus one filtered count per status value.
// Each count is computed independently: the schema restricts status to the
// three known tiers today, but the counts are filters, not a partition.
func (r *postgresRepository) Stats(ctx context.Context) (*model.StatsResponse, error) {
	query := `
    SELECT
      COUNT(*) AS total,
      COUNT(*) FILTER (WHERE status = $1) AS best_friend,
      COUNT(*) FILTER (WHERE status = $2) AS friend,
      COUNT(*) FILTER (WHERE status = $3) AS acquaintance
    FROM people
  `

	var stats model.StatsResponse
	err := r.pool.QueryRow(ctx, query,
		model.StatusBestFriend, model.StatusFriend, model.StatusAcquaintance,
	).Scan(&stats.Total, &stats.BestFriend, &stats.Friend, &stats.Acquaintance)
	if err != nil {
		return nil, model.NewPeopleStatsError(err)
	}

	return &stats, nil
}
