package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"socialnetwork-backend/internal/domains/person/model"
)

// =====================================================
// SCHEMA & SEED DATA
// =====================================================
// The store is a development convenience, not production persistence:
// Reset drops whatever exists and reloads the fixed seed set on every
// process start.

const createTableQuery = `
  CREATE TABLE people (
    id          BIGSERIAL PRIMARY KEY,
    name        TEXT NOT NULL,
    type        TEXT NOT NULL,
    status      TEXT NOT NULL,
    notes       TEXT NOT NULL,
    location    TEXT,
    met_since   TIMESTAMPTZ NOT NULL,
    connections TEXT NOT NULL DEFAULT '[]'
  )
`

func strPtr(s string) *string { return &s }

// SeedPeople returns the fixed development data set.
// Connections are deliberately directed and occasionally asymmetric
// (person 6 lists no one even though colleagues list person 6's peers);
// no symmetry is inferred anywhere.
func SeedPeople(now time.Time) []model.Person {
	return []model.Person{
		{
			Name: "Alice Johnson", Type: model.TypeColleague, Status: model.StatusBestFriend,
			Notes: "Work", Location: strPtr("Seattle"),
			MetSince: now.AddDate(-3, 0, 0), Connections: "[2,3]",
		},
		{
			Name: "Bob Martinez", Type: model.TypeGroupmate, Status: model.StatusBestFriend,
			Notes: "University", Location: strPtr("Seattle"),
			MetSince: now.AddDate(-5, 0, 0), Connections: "[1,4,5]",
		},
		{
			Name: "Carol Davis", Type: model.TypeColleague, Status: model.StatusFriend,
			Notes: "Work", Location: strPtr("Seattle"),
			MetSince: now.AddDate(-2, 0, 0), Connections: "[1]",
		},
		{
			Name: "David Kim", Type: model.TypeClassmate, Status: model.StatusFriend,
			Notes: "University", Location: strPtr("Portland"),
			MetSince: now.AddDate(-5, 0, 0), Connections: "[2,5]",
		},
		{
			Name: "Emma Wilson", Type: model.TypeFamily, Status: model.StatusBestFriend,
			Notes: "Family", Location: strPtr("Seattle"),
			MetSince: now.AddDate(-10, 0, 0), Connections: "[2,4]",
		},
		{
			Name: "Frank Thomas", Type: model.TypeColleague, Status: model.StatusAcquaintance,
			Notes: "Work", Location: strPtr("Seattle"),
			MetSince: now.AddDate(0, -6, 0), Connections: "[]",
		},
		{
			Name: "Grace Lee", Type: model.TypeGroupmate, Status: model.StatusFriend,
			Notes: "Hobbies", Location: strPtr("Vancouver"),
			MetSince: now.AddDate(-1, 0, 0), Connections: "[8]",
		},
		{
			Name: "Henry Brown", Type: model.TypeClassmate, Status: model.StatusFriend,
			Notes: "Hobbies", Location: strPtr("Vancouver"),
			MetSince: now.AddDate(-1, 0, 0), Connections: "[7]",
		},
	}
}

// Reset drops and recreates the people table, then inserts the seed set.
// Invoked once at process start from the container - explicit seeding
// instead of a constructor side effect.
func (r *postgresRepository) Reset(ctx context.Context) error {
	log.Info().Msg("Resetting people store with seed data")

	if _, err := r.pool.Exec(ctx, `DROP TABLE IF EXISTS people`); err != nil {
		return fmt.Errorf("failed to drop people table: %w", err)
	}

	if _, err := r.pool.Exec(ctx, createTableQuery); err != nil {
		return fmt.Errorf("failed to create people table: %w", err)
	}

	seed := SeedPeople(time.Now().UTC())
	for _, p := range seed {
		if _, err := r.Create(ctx, &p); err != nil {
			return fmt.Errorf("failed to seed person %q: %w", p.Name, err)
		}
	}

	log.Info().Int("people", len(seed)).Msg("People store seeded")
	return nil
}
