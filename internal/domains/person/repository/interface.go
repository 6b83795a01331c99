package repository

import (
	"context"

	"socialnetwork-backend/internal/domains/person/model"
)

// =====================================================
// PERSON REPOSITORY INTERFACE
// =====================================================

// PersonRepository defines all data access operations for the person domain.
type PersonRepository interface {
	// List retrieves all people ordered by insertion (id ascending).
	List(ctx context.Context) ([]model.Person, error)

	// GetByID retrieves a person by id.
	// Returns (nil, nil) when no such person exists.
	GetByID(ctx context.Context, id int64) (*model.Person, error)

	// Create inserts a new person record. The store assigns the id.
	// Returns the created person including the assigned id.
	Create(ctx context.Context, p *model.Person) (*model.Person, error)

	// Update replaces all mutable fields (everything except id/met_since)
	// of the person with the given id.
	// Returns (nil, nil) when no such person exists.
	Update(ctx context.Context, id int64, p *model.Person) (*model.Person, error)

	// UpdateStatus changes only the status column.
	// Returns (nil, nil) when no such person exists.
	UpdateStatus(ctx context.Context, id int64, status string) (*model.Person, error)

	// Delete hard-deletes the person. Returns model.ErrPersonNotFound when
	// no row was removed.
	Delete(ctx context.Context, id int64) error

	// Stats returns the total count plus one independently computed count
	// per status value.
	Stats(ctx context.Context) (*model.StatsResponse, error)

	// Reset drops and recreates the people table and loads the seed data
	// set. Called once at process start; existing data is discarded.
	Reset(ctx context.Context) error
}
