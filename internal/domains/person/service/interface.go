package service

import (
	"context"

	"socialnetwork-backend/internal/domains/person/model"
)

// =====================================================
// PERSON SERVICE INTERFACE
// =====================================================

// PersonService contains the business logic for the person domain.
type PersonService interface {
	// ListPeople returns every person ordered by insertion.
	// Always succeeds with an empty slice on an empty store.
	ListPeople(ctx context.Context) ([]model.Person, error)

	// GetPerson returns the person with the given id or
	// model.ErrPersonNotFound.
	GetPerson(ctx context.Context, id int64) (*model.Person, error)

	// CreatePerson assigns metSince = now, defaults connections to "[]"
	// and persists a new record. The store assigns the id.
	CreatePerson(ctx context.Context, req *model.CreatePersonRequest) (*model.Person, error)

	// UpdatePerson fully replaces the mutable fields of an existing person.
	UpdatePerson(ctx context.Context, id int64, req *model.UpdatePersonRequest) (*model.Person, error)

	// UpdateStatus patches only the closeness tier.
	UpdateStatus(ctx context.Context, id int64, status string) (*model.Person, error)

	// DeletePerson hard-deletes a person. A repeat delete of the same id
	// yields model.ErrPersonNotFound, not an internal error.
	DeletePerson(ctx context.Context, id int64) error

	// Stats returns the total plus one independent count per status tier.
	Stats(ctx context.Context) (*model.StatsResponse, error)
}
