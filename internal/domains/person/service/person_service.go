package service

import (
	"context"
	"strings"
	"time"

	"socialnetwork-backend/internal/domains/person/model"
	"socialnetwork-backend/internal/domains/person/repository"
)

// personService implements PersonService.
type personService struct {
	repo repository.PersonRepository
}

// NewPersonService creates a new person service instance.
// Dependency injection pattern - receives repository from container.
func NewPersonService(repo repository.PersonRepository) PersonService {
	return &personService{repo: repo}
}

// ListPeople returns all people in insertion order.
func (s *personService) ListPeople(ctx context.Context) ([]model.Person, error) {
	people, err := s.repo.List(ctx)
	if err != nil {
		return nil, model.NewListPeopleError(err)
	}
	return people, nil
}

// GetPerson returns one person or the domain not-found signal.
func (s *personService) GetPerson(ctx context.Context, id int64) (*model.Person, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, model.ErrPersonNotFound
	}
	return p, nil
}

// CreatePerson persists a new person. The store assigns the id; metSince
// is stamped here and never changes afterwards.
func (s *personService) CreatePerson(ctx context.Context, req *model.CreatePersonRequest) (*model.Person, error) {
	p := &model.Person{
		Name:        strings.TrimSpace(req.Name),
		Type:        req.Type,
		Status:      req.Status,
		Notes:       req.Notes,
		Location:    req.Location,
		MetSince:    time.Now().UTC(),
		Connections: connectionsOrDefault(req.Connections),
	}

	return s.repo.Create(ctx, p)
}

// UpdatePerson fully replaces the mutable fields of an existing person.
// id and metSince stay untouched.
func (s *personService) UpdatePerson(ctx context.Context, id int64, req *model.UpdatePersonRequest) (*model.Person, error) {
	p := &model.Person{
		Name:        strings.TrimSpace(req.Name),
		Type:        req.Type,
		Status:      req.Status,
		Notes:       req.Notes,
		Location:    req.Location,
		Connections: connectionsOrDefault(req.Connections),
	}

	updated, err := s.repo.Update(ctx, id, p)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, model.ErrPersonNotFound
	}
	return updated, nil
}

// UpdateStatus patches only the status; all other fields are untouched.
func (s *personService) UpdateStatus(ctx context.Context, id int64, status string) (*model.Person, error) {
	updated, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, model.ErrPersonNotFound
	}
	return updated, nil
}

// DeletePerson removes the person record. Repeating the call for the same
// id reports not-found rather than failing.
func (s *personService) DeletePerson(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// Stats returns the aggregate counts.
func (s *personService) Stats(ctx context.Context) (*model.StatsResponse, error) {
	return s.repo.Stats(ctx)
}

// connectionsOrDefault keeps the stored connections text opaque: whatever
// the client sent is persisted verbatim, absent becomes "[]". Malformed
// content is tolerated here and absorbed by readers.
func connectionsOrDefault(c *string) string {
	if c == nil {
		return model.DefaultConnections
	}
	return *c
}
