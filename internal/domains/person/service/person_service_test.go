package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialnetwork-backend/internal/domains/person/model"
)

// fakeRepository is an in-memory PersonRepository. Ids are assigned
// sequentially and never reused, like the real store.
type fakeRepository struct {
	people []model.Person
	nextID int64
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{nextID: 1}
}

func (f *fakeRepository) List(ctx context.Context) ([]model.Person, error) {
	out := make([]model.Person, len(f.people))
	copy(out, f.people)
	return out, nil
}

func (f *fakeRepository) GetByID(ctx context.Context, id int64) (*model.Person, error) {
	for i := range f.people {
		if f.people[i].ID == id {
			p := f.people[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakeRepository) Create(ctx context.Context, p *model.Person) (*model.Person, error) {
	created := *p
	created.ID = f.nextID
	f.nextID++
	f.people = append(f.people, created)
	return &created, nil
}

func (f *fakeRepository) Update(ctx context.Context, id int64, p *model.Person) (*model.Person, error) {
	for i := range f.people {
		if f.people[i].ID == id {
			updated := *p
			updated.ID = id
			updated.MetSince = f.people[i].MetSince
			f.people[i] = updated
			return &updated, nil
		}
	}
	return nil, nil
}

func (f *fakeRepository) UpdateStatus(ctx context.Context, id int64, status string) (*model.Person, error) {
	for i := range f.people {
		if f.people[i].ID == id {
			f.people[i].Status = status
			p := f.people[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakeRepository) Delete(ctx context.Context, id int64) error {
	for i := range f.people {
		if f.people[i].ID == id {
			f.people = append(f.people[:i], f.people[i+1:]...)
			return nil
		}
	}
	return model.ErrPersonNotFound
}

func (f *fakeRepository) Stats(ctx context.Context) (*model.StatsResponse, error) {
	stats := &model.StatsResponse{Total: int64(len(f.people))}
	for _, p := range f.people {
		switch p.Status {
		case model.StatusBestFriend:
			stats.BestFriend++
		case model.StatusFriend:
			stats.Friend++
		case model.StatusAcquaintance:
			stats.Acquaintance++
		}
	}
	return stats, nil
}

func (f *fakeRepository) Reset(ctx context.Context) error {
	f.people = nil
	f.nextID = 1
	return nil
}

func newTestService(t *testing.T) (PersonService, *fakeRepository) {
	t.Helper()
	repo := newFakeRepository()
	return NewPersonService(repo), repo
}

func createRequest() *model.CreatePersonRequest {
	return &model.CreatePersonRequest{
		Name:   "Alice Johnson",
		Type:   model.TypeColleague,
		Status: model.StatusBestFriend,
		Notes:  "Work",
	}
}

func TestCreatePerson_AssignsIDAndMetSince(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	before := time.Now().UTC()
	created, err := svc.CreatePerson(ctx, createRequest())
	after := time.Now().UTC()

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, int64(1), created.ID)
	assert.WithinDuration(t, before, created.MetSince, after.Sub(before)+time.Second)
	assert.Equal(t, model.DefaultConnections, created.Connections)
}

func TestCreatePerson_IDsNeverReused(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.CreatePerson(ctx, createRequest())
	require.NoError(t, err)

	require.NoError(t, svc.DeletePerson(ctx, first.ID))

	second, err := svc.CreatePerson(ctx, createRequest())
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)
}

func TestCreatePerson_KeepsProvidedConnections(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	req := createRequest()
	conns := "[2,3]"
	req.Connections = &conns

	created, err := svc.CreatePerson(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "[2,3]", created.Connections)
}

func TestGetPerson_AfterCreateReturnsSameRecord(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreatePerson(ctx, createRequest())
	require.NoError(t, err)

	got, err := svc.GetPerson(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestGetPerson_NotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetPerson(context.Background(), 42)
	assert.ErrorIs(t, err, model.ErrPersonNotFound)
}

func TestUpdatePerson_UnknownIDPersistsNothing(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	_, err := svc.UpdatePerson(ctx, 99, &model.UpdatePersonRequest{
		Name: "Nobody", Type: model.TypeFamily, Status: model.StatusFriend, Notes: "x",
	})
	assert.ErrorIs(t, err, model.ErrPersonNotFound)
	assert.Empty(t, repo.people)
}

func TestUpdatePerson_ReplacesMutableFieldsOnly(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreatePerson(ctx, createRequest())
	require.NoError(t, err)

	updated, err := svc.UpdatePerson(ctx, created.ID, &model.UpdatePersonRequest{
		Name:   "Alice J.",
		Type:   model.TypeClassmate,
		Status: model.StatusFriend,
		Notes:  "Moved teams",
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.MetSince, updated.MetSince)
	assert.Equal(t, "Alice J.", updated.Name)
	assert.Equal(t, model.TypeClassmate, updated.Type)
	// Omitted connections falls back to the empty list.
	assert.Equal(t, model.DefaultConnections, updated.Connections)
}

func TestUpdateStatus_TouchesOnlyStatus(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	req := createRequest()
	conns := "[7]"
	req.Connections = &conns

	created, err := svc.CreatePerson(ctx, req)
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, created.ID, model.StatusAcquaintance)
	require.NoError(t, err)

	assert.Equal(t, model.StatusAcquaintance, updated.Status)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.Notes, updated.Notes)
	assert.Equal(t, "[7]", updated.Connections)
	assert.Equal(t, created.MetSince, updated.MetSince)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.UpdateStatus(context.Background(), 5, model.StatusFriend)
	assert.ErrorIs(t, err, model.ErrPersonNotFound)
}

func TestDeletePerson_ThenGetNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreatePerson(ctx, createRequest())
	require.NoError(t, err)

	require.NoError(t, svc.DeletePerson(ctx, created.ID))

	_, err = svc.GetPerson(ctx, created.ID)
	assert.ErrorIs(t, err, model.ErrPersonNotFound)

	// Repeat delete reports not-found, not an internal failure.
	err = svc.DeletePerson(ctx, created.ID)
	assert.ErrorIs(t, err, model.ErrPersonNotFound)
}

func TestStats_TotalMatchesListLength(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	statuses := []string{
		model.StatusBestFriend,
		model.StatusBestFriend,
		model.StatusFriend,
		model.StatusAcquaintance,
	}
	for _, status := range statuses {
		req := createRequest()
		req.Status = status
		_, err := svc.CreatePerson(ctx, req)
		require.NoError(t, err)
	}

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)

	people, err := svc.ListPeople(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(len(people)), stats.Total)
	assert.Equal(t, int64(2), stats.BestFriend)
	assert.Equal(t, int64(1), stats.Friend)
	assert.Equal(t, int64(1), stats.Acquaintance)
}

func TestListPeople_EmptyStore(t *testing.T) {
	svc, _ := newTestService(t)

	people, err := svc.ListPeople(context.Background())
	require.NoError(t, err)
	assert.Empty(t, people)
}
