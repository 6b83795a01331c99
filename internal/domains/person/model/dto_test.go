package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateRequest() CreatePersonRequest {
	return CreatePersonRequest{
		Name:   "Alice Johnson",
		Type:   TypeColleague,
		Status: StatusBestFriend,
		Notes:  "Work",
	}
}

func TestCreatePersonRequest_Validate_OK(t *testing.T) {
	req := validCreateRequest()
	require.NoError(t, req.Validate())

	// Optional fields don't change the outcome.
	loc := "Seattle"
	conns := "[2,3]"
	req.Location = &loc
	req.Connections = &conns
	assert.NoError(t, req.Validate())
}

func TestCreatePersonRequest_Validate_MissingRequired(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreatePersonRequest)
	}{
		{"missing name", func(r *CreatePersonRequest) { r.Name = "" }},
		{"missing type", func(r *CreatePersonRequest) { r.Type = "" }},
		{"missing status", func(r *CreatePersonRequest) { r.Status = "" }},
		{"missing notes", func(r *CreatePersonRequest) { r.Notes = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(&req)
			assert.Error(t, req.Validate())
		})
	}
}

func TestCreatePersonRequest_Validate_UnknownEnums(t *testing.T) {
	req := validCreateRequest()
	req.Type = "stranger"
	assert.Error(t, req.Validate())

	req = validCreateRequest()
	req.Status = "enemy"
	assert.Error(t, req.Validate())
}

func TestUpdatePersonRequest_Validate(t *testing.T) {
	req := UpdatePersonRequest{
		Name:   "Bob Martinez",
		Type:   TypeGroupmate,
		Status: StatusFriend,
		Notes:  "University",
	}
	require.NoError(t, req.Validate())

	req.Notes = ""
	assert.Error(t, req.Validate())
}

func TestUpdateStatusRequest_Validate(t *testing.T) {
	assert.NoError(t, UpdateStatusRequest{Status: StatusAcquaintance}.Validate())
	assert.Error(t, UpdateStatusRequest{}.Validate())
	assert.Error(t, UpdateStatusRequest{Status: "bff"}.Validate())
}
