package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ========================================
// REQUEST DTOs
// ========================================

// CreatePersonRequest - body for POST /api/people
// id and metSince are never client-settable; the store assigns both.
type CreatePersonRequest struct {
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Status      string  `json:"status"`
	Notes       string  `json:"notes"`
	Location    *string `json:"location,omitempty"`
	Connections *string `json:"connections,omitempty"`
}

func (r CreatePersonRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Type,
			validation.Required.Error("type is required"),
			validation.In(TypeColleague, TypeGroupmate, TypeFamily, TypeClassmate).
				Error("type must be one of: colleague, groupmate, family, classmate"),
		),
		validation.Field(&r.Status,
			validation.Required.Error("status is required"),
			validation.In(StatusBestFriend, StatusFriend, StatusAcquaintance).
				Error("status must be one of: best-friend, friend, acquaintance"),
		),
		validation.Field(&r.Notes,
			validation.Required.Error("notes is required"),
		),
	)
}

// UpdatePersonRequest - body for PUT /api/people/:id
// Full replace of all mutable fields; same required set as create.
type UpdatePersonRequest struct {
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Status      string  `json:"status"`
	Notes       string  `json:"notes"`
	Location    *string `json:"location,omitempty"`
	Connections *string `json:"connections,omitempty"`
}

func (r UpdatePersonRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Type,
			validation.Required.Error("type is required"),
			validation.In(TypeColleague, TypeGroupmate, TypeFamily, TypeClassmate).
				Error("type must be one of: colleague, groupmate, family, classmate"),
		),
		validation.Field(&r.Status,
			validation.Required.Error("status is required"),
			validation.In(StatusBestFriend, StatusFriend, StatusAcquaintance).
				Error("status must be one of: best-friend, friend, acquaintance"),
		),
		validation.Field(&r.Notes,
			validation.Required.Error("notes is required"),
		),
	)
}

// UpdateStatusRequest - body for PUT /api/people/:id/status
// Partial update: only the closeness tier changes.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (r UpdateStatusRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status,
			validation.Required.Error("status is required"),
			validation.In(StatusBestFriend, StatusFriend, StatusAcquaintance).
				Error("status must be one of: best-friend, friend, acquaintance"),
		),
	)
}

// ========================================
// RESPONSE DTOs
// ========================================

// StatsResponse - body for GET /api/people/stats
// Each per-status count is an independent filtered count, NOT derived by
// subtracting from Total.
type StatsResponse struct {
	Total        int64 `json:"total"`
	BestFriend   int64 `json:"bestFriend"`
	Friend       int64 `json:"friend"`
	Acquaintance int64 `json:"acquaintance"`
}
