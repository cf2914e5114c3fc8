package library

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	MaxNameLength     = 100
	MaxLocationLength = 200
)

// CreateLibraryRequest - POST /api/library/libraries
type CreateLibraryRequest struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location"`
}

func (r CreateLibraryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, MaxNameLength),
		),
		validation.Field(&r.Location,
			validation.Length(0, MaxLocationLength),
		),
	)
}

// UpdateLibraryRequest - PUT /api/library/libraries/:id
type UpdateLibraryRequest struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
}

func (r UpdateLibraryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.NilOrNotEmpty.Error("name cannot be empty"),
			validation.Length(1, MaxNameLength),
		),
		validation.Field(&r.Location,
			validation.Length(0, MaxLocationLength),
		),
	)
}

// AssignLibrarianRequest - PUT /api/library/libraries/:id/librarian
type AssignLibrarianRequest struct {
	Name string `json:"name" binding:"required"`
}

func (r AssignLibrarianRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, MaxNameLength),
		),
	)
}
