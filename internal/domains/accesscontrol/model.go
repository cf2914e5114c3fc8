package accesscontrol

import (
	"time"

	"github.com/google/uuid"
)

// Permission codenames seeded by the migrations
const (
	PermCanView   = "can_view"
	PermCanCreate = "can_create"
	PermCanEdit   = "can_edit"
	PermCanDelete = "can_delete"
)

// Group names seeded by the migrations.
// Viewers hold can_view; Editors add can_create and can_edit;
// Admins hold all four.
const (
	GroupAdmins  = "Admins"
	GroupEditors = "Editors"
	GroupViewers = "Viewers"
)

// Permission is a single grantable capability
type Permission struct {
	ID       uuid.UUID `json:"id" db:"id"`
	Codename string    `json:"codename" db:"codename"` // Unique, e.g. can_view
	Name     string    `json:"name" db:"name"`         // Human-readable label
}

// Group bundles permissions and is assigned to users
type Group struct {
	ID          uuid.UUID    `json:"id" db:"id"`
	Name        string       `json:"name" db:"name"` // Unique
	Permissions []Permission `json:"permissions"`
	CreatedAt   time.Time    `json:"created_at" db:"created_at"`
}
