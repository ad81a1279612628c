package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	FullName     string    `json:"fullName" db:"full_name"`
	DOB          string    `json:"dob" db:"dob"`
	MobileNo     string    `json:"mobileNo" db:"mobile_no"`
	Village      string    `json:"village" db:"village"`
	EmailID      string    `json:"emailId" db:"email_id"`
	Role         Role      `json:"role" db:"role"`
	PasswordHash string    `json:"-" db:"password"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// Identity is the authenticated caller carried in the request context.
type Identity struct {
	UserID   uuid.UUID
	Role     Role
	Location string
}

func (i Identity) IsAdmin() bool {
	return i.Role == AdminRole
}
