package userservice

import (
	"github.com/pkg/errors"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrMobileTaken        = errors.New("user with this mobile number already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid user input")
)

type CreateUserReq struct {
	FullName string `json:"fullName" validate:"required,max=200"`
	DOB      string `json:"dob" validate:"required"`
	MobileNo string `json:"mobileNo" validate:"required"`
	Village  string `json:"village" validate:"required,max=200"`
	EmailID  string `json:"emailId" validate:"omitempty,email"`
}

// UpdateUserReq leaves nil and empty fields untouched.
type UpdateUserReq struct {
	FullName *string `json:"fullName,omitempty" validate:"omitempty,max=200"`
	DOB      *string `json:"dob,omitempty"`
	MobileNo *string `json:"mobileNo,omitempty"`
	Village  *string `json:"village,omitempty" validate:"omitempty,max=200"`
	EmailID  *string `json:"emailId,omitempty" validate:"omitempty,email"`
}

// LoginReq carries a mobile number and date of birth, or the configured
// admin username and password in the same two fields.
type LoginReq struct {
	MobileNo string `json:"mobileNo" validate:"required"`
	DOB      string `json:"dob" validate:"required"`
}

type LoginRes struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

type UserFilter struct {
	SearchText string
	Limit      int
	Offset     int
}

type SkippedUserRow struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

type ImportUsersReport struct {
	SavedCount int              `json:"savedCount"`
	Skipped    []SkippedUserRow `json:"skipped"`
}
