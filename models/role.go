package models

type Role string

const (
	AdminRole Role = "admin"
	UserRole  Role = "user"
)
