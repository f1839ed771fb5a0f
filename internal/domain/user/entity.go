package user

import "time"

type Role string

const (
	RoleHR       Role = "hr"
	RoleEmployee Role = "employee"
)

func (r Role) Valid() bool {
	return r == RoleHR || r == RoleEmployee
}

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	EmployeeID   *string // set for employee accounts, links to the directory
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
