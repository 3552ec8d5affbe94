package models

import "github.com/gocql/gocql"

type User struct {
	ID       gocql.UUID `json:"user_id"`
	Email    string     `json:"email"`
	Password string     `json:"-"`
	Name     string     `json:"name,omitempty"`
	Role     string     `json:"role,omitempty"`
}
