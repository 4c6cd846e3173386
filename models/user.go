package models

import "time"

const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleAgent   = "agent"
)

// User is a back-office account. Password is bson-only; it never serializes
// into a JSON response.
type User struct {
	BaseModel   `bson:",inline"`
	Name        string     `bson:"name" json:"name" validate:"required"`
	Email       string     `bson:"email" json:"email" validate:"required,email"`
	Password    string     `bson:"password" json:"-" validate:"required,min=6"`
	Role        string     `bson:"role" json:"role" validate:"required,oneof=admin manager agent"`
	IsActive    bool       `bson:"isActive" json:"isActive"`
	Permissions []string   `bson:"permissions" json:"permissions"`
	LastLoginAt *time.Time `bson:"lastLoginAt,omitempty" json:"lastLoginAt,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CreateUserRequest struct {
	Name        string   `json:"name" validate:"required"`
	Email       string   `json:"email" validate:"required,email"`
	Password    string   `json:"password" validate:"required,min=6"`
	Role        string   `json:"role" validate:"required,oneof=admin manager agent"`
	Permissions []string `json:"permissions"`
}

type UpdateUserRequest struct {
	Name        *string   `json:"name,omitempty"`
	Email       *string   `json:"email,omitempty"`
	Password    *string   `json:"password,omitempty"`
	Role        *string   `json:"role,omitempty"`
	IsActive    *bool     `json:"isActive,omitempty"`
	Permissions *[]string `json:"permissions,omitempty"`
}
