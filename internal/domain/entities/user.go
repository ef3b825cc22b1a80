package entities

import (
	"time"

	"github.com/google/uuid"
)

// UserRole represents user roles
type UserRole string

const (
	UserRoleCustomer UserRole = "CUSTOMER"
	UserRoleVendor   UserRole = "VENDOR"
	UserRoleAdmin    UserRole = "ADMIN"
)

// Valid reports whether the role is one of the closed set
func (r UserRole) Valid() bool {
	switch r {
	case UserRoleCustomer, UserRoleVendor, UserRoleAdmin:
		return true
	}
	return false
}

// User represents a user entity
type User struct {
	ID            uuid.UUID      `json:"id"`
	Email         string         `json:"email"`
	Name          string         `json:"name"`
	PasswordHash  string         `json:"-"`
	Role          UserRole       `json:"role"`
	VendorProfile *VendorProfile `json:"vendorProfile,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	DeletedAt     *time.Time     `json:"-"`
}

// RegisterCustomerInput represents input for customer registration
type RegisterCustomerInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterVendorInput represents input for vendor registration
type RegisterVendorInput struct {
	Name                string `json:"name"`
	Email               string `json:"email"`
	Password            string `json:"password"`
	BusinessName        string `json:"businessName"`
	BusinessDescription string `json:"businessDescription"`
	PhoneNumber         string `json:"phoneNumber"`
	Address             string `json:"address"`
}

// LoginInput represents input for user login
type LoginInput struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	UseSession bool   `json:"useSession"` // If true, also store the token server-side and return a sessionId
}

// AuthResponse represents authentication response
type AuthResponse struct {
	Token     string `json:"token"`
	SessionID string `json:"sessionId,omitempty"`
	User      *User  `json:"user"`
}
