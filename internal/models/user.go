package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type User struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	StripeCustomerID *string   `json:"-"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type Role string

const (
	RoleCustomer   Role = "customer"
	RoleStore      Role = "store"
	RoleSuperAdmin Role = "superadmin"
)

// JWT claims structure
type Claims struct {
	UserID  uuid.UUID  `json:"user_id"`
	Email   string     `json:"email"`
	Role    Role       `json:"role,omitempty"`
	StoreID *uuid.UUID `json:"store_id,omitempty"`
	jwt.RegisteredClaims
}

// Principal is the authenticated caller, resolved once from the token.
type Principal struct {
	UserID  uuid.UUID
	Email   string
	Role    Role
	StoreID uuid.UUID
}

func PrincipalFromClaims(c *Claims) Principal {
	p := Principal{UserID: c.UserID, Email: c.Email, Role: c.Role}

	switch {
	case c.Role == RoleSuperAdmin:
	case c.Role == RoleStore && c.StoreID != nil:
		p.StoreID = *c.StoreID
	default:
		p.Role = RoleCustomer
	}

	return p
}

// CanManageStore reports whether the caller may act on behalf of the given store.
func (p Principal) CanManageStore(storeID uuid.UUID) bool {
	switch p.Role {
	case RoleSuperAdmin:
		return true
	case RoleStore:
		return p.StoreID == storeID
	default:
		return false
	}
}
