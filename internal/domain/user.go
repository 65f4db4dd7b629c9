package domain

import (
	"context"
	"time"
)

type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleMerchant Role = "MERCHANT"
	RoleAdmin    Role = "ADMIN"
)

// Caller is the resolved identity the delivery layer attaches to a request.
// Authentication itself happens outside this service.
type Caller struct {
	UserID string
	Role   Role
}

func (c Caller) IsCustomer() bool {
	return c.Role == RoleCustomer
}

type User struct {
	ID        string
	Email     string
	Role      Role
	CreatedAt time.Time
}

type UserRepository interface {
	GetByID(ctx context.Context, userID string) (*User, error)
}
