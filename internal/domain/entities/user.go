package entities

import (
	"time"

	"github.com/google/uuid"
)

// UserLevel represents the account tier set by business packages
type UserLevel string

const (
	UserLevelStandard UserLevel = "standard"
	UserLevelPremium  UserLevel = "premium"
	UserLevelElite    UserLevel = "elite"
)

// UserRole represents a user role
type UserRole string

const (
	UserRoleCandidate UserRole = "candidate"
	UserRoleRecruiter UserRole = "recruiter"
	UserRoleAdmin     UserRole = "admin"
)

// User represents a platform account holding a token balance
type User struct {
	ID             uuid.UUID  `json:"id"`
	Email          string     `json:"email"`
	Name           string     `json:"name"`
	PasswordHash   string     `json:"-"`
	Role           UserRole   `json:"role"`
	Level          UserLevel  `json:"level"`
	XTokenBalance  int64      `json:"xTokenBalance"`
	EmailConfirmed bool       `json:"emailConfirmed"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
	DeletedAt      *time.Time `json:"-"`
}
