package entities

import (
	"time"

	"github.com/google/uuid"
)

// ServiceType represents a purchasable job service
type ServiceType string

const (
	ServiceTypeHighlight ServiceType = "highlight"
	ServiceTypeHot       ServiceType = "hot"
	ServiceTypeUrgent    ServiceType = "urgent"
)

// Job represents a job posting. The boolean flags are flipped when a job
// order settles.
type Job struct {
	ID          uuid.UUID  `json:"id"`
	OwnerID     uuid.UUID  `json:"ownerId"`
	Title       string     `json:"title"`
	IsHighlight bool       `json:"isHighlight"`
	IsHot       bool       `json:"isHot"`
	IsUrgent    bool       `json:"isUrgent"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	DeletedAt   *time.Time `json:"-"`

	JobServices []*JobService `json:"jobServices,omitempty"`
}

// Service represents a purchasable service definition
type Service struct {
	ID             uuid.UUID   `json:"id"`
	Name           string      `json:"name"`
	Type           ServiceType `json:"type"`
	DurationInDays int         `json:"durationInDays"`
	Price          int64       `json:"price"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

// JobService links a job to a purchased service. Inactive until the order
// paying for it settles.
type JobService struct {
	ID        uuid.UUID `json:"id"`
	JobID     uuid.UUID `json:"jobId"`
	ServiceID uuid.UUID `json:"serviceId"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Service *Service `json:"service,omitempty"`
}
