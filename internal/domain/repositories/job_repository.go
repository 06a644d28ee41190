package repositories

import (
	"context"

	"github.com/google/uuid"
	"jobport.backend/internal/domain/entities"
)

// JobRepository defines job data operations
type JobRepository interface {
	// GetByID loads the job with its JobServices and each Service preloaded.
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Job, error)
	SetServiceFlags(ctx context.Context, id uuid.UUID, highlight, hot, urgent bool) error
	CreateJobServices(ctx context.Context, services []*entities.JobService) error
	ActivateJobServices(ctx context.Context, jobID uuid.UUID) error
}

// ServiceRepository defines service catalog operations
type ServiceRepository interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Service, error)
}
