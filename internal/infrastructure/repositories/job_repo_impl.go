package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"jobport.backend/internal/domain/entities"
	domainerrors "jobport.backend/internal/domain/errors"
	"jobport.backend/internal/infrastructure/models"
)

// JobRepository implements job data operations
type JobRepository struct {
	db *gorm.DB
}

// NewJobRepository creates a new job repository
func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

// GetByID gets a job with its services preloaded
func (r *JobRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Job, error) {
	var m models.Job
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).
		Preload("JobServices").
		Preload("JobServices.Service").
		Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// SetServiceFlags updates the job's highlight/hot/urgent flags
func (r *JobRepository) SetServiceFlags(ctx context.Context, id uuid.UUID, highlight, hot, urgent bool) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Job{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_highlight": highlight,
			"is_hot":       hot,
			"is_urgent":    urgent,
			"updated_at":   time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// CreateJobServices creates join rows for purchased services
func (r *JobRepository) CreateJobServices(ctx context.Context, services []*entities.JobService) error {
	if len(services) == 0 {
		return nil
	}
	now := time.Now()
	ms := make([]models.JobService, 0, len(services))
	for _, s := range services {
		ms = append(ms, models.JobService{
			ID:        s.ID,
			JobID:     s.JobID,
			ServiceID: s.ServiceID,
			IsActive:  s.IsActive,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	db := GetDB(ctx, r.db)
	return db.WithContext(ctx).Create(&ms).Error
}

// ActivateJobServices marks all of a job's service rows active
func (r *JobRepository) ActivateJobServices(ctx context.Context, jobID uuid.UUID) error {
	db := GetDB(ctx, r.db)
	return db.WithContext(ctx).Model(&models.JobService{}).
		Where("job_id = ?", jobID).
		Updates(map[string]interface{}{
			"is_active":  true,
			"updated_at": time.Now(),
		}).Error
}

func (r *JobRepository) toEntity(m *models.Job) *entities.Job {
	job := &entities.Job{
		ID:          m.ID,
		OwnerID:     m.OwnerID,
		Title:       m.Title,
		IsHighlight: m.IsHighlight,
		IsHot:       m.IsHot,
		IsUrgent:    m.IsUrgent,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	for _, js := range m.JobServices {
		e := &entities.JobService{
			ID:        js.ID,
			JobID:     js.JobID,
			ServiceID: js.ServiceID,
			IsActive:  js.IsActive,
			CreatedAt: js.CreatedAt,
			UpdatedAt: js.UpdatedAt,
		}
		if js.Service.ID != uuid.Nil {
			e.Service = &entities.Service{
				ID:             js.Service.ID,
				Name:           js.Service.Name,
				Type:           entities.ServiceType(js.Service.Type),
				DurationInDays: js.Service.DurationInDays,
				Price:          js.Service.Price,
			}
		}
		job.JobServices = append(job.JobServices, e)
	}
	return job
}

// ServiceRepository implements service catalog operations
type ServiceRepository struct {
	db *gorm.DB
}

// NewServiceRepository creates a new service repository
func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

// GetByIDs gets services by their IDs
func (r *ServiceRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Service, error) {
	var ms []models.Service
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id IN ?", ids).Find(&ms).Error; err != nil {
		return nil, err
	}
	var services []*entities.Service
	for _, m := range ms {
		services = append(services, &entities.Service{
			ID:             m.ID,
			Name:           m.Name,
			Type:           entities.ServiceType(m.Type),
			DurationInDays: m.DurationInDays,
			Price:          m.Price,
			CreatedAt:      m.CreatedAt,
			UpdatedAt:      m.UpdatedAt,
		})
	}
	return services, nil
}
