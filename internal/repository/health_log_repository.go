package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mainakmishra/equinox/internal/domain"
)

type HealthLogRepository interface {
	// Save creates or updates the log; callers set ID from GetByUserAndDate
	// when upserting.
	Save(ctx context.Context, log *domain.HealthLog) error
	GetByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.HealthLog, error)
	// ListRecent returns up to limit logs ordered by date descending.
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.HealthLog, error)
	// ListDates returns every log date for the user, newest first.
	ListDates(ctx context.Context, userID uuid.UUID) ([]time.Time, error)
}

type healthLogRepository struct {
	db *gorm.DB
}

func NewHealthLogRepository(db *gorm.DB) HealthLogRepository {
	return &healthLogRepository{db: db}
}

func (r *healthLogRepository) Save(ctx context.Context, log *domain.HealthLog) error {
	return r.db.WithContext(ctx).Save(log).Error
}

func (r *healthLogRepository) GetByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.HealthLog, error) {
	var log domain.HealthLog
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date.Format("2006-01-02")).
		First(&log).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &log, nil
}

func (r *healthLogRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.HealthLog, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var logs []domain.HealthLog
	if err := query.Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *healthLogRepository) ListDates(ctx context.Context, userID uuid.UUID) ([]time.Time, error) {
	var dates []time.Time
	err := r.db.WithContext(ctx).
		Model(&domain.HealthLog{}).
		Where("user_id = ?", userID).
		Order("date DESC").
		Pluck("date", &dates).Error
	if err != nil {
		return nil, err
	}
	return dates, nil
}
