// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"crosspromo/internal/domain/entity"
	"crosspromo/internal/domain/repository"
	"crosspromo/internal/errors"
	"crosspromo/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// pendingMarkRepository implements the domain.PendingMarkRepository interface.
type pendingMarkRepository struct {
	db *gorm.DB
}

// NewPendingMarkRepository is the constructor for pendingMarkRepository.
func NewPendingMarkRepository(db *gorm.DB) repository.PendingMarkRepository {
	return &pendingMarkRepository{db: db}
}

// SaveMark upserts the mark keyed by viewer and store.
func (repo *pendingMarkRepository) SaveMark(ctx context.Context, mark *entity.PendingMark) error {
	markM := fromPendingMarkDomain(mark)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "viewer_id"}, {Name: "store_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"state", "expires_at", "updated_at"}),
		}).
		Create(markM).Error
	if err != nil {
		if isNotNullConstraintViolation(err) {
			return errors.Wrap(err, "pending mark is missing required fields")
		}

		return errors.Wrap(err, "failed to save pending mark")
	}

	mark.CreatedAt = markM.CreatedAt
	mark.UpdatedAt = markM.UpdatedAt

	return nil
}

// FindMark retrieves the mark for a viewer and store.
func (repo *pendingMarkRepository) FindMark(ctx context.Context, viewerID, storeID string) (*entity.PendingMark, error) {
	var markM model.PendingMarkModel
	err := repo.db.WithContext(ctx).
		Where("viewer_id = ? AND store_id = ?", viewerID, storeID).
		First(&markM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPendingMarkNotFound
		}

		return nil, errors.Wrap(err, "failed to find pending mark")
	}

	return toPendingMarkDomain(&markM), nil
}

// DeleteMark removes the mark for a viewer and store.
func (repo *pendingMarkRepository) DeleteMark(ctx context.Context, viewerID, storeID string) error {
	err := repo.db.WithContext(ctx).
		Where("viewer_id = ? AND store_id = ?", viewerID, storeID).
		Delete(&model.PendingMarkModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete pending mark")
	}

	return nil
}

// FindActiveMarks retrieves the viewer's marks that expire after now.
func (repo *pendingMarkRepository) FindActiveMarks(ctx context.Context, viewerID string, now time.Time) ([]*entity.PendingMark, error) {
	var markModels []*model.PendingMarkModel
	err := repo.db.WithContext(ctx).
		Where("viewer_id = ? AND expires_at > ?", viewerID, now).
		Order("created_at").
		Find(&markModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active pending marks")
	}

	marks := make([]*entity.PendingMark, 0, len(markModels))
	for _, markM := range markModels {
		marks = append(marks, toPendingMarkDomain(markM))
	}

	return marks, nil
}

// DeleteMarksByState removes the viewer's marks in the given state last updated at or before updatedBefore.
func (repo *pendingMarkRepository) DeleteMarksByState(ctx context.Context, viewerID string, state entity.PendingMarkState, updatedBefore time.Time) error {
	err := repo.db.WithContext(ctx).
		Where("viewer_id = ? AND state = ? AND updated_at <= ?", viewerID, string(state), updatedBefore).
		Delete(&model.PendingMarkModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete pending marks by state")
	}

	return nil
}

// DeleteExpiredMarks removes marks that expired before now and reports how many were removed.
func (repo *pendingMarkRepository) DeleteExpiredMarks(ctx context.Context, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at <= ?", now).
		Delete(&model.PendingMarkModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete expired pending marks")
	}

	return result.RowsAffected, nil
}

func fromPendingMarkDomain(mark *entity.PendingMark) *model.PendingMarkModel {
	if mark == nil {
		return nil
	}

	return &model.PendingMarkModel{
		ViewerID:  mark.ViewerID,
		StoreID:   mark.StoreID,
		State:     string(mark.State),
		ExpiresAt: mark.ExpiresAt,
		CreatedAt: mark.CreatedAt,
		UpdatedAt: mark.UpdatedAt,
	}
}

func toPendingMarkDomain(data *model.PendingMarkModel) *entity.PendingMark {
	if data == nil {
		return nil
	}

	return &entity.PendingMark{
		ViewerID:  data.ViewerID,
		StoreID:   data.StoreID,
		State:     entity.PendingMarkState(data.State),
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
