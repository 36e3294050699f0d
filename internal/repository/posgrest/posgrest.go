package posgrest

import (
	"context"
	"errors"

	"github.com/jeffleon2/draftea-settlement-service/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrAlreadyExists = errors.New("record already exists")

// repository is a generic GORM-based repository for insert-once entities.
type repository[T interface{}] struct {
	db *gorm.DB
}

func New[T interface{}](db *gorm.DB) *repository[T] {
	return &repository[T]{
		db,
	}
}

// CreateOnce inserts entity unless a row already holds the same value in the
// unique column. The existing row is never overwritten; ErrAlreadyExists is
// returned instead.
func (r *repository[T]) CreateOnce(ctx context.Context, entity *T, uniqueColumn string) error {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: uniqueColumn}},
			DoNothing: true,
		}).
		Create(entity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAlreadyExists
	}
	return nil
}

// FirstBy retrieves the first entity whose column equals value.
func (r *repository[T]) FirstBy(ctx context.Context, column string, value interface{}) (*T, error) {
	var entity T
	err := r.db.WithContext(ctx).Where(clause.Eq{Column: clause.Column{Name: column}, Value: value}).First(&entity).Error
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

// Migrate creates or updates every table the service reads or writes.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Consumer{},
		&models.Merchant{},
		&models.Transaction{},
		&models.SettlementEvent{},
	)
}
