package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/pickwise/laptop-advisor-backend/internal/platform/logger"
	"github.com/pickwise/laptop-advisor-backend/internal/types"
)

type LaptopRepo interface {
	ListAll(ctx context.Context) ([]types.Laptop, error)
	Count(ctx context.Context) (int64, error)
	ReplaceAll(ctx context.Context, laptops []types.Laptop) error
}

type laptopRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLaptopRepo(db *gorm.DB, baseLog *logger.Logger) LaptopRepo {
	return &laptopRepo{db: db, log: baseLog.With("repo", "LaptopRepo")}
}

func (lr *laptopRepo) ListAll(ctx context.Context) ([]types.Laptop, error) {
	var results []types.Laptop
	if err := lr.db.WithContext(ctx).
		Order("brand asc, model asc").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (lr *laptopRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := lr.db.WithContext(ctx).Model(&types.Laptop{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ReplaceAll swaps the whole catalog in one transaction. The catalog is only
// ever replaced as a unit, never row-patched.
func (lr *laptopRepo) ReplaceAll(ctx context.Context, laptops []types.Laptop) error {
	return lr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&types.Laptop{}).Error; err != nil {
			return err
		}
		if len(laptops) == 0 {
			return nil
		}
		return tx.Create(&laptops).Error
	})
}
