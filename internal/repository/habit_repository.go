package repository

import (
	"context"
	"habit_tracker/internal/model"
	"time"

	"gorm.io/gorm"
)

type HabitRepository struct {
	DB *gorm.DB
}

func NewHabitRepository(db *gorm.DB) *HabitRepository {
	return &HabitRepository{DB: db}
}

// ListAll 获取所有习惯，没有数据时返回空切片
func (r *HabitRepository) ListAll(ctx context.Context) ([]model.Habit, error) {
	habits := []model.Habit{}
	err := r.DB.WithContext(ctx).Order("id ASC").Find(&habits).Error
	return habits, err
}

func (r *HabitRepository) Create(ctx context.Context, habit *model.Habit) error {
	if habit.CreatedAt.IsZero() {
		habit.CreatedAt = time.Now()
	}
	return r.DB.WithContext(ctx).Create(habit).Error
}

func (r *HabitRepository) FindByID(ctx context.Context, id uint) (*model.Habit, error) {
	var habit model.Habit
	err := r.DB.WithContext(ctx).First(&habit, id).Error
	if err != nil {
		return nil, err
	}
	return &habit, nil
}

func (r *HabitRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Habit{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// DeleteByID 删除习惯及其全部打卡记录
// 外键上也有 ON DELETE CASCADE，这里显式删除以兼容未开启外键约束的 sqlite 连接
func (r *HabitRepository) DeleteByID(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("habit_id = ?", id).Delete(&model.Checkin{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Habit{}, id).Error
	})
}
