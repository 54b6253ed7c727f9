package repository

import (
	"context"
	"habit_tracker/internal/model"

	"gorm.io/gorm"
)

type CheckinRepository struct {
	DB *gorm.DB
}

// NewCheckinRepository 创建新的打卡仓库实例
func NewCheckinRepository(db *gorm.DB) *CheckinRepository {
	return &CheckinRepository{DB: db}
}

// Create 创建新的打卡记录，同一天重复打卡返回 ErrDuplicateCheckin
func (r *CheckinRepository) Create(ctx context.Context, checkin *model.Checkin) error {
	err := r.DB.WithContext(ctx).Omit("Habit").Create(checkin).Error
	if isDuplicateKey(err) {
		return ErrDuplicateCheckin
	}
	return err
}

// FindByHabitID 获取某个习惯的全部打卡记录
func (r *CheckinRepository) FindByHabitID(ctx context.Context, habitID uint) ([]model.Checkin, error) {
	checkins := []model.Checkin{}
	err := r.DB.WithContext(ctx).
		Preload("Habit").
		Where("habit_id = ?", habitID).
		Order("date ASC").
		Find(&checkins).Error
	return checkins, err
}

// FindByHabitIDAndDateBetween 获取某个习惯在 [start, end] 区间内的打卡记录
func (r *CheckinRepository) FindByHabitIDAndDateBetween(ctx context.Context, habitID uint, start, end model.Date) ([]model.Checkin, error) {
	checkins := []model.Checkin{}
	err := r.DB.WithContext(ctx).
		Preload("Habit").
		Where("habit_id = ? AND date BETWEEN ? AND ?", habitID, start, end).
		Order("date ASC").
		Find(&checkins).Error
	return checkins, err
}

// ExistsByHabitIDAndDate 检查习惯在指定日期是否已打卡
func (r *CheckinRepository) ExistsByHabitIDAndDate(ctx context.Context, habitID uint, date model.Date) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&model.Checkin{}).
		Where("habit_id = ? AND date = ?", habitID, date).
		Count(&count).Error
	return count > 0, err
}

// CountByHabitID 获取习惯的总打卡次数
func (r *CheckinRepository) CountByHabitID(ctx context.Context, habitID uint) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Checkin{}).Where("habit_id = ?", habitID).Count(&count).Error
	return count, err
}
