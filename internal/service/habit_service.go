package service

import (
	"context"
	"errors"
	"fmt"
	"habit_tracker/internal/model"
	"habit_tracker/internal/repository"
	"habit_tracker/internal/util"
	"habit_tracker/pkg/monitoring"
	"habit_tracker/pkg/tracing"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"
)

type HabitService struct {
	repo *repository.HabitRepository
}

func NewHabitService(repo *repository.HabitRepository) *HabitService {
	return &HabitService{repo: repo}
}

func (s *HabitService) ListHabits(ctx context.Context) ([]model.Habit, error) {
	return s.repo.ListAll(ctx)
}

// CreateHabit 创建习惯；createdAt 为空时使用当前时间。名称不做校验
func (s *HabitService) CreateHabit(ctx context.Context, name string, createdAt *time.Time) (*model.Habit, error) {
	ctx, span := tracing.StartSpan(ctx, "HabitService.CreateHabit")

	habit := &model.Habit{Name: name}
	if createdAt != nil {
		habit.CreatedAt = *createdAt
	}

	err := s.repo.Create(ctx, habit)
	tracing.EndSpan(span, err)
	if err != nil {
		return nil, fmt.Errorf("create habit: %w", err)
	}

	monitoring.HabitsCreated.Inc()
	return habit, nil
}

func (s *HabitService) GetHabit(ctx context.Context, id uint) (*model.Habit, error) {
	habit, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrHabitNotFound
		}
		return nil, err
	}
	return habit, nil
}

// DeleteHabit 删除习惯及其打卡记录，不存在时返回 ErrHabitNotFound
func (s *HabitService) DeleteHabit(ctx context.Context, id uint) (err error) {
	ctx, span := tracing.StartSpan(ctx, "HabitService.DeleteHabit", attribute.Int64("habit.id", int64(id)))
	defer func() { tracing.EndSpan(span, err) }()

	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return util.ErrHabitNotFound
	}

	return s.repo.DeleteByID(ctx, id)
}
