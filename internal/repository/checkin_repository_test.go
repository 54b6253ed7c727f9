package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"habit_tracker/internal/model"
	"habit_tracker/internal/testutil"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedHabit(t *testing.T, repo *HabitRepository, name string) *model.Habit {
	t.Helper()
	habit := &model.Habit{Name: name}
	require.NoError(t, repo.Create(context.Background(), habit))
	return habit
}

func TestCheckinRepositoryCreateRejectsDuplicateDay(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	habit := seedHabit(t, NewHabitRepository(db), "Run")
	repo := NewCheckinRepository(db)

	first := &model.Checkin{HabitID: habit.ID, Date: mustDate(t, "2024-05-01")}
	require.NoError(t, repo.Create(ctx, first))
	assert.NotZero(t, first.ID)

	second := &model.Checkin{HabitID: habit.ID, Date: mustDate(t, "2024-05-01")}
	err := repo.Create(ctx, second)
	assert.ErrorIs(t, err, ErrDuplicateCheckin)

	// a different day is fine
	require.NoError(t, repo.Create(ctx, &model.Checkin{HabitID: habit.ID, Date: mustDate(t, "2024-05-02")}))

	count, err := repo.CountByHabitID(ctx, habit.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestCheckinRepositorySameDayDifferentHabits(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	habits := NewHabitRepository(db)
	run := seedHabit(t, habits, "Run")
	read := seedHabit(t, habits, "Read")
	repo := NewCheckinRepository(db)

	day := mustDate(t, "2024-05-01")
	require.NoError(t, repo.Create(ctx, &model.Checkin{HabitID: run.ID, Date: day}))
	require.NoError(t, repo.Create(ctx, &model.Checkin{HabitID: read.ID, Date: day}))
}

func TestCheckinRepositoryExists(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	habit := seedHabit(t, NewHabitRepository(db), "Run")
	repo := NewCheckinRepository(db)

	day := mustDate(t, "2024-05-01")
	exists, err := repo.ExistsByHabitIDAndDate(ctx, habit.ID, day)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Create(ctx, &model.Checkin{HabitID: habit.ID, Date: day}))

	exists, err = repo.ExistsByHabitIDAndDate(ctx, habit.ID, day)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByHabitIDAndDate(ctx, habit.ID, mustDate(t, "2024-05-02"))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCheckinRepositoryFindByHabitID(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	habits := NewHabitRepository(db)
	run := seedHabit(t, habits, "Run")
	read := seedHabit(t, habits, "Read")
	repo := NewCheckinRepository(db)

	for _, d := range []string{"2024-05-03", "2024-05-01", "2024-05-02"} {
		require.NoError(t, repo.Create(ctx, &model.Checkin{HabitID: run.ID, Date: mustDate(t, d)}))
	}
	require.NoError(t, repo.Create(ctx, &model.Checkin{HabitID: read.ID, Date: mustDate(t, "2024-05-01")}))

	got, err := repo.FindByHabitID(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "2024-05-01", got[0].Date.String())
	assert.Equal(t, "2024-05-03", got[2].Date.String())
	for _, c := range got {
		require.NotNil(t, c.Habit)
		assert.Equal(t, "Run", c.Habit.Name)
	}

	none, err := repo.FindByHabitID(ctx, 9999)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestCheckinRepositoryFindByHabitIDAndDateBetween(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	habits := NewHabitRepository(db)
	run := seedHabit(t, habits, "Run")
	other := seedHabit(t, habits, "Other")
	repo := NewCheckinRepository(db)

	for _, d := range []string{"2023-12-31", "2024-01-01", "2024-01-15", "2024-01-31", "2024-02-01"} {
		require.NoError(t, repo.Create(ctx, &model.Checkin{HabitID: run.ID, Date: mustDate(t, d)}))
	}
	require.NoError(t, repo.Create(ctx, &model.Checkin{HabitID: other.ID, Date: mustDate(t, "2024-01-10")}))

	got, err := repo.FindByHabitIDAndDateBetween(ctx, run.ID, mustDate(t, "2024-01-01"), mustDate(t, "2024-01-31"))
	require.NoError(t, err)

	var dates []string
	for _, c := range got {
		dates = append(dates, c.Date.String())
		assert.Equal(t, run.ID, c.HabitID)
	}
	assert.Equal(t, []string{"2024-01-01", "2024-01-15", "2024-01-31"}, dates)

	single, err := repo.FindByHabitIDAndDateBetween(ctx, run.ID, mustDate(t, "2024-01-15"), mustDate(t, "2024-01-15"))
	require.NoError(t, err)
	require.Len(t, single, 1)

	empty, err := repo.FindByHabitIDAndDateBetween(ctx, run.ID, mustDate(t, "2024-03-01"), mustDate(t, "2024-03-31"))
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestIsDuplicateKey(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"gorm translated", gorm.ErrDuplicatedKey, true},
		{"wrapped gorm", fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey), true},
		{"mysql 1062", &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}, true},
		{"mysql other", &mysql.MySQLError{Number: 1452, Message: "foreign key"}, false},
		{"sqlite unique", errors.New("constraint failed: UNIQUE constraint failed: habit_checkins.habit_id, habit_checkins.date (2067)"), true},
		{"other", errors.New("connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isDuplicateKey(tt.err))
		})
	}
}
