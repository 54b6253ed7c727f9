package model

// Checkin 记录某个习惯在某一天的完成情况
// habit_id + date 采用唯一索引，保证每个习惯每天最多一条
// swagger:model Checkin
type Checkin struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	HabitID uint   `gorm:"not null;uniqueIndex:idx_habit_checkin_date" json:"-"`
	Habit   *Habit `gorm:"foreignKey:HabitID;constraint:OnDelete:CASCADE" json:"habit"`
	Date    Date   `gorm:"type:date;not null;uniqueIndex:idx_habit_checkin_date" json:"date"`
}

func (Checkin) TableName() string {
	return "habit_checkins"
}
