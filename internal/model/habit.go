package model

import "time"

// Habit 可追踪的习惯
// swagger:model Habit
type Habit struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Habit) TableName() string {
	return "habits"
}
