package domain

import "time"

// Comment неизменяем после создания, поэтому updated_at отсутствует
type Comment struct {
	ID        int64
	TaskID    int64
	UserID    int64
	Username  string
	Text      string
	CreatedAt time.Time
}
