package domain

import "time"

type PersonalAccount struct {
	ID        int64
	Name      string
	AdminID   int64
	CreatedAt time.Time
}
