package domain

import "time"

type User struct {
	ID           int64
	Email        string
	Username     string
	FirstName    string
	LastName     string
	PasswordHash string
	IsSuperuser  bool
	CreatedAt    time.Time
}
