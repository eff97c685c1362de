package domain

import "time"

// FreePlanUserLimit - максимум участников компании без платного плана
const FreePlanUserLimit = 50

type Company struct {
	ID             int64
	Name           string
	Plan           bool
	AdminID        int64
	PaymentDueDate *time.Time
	Users          []Member
	InvitedUsers   []Member
	CreatedAt      time.Time
}

type Member struct {
	UserID   int64
	Username string
	Email    string
}

func (c *Company) IsMember(userID int64) bool {
	for _, m := range c.Users {
		if m.UserID == userID {
			return true
		}
	}
	return false
}

func (c *Company) IsInvited(userID int64) bool {
	for _, m := range c.InvitedUsers {
		if m.UserID == userID {
			return true
		}
	}
	return false
}
