package domain

import "time"

type Status string

const (
	StatusTodo       Status = "TODO"
	StatusInProgress Status = "IN_PROGRESS"
	StatusDone       Status = "DONE"
)

func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// TaskOwner - владелец задачи: компания или личный аккаунт, строго один из двух
type TaskOwner struct {
	CompanyID  *int64
	PersonalID *int64
}

func CompanyOwner(companyID int64) TaskOwner {
	return TaskOwner{CompanyID: &companyID}
}

func PersonalOwner(personalID int64) TaskOwner {
	return TaskOwner{PersonalID: &personalID}
}

func (o TaskOwner) Validate() error {
	if o.CompanyID == nil && o.PersonalID == nil {
		return NewInvalidStateError("either company or personal account must own the task")
	}
	if o.CompanyID != nil && o.PersonalID != nil {
		return NewInvalidStateError("task cannot be owned by both a company and a personal account")
	}
	return nil
}

type Task struct {
	ID          int64
	Title       string
	Description string
	CreatedBy   int64
	Owner       TaskOwner
	CategoryID  *int64
	AssignedTo  []int64
	DueDate     time.Time
	Status      Status
	CreatedAt   time.Time
}

// DefaultDueDate - срок задачи по умолчанию: сегодня + 30 дней
func DefaultDueDate(now time.Time) time.Time {
	return now.AddDate(0, 0, 30)
}
