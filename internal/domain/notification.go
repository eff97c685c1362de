package domain

import "time"

// NotificationKind - тип уведомления вместо строкового маркера в message
type NotificationKind string

const (
	KindReminder   NotificationKind = "REMINDER"
	KindAssignment NotificationKind = "ASSIGNMENT"
	KindInvite     NotificationKind = "INVITE"
	KindMembership NotificationKind = "MEMBERSHIP"
	KindGeneric    NotificationKind = "GENERIC"
)

func (k NotificationKind) Valid() bool {
	switch k {
	case KindReminder, KindAssignment, KindInvite, KindMembership, KindGeneric:
		return true
	}
	return false
}

// Notification - слабосвязанная запись: ссылается на задачу/компанию,
// но ничем не владеет, её отсутствие не ломает консистентность
type Notification struct {
	ID         int64
	UserID     *int64
	CompanyID  *int64
	PersonalID *int64
	TaskID     *int64
	Kind       NotificationKind
	Message    string
	IsRead     bool
	CreatedAt  time.Time
}
