package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bagdasarian/taskhub/internal/domain"
	"github.com/bagdasarian/taskhub/internal/repository"
)

// IsDueTomorrow сообщает, нужно ли напоминание: дедлайн завтра и задача не закрыта
func IsDueTomorrow(task *domain.Task, now time.Time) bool {
	if task.Status == domain.StatusDone {
		return false
	}
	tomorrow := now.AddDate(0, 0, 1)
	y1, m1, d1 := task.DueDate.Date()
	y2, m2, d2 := tomorrow.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func ReminderMessage(title string) string {
	return fmt.Sprintf("%s is due in one day", title)
}

// generateDueReminders создает напоминания при чтении списка задач.
// Для каждой задачи существует не больше одного напоминания: проверка по task_id
// плюс частичный уникальный индекс на случай конкурентных запросов.
// Ошибки не прерывают листинг - уведомление вторично по отношению к данным.
func generateDueReminders(
	ctx context.Context,
	notifications repository.NotificationRepository,
	logger *slog.Logger,
	tasks []*domain.Task,
	recipientID *int64,
) {
	now := time.Now()
	for _, task := range tasks {
		if !IsDueTomorrow(task, now) {
			continue
		}

		exists, err := notifications.ExistsForTask(ctx, task.ID)
		if err != nil {
			logger.Error("due date reminder check failed", "task_id", task.ID, "error", err)
			continue
		}
		if exists {
			continue
		}

		reminder := &domain.Notification{
			UserID:     recipientID,
			CompanyID:  task.Owner.CompanyID,
			PersonalID: task.Owner.PersonalID,
			TaskID:     &task.ID,
			Kind:       domain.KindReminder,
			Message:    ReminderMessage(task.Title),
		}
		if err := notifications.CreateReminder(ctx, reminder); err != nil {
			logger.Error("due date reminder creation failed", "task_id", task.ID, "error", err)
		}
	}
}
