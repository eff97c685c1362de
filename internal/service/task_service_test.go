package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bagdasarian/taskhub/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTaskServiceForTest() (
	TaskService,
	*MockTaskRepository,
	*MockCompanyRepository,
	*MockPersonalAccountRepository,
	*MockUserRepository,
	*MockCategoryRepository,
	*MockNotificationRepository,
) {
	mockTaskRepo := new(MockTaskRepository)
	mockCompanyRepo := new(MockCompanyRepository)
	mockPersonalRepo := new(MockPersonalAccountRepository)
	mockUserRepo := new(MockUserRepository)
	mockCategoryRepo := new(MockCategoryRepository)
	mockNotificationRepo := new(MockNotificationRepository)

	service := NewTaskService(
		mockTaskRepo, mockCompanyRepo, mockPersonalRepo,
		mockUserRepo, mockCategoryRepo, mockNotificationRepo,
		discardLogger(),
	)
	return service, mockTaskRepo, mockCompanyRepo, mockPersonalRepo, mockUserRepo, mockCategoryRepo, mockNotificationRepo
}

func TestTaskService_CreateTask(t *testing.T) {
	t.Run("создание с двумя назначенными рассылает два уведомления", func(t *testing.T) {
		service, mockTaskRepo, mockCompanyRepo, _, mockUserRepo, _, mockNotificationRepo := newTaskServiceForTest()
		ctx := context.Background()

		actor := &domain.User{ID: 10, Username: "boss"}
		companyID := int64(1)

		mockCompanyRepo.On("GetByID", mock.Anything, companyID).
			Return(&domain.Company{ID: 1, Name: "acme", AdminID: 10}, nil).Once()
		mockUserRepo.On("GetByID", mock.Anything, int64(20)).Return(&domain.User{ID: 20}, nil).Once()
		mockUserRepo.On("GetByID", mock.Anything, int64(21)).Return(&domain.User{ID: 21}, nil).Once()
		mockTaskRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Task")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Task).ID = 100
			}).Return(nil).Once()

		var notifications []*domain.Notification
		mockNotificationRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Notification")).
			Run(func(args mock.Arguments) {
				notifications = append(notifications, args.Get(1).(*domain.Notification))
			}).Return(nil).Twice()

		task := &domain.Task{
			Title:      "Ship v1",
			Owner:      domain.CompanyOwner(companyID),
			AssignedTo: []int64{20, 21},
			DueDate:    time.Now().AddDate(0, 0, 7),
			Status:     domain.StatusTodo,
		}

		result, err := service.CreateTask(ctx, actor, task)

		require.NoError(t, err)
		assert.Equal(t, int64(10), result.CreatedBy)
		require.Len(t, notifications, 2)
		for _, n := range notifications {
			assert.Equal(t, domain.KindAssignment, n.Kind)
			assert.Equal(t, `You have been assigned the task "Ship v1"`, n.Message)
			// без ссылки на задачу, чтобы не подавить будущее напоминание
			assert.Nil(t, n.TaskID)
		}
		assert.Equal(t, int64(20), *notifications[0].UserID)
		assert.Equal(t, int64(21), *notifications[1].UserID)
		mockTaskRepo.AssertExpectations(t)
		mockNotificationRepo.AssertExpectations(t)
	})

	t.Run("сбой одного уведомления не отменяет ни задачу, ни остальные", func(t *testing.T) {
		service, mockTaskRepo, mockCompanyRepo, _, mockUserRepo, _, mockNotificationRepo := newTaskServiceForTest()
		ctx := context.Background()

		actor := &domain.User{ID: 10}
		companyID := int64(1)

		mockCompanyRepo.On("GetByID", mock.Anything, companyID).
			Return(&domain.Company{ID: 1, AdminID: 10}, nil).Once()
		mockUserRepo.On("GetByID", mock.Anything, int64(20)).Return(&domain.User{ID: 20}, nil).Once()
		mockUserRepo.On("GetByID", mock.Anything, int64(21)).Return(&domain.User{ID: 21}, nil).Once()
		mockTaskRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Task")).Return(nil).Once()

		mockNotificationRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Notification")).
			Return(errors.New("insert failed")).Once()
		mockNotificationRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Notification")).
			Return(nil).Once()

		task := &domain.Task{
			Title:      "Ship v1",
			Owner:      domain.CompanyOwner(companyID),
			AssignedTo: []int64{20, 21},
			DueDate:    time.Now().AddDate(0, 0, 7),
		}

		_, err := service.CreateTask(ctx, actor, task)

		require.NoError(t, err)
		mockNotificationRepo.AssertNumberOfCalls(t, "Create", 2)
	})

	t.Run("несуществующие назначенные молча отбрасываются", func(t *testing.T) {
		service, mockTaskRepo, mockCompanyRepo, _, mockUserRepo, _, _ := newTaskServiceForTest()
		ctx := context.Background()

		actor := &domain.User{ID: 10}
		companyID := int64(1)

		mockCompanyRepo.On("GetByID", mock.Anything, companyID).
			Return(&domain.Company{ID: 1, AdminID: 10}, nil).Once()
		mockUserRepo.On("GetByID", mock.Anything, int64(20)).Return(&domain.User{ID: 20}, nil).Once()
		mockUserRepo.On("GetByID", mock.Anything, int64(99)).
			Return(nil, domain.NewNotFoundError("user")).Once()
		mockTaskRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Task")).Return(nil).Once()

		task := &domain.Task{
			Title:      "Ship v1",
			Owner:      domain.CompanyOwner(companyID),
			AssignedTo: []int64{20, 99},
			DueDate:    time.Now().AddDate(0, 0, 7),
		}

		result, err := service.CreateTask(ctx, actor, task)

		require.NoError(t, err)
		assert.Equal(t, []int64{20}, result.AssignedTo)
	})

	t.Run("ошибка: оба владельца сразу", func(t *testing.T) {
		service, mockTaskRepo, _, _, _, _, _ := newTaskServiceForTest()
		ctx := context.Background()

		companyID := int64(1)
		personalID := int64(2)
		task := &domain.Task{
			Title: "Ship v1",
			Owner: domain.TaskOwner{CompanyID: &companyID, PersonalID: &personalID},
		}

		_, err := service.CreateTask(ctx, &domain.User{ID: 10}, task)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidState))
		mockTaskRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("ошибка: владельца нет вовсе", func(t *testing.T) {
		service, mockTaskRepo, _, _, _, _, _ := newTaskServiceForTest()
		ctx := context.Background()

		task := &domain.Task{Title: "Ship v1"}

		_, err := service.CreateTask(ctx, &domain.User{ID: 10}, task)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidState))
		mockTaskRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestTaskService_ListTasks(t *testing.T) {
	t.Run("листинг создает напоминание для задачи с дедлайном завтра", func(t *testing.T) {
		service, mockTaskRepo, mockCompanyRepo, _, _, _, mockNotificationRepo := newTaskServiceForTest()
		ctx := context.Background()

		companyID := int64(1)
		tomorrow := time.Now().AddDate(0, 0, 1)
		tasks := []*domain.Task{
			{ID: 100, Title: "Ship v1", Owner: domain.CompanyOwner(companyID), DueDate: tomorrow, Status: domain.StatusTodo},
			{ID: 101, Title: "Later", Owner: domain.CompanyOwner(companyID), DueDate: tomorrow.AddDate(0, 0, 5), Status: domain.StatusTodo},
		}

		mockCompanyRepo.On("GetByID", mock.Anything, companyID).
			Return(&domain.Company{ID: 1, AdminID: 10}, nil).Once()
		mockTaskRepo.On("ListByCompany", mock.Anything, companyID).Return(tasks, nil).Once()
		mockNotificationRepo.On("ExistsForTask", mock.Anything, int64(100)).Return(false, nil).Once()

		var reminder *domain.Notification
		mockNotificationRepo.On("CreateReminder", mock.Anything, mock.AnythingOfType("*domain.Notification")).
			Run(func(args mock.Arguments) {
				reminder = args.Get(1).(*domain.Notification)
			}).Return(nil).Once()

		result, err := service.ListTasks(ctx, domain.CompanyOwner(companyID))

		require.NoError(t, err)
		assert.Len(t, result, 2)
		require.NotNil(t, reminder)
		assert.Equal(t, "Ship v1 is due in one day", reminder.Message)
		assert.Equal(t, domain.KindReminder, reminder.Kind)
		require.NotNil(t, reminder.TaskID)
		assert.Equal(t, int64(100), *reminder.TaskID)
		mockNotificationRepo.AssertExpectations(t)
	})

	t.Run("повторный листинг не создает второе напоминание", func(t *testing.T) {
		service, mockTaskRepo, mockCompanyRepo, _, _, _, mockNotificationRepo := newTaskServiceForTest()
		ctx := context.Background()

		companyID := int64(1)
		tomorrow := time.Now().AddDate(0, 0, 1)
		tasks := []*domain.Task{
			{ID: 100, Title: "Ship v1", Owner: domain.CompanyOwner(companyID), DueDate: tomorrow, Status: domain.StatusTodo},
		}

		mockCompanyRepo.On("GetByID", mock.Anything, companyID).
			Return(&domain.Company{ID: 1, AdminID: 10}, nil).Once()
		mockTaskRepo.On("ListByCompany", mock.Anything, companyID).Return(tasks, nil).Once()
		mockNotificationRepo.On("ExistsForTask", mock.Anything, int64(100)).Return(true, nil).Once()

		_, err := service.ListTasks(ctx, domain.CompanyOwner(companyID))

		require.NoError(t, err)
		mockNotificationRepo.AssertNotCalled(t, "CreateReminder", mock.Anything, mock.Anything)
	})

	t.Run("закрытая задача не получает напоминание", func(t *testing.T) {
		service, mockTaskRepo, mockCompanyRepo, _, _, _, mockNotificationRepo := newTaskServiceForTest()
		ctx := context.Background()

		companyID := int64(1)
		tomorrow := time.Now().AddDate(0, 0, 1)
		tasks := []*domain.Task{
			{ID: 100, Title: "Ship v1", Owner: domain.CompanyOwner(companyID), DueDate: tomorrow, Status: domain.StatusDone},
		}

		mockCompanyRepo.On("GetByID", mock.Anything, companyID).
			Return(&domain.Company{ID: 1, AdminID: 10}, nil).Once()
		mockTaskRepo.On("ListByCompany", mock.Anything, companyID).Return(tasks, nil).Once()

		_, err := service.ListTasks(ctx, domain.CompanyOwner(companyID))

		require.NoError(t, err)
		mockNotificationRepo.AssertNotCalled(t, "ExistsForTask", mock.Anything, mock.Anything)
		mockNotificationRepo.AssertNotCalled(t, "CreateReminder", mock.Anything, mock.Anything)
	})
}

func TestTaskService_GetTask(t *testing.T) {
	t.Run("чужая задача не видна", func(t *testing.T) {
		service, mockTaskRepo, _, _, _, _, _ := newTaskServiceForTest()
		ctx := context.Background()

		otherCompany := int64(2)
		mockTaskRepo.On("GetByID", mock.Anything, int64(100)).
			Return(&domain.Task{ID: 100, Owner: domain.CompanyOwner(otherCompany)}, nil).Once()

		_, err := service.GetTask(ctx, domain.CompanyOwner(1), 100)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestIsDueTomorrow(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)

	t.Run("дедлайн завтра", func(t *testing.T) {
		task := &domain.Task{DueDate: time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), Status: domain.StatusTodo}
		assert.True(t, IsDueTomorrow(task, now))
	})

	t.Run("дедлайн сегодня", func(t *testing.T) {
		task := &domain.Task{DueDate: time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC), Status: domain.StatusTodo}
		assert.False(t, IsDueTomorrow(task, now))
	})

	t.Run("закрытая задача", func(t *testing.T) {
		task := &domain.Task{DueDate: time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), Status: domain.StatusDone}
		assert.False(t, IsDueTomorrow(task, now))
	})
}
