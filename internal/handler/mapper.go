package handler

import (
	"github.com/bagdasarian/taskhub/internal/domain"
	"github.com/bagdasarian/taskhub/internal/service"
)

func domainUserToHTTP(user *domain.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		Username:    user.Username,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		IsSuperuser: user.IsSuperuser,
	}
}

func domainUsersToHTTP(users []*domain.User) []UserResponse {
	result := make([]UserResponse, 0, len(users))
	for _, user := range users {
		result = append(result, domainUserToHTTP(user))
	}
	return result
}

func domainMembersToHTTP(members []domain.Member) []MemberResponse {
	result := make([]MemberResponse, 0, len(members))
	for _, member := range members {
		result = append(result, MemberResponse{
			UserID:   member.UserID,
			Username: member.Username,
			Email:    member.Email,
		})
	}
	return result
}

func domainCompanyToHTTP(company *domain.Company) CompanyResponse {
	return CompanyResponse{
		ID:             company.ID,
		Name:           company.Name,
		Plan:           company.Plan,
		AdminID:        company.AdminID,
		PaymentDueDate: company.PaymentDueDate,
		Users:          domainMembersToHTTP(company.Users),
		InvitedUsers:   domainMembersToHTTP(company.InvitedUsers),
		CreatedAt:      company.CreatedAt,
	}
}

func domainPersonalToHTTP(account *domain.PersonalAccount) PersonalResponse {
	return PersonalResponse{
		ID:        account.ID,
		Name:      account.Name,
		AdminID:   account.AdminID,
		CreatedAt: account.CreatedAt,
	}
}

func domainTaskToHTTP(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		CreatedBy:   task.CreatedBy,
		CompanyID:   task.Owner.CompanyID,
		PersonalID:  task.Owner.PersonalID,
		CategoryID:  task.CategoryID,
		DueDate:     task.DueDate,
		Status:      string(task.Status),
		AssignedTo:  task.AssignedTo,
		CreatedAt:   task.CreatedAt,
	}
}

func domainTasksToHTTP(tasks []*domain.Task) []TaskResponse {
	result := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		result = append(result, domainTaskToHTTP(task))
	}
	return result
}

func domainCategoryToHTTP(category *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:         category.ID,
		Name:       category.Name,
		PersonalID: category.PersonalID,
	}
}

func domainCommentToHTTP(comment *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:        comment.ID,
		TaskID:    comment.TaskID,
		UserID:    comment.UserID,
		Username:  comment.Username,
		Text:      comment.Text,
		CreatedAt: comment.CreatedAt,
	}
}

func domainNotificationToHTTP(notification *domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:         notification.ID,
		UserID:     notification.UserID,
		CompanyID:  notification.CompanyID,
		PersonalID: notification.PersonalID,
		TaskID:     notification.TaskID,
		Kind:       string(notification.Kind),
		Message:    notification.Message,
		IsRead:     notification.IsRead,
		CreatedAt:  notification.CreatedAt,
	}
}

func domainNotificationsToHTTP(notifications []*domain.Notification) []NotificationResponse {
	result := make([]NotificationResponse, 0, len(notifications))
	for _, notification := range notifications {
		result = append(result, domainNotificationToHTTP(notification))
	}
	return result
}

func companyDetailsToHTTP(details *service.CompanyDetails) CompanyDetailsResponse {
	return CompanyDetailsResponse{
		Company:       domainCompanyToHTTP(details.Company),
		Tasks:         domainTasksToHTTP(details.Tasks),
		Notifications: domainNotificationsToHTTP(details.Notifications),
		NonMembers:    domainUsersToHTTP(details.NonMembers),
	}
}
