package handler

import (
	"github.com/go-playground/validator/v10"

	"github.com/bagdasarian/taskhub/internal/service"
)

type Handler struct {
	userService         service.UserService
	companyService      service.CompanyService
	membershipService   service.MembershipService
	inviteService       service.InviteService
	taskService         service.TaskService
	categoryService     service.CategoryService
	commentService      service.CommentService
	notificationService service.NotificationService
	tokenService        service.TokenService
	validate            *validator.Validate
}

func NewHandler(
	userService service.UserService,
	companyService service.CompanyService,
	membershipService service.MembershipService,
	inviteService service.InviteService,
	taskService service.TaskService,
	categoryService service.CategoryService,
	commentService service.CommentService,
	notificationService service.NotificationService,
	tokenService service.TokenService,
) *Handler {
	return &Handler{
		userService:         userService,
		companyService:      companyService,
		membershipService:   membershipService,
		inviteService:       inviteService,
		taskService:         taskService,
		categoryService:     categoryService,
		commentService:      commentService,
		notificationService: notificationService,
		tokenService:        tokenService,
		validate:            validator.New(),
	}
}
