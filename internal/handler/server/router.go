package server

import (
	"net/http"

	"github.com/bagdasarian/taskhub/internal/handler"
)

func SetupRoutes(mux *http.ServeMux, h *handler.Handler) {
	mux.HandleFunc("POST /auth/register", h.Register)
	mux.HandleFunc("POST /auth/login", h.Login)

	// все остальное за Bearer-токеном
	protected := func(pattern string, handlerFunc http.HandlerFunc) {
		mux.Handle(pattern, h.Authenticate(handlerFunc))
	}

	protected("POST /users/{userID}/profile", h.UpdateProfile)
	protected("GET /users/companies", h.GetUserCompanies)
	protected("GET /users/{userID}/tasks", h.GetAssignedTasks)
	protected("GET /users", h.ListUsers)
	protected("DELETE /users/{userID}", h.DeleteUser)

	protected("POST /companies", h.CreateCompany)
	protected("GET /companies/{companyID}", h.GetCompany)
	protected("PUT /companies/{companyID}", h.RenameCompany)
	protected("DELETE /companies/{companyID}", h.DeleteCompany)

	protected("GET /companies/{companyID}/users", h.ListMembers)
	protected("POST /companies/{companyID}/users", h.AddMember)
	protected("DELETE /companies/{companyID}/users/{userID}", h.RemoveMember)

	protected("POST /companies/{companyID}/invites/{userID}", h.AcceptInvite)
	protected("DELETE /companies/{companyID}/invites/{userID}", h.DeclineInvite)

	protected("GET /companies/{companyID}/tasks", h.ListTasks)
	protected("POST /companies/{companyID}/tasks", h.CreateTask)
	protected("GET /companies/{companyID}/tasks/{taskID}", h.GetTask)
	protected("PUT /companies/{companyID}/tasks/{taskID}", h.UpdateTask)
	protected("DELETE /companies/{companyID}/tasks/{taskID}", h.DeleteTask)

	protected("POST /personal", h.CreatePersonalAccount)
	protected("DELETE /personal/{personalID}", h.DeletePersonalAccount)

	protected("GET /personal/{personalID}/tasks", h.ListTasks)
	protected("POST /personal/{personalID}/tasks", h.CreateTask)
	protected("GET /personal/{personalID}/tasks/{taskID}", h.GetTask)
	protected("PUT /personal/{personalID}/tasks/{taskID}", h.UpdateTask)
	protected("DELETE /personal/{personalID}/tasks/{taskID}", h.DeleteTask)

	protected("GET /personal/{personalID}/categories", h.ListCategories)
	protected("POST /personal/{personalID}/categories", h.CreateCategory)
	protected("GET /categories/{categoryID}", h.GetCategory)
	protected("PUT /categories/{categoryID}", h.UpdateCategory)
	protected("DELETE /categories/{categoryID}", h.DeleteCategory)

	protected("GET /tasks/{taskID}/comments", h.ListComments)
	protected("POST /tasks/{taskID}/comments", h.CreateComment)
	protected("DELETE /tasks/{taskID}/comments/{commentID}", h.DeleteComment)

	protected("GET /notifications/{userID}", h.ListNotifications)
	protected("POST /notifications/{userID}", h.CreateNotification)
	protected("GET /notifications/{userID}/{notificationID}", h.GetNotification)
	protected("DELETE /notifications/{userID}/{notificationID}", h.DeleteNotification)

	protected("GET /admin/companies", h.ListAllCompanies)
}
