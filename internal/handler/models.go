package handler

import "time"

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Username  string `json:"username" validate:"required,min=3,max=150"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password" validate:"required,min=8"`
	Password2 string `json:"password2" validate:"required,eqfield=Password"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserResponse struct {
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	Username    string `json:"username"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	IsSuperuser bool   `json:"is_superuser"`
}

type ProfileUpdateRequest struct {
	Email     *string `json:"email" validate:"omitempty,email"`
	Username  *string `json:"username" validate:"omitempty,min=3,max=150"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Password  *string `json:"password" validate:"omitempty,min=8"`
}

type CompanyRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Plan    bool   `json:"plan"`
	AdminID *int64 `json:"admin_id"`
}

type RenameCompanyRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

type MemberResponse struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type CompanyResponse struct {
	ID             int64            `json:"id"`
	Name           string           `json:"name"`
	Plan           bool             `json:"plan"`
	AdminID        int64            `json:"admin_id"`
	PaymentDueDate *time.Time       `json:"payment_due_date,omitempty"`
	Users          []MemberResponse `json:"users"`
	InvitedUsers   []MemberResponse `json:"invited_users"`
	CreatedAt      time.Time        `json:"created_at"`
}

type CompanyDetailsResponse struct {
	Company       CompanyResponse        `json:"company"`
	Tasks         []TaskResponse         `json:"tasks"`
	Notifications []NotificationResponse `json:"notifications"`
	NonMembers    []UserResponse         `json:"non_members"`
}

type PersonalRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	AdminID *int64 `json:"admin_id"`
}

type PersonalResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	AdminID   int64     `json:"admin_id"`
	CreatedAt time.Time `json:"created_at"`
}

type UserCompaniesResponse struct {
	AdminOf  *CompanyResponse  `json:"admin_of,omitempty"`
	MemberOf *CompanyResponse  `json:"member_of,omitempty"`
	Personal *PersonalResponse `json:"personal,omitempty"`
}

type AddMemberRequest struct {
	UserID int64 `json:"user_id" validate:"required"`
}

type TaskRequest struct {
	Title       string     `json:"title" validate:"required,max=200"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Status      string     `json:"status"`
	CategoryID  *int64     `json:"category_id"`
	AssignedTo  []int64    `json:"assigned_to"`
}

type TaskUpdateRequest struct {
	Title       *string    `json:"title" validate:"omitempty,max=200"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Status      *string    `json:"status"`
	CategoryID  *int64     `json:"category_id"`
	AssignedTo  *[]int64   `json:"assigned_to"`
}

type TaskResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedBy   int64     `json:"created_by"`
	CompanyID   *int64    `json:"company_id,omitempty"`
	PersonalID  *int64    `json:"personal_id,omitempty"`
	CategoryID  *int64    `json:"category_id,omitempty"`
	DueDate     time.Time `json:"due_date"`
	Status      string    `json:"status"`
	AssignedTo  []int64   `json:"assigned_to"`
	CreatedAt   time.Time `json:"created_at"`
}

type CategoryRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type CategoryResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	PersonalID *int64 `json:"personal_id,omitempty"`
}

type CommentRequest struct {
	Text string `json:"text" validate:"required"`
}

type CommentResponse struct {
	ID        int64     `json:"id"`
	TaskID    int64     `json:"task_id"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type NotificationRequest struct {
	CompanyID  *int64 `json:"company_id"`
	PersonalID *int64 `json:"personal_id"`
	TaskID     *int64 `json:"task_id"`
	Kind       string `json:"kind"`
	Message    string `json:"message"`
}

type NotificationResponse struct {
	ID         int64     `json:"id"`
	UserID     *int64    `json:"user_id,omitempty"`
	CompanyID  *int64    `json:"company_id,omitempty"`
	PersonalID *int64    `json:"personal_id,omitempty"`
	TaskID     *int64    `json:"task_id,omitempty"`
	Kind       string    `json:"kind"`
	Message    string    `json:"message"`
	IsRead     bool      `json:"is_read"`
	CreatedAt  time.Time `json:"created_at"`
}
