package domain

import "fmt"

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Это позволяет использовать errors.Is()
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	// ErrNotFound - ресурс не найден
	ErrNotFound = &DomainError{
		Code:    "NOT_FOUND",
		Message: "resource not found",
	}

	// ErrConflict - ресурс с таким именем уже существует
	ErrConflict = &DomainError{
		Code:    "CONFLICT",
		Message: "resource already exists",
	}

	// ErrInvalidState - операция нарушает инвариант данных
	ErrInvalidState = &DomainError{
		Code:    "INVALID_STATE",
		Message: "operation violates a data invariant",
	}

	// ErrAdminRemoval - нельзя удалить администратора из компании
	ErrAdminRemoval = &DomainError{
		Code:    "INVALID_STATE",
		Message: "cannot remove the admin from the company",
	}

	// ErrUnauthorized - неверные или отсутствующие учетные данные
	ErrUnauthorized = &DomainError{
		Code:    "UNAUTHORIZED",
		Message: "missing or invalid credentials",
	}

	// ErrInternal - внутренняя ошибка, детали не раскрываются наружу
	ErrInternal = &DomainError{
		Code:    "INTERNAL_ERROR",
		Message: "internal server error",
	}
)

// NewNotFoundError создает ошибку NOT_FOUND с дополнительным контекстом
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewConflictError создает ошибку CONFLICT с дополнительным контекстом
func NewConflictError(resource string) *DomainError {
	return &DomainError{
		Code:    "CONFLICT",
		Message: fmt.Sprintf("%s already exists", resource),
	}
}

// NewInvalidStateError создает ошибку INVALID_STATE с дополнительным контекстом
func NewInvalidStateError(message string) *DomainError {
	return &DomainError{
		Code:    "INVALID_STATE",
		Message: message,
	}
}

// NewBadRequestError создает ошибку BAD_REQUEST для некорректного запроса
func NewBadRequestError(message string) *DomainError {
	return &DomainError{
		Code:    "BAD_REQUEST",
		Message: message,
	}
}
