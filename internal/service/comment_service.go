package service

import (
	"context"

	"github.com/bagdasarian/taskhub/internal/domain"
)

type CommentService interface {
	CreateComment(ctx context.Context, actor *domain.User, taskID int64, text string) (*domain.Comment, error)
	ListComments(ctx context.Context, taskID int64) ([]*domain.Comment, error)
	DeleteComment(ctx context.Context, actor *domain.User, taskID, commentID int64) error
}
