package service

import (
	"context"

	"github.com/bagdasarian/taskhub/internal/domain"
	"github.com/bagdasarian/taskhub/internal/repository"
)

type commentService struct {
	commentRepo repository.CommentRepository
	taskRepo    repository.TaskRepository
}

// NewCommentService создает новый экземпляр CommentService
func NewCommentService(
	commentRepo repository.CommentRepository,
	taskRepo repository.TaskRepository,
) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		taskRepo:    taskRepo,
	}
}

func (s *commentService) CreateComment(ctx context.Context, actor *domain.User, taskID int64, text string) (*domain.Comment, error) {
	if _, err := s.taskRepo.GetByID(ctx, taskID); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		TaskID: taskID,
		UserID: actor.ID,
		Text:   text,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	comment.Username = actor.Username

	return comment, nil
}

func (s *commentService) ListComments(ctx context.Context, taskID int64) ([]*domain.Comment, error) {
	if _, err := s.taskRepo.GetByID(ctx, taskID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByTask(ctx, taskID)
}

func (s *commentService) DeleteComment(ctx context.Context, actor *domain.User, taskID, commentID int64) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.TaskID != taskID {
		return domain.NewNotFoundError("comment")
	}
	// удалять может автор либо суперпользователь
	if comment.UserID != actor.ID && !actor.IsSuperuser {
		return domain.ErrUnauthorized
	}
	return s.commentRepo.Delete(ctx, commentID)
}
