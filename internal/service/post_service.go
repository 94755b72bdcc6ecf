package service

import (
	"context"
	"log/slog"
	"strings"

	"devconnect/internal/middleware"
	"devconnect/internal/models"
	"devconnect/internal/notifications"
	"devconnect/internal/observability"
	"devconnect/internal/repository"
	"devconnect/internal/validation"
)

// EventPublisher receives post activity after a mutation commits.
type EventPublisher interface {
	PublishPostEvent(ctx context.Context, event notifications.PostEvent) error
}

type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
	events   EventPublisher
}

func NewPostService(
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	events EventPublisher,
) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
		events:   events,
	}
}

func (s *PostService) record(ctx context.Context, operation string, err error, event notifications.PostEvent) {
	outcome := "success"
	switch {
	case err == nil:
	case models.IsKind(err, models.KindInternal):
		outcome = "error"
	default:
		outcome = "rejected"
	}
	observability.PostMutations.WithLabelValues(operation, outcome).Inc()

	if err != nil || s.events == nil {
		return
	}
	if pubErr := s.events.PublishPostEvent(ctx, event); pubErr != nil {
		middleware.Logger.WarnContext(ctx, "failed to publish post event",
			slog.String("type", event.Type),
			slog.String("error", pubErr.Error()),
		)
	}
}

// CreatePost stores a post with a snapshot of the author's name and avatar.
func (s *PostService) CreatePost(ctx context.Context, userID uint, content string) (post *models.Post, err error) {
	defer func() {
		var postID uint
		if post != nil {
			postID = post.ID
		}
		s.record(ctx, "create", err, notifications.PostEvent{
			Type: notifications.EventPostCreated, PostID: postID, UserID: userID,
		})
	}()

	content = strings.TrimSpace(content)
	if errs := validation.ValidateText("text", content); len(errs) > 0 {
		return nil, models.NewValidationError("Text is required", errs...)
	}

	author, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	post = &models.Post{
		UserID:       userID,
		Content:      content,
		AuthorName:   author.Name,
		AuthorAvatar: author.Avatar,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) GetPost(ctx context.Context, postID uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, postID)
}

func (s *PostService) ListPosts(ctx context.Context) ([]models.Post, error) {
	return s.postRepo.List(ctx)
}

// DeletePost removes the post when requesterID is its author.
func (s *PostService) DeletePost(ctx context.Context, postID, requesterID uint) (err error) {
	defer func() {
		s.record(ctx, "delete", err, notifications.PostEvent{
			Type: notifications.EventPostDeleted, PostID: postID, UserID: requesterID,
		})
	}()

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != requesterID {
		return models.NewForbiddenError("User not authorized")
	}
	return s.postRepo.Delete(ctx, postID)
}

// LikePost returns the post's likes, most recent first.
func (s *PostService) LikePost(ctx context.Context, postID, userID uint) (likes []models.Like, err error) {
	defer func() {
		s.record(ctx, "like", err, notifications.PostEvent{
			Type: notifications.EventPostLiked, PostID: postID, UserID: userID,
		})
	}()

	if err := s.postRepo.Like(ctx, postID, userID); err != nil {
		return nil, err
	}
	return s.postRepo.ListLikes(ctx, postID)
}

func (s *PostService) UnlikePost(ctx context.Context, postID, userID uint) (likes []models.Like, err error) {
	defer func() {
		s.record(ctx, "unlike", err, notifications.PostEvent{
			Type: notifications.EventPostUnliked, PostID: postID, UserID: userID,
		})
	}()

	if err := s.postRepo.Unlike(ctx, postID, userID); err != nil {
		return nil, err
	}
	return s.postRepo.ListLikes(ctx, postID)
}

// AddComment appends a comment and returns the post's comments in order.
func (s *PostService) AddComment(ctx context.Context, postID, userID uint, text string) (comments []models.Comment, err error) {
	var commentID uint
	defer func() {
		s.record(ctx, "comment", err, notifications.PostEvent{
			Type: notifications.EventPostCommented, PostID: postID, UserID: userID, CommentID: commentID,
		})
	}()

	text = strings.TrimSpace(text)
	if errs := validation.ValidateText("text", text); len(errs) > 0 {
		return nil, models.NewValidationError("Text is required", errs...)
	}

	author, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:       postID,
		UserID:       userID,
		Text:         text,
		AuthorName:   author.Name,
		AuthorAvatar: author.Avatar,
	}
	if err := s.postRepo.AddComment(ctx, comment); err != nil {
		return nil, err
	}
	commentID = comment.ID
	return s.postRepo.ListComments(ctx, postID)
}

// DeleteComment removes a comment when requesterID wrote it.
func (s *PostService) DeleteComment(ctx context.Context, postID, commentID, requesterID uint) (comments []models.Comment, err error) {
	defer func() {
		s.record(ctx, "uncomment", err, notifications.PostEvent{
			Type: notifications.EventPostUncommented, PostID: postID, UserID: requesterID, CommentID: commentID,
		})
	}()

	comment, err := s.postRepo.GetComment(ctx, postID, commentID)
	if err != nil {
		return nil, err
	}
	if comment.UserID != requesterID {
		return nil, models.NewForbiddenError("User not authorized")
	}
	if err := s.postRepo.DeleteComment(ctx, postID, commentID); err != nil {
		return nil, err
	}
	return s.postRepo.ListComments(ctx, postID)
}
