package services

import (
	"giglink_backend/internal/models"
	"giglink_backend/internal/repositories"
	"giglink_backend/internal/services/dto"
	"giglink_backend/pkg/apperrors"
)

type FeedService struct {
	postRepo repositories.PostRepository
}

func NewFeedService(postRepo repositories.PostRepository) *FeedService {
	return &FeedService{postRepo: postRepo}
}

func (s *FeedService) CreatePost(authorID string, req *dto.CreatePostRequest) (*models.Post, error) {
	post := &models.Post{
		AuthorID: authorID,
		Body:     req.Body,
		Tags:     listJSON(req.Tags),
	}
	if err := s.postRepo.Create(post); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return post, nil
}

func (s *FeedService) ListRecent(limit int) ([]models.Post, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	posts, err := s.postRepo.ListRecent(limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return posts, nil
}

func (s *FeedService) DeletePost(postID, callerID string) error {
	post, err := s.postRepo.FindByID(postID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPostNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if post.AuthorID != callerID {
		return apperrors.ErrNotPostAuthor
	}

	if err := s.postRepo.Delete(post.ID); err != nil {
		if apperrors.Is(err, repositories.ErrPostNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}
