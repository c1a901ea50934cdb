package service

import (
	"context"
	"errors"
	"time"

	"github.com/statusfeed/statusfeed-go/internal/model"
	"github.com/statusfeed/statusfeed-go/internal/repository"
)

var (
	ErrContentRequired = errors.New("content is required")
	ErrStatusNotFound  = errors.New("status not found")
	ErrNotStatusOwner  = errors.New("Forbidden")
)

// StatusService handles status post business logic. Mutations are ownership
// checked: only the owner may update or delete a status. Retrieval by id is
// open to any authenticated caller, matching the product's current behavior.
type StatusService struct {
	statuses repository.StatusRepository
	users    repository.UserRepository
}

// NewStatusService creates a new StatusService.
func NewStatusService(statuses repository.StatusRepository, users repository.UserRepository) *StatusService {
	return &StatusService{statuses: statuses, users: users}
}

// Create persists a new status owned by the given user.
func (s *StatusService) Create(ctx context.Context, user *model.User, req model.StatusRequest) (model.StatusResponse, error) {
	if req.Content == "" {
		return model.StatusResponse{}, ErrContentRequired
	}

	status := &model.Status{
		UserID:        user.ID,
		Content:       req.Content,
		DatePublished: time.Now().UTC(),
	}

	if err := s.statuses.Create(ctx, status); err != nil {
		return model.StatusResponse{}, err
	}

	return statusToResponse(status, model.NewUserResponse(user)), nil
}

// List returns all statuses owned by the given user, in insertion order.
func (s *StatusService) List(ctx context.Context, user *model.User) ([]model.StatusResponse, error) {
	statuses, err := s.statuses.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	owner := model.NewUserResponse(user)
	result := make([]model.StatusResponse, len(statuses))
	for i := range statuses {
		result[i] = statusToResponse(&statuses[i], owner)
	}

	return result, nil
}

// Get returns the status with the given id, whoever owns it.
func (s *StatusService) Get(ctx context.Context, id int64) (model.StatusResponse, error) {
	status, err := s.statuses.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStatusNotFound) {
			return model.StatusResponse{}, ErrStatusNotFound
		}
		return model.StatusResponse{}, err
	}

	owner, err := s.users.GetByID(ctx, status.UserID)
	if err != nil {
		return model.StatusResponse{}, err
	}

	return statusToResponse(status, model.NewUserResponse(owner)), nil
}

// Update replaces the content of a status the user owns. Owner and
// publication date are left untouched.
func (s *StatusService) Update(ctx context.Context, user *model.User, id int64, req model.StatusRequest) (model.StatusResponse, error) {
	if req.Content == "" {
		return model.StatusResponse{}, ErrContentRequired
	}

	status, err := s.statuses.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStatusNotFound) {
			return model.StatusResponse{}, ErrStatusNotFound
		}
		return model.StatusResponse{}, err
	}

	if status.UserID != user.ID {
		return model.StatusResponse{}, ErrNotStatusOwner
	}

	status.Content = req.Content
	if err := s.statuses.Update(ctx, status); err != nil {
		return model.StatusResponse{}, err
	}

	return statusToResponse(status, model.NewUserResponse(user)), nil
}

// Delete permanently removes a status the user owns.
func (s *StatusService) Delete(ctx context.Context, user *model.User, id int64) error {
	status, err := s.statuses.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStatusNotFound) {
			return ErrStatusNotFound
		}
		return err
	}

	if status.UserID != user.ID {
		return ErrNotStatusOwner
	}

	if err := s.statuses.Delete(ctx, status.ID); err != nil {
		if errors.Is(err, repository.ErrStatusNotFound) {
			return ErrStatusNotFound
		}
		return err
	}

	return nil
}

func statusToResponse(status *model.Status, owner model.UserResponse) model.StatusResponse {
	return model.StatusResponse{
		ID:            status.ID,
		Content:       status.Content,
		DatePublished: status.DatePublished,
		User:          owner,
	}
}
