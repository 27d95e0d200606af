package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/mail"

	"github.com/google/uuid"

	"tribehub/internal/domain"
	"tribehub/internal/repository"
)

type UserService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	ListAll(ctx context.Context) ([]domain.Profile, error)
	Update(ctx context.Context, userID uuid.UUID, input domain.UpdateUserInput) (*domain.User, error)
	SuggestUsernames(ctx context.Context, partial string) ([]string, error)
	UploadProfilePicture(ctx context.Context, userID uuid.UUID, fileSize int64, mimeType string, reader io.Reader) (string, error)
}

type userService struct {
	userRepo repository.UserRepository
	media    MediaService
}

func NewUserService(userRepo repository.UserRepository, media MediaService) UserService {
	return &userService{
		userRepo: userRepo,
		media:    media,
	}
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, NotFoundf("User not found")
	}
	return user, nil
}

func (s *userService) ListAll(ctx context.Context) ([]domain.Profile, error) {
	users, err := s.userRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	profiles := make([]domain.Profile, 0, len(users))
	for i := range users {
		profiles = append(profiles, users[i].Profile())
	}
	return profiles, nil
}

func (s *userService) Update(ctx context.Context, userID uuid.UUID, input domain.UpdateUserInput) (*domain.User, error) {
	if len(input.Name) < 3 || len(input.Name) > 40 {
		return nil, Validationf("name must be between 3 and 40 characters")
	}
	if _, err := mail.ParseAddress(input.Email); err != nil {
		return nil, Validationf("email must be a valid email address")
	}
	if len(input.Username) < 3 || len(input.Username) > 200 {
		return nil, Validationf("username must be between 3 and 200 characters")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, NotFoundf("User not found")
	}

	user.Name = input.Name
	user.Email = input.Email
	user.Username = input.Username
	if input.Country != nil {
		user.Country = input.Country
	}
	if input.Sex != nil {
		user.Sex = titleCase(input.Sex)
	}
	if input.Hobbies != nil {
		user.Hobbies = input.Hobbies
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, Conflictf("email or username is already taken")
		}
		return nil, err
	}

	return user, nil
}

// SuggestUsernames produces five free usernames derived from the partial by
// appending a counter and skipping taken ones.
func (s *userService) SuggestUsernames(ctx context.Context, partial string) ([]string, error) {
	if partial == "" {
		return nil, Validationf("partial username is required")
	}

	existing, err := s.userRepo.ListUsernamesByPrefix(ctx, partial)
	if err != nil {
		return nil, err
	}

	taken := make(map[string]struct{}, len(existing))
	for _, name := range existing {
		taken[name] = struct{}{}
	}

	suggestions := make([]string, 0, 5)
	for counter := 1; len(suggestions) < 5; counter++ {
		candidate := fmt.Sprintf("%s%d", partial, counter)
		if _, ok := taken[candidate]; !ok {
			suggestions = append(suggestions, candidate)
		}
	}
	return suggestions, nil
}

func (s *userService) UploadProfilePicture(ctx context.Context, userID uuid.UUID, fileSize int64, mimeType string, reader io.Reader) (string, error) {
	url, err := s.media.UploadAvatar(ctx, userID, fileSize, mimeType, reader)
	if err != nil {
		return "", err
	}

	if err := s.userRepo.SetProfilePicture(ctx, userID, url); err != nil {
		return "", err
	}
	return url, nil
}
