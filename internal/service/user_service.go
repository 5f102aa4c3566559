package service

import (
	"context"

	"github.com/news-comments-api/internal/models"
	"github.com/news-comments-api/internal/repository"
	"github.com/rs/zerolog"
)

// userService exposes the user directory read view
type userService struct {
	users repository.UserRepository
	log   zerolog.Logger
}

func newUserService(users repository.UserRepository, log zerolog.Logger) UserService {
	return &userService{
		users: users,
		log:   log.With().Str("service", "user").Logger(),
	}
}

// List returns all known commenters ordered by id
func (s *userService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}
