package user

import (
	"github.com/zmb3/spotify"
	"gorm.io/gorm"
)

type UserContainer struct {
	Repo    UserRepository
	Service Service
	Handler *Handler
}

func NewUserContainer(db *gorm.DB, authenticator spotify.Authenticator) *UserContainer {
	repo := NewRepository(db)
	service := NewService(repo, authenticator)
	handler := NewHandler(service)

	return &UserContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
