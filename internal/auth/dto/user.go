package dto

import (
	"time"

	"github.com/angusyg/mean-stack/internal/auth/domain"
)

type UserOutput struct {
	ID        string          `json:"id"`
	Login     string          `json:"login"`
	Roles     []string        `json:"roles"`
	Settings  domain.Settings `json:"settings"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func NewUserOutput(user *domain.User) *UserOutput {
	return &UserOutput{
		ID:        user.ID,
		Login:     user.Login,
		Roles:     user.Roles,
		Settings:  user.Settings,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
