package repository

import (
	"context"

	"msistore/internal/domain/model"
)

type UserRepository interface {
	FindByID(ctx context.Context, id int64) (model.User, error)
	FindByUsername(ctx context.Context, username string) (model.User, error)
	Create(ctx context.Context, u model.User) (model.User, error)

	//許可されたプロフィール項目だけ更新する
	UpdateProfile(ctx context.Context, id int64, firstName, lastName, email, avatarURL string) error
	UpdatePasswordHash(ctx context.Context, id int64, hash string) error
}

type RoleRepository interface {
	FindByID(ctx context.Context, id int64) (model.Role, error)

	//起動時のシード用
	EnsureSeed(ctx context.Context) error
}
