package repository

import (
	"context"

	"msistore/internal/domain/model"
)

type UserInfoRepository interface {
	FindByUserID(ctx context.Context, userID int64) (model.UserInfo, error)
	Create(ctx context.Context, info model.UserInfo) (model.UserInfo, error)
	Update(ctx context.Context, info model.UserInfo) error
}
