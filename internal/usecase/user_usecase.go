package usecase

import (
	"context"
	"net/http"
	"strings"

	"msistore/internal/domain/model"
	repo "msistore/internal/repository"
)

// 入力パスワードと保存したハッシュを比べる約束
type PasswordVerifier interface {
	Verify(plain string, hashed string) bool
}

// 平文パスワードからハッシュへ
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

type UserUsecase struct {
	users    repo.UserRepository
	roles    repo.RoleRepository
	verifier PasswordVerifier
	hasher   PasswordHasher
}

func NewUserUsecase(users repo.UserRepository, roles repo.RoleRepository, verifier PasswordVerifier, hasher PasswordHasher) *UserUsecase {
	return &UserUsecase{users: users, roles: roles, verifier: verifier, hasher: hasher}
}

type UserOutput struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Image     string `json:"image"`
	Role      string `json:"role"`
}

func (u *UserUsecase) GetCurrentUser(ctx context.Context, userID int64) (UserOutput, error) {
	if userID <= 0 {
		return UserOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	user, err := u.users.FindByID(ctx, userID)
	if err == repo.ErrNotFound {
		return UserOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err != nil {
		return UserOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.toUserOutput(ctx, user), nil
}

// 更新できる項目だけを明示した入力
// role・username・passwordはここからは触れない
type UpdateCurrentUserInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Avatar    string `json:"avatar"`
}

func (u *UserUsecase) UpdateCurrentUser(ctx context.Context, userID int64, in UpdateCurrentUserInput) (UserOutput, error) {
	if userID <= 0 {
		return UserOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	err := u.users.UpdateProfile(ctx, userID,
		strings.TrimSpace(in.FirstName),
		strings.TrimSpace(in.LastName),
		strings.TrimSpace(in.Email),
		strings.TrimSpace(in.Avatar),
	)
	if err == repo.ErrNotFound {
		return UserOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err != nil {
		return UserOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.GetCurrentUser(ctx, userID)
}

type ChangePasswordInput struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

func (u *UserUsecase) ChangePassword(ctx context.Context, userID int64, in ChangePasswordInput) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.NewPassword == "" {
		return NewHTTPError(http.StatusBadRequest, "new_password required")
	}

	user, err := u.users.FindByID(ctx, userID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//旧パスワードが合わないときだけ400
	if !u.verifier.Verify(in.OldPassword, user.PasswordHash) {
		return NewHTTPError(http.StatusBadRequest, "old_password is incorrect")
	}

	hash, err := u.hasher.Hash(in.NewPassword)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	if err := u.users.UpdatePasswordHash(ctx, userID, hash); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *UserUsecase) toUserOutput(ctx context.Context, user model.User) UserOutput {
	roleName := model.RoleNameUser
	if role, err := u.roles.FindByID(ctx, user.RoleID); err == nil {
		roleName = role.Name
	}

	return UserOutput{
		ID:        user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Image:     user.AvatarURL,
		Role:      roleName,
	}
}
