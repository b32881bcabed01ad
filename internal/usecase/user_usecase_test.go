package usecase_test

import (
	"context"
	"testing"

	"msistore/internal/domain/model"
	repo "msistore/internal/repository"
	"msistore/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newUserFixture(verifierOK bool) (*usecase.UserUsecase, *UserRepoMock, *RoleRepoMock, *fakeHasher) {
	uRepo := new(UserRepoMock)
	rRepo := new(RoleRepoMock)
	hasher := &fakeHasher{hash: "new-hash"}
	uc := usecase.NewUserUsecase(uRepo, rRepo, &fakeVerifier{ok: verifierOK}, hasher)
	return uc, uRepo, rRepo, hasher
}

// =====================
// GetCurrentUser
// =====================

func TestUserUsecase_GetCurrentUser_Unauthorized(t *testing.T) {
	uc, _, _, _ := newUserFixture(true)

	_, err := uc.GetCurrentUser(context.Background(), 0)
	assertErrContains(t, err, "unauthorized")
}

func TestUserUsecase_GetCurrentUser_Success(t *testing.T) {
	uc, uRepo, rRepo, _ := newUserFixture(true)

	uRepo.On("FindByID", mock.Anything, int64(1)).
		Return(model.User{ID: 1, Username: "neo", RoleID: model.RoleIDAdmin, AvatarURL: "http://img"}, nil)
	rRepo.On("FindByID", mock.Anything, model.RoleIDAdmin).
		Return(model.Role{ID: model.RoleIDAdmin, Name: model.RoleNameAdmin}, nil)

	out, err := uc.GetCurrentUser(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, "neo", out.Username)
	assert.Equal(t, model.RoleNameAdmin, out.Role)
	assert.Equal(t, "http://img", out.Image)
}

// =====================
// UpdateCurrentUser
// =====================

// 許可された項目だけが更新される（role等は渡らない）
func TestUserUsecase_UpdateCurrentUser_AllowListedFieldsOnly(t *testing.T) {
	uc, uRepo, rRepo, _ := newUserFixture(true)

	uRepo.On("UpdateProfile", mock.Anything, int64(1), "Taro", "Yamada", "taro@example.com", "http://img").
		Return(nil)
	uRepo.On("FindByID", mock.Anything, int64(1)).
		Return(model.User{ID: 1, Username: "taro", FirstName: "Taro", RoleID: model.RoleIDUser}, nil)
	rRepo.On("FindByID", mock.Anything, model.RoleIDUser).
		Return(model.Role{ID: model.RoleIDUser, Name: model.RoleNameUser}, nil)

	out, err := uc.UpdateCurrentUser(context.Background(), 1, usecase.UpdateCurrentUserInput{
		FirstName: " Taro ",
		LastName:  " Yamada ",
		Email:     " taro@example.com ",
		Avatar:    " http://img ",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Taro", out.FirstName)

	uRepo.AssertExpectations(t)
}

func TestUserUsecase_UpdateCurrentUser_UnknownUser(t *testing.T) {
	uc, uRepo, _, _ := newUserFixture(true)

	uRepo.On("UpdateProfile", mock.Anything, int64(9), "", "", "", "").Return(repo.ErrNotFound)

	_, err := uc.UpdateCurrentUser(context.Background(), 9, usecase.UpdateCurrentUserInput{})
	assertErrContains(t, err, "unauthorized")
}

// =====================
// ChangePassword
// =====================

// 旧パスワードが一致したときだけ変更できる
func TestUserUsecase_ChangePassword_Success(t *testing.T) {
	uc, uRepo, _, _ := newUserFixture(true)

	uRepo.On("FindByID", mock.Anything, int64(1)).
		Return(model.User{ID: 1, PasswordHash: "old-hash"}, nil)
	uRepo.On("UpdatePasswordHash", mock.Anything, int64(1), "new-hash").Return(nil)

	err := uc.ChangePassword(context.Background(), 1, usecase.ChangePasswordInput{
		OldPassword: "correct",
		NewPassword: "next-password",
	})
	assert.NoError(t, err)

	uRepo.AssertExpectations(t)
}

// 旧パスワードが違うときは400で、ハッシュは更新されない
func TestUserUsecase_ChangePassword_WrongOldPassword(t *testing.T) {
	uc, uRepo, _, _ := newUserFixture(false)

	uRepo.On("FindByID", mock.Anything, int64(1)).
		Return(model.User{ID: 1, PasswordHash: "old-hash"}, nil)

	err := uc.ChangePassword(context.Background(), 1, usecase.ChangePasswordInput{
		OldPassword: "wrong",
		NewPassword: "next-password",
	})
	assertErrContains(t, err, "old_password is incorrect")

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 400, he.Status)

	uRepo.AssertNotCalled(t, "UpdatePasswordHash", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserUsecase_ChangePassword_NewPasswordRequired(t *testing.T) {
	uc, _, _, _ := newUserFixture(true)

	err := uc.ChangePassword(context.Background(), 1, usecase.ChangePasswordInput{OldPassword: "x"})
	assertErrContains(t, err, "new_password required")
}
