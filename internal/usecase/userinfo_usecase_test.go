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

func TestUserInfoUsecase_Create_Conflict(t *testing.T) {
	infos := new(UserInfoRepoMock)
	infos.On("FindByUserID", mock.Anything, int64(1)).Return(model.UserInfo{UserID: 1}, nil)

	uc := usecase.NewUserInfoUsecase(infos)

	_, err := uc.Create(context.Background(), 1, usecase.SaveUserInfoInput{
		Country: "JP", City: "Tokyo", Street: "Ginza", HomeNumber: "1", PhoneNumber: "000",
	})
	assertErrContains(t, err, "already exists")

	infos.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserInfoUsecase_Create_Success(t *testing.T) {
	infos := new(UserInfoRepoMock)
	infos.On("FindByUserID", mock.Anything, int64(1)).Return(model.UserInfo{}, repo.ErrNotFound)
	infos.On("Create", mock.Anything, mock.MatchedBy(func(info model.UserInfo) bool {
		return info.UserID == 1 && info.Country == "JP" && info.City == "Tokyo"
	})).Return(model.UserInfo{UserID: 1, Country: "JP"}, nil)

	uc := usecase.NewUserInfoUsecase(infos)

	out, err := uc.Create(context.Background(), 1, usecase.SaveUserInfoInput{
		Country: " JP ", City: " Tokyo ", Street: "Ginza", HomeNumber: "1", PhoneNumber: "000",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), out.UserID)

	infos.AssertExpectations(t)
}

func TestUserInfoUsecase_Create_Validation(t *testing.T) {
	uc := usecase.NewUserInfoUsecase(new(UserInfoRepoMock))

	_, err := uc.Create(context.Background(), 1, usecase.SaveUserInfoInput{
		City: "Tokyo", Street: "Ginza", HomeNumber: "1", PhoneNumber: "000",
	})
	assertErrContains(t, err, "country required")
}

// 他人のプロフィールは存在しない扱い
func TestUserInfoUsecase_Get_ForeignHidden(t *testing.T) {
	infos := new(UserInfoRepoMock)
	uc := usecase.NewUserInfoUsecase(infos)

	_, err := uc.Get(context.Background(), 1, model.RoleNameUser, 2)
	assertErrContains(t, err, "not found")

	infos.AssertNotCalled(t, "FindByUserID", mock.Anything, mock.Anything)
}

func TestUserInfoUsecase_Get_AdminCanReadAny(t *testing.T) {
	infos := new(UserInfoRepoMock)
	infos.On("FindByUserID", mock.Anything, int64(2)).Return(model.UserInfo{UserID: 2, City: "Osaka"}, nil)

	uc := usecase.NewUserInfoUsecase(infos)

	out, err := uc.Get(context.Background(), 1, model.RoleNameAdmin, 2)
	assert.NoError(t, err)
	assert.Equal(t, "Osaka", out.City)
}

func TestUserInfoUsecase_Update_ForeignHidden(t *testing.T) {
	infos := new(UserInfoRepoMock)
	uc := usecase.NewUserInfoUsecase(infos)

	_, err := uc.Update(context.Background(), 1, model.RoleNameUser, 2, usecase.SaveUserInfoInput{
		Country: "JP", City: "Tokyo", Street: "Ginza", HomeNumber: "1", PhoneNumber: "000",
	})
	assertErrContains(t, err, "not found")

	infos.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUserInfoUsecase_Update_OwnerSuccess(t *testing.T) {
	infos := new(UserInfoRepoMock)
	infos.On("Update", mock.Anything, mock.MatchedBy(func(info model.UserInfo) bool {
		return info.UserID == 1 && info.City == "Kyoto"
	})).Return(nil)

	uc := usecase.NewUserInfoUsecase(infos)

	out, err := uc.Update(context.Background(), 1, model.RoleNameUser, 1, usecase.SaveUserInfoInput{
		Country: "JP", City: " Kyoto ", Street: "Sanjo", HomeNumber: "2", PhoneNumber: "111",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Kyoto", out.City)

	infos.AssertExpectations(t)
}
