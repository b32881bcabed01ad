package usecase

import (
	"context"
	"net/http"
	"strings"

	"msistore/internal/domain/model"
	repo "msistore/internal/repository"
)

type UserInfoUsecase struct {
	infos repo.UserInfoRepository
}

func NewUserInfoUsecase(infos repo.UserInfoRepository) *UserInfoUsecase {
	return &UserInfoUsecase{infos: infos}
}

type SaveUserInfoInput struct {
	Country     string `json:"country"`
	City        string `json:"city"`
	Street      string `json:"street"`
	HomeNumber  string `json:"home_number"`
	PhoneNumber string `json:"phone_number"`
}

func validateUserInfoInput(in SaveUserInfoInput) error {
	if strings.TrimSpace(in.Country) == "" {
		return NewHTTPError(http.StatusBadRequest, "country required")
	}
	if strings.TrimSpace(in.City) == "" {
		return NewHTTPError(http.StatusBadRequest, "city required")
	}
	if strings.TrimSpace(in.Street) == "" {
		return NewHTTPError(http.StatusBadRequest, "street required")
	}
	if strings.TrimSpace(in.HomeNumber) == "" {
		return NewHTTPError(http.StatusBadRequest, "home_number required")
	}
	if strings.TrimSpace(in.PhoneNumber) == "" {
		return NewHTTPError(http.StatusBadRequest, "phone_number required")
	}
	return nil
}

// 自分のプロフィールを作る（1ユーザーにつき1件）
func (u *UserInfoUsecase) Create(ctx context.Context, userID int64, in SaveUserInfoInput) (model.UserInfo, error) {
	if userID <= 0 {
		return model.UserInfo{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err := validateUserInfoInput(in); err != nil {
		return model.UserInfo{}, err
	}

	//既にあるなら409
	if _, err := u.infos.FindByUserID(ctx, userID); err == nil {
		return model.UserInfo{}, NewHTTPError(http.StatusConflict, "userinfo already exists")
	} else if err != repo.ErrNotFound {
		return model.UserInfo{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	info, err := u.infos.Create(ctx, model.UserInfo{
		UserID:      userID,
		Country:     strings.TrimSpace(in.Country),
		City:        strings.TrimSpace(in.City),
		Street:      strings.TrimSpace(in.Street),
		HomeNumber:  strings.TrimSpace(in.HomeNumber),
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
	})
	if err != nil {
		return model.UserInfo{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return info, nil
}

func (u *UserInfoUsecase) GetCurrentInfo(ctx context.Context, userID int64) (model.UserInfo, error) {
	if userID <= 0 {
		return model.UserInfo{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	info, err := u.infos.FindByUserID(ctx, userID)
	if err == repo.ErrNotFound {
		return model.UserInfo{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.UserInfo{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return info, nil
}

// 所有者（または管理者）だけが読める
func (u *UserInfoUsecase) Get(ctx context.Context, callerID int64, role string, targetUserID int64) (model.UserInfo, error) {
	if callerID <= 0 {
		return model.UserInfo{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if targetUserID <= 0 {
		return model.UserInfo{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	//他人のプロフィールは「存在しない扱い」にする
	if callerID != targetUserID && role != model.RoleNameAdmin {
		return model.UserInfo{}, NewHTTPError(http.StatusNotFound, "not found")
	}

	info, err := u.infos.FindByUserID(ctx, targetUserID)
	if err == repo.ErrNotFound {
		return model.UserInfo{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.UserInfo{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return info, nil
}

func (u *UserInfoUsecase) Update(ctx context.Context, callerID int64, role string, targetUserID int64, in SaveUserInfoInput) (model.UserInfo, error) {
	if callerID <= 0 {
		return model.UserInfo{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if targetUserID <= 0 {
		return model.UserInfo{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if callerID != targetUserID && role != model.RoleNameAdmin {
		return model.UserInfo{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err := validateUserInfoInput(in); err != nil {
		return model.UserInfo{}, err
	}

	info := model.UserInfo{
		UserID:      targetUserID,
		Country:     strings.TrimSpace(in.Country),
		City:        strings.TrimSpace(in.City),
		Street:      strings.TrimSpace(in.Street),
		HomeNumber:  strings.TrimSpace(in.HomeNumber),
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
	}

	err := u.infos.Update(ctx, info)
	if err == repo.ErrNotFound {
		return model.UserInfo{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.UserInfo{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return info, nil
}
