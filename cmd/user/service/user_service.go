package service

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"vidtube.com/cmd/model"
	"vidtube.com/cmd/user/dal/db"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"
)

type UserService struct {
	ctx context.Context
}

func NewUserService(ctx context.Context) *UserService {
	return &UserService{ctx: ctx}
}

func (service *UserService) Register(ctx context.Context, userName, email, fullName, password string) (*model.User, error) {
	userName = strings.TrimSpace(userName)
	if userName == "" || password == "" {
		return nil, errno.RequestErr.WithMessage("username and password are required")
	}

	hashed, err := utils.Crypt(password)
	if err != nil {
		return nil, errors.WithMessage(err, "password fail to crypt")
	}

	user := &model.User{
		UserId:   utils.GenerateID(),
		UserName: userName,
		Email:    email,
		FullName: fullName,
		Password: hashed,
	}
	if err := db.CreateUser(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errno.ConflictErr.WithMessage("username already taken")
		}
		return nil, errors.WithMessage(err, "db.CreateUser failed")
	}
	return user, nil
}

func (service *UserService) CheckPassword(ctx context.Context, userName, password string) (*model.User, error) {
	user, err := db.GetUserByName(ctx, userName)
	if err != nil {
		if db.IsRecordNotFound(err) {
			return nil, errno.AuthFailedErr
		}
		return nil, errors.WithMessage(err, "db.GetUserByName failed")
	}
	if !utils.VerifyPassword(password, user.Password) {
		return nil, errno.AuthFailedErr
	}
	return user, nil
}

func (service *UserService) GetUserInfo(ctx context.Context, userId int64) (*model.User, error) {
	user, err := db.GetUserInfo(ctx, userId)
	if err != nil {
		if db.IsRecordNotFound(err) {
			return nil, errno.NotFoundErr.WithMessage("user not found")
		}
		return nil, errors.WithMessage(err, "db.GetUserInfo failed")
	}
	return user, nil
}

// GetUserSummaries resolves profile projections for a set of ids, preserving
// no particular order. Callers that need order re-sort by their own key.
func (service *UserService) GetUserSummaries(ctx context.Context, userIds []int64) (map[int64]*model.UserSummary, error) {
	users, err := db.GetUsersByIds(ctx, userIds)
	if err != nil {
		return nil, errors.WithMessage(err, "db.GetUsersByIds failed")
	}
	summaries := make(map[int64]*model.UserSummary, len(users))
	for _, u := range users {
		summaries[u.UserId] = u.Summary()
	}
	return summaries, nil
}
