package db

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"vidtube.com/cmd/model"
)

func CreateUser(ctx context.Context, user *model.User) error {
	user.UserName = strings.ToLower(user.UserName)
	if err := DB.WithContext(ctx).Create(user).Error; err != nil {
		return errors.Wrapf(err, "CreateUser failed for %s", user.UserName)
	}
	return nil
}

func GetUserInfo(ctx context.Context, userId int64) (*model.User, error) {
	var user model.User
	err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userId).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByName looks a user up by the case-insensitive unique username.
func GetUserByName(ctx context.Context, userName string) (*model.User, error) {
	var user model.User
	err := DB.WithContext(ctx).Model(&model.User{}).
		Where("user_name = ?", strings.ToLower(userName)).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func GetUsersByIds(ctx context.Context, userIds []int64) ([]*model.User, error) {
	users := make([]*model.User, 0, len(userIds))
	if len(userIds) == 0 {
		return users, nil
	}
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id IN ?", userIds).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func IsUserExist(ctx context.Context, userId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userId).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func IsRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
