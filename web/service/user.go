// Package service implements the persistence-facing operations of the jokes
// application. Services receive their database handle explicitly instead of
// reaching for a package-level singleton.
package service

import (
	"jokes-web/database"
	"jokes-web/database/model"
	"jokes-web/logger"
	"jokes-web/util/crypto"

	"gorm.io/gorm"
)

// UserService answers account lookups and creates new accounts.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) GetUser(id int) (*model.User, error) {
	user := &model.User{}
	err := s.db.Model(model.User{}).
		Where("id = ?", id).
		First(user).
		Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetUserByUsername(username string) (*model.User, error) {
	user := &model.User{}
	err := s.db.Model(model.User{}).
		Where("username = ?", username).
		First(user).
		Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

// CheckUser returns the user matching the credentials, or nil. An unknown
// username and a wrong password are indistinguishable to callers.
func (s *UserService) CheckUser(username string, password string) *model.User {
	user, err := s.GetUserByUsername(username)
	if database.IsNotFound(err) {
		return nil
	} else if err != nil {
		logger.Warning("check user err:", err)
		return nil
	}

	if !crypto.CheckPasswordHash(user.PasswordHash, password) {
		return nil
	}
	return user
}

// CreateUser hashes the password and inserts the account. The unique index on
// username backs the caller's uniqueness pre-check.
func (s *UserService) CreateUser(username string, password string) (*model.User, error) {
	hash, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Username:     username,
		PasswordHash: hash,
	}
	if err := s.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) CountUsers() (int64, error) {
	var count int64
	err := s.db.Model(model.User{}).Count(&count).Error
	return count, err
}
