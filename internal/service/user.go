package service

import (
	"OrderKeeper/internal/model"
	"OrderKeeper/internal/repo"
	"context"
	"regexp"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// UserService проверяет и передаёт в хранилище операции над учётными записями.
type UserService struct {
	users repo.UserRepository
}

// NewUserService создаёт сервис учётных записей.
func NewUserService(users repo.UserRepository) *UserService {
	return &UserService{users: users}
}

// Update проверяет обязательные поля в фиксированном порядке (первое
// непрошедшее называется в ошибке) и передаёт обновление в хранилище.
func (s *UserService) Update(ctx context.Context, user model.User) (*model.User, string, error) {
	if user.UserID == "" {
		return nil, "", &ValidationError{Field: "userId", Message: "userIdは必須です"}
	}

	required := []struct {
		name  string
		value string
	}{
		{"companyName", user.CompanyName},
		{"storeName", user.StoreName},
		{"email", user.Email},
		{"phoneNumber", user.PhoneNumber},
		{"address", user.Address},
	}
	for _, f := range required {
		if f.value == "" {
			return nil, "", &ValidationError{Field: f.name, Message: f.name + "は必須です"}
		}
	}

	if !emailRe.MatchString(user.Email) {
		return nil, "", &ValidationError{Field: "email", Message: "メールアドレスの形式が正しくありません"}
	}

	return s.users.UpdateUser(ctx, user)
}

// Delete удаляет учётную запись. Жёсткое удаление выполняет хранилище.
func (s *UserService) Delete(ctx context.Context, userID string) (string, error) {
	if userID == "" {
		return "", &ValidationError{Field: "userId", Message: "userIdは必須です"}
	}
	return s.users.DeleteUser(ctx, userID)
}
