package repo

import (
	"OrderKeeper/internal/model"
	"context"
	"encoding/json"
	"fmt"
)

// UserRepository — контракт доступа к учётным записям.
type UserRepository interface {
	// UpdateUser обновляет запись и возвращает итоговые данные
	// (если хранилище их прислало) и сообщение хранилища.
	UpdateUser(ctx context.Context, user model.User) (*model.User, string, error)

	// DeleteUser удаляет запись и возвращает сообщение хранилища.
	DeleteUser(ctx context.Context, userID string) (string, error)
}

type userRepo struct {
	client *Client
}

// NewUserRepository создаёт реализацию репозитория пользователей поверх табличного API.
func NewUserRepository(c *Client) UserRepository {
	return &userRepo{client: c}
}

func (r *userRepo) UpdateUser(ctx context.Context, user model.User) (*model.User, string, error) {
	data, message, err := r.client.call(ctx, "updateUser", user)
	if err != nil {
		return nil, "", err
	}
	if len(data) == 0 {
		return nil, message, nil
	}
	var updated model.User
	if err := json.Unmarshal(data, &updated); err != nil {
		return nil, "", fmt.Errorf("decode updated user: %w", err)
	}
	return &updated, message, nil
}

func (r *userRepo) DeleteUser(ctx context.Context, userID string) (string, error) {
	_, message, err := r.client.call(ctx, "deleteUser", map[string]any{"userId": userID})
	if err != nil {
		return "", err
	}
	return message, nil
}
