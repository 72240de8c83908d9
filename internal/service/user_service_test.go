package service

import (
	"OrderKeeper/internal/model"
	"OrderKeeper/internal/repo"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// мок для repo.UserRepository
type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) UpdateUser(ctx context.Context, user model.User) (*model.User, string, error) {
	args := m.Called(ctx, user)
	var u *model.User
	if v, ok := args.Get(0).(*model.User); ok {
		u = v
	}
	return u, args.String(1), args.Error(2)
}

func (m *mockUserRepo) DeleteUser(ctx context.Context, userID string) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

func validUser() model.User {
	return model.User{
		UserID:      "u1",
		CompanyName: "山田建設",
		StoreName:   "品川店",
		Email:       "yamada@example.co.jp",
		PhoneNumber: "03-1234-5678",
		Address:     "東京都品川区1-2-3",
	}
}

func TestUserService_Update(t *testing.T) {
	ctx := context.Background()
	m := new(mockUserRepo)
	svc := NewUserService(m)

	t.Run("ok", func(t *testing.T) {
		m.ExpectedCalls = nil
		u := validUser()
		m.On("UpdateUser", mock.Anything, u).Return(&u, "更新しました", nil).Once()

		updated, message, err := svc.Update(ctx, u)
		assert.NoError(t, err)
		assert.Equal(t, "更新しました", message)
		assert.Equal(t, "u1", updated.UserID)
		m.AssertExpectations(t)
	})

	t.Run("missing userId", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.Calls = nil
		u := validUser()
		u.UserID = ""
		_, _, err := svc.Update(ctx, u)
		var ve *ValidationError
		if assert.ErrorAs(t, err, &ve) {
			assert.Equal(t, "userId", ve.Field)
		}
		m.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything)
	})

	t.Run("required fields checked in fixed order", func(t *testing.T) {
		// пустые все пять полей — называется первое по порядку
		u := model.User{UserID: "u1"}
		_, _, err := svc.Update(ctx, u)
		var ve *ValidationError
		if assert.ErrorAs(t, err, &ve) {
			assert.Equal(t, "companyName", ve.Field)
			assert.Contains(t, ve.Message, "companyName")
		}

		cases := []struct {
			field string
			mut   func(*model.User)
		}{
			{"companyName", func(u *model.User) { u.CompanyName = "" }},
			{"storeName", func(u *model.User) { u.StoreName = "" }},
			{"email", func(u *model.User) { u.Email = "" }},
			{"phoneNumber", func(u *model.User) { u.PhoneNumber = "" }},
			{"address", func(u *model.User) { u.Address = "" }},
		}
		for _, tc := range cases {
			m.ExpectedCalls = nil
			m.Calls = nil
			u := validUser()
			tc.mut(&u)
			_, _, err := svc.Update(ctx, u)
			var ve *ValidationError
			if assert.ErrorAs(t, err, &ve, tc.field) {
				assert.Equal(t, tc.field, ve.Field)
			}
			m.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything)
		}
	})

	t.Run("malformed email rejected before store call", func(t *testing.T) {
		for _, bad := range []string{"not-an-email", "a b@example.com", "user@domain", "@example.com", "user@.com "} {
			m.ExpectedCalls = nil
			m.Calls = nil
			u := validUser()
			u.Email = bad
			_, _, err := svc.Update(ctx, u)
			var ve *ValidationError
			if assert.ErrorAs(t, err, &ve, bad) {
				assert.Equal(t, "email", ve.Field)
			}
			m.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything)
		}
	})

	t.Run("store soft failure surfaced verbatim", func(t *testing.T) {
		m.ExpectedCalls = nil
		u := validUser()
		m.On("UpdateUser", mock.Anything, u).Return(nil, "", &repo.StoreError{Message: "ユーザーが見つかりません"}).Once()

		_, _, err := svc.Update(ctx, u)
		var se *repo.StoreError
		if assert.ErrorAs(t, err, &se) {
			assert.Equal(t, "ユーザーが見つかりません", se.Message)
		}
	})
}

func TestUserService_Delete(t *testing.T) {
	ctx := context.Background()
	m := new(mockUserRepo)
	svc := NewUserService(m)

	t.Run("ok", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("DeleteUser", mock.Anything, "u1").Return("削除しました", nil).Once()

		message, err := svc.Delete(ctx, "u1")
		assert.NoError(t, err)
		assert.Equal(t, "削除しました", message)
		m.AssertExpectations(t)
	})

	t.Run("missing userId", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.Calls = nil
		_, err := svc.Delete(ctx, "")
		var ve *ValidationError
		if assert.ErrorAs(t, err, &ve) {
			assert.Equal(t, "userId", ve.Field)
		}
		m.AssertNotCalled(t, "DeleteUser", mock.Anything, mock.Anything)
	})
}
