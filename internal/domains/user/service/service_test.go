package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/ah01567/Bookini/config"
	"github.com/ah01567/Bookini/infras/otel/mocks"
	userMocks "github.com/ah01567/Bookini/internal/domains/user/mocks"
	"github.com/ah01567/Bookini/internal/domains/user/model"
	"github.com/ah01567/Bookini/internal/domains/user/service"
	cacheMocks "github.com/ah01567/Bookini/shared/cache/mocks"
	"github.com/ah01567/Bookini/shared/constant"
	gModel "github.com/ah01567/Bookini/shared/model"
	"github.com/ah01567/Bookini/shared/timezone"
)

func newUserService(ctrl *gomock.Controller) (service.User, *userMocks.MockUser, *cacheMocks.MockRedisCache) {
	mockRepo := userMocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mocks.NewOtel())

	return svc, mockRepo, mockCache
}

func TestUserService_EnsureProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache := newUserService(ctrl)

	existing := model.User{
		ID:              "user-1",
		Email:           "host@example.dz",
		Role:            constant.RoleAdmin,
		DefaultCurrency: constant.DefaultCurrency,
		KYCStatus:       model.KYCStatusVerified,
		Active:          true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}

	t.Run("existing profile is returned untouched", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(existing, nil)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-1")
		res, err := svc.EnsureProfile(ctx)

		assert.NoError(t, err)
		assert.Equal(t, "user-1", res.ID)
		assert.Equal(t, constant.RoleAdmin, res.Role)
	})

	t.Run("missing profile is created with host defaults", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.User{}, nil)

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user model.User) error {
				assert.Equal(t, "user-2", user.ID)
				assert.Equal(t, "new@example.dz", user.Email)
				assert.Equal(t, constant.RoleHost, user.Role)
				assert.Equal(t, constant.DefaultCurrency, user.DefaultCurrency)
				assert.Equal(t, model.KYCStatusNone, user.KYCStatus)
				assert.True(t, user.Active)
				return nil
			})

		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-2")
		ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, "new@example.dz")

		res, err := svc.EnsureProfile(ctx)

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, constant.RoleHost, res.Role)
		assert.Equal(t, constant.DefaultCurrency, res.DefaultCurrency)
	})

	t.Run("unauthenticated context is rejected", func(t *testing.T) {
		_, err := svc.EnsureProfile(context.Background())

		assert.Error(t, err)
	})

	t.Run("lookup error", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.User{}, errors.New("database error"))

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-3")
		_, err := svc.EnsureProfile(ctx)

		assert.Error(t, err)
	})
}
