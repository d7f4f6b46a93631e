package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/ah01567/Bookini/config"
	"github.com/ah01567/Bookini/infras/otel/mocks"
	s3Mocks "github.com/ah01567/Bookini/infras/s3/mocks"
	propertyModel "github.com/ah01567/Bookini/internal/domains/property/model"
	roomTypeMocks "github.com/ah01567/Bookini/internal/domains/roomtype/mocks"
	"github.com/ah01567/Bookini/internal/domains/roomtype/model"
	"github.com/ah01567/Bookini/internal/domains/roomtype/service"
	cacheMocks "github.com/ah01567/Bookini/shared/cache/mocks"
	gModel "github.com/ah01567/Bookini/shared/model"
	"github.com/ah01567/Bookini/shared/timezone"
)

func newRoomTypeService(ctrl *gomock.Controller) (service.RoomType, *roomTypeMocks.MockRoomType, *cacheMocks.MockRedisCache, *s3Mocks.MockS3) {
	mockRepo := roomTypeMocks.NewMockRoomType(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mocks.NewOtel(), mockS3)

	return svc, mockRepo, mockCache, mockS3
}

func TestRoomTypeService_ListByProperty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache, mockS3 := newRoomTypeService(ctrl)

	roomTypes := []model.RoomType{
		{
			ID:           "rt-1",
			PropertyID:   "prop-1",
			Name:         "Double",
			TotalUnits:   5,
			BasePriceDZD: 4000,
			Photos: propertyModel.PhotoList{
				{Src: "https://cdn.example.com/d.jpg", Path: "properties/prop-1/roomTypes/rt-1/d.jpg"},
			},
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
			},
		},
		{
			ID:         "rt-2",
			PropertyID: "prop-1",
			Name:       "Suite",
			TotalUnits: 2,
		},
	}

	t.Run("cache miss, lists room types with thumbs", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(roomTypes, nil)

		mockS3.EXPECT().
			ThumbURL(gomock.Any(), gomock.Any()).
			DoAndReturn(func(path string, width int) string {
				return fmt.Sprintf("https://cdn.example.com/thumbs/%s_%dx%d.webp", path, width, width)
			}).
			Times(3)

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.ListByProperty(context.Background(), "prop-1")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Len(t, res.RoomTypes, 2)
		assert.Equal(t, "Double", res.RoomTypes[0].Name)
		assert.Len(t, res.RoomTypes[0].Photos[0].Thumbs, 3)
		assert.Empty(t, res.RoomTypes[1].Photos)
	})

	t.Run("cache hit skips the repository", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		_, err := svc.ListByProperty(context.Background(), "prop-1")

		assert.NoError(t, err)
	})

	t.Run("repository error", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error"))

		_, err := svc.ListByProperty(context.Background(), "prop-1")

		assert.Error(t, err)
	})
}
