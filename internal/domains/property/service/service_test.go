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
	kafkaMocks "github.com/ah01567/Bookini/infras/kafka/mocks"
	"github.com/ah01567/Bookini/infras/otel/mocks"
	s3Mocks "github.com/ah01567/Bookini/infras/s3/mocks"
	propertyMocks "github.com/ah01567/Bookini/internal/domains/property/mocks"
	"github.com/ah01567/Bookini/internal/domains/property/model"
	"github.com/ah01567/Bookini/internal/domains/property/model/dto"
	"github.com/ah01567/Bookini/internal/domains/property/service"
	cacheMocks "github.com/ah01567/Bookini/shared/cache/mocks"
	"github.com/ah01567/Bookini/shared/constant"
	gDto "github.com/ah01567/Bookini/shared/dto"
	gModel "github.com/ah01567/Bookini/shared/model"
	"github.com/ah01567/Bookini/shared/optimistic"
	"github.com/ah01567/Bookini/shared/timezone"
)

type propertyMockSet struct {
	repo  *propertyMocks.MockProperty
	cache *cacheMocks.MockRedisCache
	s3    *s3Mocks.MockS3
	kafka *kafkaMocks.MockClient
}

func newPropertyService(ctrl *gomock.Controller) (service.Property, *propertyMockSet) {
	set := &propertyMockSet{
		repo:  propertyMocks.NewMockProperty(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
		s3:    s3Mocks.NewMockS3(ctrl),
		kafka: kafkaMocks.NewMockClient(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(set.repo, cfg, set.cache, mocks.NewOtel(), set.s3, set.kafka)

	return svc, set
}

func TestPropertyService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newPropertyService(ctrl)

	property := model.Property{
		ID:     "test-id",
		Title:  "Appartement F3",
		Type:   model.TypeApartment,
		Status: model.StatusActive,
		Wilaya: "Alger",
		Photos: model.PhotoList{
			{Src: "https://cdn.example.com/p.jpg", Path: "properties/test-id/property/p.jpg"},
		},
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}

	tests := []struct {
		name       string
		id         string
		setupMock  func()
		wantErr    bool
		wantThumbs int
	}{
		{
			name: "cache miss, get from db with thumbs",
			id:   "test-id",
			setupMock: func() {
				set.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(property, nil)

				set.s3.EXPECT().
					ThumbURL(gomock.Any(), gomock.Any()).
					DoAndReturn(func(path string, width int) string {
						return fmt.Sprintf("https://cdn.example.com/thumbs/%s_%dx%d.webp", path, width, width)
					}).
					Times(3)

				set.cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:    false,
			wantThumbs: 3,
		},
		{
			name: "property not found",
			id:   "nonexistent-id",
			setupMock: func() {
				set.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Property{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Get(context.Background(), tt.id)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.id, result.ID)
			assert.Len(t, result.Photos[0].Thumbs, tt.wantThumbs)
		})
	}
}

func TestPropertyService_SetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newPropertyService(ctrl)

	tests := []struct {
		name         string
		id           string
		req          dto.SetStatusRequest
		setupMock    func()
		wantErr      bool
		wantStatus   string
		wantState    string
		wantPrevious string
	}{
		{
			name: "same status is a no-op with zero writes",
			id:   "prop-1",
			req:  dto.SetStatusRequest{Status: model.StatusActive},
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.Property{ID: "prop-1", Status: model.StatusActive}, nil)
			},
			wantErr:    false,
			wantStatus: model.StatusActive,
			wantState:  optimistic.StateIdle.String(),
		},
		{
			name: "allowed transition commits and emits event",
			id:   "prop-1",
			req:  dto.SetStatusRequest{Status: model.StatusActive},
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.Property{ID: "prop-1", Status: model.StatusPendingReview}, nil)

				set.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				set.cache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				set.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				set.kafka.EXPECT().
					SendMessages(gomock.Any(), constant.KafkaTopicPropertyLifecycle, gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:      false,
			wantStatus:   model.StatusActive,
			wantState:    optimistic.StateCommitted.String(),
			wantPrevious: model.StatusPendingReview,
		},
		{
			name: "forbidden transition is rejected",
			id:   "prop-1",
			req:  dto.SetStatusRequest{Status: model.StatusDraft},
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.Property{ID: "prop-1", Status: model.StatusActive}, nil)
			},
			wantErr: true,
		},
		{
			name: "failed patch rolls the visible status back",
			id:   "prop-1",
			req:  dto.SetStatusRequest{Status: model.StatusPaused},
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.Property{ID: "prop-1", Status: model.StatusActive}, nil)

				set.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr:      true,
			wantStatus:   model.StatusActive,
			wantState:    optimistic.StateRolledBack.String(),
			wantPrevious: model.StatusActive,
		},
		{
			name: "property not found",
			id:   "missing",
			req:  dto.SetStatusRequest{Status: model.StatusActive},
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.Property{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-user")
			result, err := svc.SetStatus(ctx, tt.id, tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			if tt.wantStatus != "" {
				assert.Equal(t, tt.wantStatus, result.Status)
				assert.Equal(t, tt.wantState, result.State)
				assert.Equal(t, tt.wantPrevious, result.Previous)
			}
		})
	}
}

func TestPropertyService_ListOwned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newPropertyService(ctrl)

	older := model.Property{
		ID:       "prop-old",
		HostID:   "host-1",
		Metadata: gModel.Metadata{CreatedAt: timezone.Now().Add(-time.Hour)},
	}
	newer := model.Property{
		ID:       "prop-new",
		HostID:   "host-1",
		Metadata: gModel.Metadata{CreatedAt: timezone.Now()},
	}

	t.Run("chunks org ids and merges duplicates", func(t *testing.T) {
		orgIDs := make([]string, 15)
		for i := range orgIDs {
			orgIDs[i] = fmt.Sprintf("org-%d", i)
		}

		var inClauseSizes []int

		// one host query plus two org chunks of 10 and 5
		set.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Property, error) {
				f, _ := filter.Filters[0].(gDto.Filter)
				if values, ok := f.Value.([]string); ok {
					inClauseSizes = append(inClauseSizes, len(values))
				}
				return []model.Property{older, newer}, nil
			}).
			Times(3)

		res, err := svc.ListOwned(context.Background(), "host-1", orgIDs)

		assert.NoError(t, err)
		assert.Equal(t, []int{10, 5}, inClauseSizes)
		assert.False(t, res.Degraded)
		assert.Len(t, res.Properties, 2)
		assert.Equal(t, "prop-new", res.Properties[0].ID)
		assert.Equal(t, "prop-old", res.Properties[1].ID)
	})

	t.Run("ordered query failure degrades to unordered fetch", func(t *testing.T) {
		ordered := set.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("missing index"))

		set.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Property, error) {
				assert.Empty(t, params.SortBy)
				return []model.Property{older, newer}, nil
			}).
			After(ordered)

		res, err := svc.ListOwned(context.Background(), "host-1", nil)

		assert.NoError(t, err)
		assert.True(t, res.Degraded)
		assert.NotEmpty(t, res.Warning)
		assert.Equal(t, "prop-new", res.Properties[0].ID)
	})

	t.Run("both queries failing surfaces the error", func(t *testing.T) {
		set.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error")).
			Times(2)

		_, err := svc.ListOwned(context.Background(), "host-1", nil)

		assert.Error(t, err)
	})
}
