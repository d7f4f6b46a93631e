package service

import (
	"context"
	"fmt"

	"github.com/ah01567/Bookini/config"
	"github.com/ah01567/Bookini/infras/otel"
	"github.com/ah01567/Bookini/infras/s3"
	"github.com/ah01567/Bookini/internal/domains/roomtype/model"
	"github.com/ah01567/Bookini/internal/domains/roomtype/model/dto"
	"github.com/ah01567/Bookini/internal/domains/roomtype/repository"
	"github.com/ah01567/Bookini/shared"
	"github.com/ah01567/Bookini/shared/cache"
	"github.com/ah01567/Bookini/shared/constant"
	gDto "github.com/ah01567/Bookini/shared/dto"

	"github.com/rs/zerolog/log"
)

const cacheRoomTypesByProperty = "roomtype:by-property"

type RoomType interface {
	ListByProperty(ctx context.Context, propertyID string) (dto.GetRoomTypesResponse, error)
}

type serviceImpl struct {
	repo  repository.RoomType
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.RoomType, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) RoomType {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func (s *serviceImpl) ListByProperty(ctx context.Context, propertyID string) (res dto.GetRoomTypesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListByProperty")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheRoomTypesByProperty, propertyID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room types")

		return res, nil
	}

	filter := shared.FilterByID(propertyID, model.FieldPropertyID, model.TableName)
	params := gDto.QueryParams{
		SortBy:  constant.FieldCreatedAt,
		SortDir: gDto.SortDirAsc,
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room types")

		return res, fmt.Errorf("failed to get room types: %w", err)
	}

	res.FromModels(models)

	for i := range res.RoomTypes {
		for j := range res.RoomTypes[i].Photos {
			res.RoomTypes[i].Photos[j].WithThumbs(s3.ThumbWidths, s.s3.ThumbURL)
		}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room types to cache")
		}
	}()

	return res, nil
}
