package service

import (
	"context"
	"fmt"
	"slices"
	"sort"

	"github.com/ah01567/Bookini/config"
	"github.com/ah01567/Bookini/infras/otel"
	"github.com/ah01567/Bookini/internal/domains/destination/model/dto"
	propertyModel "github.com/ah01567/Bookini/internal/domains/property/model"
	propertyRepo "github.com/ah01567/Bookini/internal/domains/property/repository"
	"github.com/ah01567/Bookini/shared"
	"github.com/ah01567/Bookini/shared/cache"
	"github.com/ah01567/Bookini/shared/constant"
	gDto "github.com/ah01567/Bookini/shared/dto"
	"github.com/ah01567/Bookini/shared/text"

	"github.com/rs/zerolog/log"
)

const cacheActiveProperties = "destination:active"

type Destination interface {
	TopRegions(ctx context.Context) (dto.TopRegionsResponse, error)
	Search(ctx context.Context, req dto.SearchRequest) (dto.SearchResponse, error)
	PriceBounds(ctx context.Context) (dto.PriceBoundsResponse, error)
}

type serviceImpl struct {
	propertyRepo propertyRepo.Property
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(propertyRepo propertyRepo.Property, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Destination {
	return &serviceImpl{
		propertyRepo: propertyRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

// TopRegions groups the active set by region key and returns the most
// listed regions. The display name is the wilaya spelling first seen for
// the key, so "Alger" and "alger " count together but render once.
func (s *serviceImpl) TopRegions(ctx context.Context) (res dto.TopRegionsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".TopRegions")
	defer scope.End()
	defer scope.TraceIfError(err)

	properties, err := s.activeProperties(ctx)
	if err != nil {
		return res, err
	}

	counts := map[string]int{}
	names := map[string]string{}
	photos := map[string]string{}
	keys := []string{}

	for _, property := range properties {
		key := property.RegionKey()
		if key == constant.Empty {
			continue
		}

		if _, seen := counts[key]; !seen {
			names[key] = property.Wilaya
			keys = append(keys, key)
		}

		if photos[key] == constant.Empty && len(property.Photos) > 0 {
			photos[key] = property.Photos[0].Src
		}

		counts[key]++
	}

	sort.SliceStable(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}

		return keys[i] < keys[j]
	})

	if len(keys) > constant.TopRegionsLimit {
		keys = keys[:constant.TopRegionsLimit]
	}

	res.Regions = make([]dto.RegionResponse, len(keys))
	for i, key := range keys {
		res.Regions[i] = dto.RegionResponse{
			Key:   key,
			Name:  names[key],
			Count: counts[key],
			Photo: photos[key],
		}
	}

	return res, nil
}

// Search applies the browse filters in memory over the active set. A
// property with no usable price passes any price filter so unpriced
// hotels are never hidden.
func (s *serviceImpl) Search(ctx context.Context, req dto.SearchRequest) (res dto.SearchResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Search")
	defer scope.End()
	defer scope.TraceIfError(err)

	properties, err := s.activeProperties(ctx)
	if err != nil {
		return res, err
	}

	matched := make([]propertyModel.Property, 0, len(properties))

	for _, property := range properties {
		if matchesSearch(property, req) {
			matched = append(matched, property)
		}
	}

	res.FromModels(matched)

	return res, nil
}

// PriceBounds reports the approximate price range across the active set,
// used to seed the browse price slider.
func (s *serviceImpl) PriceBounds(ctx context.Context) (res dto.PriceBoundsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PriceBounds")
	defer scope.End()
	defer scope.TraceIfError(err)

	properties, err := s.activeProperties(ctx)
	if err != nil {
		return res, err
	}

	for _, property := range properties {
		price, ok := property.ApproxPriceDZD()
		if !ok {
			continue
		}

		if !res.Priced {
			res.MinPriceDZD = price
			res.MaxPriceDZD = price
			res.Priced = true

			continue
		}

		res.MinPriceDZD = min(res.MinPriceDZD, price)
		res.MaxPriceDZD = max(res.MaxPriceDZD, price)
	}

	return res, nil
}

func (s *serviceImpl) activeProperties(ctx context.Context) (properties []propertyModel.Property, err error) {
	cacheKey := shared.BuildCacheKey(cacheActiveProperties)

	err = s.cache.Get(ctx, cacheKey, &properties)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for active properties")

		return properties, nil
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    propertyModel.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    propertyModel.StatusActive,
				Table:    propertyModel.TableName,
			},
		},
	}

	params := gDto.QueryParams{
		Limit:   constant.BrowseFetchLimit,
		SortBy:  constant.FieldCreatedAt,
		SortDir: gDto.SortDirDesc,
	}

	properties, err = s.propertyRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get active properties")

		return nil, fmt.Errorf("failed to get active properties: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, properties, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save active properties to cache")
		}
	}()

	return properties, nil
}

func matchesSearch(property propertyModel.Property, req dto.SearchRequest) bool {
	if len(req.Types) > 0 && !slices.Contains(req.Types, property.Type) {
		return false
	}

	if req.Wilaya != constant.Empty && property.RegionKey() != text.Keyify(req.Wilaya) {
		return false
	}

	for _, amenity := range req.Amenities {
		if !slices.Contains(property.Amenities, amenity) {
			return false
		}
	}

	price, ok := property.ApproxPriceDZD()
	if !ok {
		return true
	}

	if req.MinPriceDZD != nil && price < *req.MinPriceDZD {
		return false
	}

	if req.MaxPriceDZD != nil && price > *req.MaxPriceDZD {
		return false
	}

	return true
}
