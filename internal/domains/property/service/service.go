package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/ah01567/Bookini/config"
	"github.com/ah01567/Bookini/infras/kafka"
	"github.com/ah01567/Bookini/infras/otel"
	"github.com/ah01567/Bookini/infras/s3"
	"github.com/ah01567/Bookini/internal/domains/property/model"
	"github.com/ah01567/Bookini/internal/domains/property/model/dto"
	"github.com/ah01567/Bookini/internal/domains/property/repository"
	"github.com/ah01567/Bookini/shared"
	"github.com/ah01567/Bookini/shared/cache"
	"github.com/ah01567/Bookini/shared/constant"
	gDto "github.com/ah01567/Bookini/shared/dto"
	"github.com/ah01567/Bookini/shared/failure"
	"github.com/ah01567/Bookini/shared/optimistic"
	"github.com/ah01567/Bookini/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetProperty    = "property:get"
	cacheGetAllProperty = "property:gets"
	cacheCountProperty  = "property:count"

	ownedWarningDegraded = "listing index unavailable, results sorted in memory"
)

type Property interface {
	Get(ctx context.Context, id string) (dto.PropertyResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetPropertiesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	SetStatus(ctx context.Context, id string, req dto.SetStatusRequest) (dto.StatusResponse, error)
	ListOwned(ctx context.Context, hostID string, orgIDs []string) (dto.OwnedPropertiesResponse, error)
}

type serviceImpl struct {
	repo  repository.Property
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
	kafka kafka.Client
}

func New(repo repository.Property, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3, kafka kafka.Client) Property {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
		kafka: kafka,
	}
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.PropertyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetProperty, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for property")

		return res, nil
	}

	property, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get property")

		return res, fmt.Errorf("failed to get property: %w", err)
	}

	if property.ID == constant.Empty {
		return res, failure.NotFound("property not found") //nolint:wrapcheck
	}

	res.FromModel(property)

	for i := range res.Photos {
		res.Photos[i].WithThumbs(s3.ThumbWidths, s.s3.ThumbURL)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save property to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetPropertiesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllProperty, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for properties")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count properties")

		return res, fmt.Errorf("failed to count properties: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get properties")

		return res, fmt.Errorf("failed to get properties: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save properties to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountProperty, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for property count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count properties")

		return res, fmt.Errorf("failed to count properties: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save property count to cache")
		}
	}()

	return res, nil
}

// SetStatus applies a moderation status change optimistically: an equal
// status is a no-op with zero writes, and a failed durable patch reverts
// the visible status to its previous value.
func (s *serviceImpl) SetStatus(ctx context.Context, id string, req dto.SetStatusRequest) (res dto.StatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter, model.FieldID, model.FieldStatus)
	if err != nil {
		log.Error().Err(err).Msg("failed to get property for status change")

		return res, fmt.Errorf("failed to get property: %w", err)
	}

	if current.ID == constant.Empty {
		return res, failure.NotFound("property not found") //nolint:wrapcheck
	}

	res.PropertyID = id

	if current.Status == req.Status {
		res.Status = current.Status
		res.State = optimistic.StateIdle.String()

		return res, nil
	}

	if !model.CanTransition(current.Status, req.Status) {
		return res, failure.Conflict(fmt.Sprintf("status transition from %s to %s is not allowed", current.Status, req.Status)) //nolint:wrapcheck
	}

	tracker := optimistic.Begin(current.Status, req.Status)
	updatedFields := shared.TransformFields(dto.UpdateStatusRequest{Status: req.Status}, user)

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Str("property_id", id).Msg("failed to update property status")

		tracker.Rollback()

		res.Status = tracker.Value()
		res.Previous = current.Status
		res.State = tracker.State().String()

		return res, fmt.Errorf("failed to update property status: %w", err)
	}

	tracker.Commit()

	res.Status = tracker.Value()
	res.Previous = current.Status
	res.State = tracker.State().String()

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetProperty, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete property cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllProperty)
		shared.InvalidateCaches(c, s.cache, cacheCountProperty)

		event := kafka.Message{
			Key: id,
			Value: dto.StatusChangedEvent{
				PropertyID: id,
				From:       current.Status,
				To:         req.Status,
				ChangedBy:  user,
				ChangedAt:  timezone.Now(),
			},
		}
		if err := s.kafka.SendMessages(c, constant.KafkaTopicPropertyLifecycle, event); err != nil {
			log.Error().Err(err).Msg("failed to publish status change event")
		}
	}()

	return res, nil
}

// ListOwned aggregates the properties a host can manage: those owned
// directly plus those owned by any of the host's organizations. The org
// id set is chunked to keep each IN clause under the chunk cap, results
// are merged by id, and a failing ordered query degrades to an unordered
// fetch with an in-memory sort instead of failing the dashboard.
func (s *serviceImpl) ListOwned(ctx context.Context, hostID string, orgIDs []string) (res dto.OwnedPropertiesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListOwned")
	defer scope.End()
	defer scope.TraceIfError(err)

	filters := []gDto.FilterGroup{
		{
			Filters: []any{
				gDto.Filter{
					Field:    model.FieldHostID,
					Operator: gDto.FilterOperatorEq,
					Value:    hostID,
					Table:    model.TableName,
				},
			},
		},
	}

	for _, chunk := range shared.ChunkStrings(orgIDs, constant.InQueryChunkSize) {
		filters = append(filters, gDto.FilterGroup{
			Filters: []any{
				gDto.Filter{
					Field:    model.FieldOrgID,
					Operator: gDto.FilterOperatorIn,
					Value:    chunk,
					Table:    model.TableName,
				},
			},
		})
	}

	merged := map[string]model.Property{}
	degraded := false

	for _, filter := range filters {
		params := gDto.QueryParams{
			Limit:   constant.OwnedFetchLimit,
			SortBy:  constant.FieldCreatedAt,
			SortDir: gDto.SortDirDesc,
		}

		models, err := s.repo.GetAll(ctx, params, filter)
		if err != nil {
			log.Warn().Err(err).Msg("ordered owned-properties query failed, retrying unordered")

			degraded = true

			models, err = s.repo.GetAll(ctx, gDto.QueryParams{Limit: constant.OwnedFetchLimit}, filter)
			if err != nil {
				log.Error().Err(err).Msg("failed to get owned properties")

				return res, fmt.Errorf("failed to get owned properties: %w", err)
			}
		}

		for _, mod := range models {
			merged[mod.ID] = mod
		}
	}

	models := make([]model.Property, 0, len(merged))
	for _, mod := range merged {
		models = append(models, mod)
	}

	sort.Slice(models, func(i, j int) bool {
		return models[i].CreatedAt.After(models[j].CreatedAt)
	})

	res.FromModels(models)

	if degraded {
		res.Degraded = true
		res.Warning = ownedWarningDegraded
	}

	return res, nil
}
