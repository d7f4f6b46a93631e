package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/ah01567/Bookini/config"
	"github.com/ah01567/Bookini/infras/kafka"
	"github.com/ah01567/Bookini/infras/otel"
	"github.com/ah01567/Bookini/infras/s3"
	propertyModel "github.com/ah01567/Bookini/internal/domains/property/model"
	propertyRepo "github.com/ah01567/Bookini/internal/domains/property/repository"
	"github.com/ah01567/Bookini/internal/domains/publication/model"
	"github.com/ah01567/Bookini/internal/domains/publication/model/dto"
	"github.com/ah01567/Bookini/internal/domains/publication/registry"
	"github.com/ah01567/Bookini/internal/domains/publication/repository"
	rtModel "github.com/ah01567/Bookini/internal/domains/roomtype/model"
	rtRepo "github.com/ah01567/Bookini/internal/domains/roomtype/repository"
	"github.com/ah01567/Bookini/shared"
	"github.com/ah01567/Bookini/shared/cache"
	"github.com/ah01567/Bookini/shared/constant"
	gDto "github.com/ah01567/Bookini/shared/dto"
	"github.com/ah01567/Bookini/shared/failure"
	"github.com/ah01567/Bookini/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cachePropertyPrefix = "property"

	stalledJobError = "publish run stalled without an active worker"

	reapFetchLimit = 100
)

type Publication interface {
	Publish(ctx context.Context, req dto.PublishRequest) (dto.PublishResponse, error)
	Resume(ctx context.Context, propertyID string, req dto.ResumePublishRequest) (dto.JobResponse, error)
	Job(ctx context.Context, propertyID string) (dto.JobResponse, error)
	ReapStalled(ctx context.Context) (int, error)
}

type serviceImpl struct {
	jobRepo      repository.PublishJob
	propertyRepo propertyRepo.Property
	roomTypeRepo rtRepo.RoomType
	registry     registry.Registry
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
	s3           s3.S3
	kafka        kafka.Client
}

func New(
	jobRepo repository.PublishJob,
	propertyRepo propertyRepo.Property,
	roomTypeRepo rtRepo.RoomType,
	registry registry.Registry,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	s3 s3.S3,
	kafka kafka.Client,
) Publication {
	return &serviceImpl{
		jobRepo:      jobRepo,
		propertyRepo: propertyRepo,
		roomTypeRepo: roomTypeRepo,
		registry:     registry,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
		s3:           s3,
		kafka:        kafka,
	}
}

// Publish runs the full listing pipeline: create the parent property in
// pending review, record a durable job, upload the property photos, then
// create each valid room type and its photos in order. A step failure
// marks the job failed and keeps everything already written; nothing is
// rolled back. Uploads run on a detached context so an abandoned request
// does not abort them.
func (s *serviceImpl) Publish(ctx context.Context, req dto.PublishRequest) (res dto.PublishResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Publish")
	defer scope.End()
	defer scope.TraceIfError(err)

	if strings.TrimSpace(req.Title) == constant.Empty {
		return res, failure.BadRequestFromString("title is required") //nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	candidates := req.ValidRoomTypes()

	property := req.ToPropertyModel(user)

	if property.PropertyKind == propertyModel.KindHotel && len(candidates) == 0 {
		return res, failure.BadRequestFromString("at least one valid room type is required") //nolint:wrapcheck
	}

	if err = s.propertyRepo.Insert(ctx, property); err != nil {
		log.Error().Err(err).Msg("failed to insert property")

		return res, fmt.Errorf("failed to insert property: %w", err)
	}

	job := req.ToJobModel(user, property.ID)

	if err = s.jobRepo.Insert(ctx, job); err != nil {
		log.Error().Err(err).Msg("failed to insert publish job")

		return res, fmt.Errorf("failed to insert publish job: %w", err)
	}

	totalPhotos := len(req.Photos)
	for _, candidate := range candidates {
		totalPhotos += len(candidate.Photos)
	}

	s.registry.Track(property.ID, job.ID, totalPhotos)
	defer s.registry.Release(property.ID)

	ctx = context.WithoutCancel(ctx)

	if err = s.run(ctx, user, &job, property.ID, req.Photos, candidates); err != nil {
		return res, err
	}

	s.afterPublish(ctx, user, job, len(candidates), totalPhotos)

	res.PropertyID = property.ID
	res.JobID = job.ID

	return res, nil
}

// Resume picks up an incomplete publish run. Steps already done are left
// alone; pending steps are executed with the assets resubmitted in the
// request. Candidates are matched to pending steps by name, and a pending
// photo step with no resubmitted files is marked done since the original
// files only ever existed in the abandoned request.
func (s *serviceImpl) Resume(ctx context.Context, propertyID string, req dto.ResumePublishRequest) (res dto.JobResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Resume")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	job, err := s.jobRepo.Get(ctx, shared.FilterByID(propertyID, model.FieldPropertyID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get publish job")

		return res, fmt.Errorf("failed to get publish job: %w", err)
	}

	if job.ID == constant.Empty {
		return res, failure.NotFound("publish job not found") //nolint:wrapcheck
	}

	if !job.Incomplete() {
		res.FromModel(job)

		return res, nil
	}

	totalPhotos := len(req.Photos)
	for _, candidate := range req.RoomTypes {
		totalPhotos += len(candidate.Photos)
	}

	s.registry.Track(propertyID, job.ID, totalPhotos)
	defer s.registry.Release(propertyID)

	ctx = context.WithoutCancel(ctx)

	if !job.PropertyPhotosDone {
		if err = s.finishPropertyPhotos(ctx, user, &job, propertyID, req.Photos); err != nil {
			return res, err
		}
	}

	if err = s.finishRoomTypeSteps(ctx, user, &job, propertyID, req.RoomTypes); err != nil {
		return res, err
	}

	if !job.Incomplete() {
		job.State = model.StateCompleted
		job.LastError = constant.Empty

		if err = s.updateJob(ctx, user, &job); err != nil {
			return res, err
		}

		s.afterPublish(ctx, user, job, len(job.RoomTypeSteps), totalPhotos)
	} else if err = s.updateJob(ctx, user, &job); err != nil {
		return res, err
	}

	res.FromModel(job)

	return res, nil
}

// Job reports the durable publish record, overlaid with live upload
// progress when this process is still working on the run.
func (s *serviceImpl) Job(ctx context.Context, propertyID string) (res dto.JobResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Job")
	defer scope.End()
	defer scope.TraceIfError(err)

	job, err := s.jobRepo.Get(ctx, shared.FilterByID(propertyID, model.FieldPropertyID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get publish job")

		return res, fmt.Errorf("failed to get publish job: %w", err)
	}

	if job.ID == constant.Empty {
		return res, failure.NotFound("publish job not found") //nolint:wrapcheck
	}

	res.FromModel(job)

	if progress, ok := s.registry.Get(propertyID); ok {
		res.UploadedPhotos = progress.UploadedPhotos
		res.TotalPhotos = progress.TotalPhotos
	}

	return res, nil
}

// ReapStalled fails running jobs that have not been touched within the
// configured window and have no active worker in this process. It returns
// the number of jobs reaped.
func (s *serviceImpl) ReapStalled(ctx context.Context) (reaped int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelWorkerScopeName, constant.OtelWorkerScopeName+".ReapStalled")
	defer scope.End()
	defer scope.TraceIfError(err)

	cutoff := timezone.Now().Add(-time.Duration(s.cfg.Publication.StalledAfterMin) * time.Minute)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldState,
				Operator: gDto.FilterOperatorEq,
				Value:    model.StateRunning,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    constant.FieldModifiedAt,
				Operator: gDto.FilterOperatorLessEq,
				Value:    cutoff,
				Table:    model.TableName,
			},
		},
	}

	jobs, err := s.jobRepo.GetAll(ctx, gDto.QueryParams{Limit: reapFetchLimit}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to list stalled publish jobs")

		return 0, fmt.Errorf("failed to list stalled publish jobs: %w", err)
	}

	for _, job := range jobs {
		if _, active := s.registry.Get(job.PropertyID); active {
			continue
		}

		job.State = model.StateFailed
		job.LastError = stalledJobError

		if err := s.updateJob(ctx, constant.Empty, &job); err != nil {
			log.Error().Err(err).Str("job_id", job.ID).Msg("failed to reap stalled publish job")

			continue
		}

		log.Warn().Str("job_id", job.ID).Str("property_id", job.PropertyID).Msg("reaped stalled publish job")

		reaped++
	}

	return reaped, nil
}

func (s *serviceImpl) run(ctx context.Context, user string, job *model.PublishJob, propertyID string, photos []*multipart.FileHeader, candidates []dto.RoomTypeCandidate) error {
	if err := s.finishPropertyPhotos(ctx, user, job, propertyID, photos); err != nil {
		return err
	}

	for i := range job.RoomTypeSteps {
		if err := s.runRoomTypeStep(ctx, user, job, propertyID, i, candidates[i]); err != nil {
			return err
		}
	}

	job.State = model.StateCompleted

	return s.updateJob(ctx, user, job)
}

func (s *serviceImpl) finishPropertyPhotos(ctx context.Context, user string, job *model.PublishJob, propertyID string, photos []*multipart.FileHeader) error {
	if len(photos) > 0 {
		directory := path.Join("properties", propertyID, "property")

		photoList, err := s.uploadBatch(ctx, propertyID, directory, photos)
		if err != nil {
			return s.failJob(ctx, user, job, err)
		}

		patch := shared.TransformFields(dto.UpdatePhotosRequest{Photos: photoList}, user)
		if err := s.propertyRepo.Update(ctx, patch, shared.FilterByID(propertyID, propertyModel.FieldID, propertyModel.TableName)); err != nil {
			log.Error().Err(err).Msg("failed to patch property photos")

			return s.failJob(ctx, user, job, fmt.Errorf("failed to patch property photos: %w", err))
		}
	}

	job.PropertyPhotosDone = true

	return s.updateJob(ctx, user, job)
}

func (s *serviceImpl) runRoomTypeStep(ctx context.Context, user string, job *model.PublishJob, propertyID string, index int, candidate dto.RoomTypeCandidate) error {
	step := &job.RoomTypeSteps[index]

	if !step.Created {
		roomType := candidate.ToModel(user, propertyID)

		if err := s.roomTypeRepo.Insert(ctx, roomType); err != nil {
			log.Error().Err(err).Str("room_type", candidate.Name).Msg("failed to insert room type")

			return s.failJob(ctx, user, job, fmt.Errorf("failed to insert room type: %w", err))
		}

		step.Created = true
		step.RoomTypeID = roomType.ID

		if err := s.updateJob(ctx, user, job); err != nil {
			return err
		}
	}

	if len(candidate.Photos) > 0 {
		directory := path.Join("properties", propertyID, "roomTypes", step.RoomTypeID)

		photoList, err := s.uploadBatch(ctx, propertyID, directory, candidate.Photos)
		if err != nil {
			return s.failJob(ctx, user, job, err)
		}

		patch := shared.TransformFields(dto.UpdatePhotosRequest{Photos: photoList}, user)
		if err := s.roomTypeRepo.Update(ctx, patch, shared.FilterByID(step.RoomTypeID, rtModel.FieldID, rtModel.TableName)); err != nil {
			log.Error().Err(err).Msg("failed to patch room type photos")

			return s.failJob(ctx, user, job, fmt.Errorf("failed to patch room type photos: %w", err))
		}
	}

	step.PhotosDone = true

	return s.updateJob(ctx, user, job)
}

func (s *serviceImpl) finishRoomTypeSteps(ctx context.Context, user string, job *model.PublishJob, propertyID string, candidates []dto.RoomTypeCandidate) error {
	for i := range job.RoomTypeSteps {
		step := &job.RoomTypeSteps[i]

		if step.Created && step.PhotosDone {
			continue
		}

		candidate, found := matchCandidate(step.Name, candidates)

		if !step.Created {
			if !found || !candidate.Valid() {
				log.Warn().Str("room_type", step.Name).Msg("no usable candidate resubmitted for pending room type step")

				continue
			}

			if err := s.runRoomTypeStep(ctx, user, job, propertyID, i, candidate); err != nil {
				return err
			}

			continue
		}

		if found && len(candidate.Photos) > 0 {
			if err := s.runRoomTypeStep(ctx, user, job, propertyID, i, candidate); err != nil {
				return err
			}

			continue
		}

		step.PhotosDone = true

		if err := s.updateJob(ctx, user, job); err != nil {
			return err
		}
	}

	return nil
}

// uploadBatch stores one batch of photos concurrently and returns their
// records in input order.
func (s *serviceImpl) uploadBatch(ctx context.Context, propertyID, directory string, files []*multipart.FileHeader) (propertyModel.PhotoList, error) {
	photos := make(propertyModel.PhotoList, len(files))
	errs := make([]error, len(files))

	var wg sync.WaitGroup

	for i, fileHeader := range files {
		wg.Add(1)

		go func(i int, fileHeader *multipart.FileHeader) {
			defer wg.Done()

			file, err := fileHeader.Open()
			if err != nil {
				errs[i] = fmt.Errorf("failed to open file %s: %w", fileHeader.Filename, err)

				return
			}
			defer file.Close()

			fileName := uploadName(fileHeader.Filename)

			url, err := s.s3.UploadFile(ctx, constant.Empty, directory, file, fileHeader, fileName)
			if err != nil {
				errs[i] = fmt.Errorf("failed to upload %s: %w", fileHeader.Filename, err)

				return
			}

			photos[i] = propertyModel.Photo{
				Src:         url,
				Path:        path.Join(directory, fileName),
				ContentType: fileHeader.Header.Get(constant.RequestHeaderContentType),
				Size:        fileHeader.Size,
			}

			s.registry.Advance(propertyID, 1)
		}(i, fileHeader)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			log.Error().Err(err).Str("directory", directory).Msg("photo upload failed")

			return nil, err
		}
	}

	return photos, nil
}

// updateJob writes the whole progress snapshot. The patch is built by
// hand because step flags and a cleared last error must be written even
// when they are zero values.
func (s *serviceImpl) updateJob(ctx context.Context, user string, job *model.PublishJob) error {
	patch := map[string]any{
		model.FieldState:              job.State,
		model.FieldPropertyPhotosDone: job.PropertyPhotosDone,
		model.FieldRoomTypeSteps:      job.RoomTypeSteps,
		model.FieldLastError:          job.LastError,
		constant.FieldModifiedAt:      timezone.Now(),
		constant.FieldModifiedBy:      user,
	}

	if err := s.jobRepo.Update(ctx, patch, shared.FilterByID(job.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("job_id", job.ID).Msg("failed to update publish job")

		return fmt.Errorf("failed to update publish job: %w", err)
	}

	return nil
}

func (s *serviceImpl) failJob(ctx context.Context, user string, job *model.PublishJob, cause error) error {
	job.State = model.StateFailed
	job.LastError = cause.Error()

	if err := s.updateJob(ctx, user, job); err != nil {
		log.Error().Err(err).Str("job_id", job.ID).Msg("failed to record publish failure")
	}

	return cause
}

func (s *serviceImpl) afterPublish(ctx context.Context, user string, job model.PublishJob, roomTypes, photos int) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cachePropertyPrefix)

		event := kafka.Message{
			Key: job.PropertyID,
			Value: dto.PublishedEvent{
				PropertyID:  job.PropertyID,
				JobID:       job.ID,
				RoomTypes:   roomTypes,
				Photos:      photos,
				PublishedBy: user,
				PublishedAt: timezone.Now(),
			},
		}
		if err := s.kafka.SendMessages(c, constant.KafkaTopicPropertyLifecycle, event); err != nil {
			log.Error().Err(err).Msg("failed to publish listing event")
		}
	}()
}

func matchCandidate(name string, candidates []dto.RoomTypeCandidate) (dto.RoomTypeCandidate, bool) {
	for _, candidate := range candidates {
		if strings.EqualFold(strings.TrimSpace(candidate.Name), name) {
			return candidate, true
		}
	}

	return dto.RoomTypeCandidate{}, false
}

func uploadName(original string) string {
	token := strings.ReplaceAll(uuid.NewString(), "-", constant.Empty)[:8]

	return fmt.Sprintf("%d_%s_%s", timezone.Now().UnixMilli(), token, original)
}
