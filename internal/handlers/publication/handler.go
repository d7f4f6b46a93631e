package publication

import (
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/ah01567/Bookini/infras/otel"
	"github.com/ah01567/Bookini/internal/domains/publication/model/dto"
	"github.com/ah01567/Bookini/internal/domains/publication/service"
	"github.com/ah01567/Bookini/shared/constant"
	"github.com/ah01567/Bookini/shared/failure"
	"github.com/ah01567/Bookini/shared/validator"
	"github.com/ah01567/Bookini/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

const (
	formFieldData           = "data"
	formFieldPhotos         = "photos"
	formFieldRoomTypePhotos = "room_type_photos_%d"
)

type Handler struct {
	service service.Publication
	otel    otel.Otel
}

func New(service service.Publication, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers routes directly because other handlers share the
// /properties prefix and chi rejects mounting it twice.
func (handler *Handler) Router(router chi.Router) {
	router.Post("/properties", handler.Publish)
	router.Get("/properties/{id}/publish", handler.GetPublishJob)
	router.Post("/properties/{id}/publish/resume", handler.ResumePublish)
}

// Publish creates a property listing with its room types and photos.
// @Summary Publish a property
// @Description Create a property in pending review, upload its photos and create its room types. Partial failures keep completed steps and can be resumed.
// @Tags Publication
// @Accept multipart/form-data
// @Produce json
// @Param data formData string true "Publish payload as JSON"
// @Param photos formData file false "Property photos"
// @Success 202 {object} response.Data[dto.PublishResponse] "Publish started"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties [post]
// @Security BearerAuth
func (handler *Handler) Publish(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Publish")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, err)

		return
	}

	var req dto.PublishRequest
	if err := json.Unmarshal([]byte(r.FormValue(formFieldData)), &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode publish payload")

		response.WithError(w, failure.BadRequest(err))

		return
	}

	attachPhotos(r, &req.Photos, req.RoomTypes)

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	result, err := handler.service.Publish(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to publish property")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Property published by user " + user)

	response.WithJSON(w, http.StatusAccepted, result)
}

// GetPublishJob reports the publish progress for a property.
// @Summary Get publish job
// @Description Retrieve the durable publish record with live upload progress when available.
// @Tags Publication
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} response.Data[dto.JobResponse] "Publish job"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties/{id}/publish [get]
// @Security BearerAuth
func (handler *Handler) GetPublishJob(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPublishJob")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	job, err := handler.service.Job(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get publish job")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Publish job retrieved successfully")

	response.WithJSON(w, http.StatusOK, job)
}

// ResumePublish reruns the incomplete steps of a publish job.
// @Summary Resume a publish job
// @Description Execute the remaining steps of an incomplete publish run with resubmitted assets.
// @Tags Publication
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Property ID"
// @Param data formData string false "Resume payload as JSON"
// @Param photos formData file false "Property photos"
// @Success 200 {object} response.Data[dto.JobResponse] "Publish job after resume"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties/{id}/publish/resume [post]
// @Security BearerAuth
func (handler *Handler) ResumePublish(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ResumePublish")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, err)

		return
	}

	var req dto.ResumePublishRequest
	if data := r.FormValue(formFieldData); data != constant.Empty {
		if err := json.Unmarshal([]byte(data), &req); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to decode resume payload")

			response.WithError(w, failure.BadRequest(err))

			return
		}
	}

	attachPhotos(r, &req.Photos, req.RoomTypes)

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	job, err := handler.service.Resume(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to resume publish")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Publish resumed by user " + user)

	response.WithJSON(w, http.StatusOK, job)
}

// attachPhotos binds the uploaded files to the decoded payload: the
// property batch under "photos", each candidate's batch under its
// index-suffixed field.
func attachPhotos(r *http.Request, propertyPhotos *[]*multipart.FileHeader, candidates []dto.RoomTypeCandidate) {
	if r.MultipartForm == nil {
		return
	}

	*propertyPhotos = r.MultipartForm.File[formFieldPhotos]

	for i := range candidates {
		candidates[i].Photos = r.MultipartForm.File[fmt.Sprintf(formFieldRoomTypePhotos, i)]
	}
}
