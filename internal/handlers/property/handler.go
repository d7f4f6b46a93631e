package property

import (
	"encoding/json"
	"net/http"

	"github.com/ah01567/Bookini/infras/otel"
	"github.com/ah01567/Bookini/internal/domains/property/model"
	"github.com/ah01567/Bookini/internal/domains/property/model/dto"
	"github.com/ah01567/Bookini/internal/domains/property/service"
	"github.com/ah01567/Bookini/shared/constant"
	gDto "github.com/ah01567/Bookini/shared/dto"
	"github.com/ah01567/Bookini/shared/validator"
	"github.com/ah01567/Bookini/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Property
	otel    otel.Otel
}

func New(service service.Property, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers routes directly because other handlers share the
// /properties prefix and chi rejects mounting it twice.
func (handler *Handler) Router(router chi.Router) {
	router.Get("/properties", handler.GetProperties)
	router.Get("/properties/owned", handler.GetOwnedProperties)
	router.Get("/properties/{id}", handler.GetPropertyByID)
	router.Patch("/properties/{id}/status", handler.SetPropertyStatus)
}

// GetProperties retrieves properties based on query parameters.
// @Summary Get all properties
// @Description Retrieve properties with optional filtering and pagination.
// @Tags Property
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Param type query string false "Filter by property type"
// @Param wilaya_key query string false "Filter by region key"
// @Success 200 {object} response.Data[dto.GetPropertiesResponse] "List of properties"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties [get]
func (handler *Handler) GetProperties(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProperties")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	for _, field := range []string{model.FieldStatus, model.FieldType, model.FieldWilayaKey} {
		if value := r.URL.Query().Get(field); value != constant.Empty {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	properties, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get properties")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Properties retrieved successfully")

	response.WithJSON(w, http.StatusOK, properties)
}

// GetOwnedProperties lists the properties the authenticated host manages.
// @Summary Get owned properties
// @Description Retrieve the properties owned by the caller or any of their organizations.
// @Tags Property
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.OwnedPropertiesResponse] "Owned properties"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties/owned [get]
// @Security BearerAuth
func (handler *Handler) GetOwnedProperties(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOwnedProperties")
	defer scope.End()

	hostID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	orgIDs := r.URL.Query()[model.FieldOrgID]

	properties, err := handler.service.ListOwned(ctx, hostID, orgIDs)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get owned properties")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Owned properties retrieved successfully")

	response.WithJSON(w, http.StatusOK, properties)
}

// GetPropertyByID retrieves a property by its ID.
// @Summary Get a property by ID
// @Description Retrieve a property by its unique identifier.
// @Tags Property
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} response.Data[dto.PropertyResponse] "Property details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties/{id} [get]
func (handler *Handler) GetPropertyByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPropertyByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	property, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get property by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Property retrieved successfully")

	response.WithJSON(w, http.StatusOK, property)
}

// SetPropertyStatus applies a moderation status change.
// @Summary Set property status
// @Description Apply a status transition to a property. Disallowed transitions are rejected.
// @Tags Property
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param request body dto.SetStatusRequest true "Target status"
// @Success 200 {object} response.Data[dto.StatusResponse] "Status change result"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) SetPropertyStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetPropertyStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.SetStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")

		response.WithError(w, err)

		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	result, err := handler.service.SetStatus(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set property status")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Property status changed by user " + user)

	response.WithJSON(w, http.StatusOK, result)
}
