package roomtype

import (
	"net/http"

	"github.com/ah01567/Bookini/infras/otel"
	"github.com/ah01567/Bookini/internal/domains/roomtype/service"
	"github.com/ah01567/Bookini/shared/constant"
	"github.com/ah01567/Bookini/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.RoomType
	otel    otel.Otel
}

func New(service service.RoomType, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers routes directly because other handlers share the
// /properties prefix and chi rejects mounting it twice.
func (handler *Handler) Router(router chi.Router) {
	router.Get("/properties/{id}/room-types", handler.GetRoomTypes)
}

// GetRoomTypes lists the room types of a property.
// @Summary Get room types
// @Description Retrieve the room types of a property in creation order.
// @Tags RoomType
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} response.Data[dto.GetRoomTypesResponse] "Room types"
// @Failure 500 {object} response.Error
// @Router /v1/properties/{id}/room-types [get]
func (handler *Handler) GetRoomTypes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomTypes")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	roomTypes, err := handler.service.ListByProperty(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room types")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room types retrieved successfully")

	response.WithJSON(w, http.StatusOK, roomTypes)
}
