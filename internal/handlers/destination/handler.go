package destination

import (
	"net/http"

	"github.com/ah01567/Bookini/infras/otel"
	"github.com/ah01567/Bookini/internal/domains/destination/model/dto"
	"github.com/ah01567/Bookini/internal/domains/destination/service"
	"github.com/ah01567/Bookini/shared"
	"github.com/ah01567/Bookini/shared/constant"
	"github.com/ah01567/Bookini/shared/failure"
	"github.com/ah01567/Bookini/shared/validator"
	"github.com/ah01567/Bookini/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

const (
	queryParamTypes    = "types"
	queryParamAmenity  = "amenities"
	queryParamMinPrice = "min_price_dzd"
	queryParamMaxPrice = "max_price_dzd"
	queryParamWilaya   = "wilaya"
)

type Handler struct {
	service service.Destination
	otel    otel.Otel
}

func New(service service.Destination, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/destinations", func(routerGroup chi.Router) {
		routerGroup.Get("/top", handler.GetTopRegions)
		routerGroup.Get("/search", handler.SearchProperties)
		routerGroup.Get("/price-bounds", handler.GetPriceBounds)
	})
}

// GetTopRegions lists the most listed regions.
// @Summary Get top regions
// @Description Retrieve the regions with the most active properties, ordered by listing count.
// @Tags Destination
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.TopRegionsResponse] "Top regions"
// @Failure 500 {object} response.Error
// @Router /v1/destinations/top [get]
func (handler *Handler) GetTopRegions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTopRegions")
	defer scope.End()

	regions, err := handler.service.TopRegions(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get top regions")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Top regions retrieved successfully")

	response.WithJSON(w, http.StatusOK, regions)
}

// SearchProperties browses the active property set with filters.
// @Summary Search properties
// @Description Search active properties by type, amenities, price range and region.
// @Tags Destination
// @Accept json
// @Produce json
// @Param types query []string false "Property types" collectionFormat(multi)
// @Param amenities query []string false "Required amenities" collectionFormat(multi)
// @Param min_price_dzd query int false "Minimum approximate nightly price in DZD"
// @Param max_price_dzd query int false "Maximum approximate nightly price in DZD"
// @Param wilaya query string false "Region name"
// @Success 200 {object} response.Data[dto.SearchResponse] "Matching properties"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/destinations/search [get]
func (handler *Handler) SearchProperties(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchProperties")
	defer scope.End()

	req, err := searchRequestFromQuery(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse search query")

		response.WithError(w, failure.BadRequest(err))

		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	result, err := handler.service.Search(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search properties")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Search completed successfully")

	response.WithJSON(w, http.StatusOK, result)
}

// GetPriceBounds reports the price range of the active set.
// @Summary Get price bounds
// @Description Retrieve the minimum and maximum approximate nightly price across active properties.
// @Tags Destination
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.PriceBoundsResponse] "Price bounds"
// @Failure 500 {object} response.Error
// @Router /v1/destinations/price-bounds [get]
func (handler *Handler) GetPriceBounds(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPriceBounds")
	defer scope.End()

	bounds, err := handler.service.PriceBounds(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get price bounds")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Price bounds retrieved successfully")

	response.WithJSON(w, http.StatusOK, bounds)
}

func searchRequestFromQuery(r *http.Request) (req dto.SearchRequest, err error) {
	query := r.URL.Query()

	req.Types = query[queryParamTypes]
	req.Amenities = query[queryParamAmenity]
	req.Wilaya = query.Get(queryParamWilaya)

	if raw := query.Get(queryParamMinPrice); raw != constant.Empty {
		value, err := shared.ConvertStringToInt64(raw)
		if err != nil {
			return req, err
		}

		req.MinPriceDZD = &value
	}

	if raw := query.Get(queryParamMaxPrice); raw != constant.Empty {
		value, err := shared.ConvertStringToInt64(raw)
		if err != nil {
			return req, err
		}

		req.MaxPriceDZD = &value
	}

	return req, nil
}
