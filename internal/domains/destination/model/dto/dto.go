package dto

import (
	propertyModel "github.com/ah01567/Bookini/internal/domains/property/model"
	propertyDto "github.com/ah01567/Bookini/internal/domains/property/model/dto"
)

// SearchRequest holds browse filters applied in memory over the active
// property set. Nil price bounds leave that side open.
type SearchRequest struct {
	Types       []string `json:"types"       validate:"omitempty,dive,oneof=hotel guesthouse apartment house"`
	Amenities   []string `json:"amenities"`
	MinPriceDZD *int64   `json:"min_price_dzd" validate:"omitempty,gte=0"`
	MaxPriceDZD *int64   `json:"max_price_dzd" validate:"omitempty,gte=0"`
	Wilaya      string   `json:"wilaya"`
}

// RegionResponse carries a browse card for one region. Photo is the
// first photo seen among the region's listings and may be empty when
// none of them has one.
type RegionResponse struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Count int    `json:"count"`
	Photo string `json:"photo,omitempty"`
}

type TopRegionsResponse struct {
	Regions []RegionResponse `json:"regions"`
}

type SearchResponse struct {
	Properties []propertyDto.PropertyResponse `json:"properties"`
	TotalData  int                            `json:"total_data"`
}

func (s *SearchResponse) FromModels(models []propertyModel.Property) {
	s.Properties = make([]propertyDto.PropertyResponse, len(models))
	for i, mod := range models {
		s.Properties[i].FromModel(mod)
	}

	s.TotalData = len(models)
}

// PriceBoundsResponse reports the approximate price range across the
// active set. Priced is false when no active property has a usable price.
type PriceBoundsResponse struct {
	MinPriceDZD int64 `json:"min_price_dzd"`
	MaxPriceDZD int64 `json:"max_price_dzd"`
	Priced      bool  `json:"priced"`
}
