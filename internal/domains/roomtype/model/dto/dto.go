package dto

import (
	propertyDto "github.com/ah01567/Bookini/internal/domains/property/model/dto"
	"github.com/ah01567/Bookini/internal/domains/roomtype/model"
	gDto "github.com/ah01567/Bookini/shared/dto"
)

type RoomTypeResponse struct {
	ID           string                      `json:"id"`
	PropertyID   string                      `json:"property_id"`
	Name         string                      `json:"name"`
	TotalUnits   int                         `json:"total_units"`
	BasePriceDZD int64                       `json:"base_price_dzd"`
	Capacity     *model.Capacity             `json:"capacity,omitempty"`
	Amenities    []string                    `json:"amenities"`
	Photos       []propertyDto.PhotoResponse `json:"photos"`
	gDto.Metadata
}

func (r *RoomTypeResponse) FromModel(mod model.RoomType) {
	r.ID = mod.ID
	r.PropertyID = mod.PropertyID
	r.Name = mod.Name
	r.TotalUnits = mod.TotalUnits
	r.BasePriceDZD = mod.BasePriceDZD
	r.Capacity = mod.Capacity
	r.Amenities = mod.Amenities

	r.Photos = make([]propertyDto.PhotoResponse, len(mod.Photos))
	for i, photo := range mod.Photos {
		r.Photos[i].FromModel(photo)
	}

	r.Metadata.FromModel(mod.Metadata)
}

type GetRoomTypesResponse struct {
	RoomTypes []RoomTypeResponse `json:"room_types"`
}

func (r *GetRoomTypesResponse) FromModels(models []model.RoomType) {
	r.RoomTypes = make([]RoomTypeResponse, len(models))
	for i, mod := range models {
		r.RoomTypes[i].FromModel(mod)
	}
}
