package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	propertyModel "github.com/ah01567/Bookini/internal/domains/property/model"
	gModel "github.com/ah01567/Bookini/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "room_types"
	EntityName = "room_type"

	FieldID         = "id"
	FieldPropertyID = "property_id"
	FieldName       = "name"
	FieldTotalUnits = "total_units"
	FieldPhotos     = "photos"
)

type Capacity struct {
	Guests    int `json:"guests"`
	Beds      int `json:"beds"`
	Bathrooms int `json:"bathrooms"`
}

func (c *Capacity) Value() (driver.Value, error) {
	if c == nil {
		return nil, nil
	}

	return json.Marshal(c) //nolint:wrapcheck
}

func (c *Capacity) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, c) //nolint:wrapcheck
	case string:
		return json.Unmarshal([]byte(v), c) //nolint:wrapcheck
	default:
		return fmt.Errorf("unsupported source type %T for jsonb scan", src)
	}
}

// RoomType is a bookable unit class of a hotel-kind property.
type RoomType struct {
	ID           string                  `db:"id"`
	PropertyID   string                  `db:"property_id"`
	Name         string                  `db:"name"`
	TotalUnits   int                     `db:"total_units"`
	BasePriceDZD int64                   `db:"base_price_dzd"`
	Capacity     *Capacity               `db:"capacity"`
	Amenities    pq.StringArray          `db:"amenities"`
	Photos       propertyModel.PhotoList `db:"photos"`
	gModel.Metadata
}

// Valid reports whether a room-type candidate is persistable: it needs a
// name and at least one unit. Invalid candidates are skipped silently.
func (r *RoomType) Valid() bool {
	return r.Name != "" && r.TotalUnits > 0
}
