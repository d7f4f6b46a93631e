package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"slices"

	gModel "github.com/ah01567/Bookini/shared/model"
	"github.com/ah01567/Bookini/shared/text"

	"github.com/lib/pq"
)

const (
	TableName  = "properties"
	EntityName = "property"

	FieldID           = "id"
	FieldHostID       = "host_id"
	FieldOrgID        = "org_id"
	FieldTitle        = "title"
	FieldType         = "type"
	FieldPropertyKind = "property_kind"
	FieldStatus       = "status"
	FieldWilaya       = "wilaya"
	FieldWilayaKey    = "wilaya_key"
	FieldBasePrice    = "base_price_dzd"
	FieldPhotos       = "photos"
)

const (
	TypeHotel      = "hotel"
	TypeGuesthouse = "guesthouse"
	TypeApartment  = "apartment"
	TypeHouse      = "house"
)

const (
	KindHotel      = "hotel"
	KindSingleUnit = "single_unit"
)

const (
	StatusDraft         = "draft"
	StatusPendingReview = "pending_review"
	StatusActive        = "active"
	StatusPaused        = "paused"
	StatusRejected      = "rejected"
)

// KindForType derives the structural kind from the listing type.
// Hotel-kind properties carry room types; single units carry their own
// price, capacity and amenities.
func KindForType(propertyType string) string {
	if propertyType == TypeHotel || propertyType == TypeGuesthouse {
		return KindHotel
	}

	return KindSingleUnit
}

var allowedTransitions = map[string][]string{
	StatusDraft:         {StatusPendingReview},
	StatusPendingReview: {StatusActive, StatusRejected, StatusDraft},
	StatusActive:        {StatusPaused, StatusRejected},
	StatusPaused:        {StatusActive, StatusRejected},
	StatusRejected:      {StatusPendingReview},
}

// CanTransition reports whether a status change is allowed. A change to
// the current status is always permitted and treated as a no-op upstream.
func CanTransition(from, to string) bool {
	if from == to {
		return true
	}

	return slices.Contains(allowedTransitions[from], to)
}

type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (g *GeoPoint) Value() (driver.Value, error) {
	if g == nil {
		return nil, nil
	}

	return json.Marshal(g) //nolint:wrapcheck
}

func (g *GeoPoint) Scan(src any) error {
	return scanJSON(src, g)
}

// Capacity describes a single-unit listing. Hotel-kind properties keep
// it nil and describe capacity per room type instead.
type Capacity struct {
	Guests    int `json:"guests"`
	Bedrooms  int `json:"bedrooms"`
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
	return scanJSON(src, c)
}

type HotelMeta struct {
	StarRating  int   `json:"star_rating"`
	MinPriceDZD int64 `json:"min_price_dzd,omitempty"`
}

func (h *HotelMeta) Value() (driver.Value, error) {
	if h == nil {
		return nil, nil
	}

	return json.Marshal(h) //nolint:wrapcheck
}

func (h *HotelMeta) Scan(src any) error {
	return scanJSON(src, h)
}

type Photo struct {
	Src         string `json:"src"`
	Path        string `json:"path"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

type PhotoList []Photo

func (p PhotoList) Value() (driver.Value, error) {
	if p == nil {
		p = PhotoList{}
	}

	return json.Marshal(p) //nolint:wrapcheck
}

func (p *PhotoList) Scan(src any) error {
	return scanJSON(src, p)
}

func scanJSON(src, dest any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dest) //nolint:wrapcheck
	case string:
		return json.Unmarshal([]byte(v), dest) //nolint:wrapcheck
	default:
		return fmt.Errorf("unsupported source type %T for jsonb scan", src)
	}
}

type Property struct {
	ID           string         `db:"id"`
	HostID       string         `db:"host_id"`
	OrgID        *string        `db:"org_id"`
	Title        string         `db:"title"`
	Type         string         `db:"type"`
	PropertyKind string         `db:"property_kind"`
	Status       string         `db:"status"`
	Country      string         `db:"country"`
	Wilaya       string         `db:"wilaya"`
	WilayaKey    string         `db:"wilaya_key"`
	Commune      string         `db:"commune"`
	Address      string         `db:"address"`
	Center       *GeoPoint      `db:"center"`
	Description  string         `db:"description"`
	Amenities    pq.StringArray `db:"amenities"`
	BasePriceDZD int64          `db:"base_price_dzd"`
	Capacity     *Capacity      `db:"capacity"`
	HotelMeta    *HotelMeta     `db:"hotel_meta"`
	Photos       PhotoList      `db:"photos"`
	RatingAvg    float64        `db:"rating_avg"`
	RatingCount  int            `db:"rating_count"`
	gModel.Metadata
}

// ApproxPriceDZD is the browse-facing price: the unit base price when
// set, otherwise the hotel's advertised minimum. ok is false when the
// listing has no usable price at all.
func (p *Property) ApproxPriceDZD() (price int64, ok bool) {
	if p.BasePriceDZD > 0 {
		return p.BasePriceDZD, true
	}

	if p.HotelMeta != nil && p.HotelMeta.MinPriceDZD > 0 {
		return p.HotelMeta.MinPriceDZD, true
	}

	return 0, false
}

// RegionKey is the normalized wilaya grouping key, derived from the
// display name when the stored key is missing.
func (p *Property) RegionKey() string {
	if p.WilayaKey != "" {
		return p.WilayaKey
	}

	return text.Keyify(p.Wilaya)
}
