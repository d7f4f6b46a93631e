package dto

import (
	"time"

	"github.com/ah01567/Bookini/internal/domains/property/model"
	"github.com/ah01567/Bookini/shared"
	gDto "github.com/ah01567/Bookini/shared/dto"
)

type LocationResponse struct {
	Country   string          `json:"country"`
	Wilaya    string          `json:"wilaya"`
	WilayaKey string          `json:"wilaya_key"`
	Commune   string          `json:"commune"`
	Address   string          `json:"address"`
	Center    *model.GeoPoint `json:"center,omitempty"`
}

type PhotoResponse struct {
	Src         string         `json:"src"`
	Path        string         `json:"path"`
	ContentType string         `json:"content_type"`
	Size        int64          `json:"size"`
	Thumbs      map[int]string `json:"thumbs,omitempty"`
}

func (p *PhotoResponse) FromModel(photo model.Photo) {
	p.Src = photo.Src
	p.Path = photo.Path
	p.ContentType = photo.ContentType
	p.Size = photo.Size
}

// WithThumbs attaches resized-variant URLs resolved by the blob store.
func (p *PhotoResponse) WithThumbs(widths []int, resolve func(path string, width int) string) {
	if p.Path == "" {
		return
	}

	p.Thumbs = make(map[int]string, len(widths))
	for _, width := range widths {
		p.Thumbs[width] = resolve(p.Path, width)
	}
}

type PropertyResponse struct {
	ID           string           `json:"id"`
	HostID       string           `json:"host_id"`
	OrgID        *string          `json:"org_id,omitempty"`
	Title        string           `json:"title"`
	Type         string           `json:"type"`
	PropertyKind string           `json:"property_kind"`
	Status       string           `json:"status"`
	Location     LocationResponse `json:"location"`
	Description  string           `json:"description"`
	Amenities    []string         `json:"amenities"`
	BasePriceDZD int64            `json:"base_price_dzd"`
	Capacity     *model.Capacity  `json:"capacity,omitempty"`
	HotelMeta    *model.HotelMeta `json:"hotel_meta,omitempty"`
	Photos       []PhotoResponse  `json:"photos"`
	RatingAvg    float64          `json:"rating_avg"`
	RatingCount  int              `json:"rating_count"`
	gDto.Metadata
}

func (r *PropertyResponse) FromModel(mod model.Property) {
	r.ID = mod.ID
	r.HostID = mod.HostID
	r.OrgID = mod.OrgID
	r.Title = mod.Title
	r.Type = mod.Type
	r.PropertyKind = mod.PropertyKind
	r.Status = mod.Status
	r.Location = LocationResponse{
		Country:   mod.Country,
		Wilaya:    mod.Wilaya,
		WilayaKey: mod.RegionKey(),
		Commune:   mod.Commune,
		Address:   mod.Address,
		Center:    mod.Center,
	}
	r.Description = mod.Description
	r.Amenities = mod.Amenities
	r.BasePriceDZD = mod.BasePriceDZD
	r.Capacity = mod.Capacity
	r.HotelMeta = mod.HotelMeta
	r.RatingAvg = mod.RatingAvg
	r.RatingCount = mod.RatingCount

	r.Photos = make([]PhotoResponse, len(mod.Photos))
	for i, photo := range mod.Photos {
		r.Photos[i].FromModel(photo)
	}

	r.Metadata.FromModel(mod.Metadata)
}

type GetPropertiesResponse struct {
	Properties []PropertyResponse `json:"properties"`
	TotalPage  int                `json:"total_page"`
	TotalData  int                `json:"total_data"`
}

func (r *GetPropertiesResponse) FromModels(models []model.Property, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Properties = make([]PropertyResponse, len(models))
	for i, mod := range models {
		r.Properties[i].FromModel(mod)
	}
}

// OwnedPropertiesResponse carries the host dashboard listing. Degraded is
// set when the ordered query failed and results were sorted in memory.
type OwnedPropertiesResponse struct {
	Properties []PropertyResponse `json:"properties"`
	Degraded   bool               `json:"degraded,omitempty"`
	Warning    string             `json:"warning,omitempty"`
}

func (r *OwnedPropertiesResponse) FromModels(models []model.Property) {
	r.Properties = make([]PropertyResponse, len(models))
	for i, mod := range models {
		r.Properties[i].FromModel(mod)
	}
}

type SetStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=draft pending_review active paused rejected"`
}

type UpdateStatusRequest struct {
	Status string `db:"status" json:"status"`
}

// StatusChangedEvent is the lifecycle message emitted after a committed
// status change.
type StatusChangedEvent struct {
	PropertyID string    `json:"property_id"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	ChangedBy  string    `json:"changed_by"`
	ChangedAt  time.Time `json:"changed_at"`
}

type StatusResponse struct {
	PropertyID string `json:"property_id"`
	Status     string `json:"status"`
	Previous   string `json:"previous_status,omitempty"`
	State      string `json:"state"`
}
