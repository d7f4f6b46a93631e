package dto

import (
	"mime/multipart"
	"strings"
	"time"

	propertyModel "github.com/ah01567/Bookini/internal/domains/property/model"
	"github.com/ah01567/Bookini/internal/domains/publication/model"
	rtModel "github.com/ah01567/Bookini/internal/domains/roomtype/model"
	"github.com/ah01567/Bookini/shared/constant"
	gModel "github.com/ah01567/Bookini/shared/model"
	"github.com/ah01567/Bookini/shared/text"
	"github.com/ah01567/Bookini/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// RoomTypeCandidate is one room-type row of the publish form. Candidates
// without a name or without units are skipped silently.
type RoomTypeCandidate struct {
	Name         string            `json:"name"`
	TotalUnits   int               `json:"total_units"`
	BasePriceDZD int64             `json:"base_price_dzd"`
	Capacity     *rtModel.Capacity `json:"capacity,omitempty"`
	Amenities    []string          `json:"amenities,omitempty"`

	Photos []*multipart.FileHeader `json:"-" validate:"omitempty,dive,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=10"`
}

func (c *RoomTypeCandidate) Valid() bool {
	return strings.TrimSpace(c.Name) != "" && c.TotalUnits > 0
}

func (c *RoomTypeCandidate) ToModel(user, propertyID string) rtModel.RoomType {
	return rtModel.RoomType{
		ID:           uuid.NewString(),
		PropertyID:   propertyID,
		Name:         strings.TrimSpace(c.Name),
		TotalUnits:   c.TotalUnits,
		BasePriceDZD: max(c.BasePriceDZD, 0),
		Capacity:     c.Capacity,
		Amenities:    pq.StringArray(c.Amenities),
		Photos:       propertyModel.PhotoList{},
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type PublishRequest struct {
	Title        string   `json:"title"       validate:"required"`
	Type         string   `json:"type"        validate:"required,oneof=hotel guesthouse apartment house"`
	OrgID        *string  `json:"org_id"      validate:"omitempty,uuid"`
	Wilaya       string   `json:"wilaya"      validate:"required"`
	Commune      string   `json:"commune"     validate:"omitempty,max=100"`
	Address      string   `json:"address"     validate:"omitempty,max=200"`
	Description  string   `json:"description" validate:"omitempty,max=5000"`
	Amenities    []string `json:"amenities"`
	BasePriceDZD int64    `json:"base_price_dzd"`
	Guests       int      `json:"guests"`
	Bedrooms     int      `json:"bedrooms"`
	Beds         int      `json:"beds"`
	Bathrooms    int      `json:"bathrooms"`
	StarRating   int      `json:"star_rating"`

	Photos []*multipart.FileHeader `json:"-" validate:"omitempty,dive,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=10"`

	RoomTypes []RoomTypeCandidate `json:"room_types"`
}

// ValidRoomTypes filters the candidates down to the persistable ones,
// preserving input order.
func (r *PublishRequest) ValidRoomTypes() []RoomTypeCandidate {
	valid := make([]RoomTypeCandidate, 0, len(r.RoomTypes))

	for _, candidate := range r.RoomTypes {
		if candidate.Valid() {
			valid = append(valid, candidate)
		}
	}

	return valid
}

// ToPropertyModel builds the parent record. The structural kind decides
// which half of the shape is populated: single units carry price,
// capacity and amenities, hotel kinds carry hotel metadata and leave
// pricing to their room types. Numeric inputs are clamped to their
// minimums rather than rejected.
func (r *PublishRequest) ToPropertyModel(user string) propertyModel.Property {
	kind := propertyModel.KindForType(r.Type)

	property := propertyModel.Property{
		ID:           uuid.NewString(),
		HostID:       user,
		OrgID:        r.OrgID,
		Title:        strings.TrimSpace(r.Title),
		Type:         r.Type,
		PropertyKind: kind,
		Status:       propertyModel.StatusPendingReview,
		Country:      constant.DefaultCountry,
		Wilaya:       r.Wilaya,
		WilayaKey:    text.Keyify(r.Wilaya),
		Commune:      r.Commune,
		Address:      r.Address,
		Description:  r.Description,
		Amenities:    pq.StringArray{},
		Photos:       propertyModel.PhotoList{},
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if kind == propertyModel.KindSingleUnit {
		property.Amenities = pq.StringArray(r.Amenities)
		property.BasePriceDZD = max(r.BasePriceDZD, 0)
		property.Capacity = &propertyModel.Capacity{
			Guests:    max(r.Guests, 1),
			Bedrooms:  max(r.Bedrooms, 0),
			Beds:      max(r.Beds, 0),
			Bathrooms: max(r.Bathrooms, 0),
		}

		return property
	}

	property.HotelMeta = &propertyModel.HotelMeta{
		StarRating: max(r.StarRating, 0),
	}

	return property
}

// ToJobModel builds the durable publish record with one pending step per
// valid room-type candidate.
func (r *PublishRequest) ToJobModel(user, propertyID string) model.PublishJob {
	candidates := r.ValidRoomTypes()

	steps := make(model.StepList, len(candidates))
	for i, candidate := range candidates {
		steps[i] = model.RoomTypeStep{
			Name:       strings.TrimSpace(candidate.Name),
			PhotoCount: len(candidate.Photos),
		}
	}

	return model.PublishJob{
		ID:            uuid.NewString(),
		PropertyID:    propertyID,
		State:         model.StateRunning,
		RoomTypeSteps: steps,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// ResumePublishRequest carries replacement assets for the steps a
// partial publish never finished. Candidates are matched to pending
// steps by name.
type ResumePublishRequest struct {
	Photos []*multipart.FileHeader `json:"-" validate:"omitempty,dive,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=10"`

	RoomTypes []RoomTypeCandidate `json:"room_types"`
}

type UpdatePhotosRequest struct {
	Photos propertyModel.PhotoList `db:"photos" json:"photos"`
}

type PublishResponse struct {
	PropertyID string `json:"property_id"`
	JobID      string `json:"job_id"`
}

type JobResponse struct {
	JobID              string               `json:"job_id"`
	PropertyID         string               `json:"property_id"`
	State              string               `json:"state"`
	PropertyPhotosDone bool                 `json:"property_photos_done"`
	RoomTypeSteps      []model.RoomTypeStep `json:"room_type_steps"`
	LastError          string               `json:"last_error,omitempty"`
	UploadedPhotos     int                  `json:"uploaded_photos"`
	TotalPhotos        int                  `json:"total_photos"`
}

func (j *JobResponse) FromModel(mod model.PublishJob) {
	j.JobID = mod.ID
	j.PropertyID = mod.PropertyID
	j.State = mod.State
	j.PropertyPhotosDone = mod.PropertyPhotosDone
	j.RoomTypeSteps = mod.RoomTypeSteps
	j.LastError = mod.LastError
}

// PublishedEvent is the lifecycle message emitted after a fully
// completed publish run.
type PublishedEvent struct {
	PropertyID  string    `json:"property_id"`
	JobID       string    `json:"job_id"`
	RoomTypes   int       `json:"room_types"`
	Photos      int       `json:"photos"`
	PublishedBy string    `json:"published_by"`
	PublishedAt time.Time `json:"published_at"`
}
