package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	gModel "github.com/ah01567/Bookini/shared/model"
)

const (
	TableName  = "publish_jobs"
	EntityName = "publish_job"

	FieldID                 = "id"
	FieldPropertyID         = "property_id"
	FieldState              = "state"
	FieldPropertyPhotosDone = "property_photos_done"
	FieldRoomTypeSteps      = "room_type_steps"
	FieldLastError          = "last_error"
)

const (
	StateRunning   = "running"
	StateCompleted = "completed"
	StateFailed    = "failed"
)

// RoomTypeStep records how far a single room-type candidate got through
// the publish pipeline. Steps are stored in input order.
type RoomTypeStep struct {
	Name       string `json:"name"`
	RoomTypeID string `json:"room_type_id,omitempty"`
	Created    bool   `json:"created"`
	PhotosDone bool   `json:"photos_done"`
	PhotoCount int    `json:"photo_count"`
}

type StepList []RoomTypeStep

func (s StepList) Value() (driver.Value, error) {
	if s == nil {
		s = StepList{}
	}

	return json.Marshal(s) //nolint:wrapcheck
}

func (s *StepList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, s) //nolint:wrapcheck
	case string:
		return json.Unmarshal([]byte(v), s) //nolint:wrapcheck
	default:
		return fmt.Errorf("unsupported source type %T for jsonb scan", src)
	}
}

// PublishJob is the durable record of a publish run. A partially
// completed run keeps its job row so the remaining steps can be resumed;
// nothing already written is rolled back.
type PublishJob struct {
	ID                 string   `db:"id"`
	PropertyID         string   `db:"property_id"`
	State              string   `db:"state"`
	PropertyPhotosDone bool     `db:"property_photos_done"`
	RoomTypeSteps      StepList `db:"room_type_steps"`
	LastError          string   `db:"last_error"`
	gModel.Metadata
}

// Incomplete reports whether any pipeline step still has work left.
func (j *PublishJob) Incomplete() bool {
	if !j.PropertyPhotosDone {
		return true
	}

	for _, step := range j.RoomTypeSteps {
		if !step.Created || !step.PhotosDone {
			return true
		}
	}

	return false
}
