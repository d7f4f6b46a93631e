package registry

import (
	"sync"
	"time"

	"github.com/ah01567/Bookini/shared/timezone"
)

// Progress is the live view of one publish run. It only exists while the
// owning process is working on the run; the durable record lives in the
// publish_jobs table.
type Progress struct {
	JobID          string    `json:"job_id"`
	PropertyID     string    `json:"property_id"`
	UploadedPhotos int       `json:"uploaded_photos"`
	TotalPhotos    int       `json:"total_photos"`
	StartedAt      time.Time `json:"started_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Registry tracks in-flight publish runs keyed by property id. Uploads
// keep running after the request that started them is gone, so progress
// has to be reachable from any later request.
type Registry interface {
	Track(propertyID, jobID string, totalPhotos int)
	Advance(propertyID string, uploaded int)
	Release(propertyID string)
	Get(propertyID string) (Progress, bool)
	Active() []Progress
}

type registryImpl struct {
	mu   sync.RWMutex
	runs map[string]*Progress
}

func New() Registry {
	return &registryImpl{
		runs: make(map[string]*Progress),
	}
}

func (r *registryImpl) Track(propertyID, jobID string, totalPhotos int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.runs[propertyID] = &Progress{
		JobID:       jobID,
		PropertyID:  propertyID,
		TotalPhotos: totalPhotos,
		StartedAt:   timezone.Now(),
		UpdatedAt:   timezone.Now(),
	}
}

func (r *registryImpl) Advance(propertyID string, uploaded int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	run, ok := r.runs[propertyID]
	if !ok {
		return
	}

	run.UploadedPhotos += uploaded
	run.UpdatedAt = timezone.Now()
}

func (r *registryImpl) Release(propertyID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.runs, propertyID)
}

func (r *registryImpl) Get(propertyID string) (Progress, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	run, ok := r.runs[propertyID]
	if !ok {
		return Progress{}, false
	}

	return *run, true
}

func (r *registryImpl) Active() []Progress {
	r.mu.RLock()
	defer r.mu.RUnlock()

	active := make([]Progress, 0, len(r.runs))
	for _, run := range r.runs {
		active = append(active, *run)
	}

	return active
}
