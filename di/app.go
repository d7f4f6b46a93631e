package di

import (
	"github.com/ah01567/Bookini/internal/workers"
	"github.com/ah01567/Bookini/transport/http"
)

// App bundles the HTTP server with the background workers that share its
// dependency graph. The publish registry in particular must be the same
// instance for the service and the reaper.
type App struct {
	HTTP   *http.HTTP
	Reaper *workers.Reaper
}
