package obs

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Check verifies one dependency of the service, typically a shared resource such as
// the tour collection or the copy document. An optional check that fails leaves the
// service ready but degraded.
type Check struct {
	Name     string
	Run      func() error
	Optional bool
}

type HealthHandlers struct {
	Checks []Check
}

type readiness struct {
	Status    string            `json:"status"`
	Resources map[string]string `json:"resources,omitempty"`
}

func (h HealthHandlers) Livez(c *gin.Context) {
	c.Status(http.StatusOK)
}

// Readyz answers 503 while a required resource is missing and names every failing one.
func (h HealthHandlers) Readyz(c *gin.Context) {
	body, ready := h.evaluate()
	if !ready {
		c.JSON(http.StatusServiceUnavailable, body)
		return
	}
	c.JSON(http.StatusOK, body)
}

func (h HealthHandlers) evaluate() (readiness, bool) {
	body := readiness{Status: "ready"}
	ready := true
	for _, check := range h.Checks {
		if check.Run == nil {
			continue
		}
		if body.Resources == nil {
			body.Resources = make(map[string]string, len(h.Checks))
		}
		if err := check.Run(); err != nil {
			body.Resources[check.Name] = err.Error()
			if check.Optional {
				if ready {
					body.Status = "degraded"
				}
				continue
			}
			ready = false
			body.Status = "not ready"
			continue
		}
		body.Resources[check.Name] = "ok"
	}
	return body, ready
}
