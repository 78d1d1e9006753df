package api

import "github.com/gin-gonic/gin"

// HealthHandler provides liveness and readiness endpoints for the service.
//
// Responsibilities:
//   - /healthz: Basic liveness probe (always returns 200 OK).
//   - /readyz: Readiness probe (depends on the observation store being populated).
type HealthHandler struct {
	storeLen func() int // Reports how many observations are loaded
}

// NewHealthHandler constructs a HealthHandler with the provided store length
// function, typically store.Len from the ObservationStore.
func NewHealthHandler(storeLen func() int) *HealthHandler {
	return &HealthHandler{storeLen: storeLen}
}

// Register mounts the health and readiness endpoints into the provided Gin router.
//
// Routes:
//   - GET /healthz: Always returns 200 OK.
//   - GET /readyz: Returns 200 OK once observations are loaded, 503 while the store is empty.
func (h *HealthHandler) Register(r *gin.Engine) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/readyz", func(c *gin.Context) {
		if h.storeLen != nil && h.storeLen() == 0 {
			c.JSON(503, gin.H{"status": "degraded"})
			return
		}
		c.JSON(200, gin.H{"status": "ready"})
	})
}
