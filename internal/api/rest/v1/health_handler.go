package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheckFunc reports whether a backing dependency is reachable
type HealthCheckFunc func(ctx context.Context) error

// HealthHandler serves the liveness endpoint
type HealthHandler interface {
	Health(ctx *gin.Context)
}

type healthHandler struct {
	check HealthCheckFunc
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(check HealthCheckFunc) HealthHandler {
	return &healthHandler{check: check}
}

// Health handles the GET request for service health
// @Summary Service health
// @Tags Health
// @Produce json
// @Success 200 {object} InfoResponse
// @Failure 503 {object} ErrorResponse
// @Router /health [get]
func (handler *healthHandler) Health(ctx *gin.Context) {
	if err := handler.check(ctx); err != nil {
		respondWithError(ctx, http.StatusServiceUnavailable, fmt.Sprintf("unhealthy: %v", err))
		return
	}
	ctx.JSON(http.StatusOK, InfoResponse{Message: "ok"})
}
