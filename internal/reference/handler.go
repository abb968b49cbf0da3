// Package reference serves the static lookup data behind the assessment UI:
// the active violation limits and the treatment technology guide.
package reference

import (
	"github.com/gin-gonic/gin"

	"water-backend/internal/shared/server/respond"
	"water-backend/water/pipeline"
	"water-backend/water/treatment"
)

// Handler serves reference lookups.
type Handler struct {
	Limits pipeline.Thresholds
}

// NewHandler constructs a Handler around the active limit table.
func NewHandler(limits pipeline.Thresholds) *Handler {
	return &Handler{Limits: limits}
}

// RegisterRoutes attaches reference routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/reference/thresholds", h.getThresholds)
	rg.GET("/reference/treatments", h.getTreatments)
}

func (h *Handler) getThresholds(c *gin.Context) {
	respond.OK(c, gin.H{
		"phMin":           h.Limits.PHMin,
		"phMax":           h.Limits.PHMax,
		"hardness":        h.Limits.Hardness,
		"solids":          h.Limits.Solids,
		"chloramines":     h.Limits.Chloramines,
		"sulfate":         h.Limits.Sulfate,
		"trihalomethanes": h.Limits.Trihalomethanes,
		"turbidity":       h.Limits.Turbidity,
	})
}

func (h *Handler) getTreatments(c *gin.Context) {
	respond.OK(c, treatment.Catalog())
}
