package assessments

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"water-backend/internal/shared/server/middleware"
	"water-backend/internal/shared/server/respond"
	"water-backend/water/param"
	"water-backend/water/pipeline"
)

// Handler wires HTTP handlers to the assessments service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches assessment routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/assessments", h.createAssessment)
	rg.GET("/assessments", h.listAssessments)
	rg.GET("/assessments/:id", h.getAssessment)
	rg.GET("/assessments/:id/export", h.exportAssessment)
	rg.GET("/assessments/:id/visuals", h.assessmentVisuals)
}

func (h *Handler) createAssessment(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var set param.Set
	if err := c.ShouldBindJSON(&set); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "request body must be a JSON object of water parameters", nil)
		return
	}

	rec, err := h.Svc.Assess(c.Request.Context(), userID, set)
	if err != nil {
		var verr *param.ValidationError
		var ierr *pipeline.InferenceError
		switch {
		case errors.As(err, &verr):
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid parameter value", []map[string]string{
				{"field": string(verr.Param), "issue": verr.Rule},
			})
		case errors.As(err, &ierr):
			respond.Error(c, http.StatusInternalServerError, "inference_error", "model evaluation failed", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to run assessment", nil)
		}
		return
	}

	c.Set("assessmentId", rec.ID)
	c.Set("verdict", verdictLabel(rec.Potable))

	respond.Created(c, rec)
}

func (h *Handler) getAssessment(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	assessmentID := c.Param("id")

	rec, err := h.Svc.Get(c.Request.Context(), userID, assessmentID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "assessment not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch assessment", nil)
		}
		return
	}

	respond.OK(c, rec)
}

func (h *Handler) listAssessments(c *gin.Context) {
	if isGuest, ok := c.Get("isGuest"); ok {
		if guest, ok2 := isGuest.(bool); ok2 && guest {
			respond.Error(c, http.StatusUnauthorized, "login_required", "Login required to view history", nil)
			return
		}
	}

	userID := middleware.UserIDFromContext(c)

	limit := 20
	offset := 0

	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}

	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	records, err := h.Svc.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list assessments", nil)
		return
	}

	resp := make([]gin.H, 0, len(records))
	for _, rec := range records {
		resp = append(resp, gin.H{
			"assessmentId": rec.ID,
			"potable":      rec.Potable,
			"confidence":   rec.Confidence,
			"riskCount":    len(rec.RiskFactors),
			"createdAt":    rec.CreatedAt,
		})
	}

	respond.OK(c, resp)
}

func (h *Handler) exportAssessment(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	assessmentID := c.Param("id")

	data, err := h.Svc.ExportCSV(c.Request.Context(), userID, assessmentID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "assessment not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to export assessment", nil)
		}
		return
	}

	filename := fmt.Sprintf("water_quality_results_%s.csv", assessmentID)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv", data)
}

func (h *Handler) assessmentVisuals(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	assessmentID := c.Param("id")

	proj, err := h.Svc.Visuals(c.Request.Context(), userID, assessmentID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "assessment not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to derive visuals", nil)
		}
		return
	}

	respond.OK(c, proj)
}

func verdictLabel(potable bool) string {
	if potable {
		return "safe"
	}
	return "unsafe"
}
