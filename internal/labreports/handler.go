package labreports

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"water-backend/internal/shared/metrics"
	"water-backend/internal/shared/server/respond"
	"water-backend/internal/shared/telemetry"
)

// Handler parses uploaded lab reports into parameter sets.
type Handler struct {
	MaxBytes int64
}

// NewHandler constructs a Handler with the given upload size cap.
func NewHandler(maxBytes int64) *Handler {
	if maxBytes <= 0 {
		maxBytes = 10 << 20
	}
	return &Handler{MaxBytes: maxBytes}
}

// RegisterRoutes attaches lab report routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/lab-reports/parse", h.parseReport)
}

func (h *Handler) parseReport(c *gin.Context) {
	metrics.IncReportParse()

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		metrics.IncReportParseFailed()
		respond.Error(c, http.StatusBadRequest, "validation_error", "multipart field 'file' is required", nil)
		return
	}
	defer file.Close()

	if header.Size > h.MaxBytes {
		metrics.IncReportParseFailed()
		respond.Error(c, http.StatusRequestEntityTooLarge, "too_large", "report exceeds upload size limit", nil)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, h.MaxBytes+1))
	if err != nil {
		metrics.IncReportParseFailed()
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to read report", nil)
		return
	}
	if int64(len(data)) > h.MaxBytes {
		metrics.IncReportParseFailed()
		respond.Error(c, http.StatusRequestEntityTooLarge, "too_large", "report exceeds upload size limit", nil)
		return
	}

	text, err := ExtractText(c.Request.Context(), data)
	if err != nil {
		metrics.IncReportParseFailed()
		respond.Error(c, http.StatusUnprocessableEntity, "extract_error", "could not extract text from report", nil)
		return
	}

	parsed := Parse(text)
	telemetry.Info("labreport.parsed", map[string]any{
		"file_name":   header.Filename,
		"bytes":       len(data),
		"found_count": len(parsed.Found),
	})

	respond.OK(c, parsed)
}
