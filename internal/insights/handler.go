package insights

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"traits-backend/internal/profiles"
	"traits-backend/internal/shared/server/middleware"
	"traits-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the analysis service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/insights", h.getInsights)
	rg.POST("/insights/preview", h.previewInsights)
	rg.GET("/profile/completeness", h.getCompleteness)
}

func (h *Handler) getInsights(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	result, err := h.Svc.AnalyzeStored(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, profiles.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "no profile stored", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to generate insights", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, result)
}

// previewInsights analyzes a profile supplied in the request body without
// persisting anything.
func (h *Handler) previewInsights(c *gin.Context) {
	var req profiles.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid JSON payload", nil)
		return
	}

	profile, fieldErrs := req.Validate(middleware.UserIDFromContext(c))
	if len(fieldErrs) > 0 {
		details := make([]map[string]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			details = append(details, map[string]string{"field": fe.Field, "issue": fe.Issue})
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", "profile payload rejected", details)
		return
	}

	respond.JSON(c, http.StatusOK, h.Svc.AnalyzePreview(profile))
}

func (h *Handler) getCompleteness(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	report, err := h.Svc.CompletenessReport(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, profiles.ErrNotFound):
			// No stored profile reads as 0% complete, not an error.
			report = h.Svc.Analyzer.Completeness(profiles.Profile{})
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to compute completeness", nil)
			return
		}
	}

	respond.JSON(c, http.StatusOK, report)
}
