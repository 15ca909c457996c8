package profiles

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"traits-backend/internal/shared/metrics"
	"traits-backend/internal/shared/server/middleware"
	"traits-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the profile service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches profile routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/profile", h.getProfile)
	rg.PUT("/profile", h.putProfile)
	rg.DELETE("/profile", h.deleteProfile)
	rg.GET("/zodiac", h.lookupZodiac)
}

func (h *Handler) getProfile(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	profile, err := h.Svc.Get(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "no profile stored", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch profile", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, profile)
}

func (h *Handler) putProfile(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid JSON payload", nil)
		return
	}

	profile, fieldErrs := req.Validate(userID)
	if len(fieldErrs) > 0 {
		details := make([]map[string]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			details = append(details, map[string]string{"field": fe.Field, "issue": fe.Issue})
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", "profile payload rejected", details)
		return
	}

	saved, err := h.Svc.Save(c.Request.Context(), profile)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save profile", nil)
		return
	}
	metrics.IncProfileSaves()

	respond.JSON(c, http.StatusOK, saved)
}

func (h *Handler) deleteProfile(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	if err := h.Svc.Delete(c.Request.Context(), userID); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "no profile stored", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to delete profile", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// lookupZodiac derives western and Chinese zodiac data from a birth date,
// without touching stored profiles.
func (h *Handler) lookupZodiac(c *gin.Context) {
	year, errY := strconv.Atoi(c.Query("year"))
	month, errM := strconv.Atoi(c.Query("month"))
	day, errD := strconv.Atoi(c.Query("day"))
	if errY != nil || errM != nil || errD != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "year, month and day are required integers", nil)
		return
	}

	sun, ok := SunSign(month, day)
	if !ok {
		respond.Error(c, http.StatusBadRequest, "validation_error", "month or day out of range", nil)
		return
	}
	chinese, ok := ChineseZodiac(year)
	if !ok {
		respond.Error(c, http.StatusBadRequest, "validation_error", "year out of range", nil)
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"sun":           sun,
		"chineseZodiac": chinese,
	})
}
