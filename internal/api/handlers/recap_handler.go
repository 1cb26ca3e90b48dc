package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/purchasing-admin/backend-go/internal/service"
	"github.com/rs/zerolog/log"
)

// overviewMaxYears caps the span of a single overview request.
const overviewMaxYears = 10

type RecapHandler struct {
	recapService *service.RecapService
}

func NewRecapHandler(recapService *service.RecapService) *RecapHandler {
	return &RecapHandler{recapService: recapService}
}

// GetYearlyRecap returns the monthly recap plus grand total for one year.
// The year defaults to the current year; category defaults to all.
func (h *RecapHandler) GetYearlyRecap(c *gin.Context) {
	year := parseYearWithDefault(c.Query("year"), time.Now().Year())
	category := strings.TrimSpace(c.Query("category"))

	report, err := h.recapService.YearlyReport(c.Request.Context(), year, category)
	if err != nil {
		log.Error().Err(err).Int("year", year).Msg("failed to build recap")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build recap"})
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetOverview returns yearly reports for an inclusive year range.
func (h *RecapHandler) GetOverview(c *gin.Context) {
	now := time.Now().Year()
	from := parseYearWithDefault(c.Query("from"), now-2)
	to := parseYearWithDefault(c.Query("to"), now)

	if from > to || to-from+1 > overviewMaxYears {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year range"})
		return
	}

	reports, err := h.recapService.Overview(c.Request.Context(), from, to)
	if err != nil {
		log.Error().Err(err).Msg("failed to build overview")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build overview"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

func parseYearWithDefault(value string, fallback int) int {
	if v, err := strconv.Atoi(strings.TrimSpace(value)); err == nil && v > 0 {
		return v
	}

	return fallback
}
