package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cryptopulse/internal/domain/dto"
	"cryptopulse/internal/logger"
	"cryptopulse/internal/service"
)

const dateLayout = "2006-01-02"

// Handler provides HTTP handlers for the crypto statistics endpoints.
//
// Responsibilities:
//   - Validate incoming path parameters (the untrusted boundary for dates).
//   - Call into the recommendation service with typed inputs.
//   - Translate absent results into 404 responses.
type Handler struct {
	svc service.RecommendationService
}

// NewHandler constructs a new Handler instance.
func NewHandler(svc service.RecommendationService) *Handler {
	return &Handler{svc: svc}
}

// GetStatistics handles GET /api/{symbol} requests.
//
// GetStatistics godoc
// @Summary      Get price statistics for a symbol
// @Description  Returns min/max price and oldest/newest observation date for the given crypto symbol
// @Tags         statistics
// @Produce      json
// @Param        symbol  path      string  true  "Crypto symbol" example(BTC)
// @Success      200     {object}  dto.StatisticsResponse    "Success"
// @Failure      404     {object}  dto.ErrorResponse         "No observations for symbol"
// @Router       /api/{symbol} [get]
func (h *Handler) GetStatistics(c *gin.Context) {
	symbol := c.Param("symbol")
	logger.L().Info().Str("symbol", symbol).Msg("fetching statistics")

	result := h.svc.Statistics(symbol)
	if result == nil {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("no data found", nil))
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetNormalizedRanking handles GET /api/normalized-range requests.
//
// GetNormalizedRanking godoc
// @Summary      Rank supported symbols by normalized range
// @Description  Returns every supported symbol sorted descending by normalized range; symbols without data report zero
// @Tags         statistics
// @Produce      json
// @Success      200  {array}  dto.NormalizedRangeResponse  "Success"
// @Router       /api/normalized-range [get]
func (h *Handler) GetNormalizedRanking(c *gin.Context) {
	logger.L().Info().Msg("fetching normalized range ranking")
	c.JSON(http.StatusOK, h.svc.NormalizedRangeDesc())
}

// GetHighestByDate handles GET /api/normalized-by-date/{date} requests.
//
// The date must be an ISO calendar date (YYYY-MM-DD). An unparsable date is
// rejected here with a 400 and an empty default body; the service is never
// invoked with raw input.
//
// GetHighestByDate godoc
// @Summary      Get the most volatile symbol on a date
// @Description  Returns the symbol with the highest normalized range among observations on the given day
// @Tags         statistics
// @Produce      json
// @Param        date  path      string  true  "Calendar date (YYYY-MM-DD)" example(2022-01-01)
// @Success      200   {object}  dto.NormalizedRangeResponse  "Success"
// @Failure      400   {object}  dto.NormalizedRangeResponse  "Invalid date"
// @Failure      404   {object}  dto.ErrorResponse            "No qualifying symbol"
// @Router       /api/normalized-by-date/{date} [get]
func (h *Handler) GetHighestByDate(c *gin.Context) {
	raw := c.Param("date")

	date, err := time.ParseInLocation(dateLayout, raw, time.Local)
	if err != nil {
		logger.L().Error().Str("date", raw).Err(err).Msg("invalid date format")
		c.JSON(http.StatusBadRequest, dto.NormalizedRangeResponse{})
		return
	}

	logger.L().Info().Str("date", raw).Msg("fetching highest normalized range for date")

	result := h.svc.HighestNormalizedRangeByDate(date)
	if result == nil {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("no data found", nil))
		return
	}

	c.JSON(http.StatusOK, result)
}
