package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"stockpulse/internal/domain/dto"
	"stockpulse/internal/domain/models"
	"stockpulse/internal/service"
)

// Handler provides HTTP handlers for the stock data endpoints.
//
// Responsibilities:
//   - Bind and validate incoming JSON bodies and query parameters
//   - Delegate to the service layer
//   - Translate service results and errors into JSON responses with
//     appropriate HTTP status codes
type Handler struct {
	svc service.StockService
}

// NewHandler constructs a Handler around the given service.
func NewHandler(svc service.StockService) *Handler {
	return &Handler{svc: svc}
}

// StoreData handles POST /api/v1/stocks/data.
//
// StoreData godoc
// @Summary      Store a single observation
// @Description  Stores one price/volume observation for a symbol
// @Tags         stocks
// @Accept       json
// @Produce      json
// @Param        observation  body      models.Observation  true  "Observation to store"
// @Success      201          {object}  dto.StoreResponse   "Created"
// @Failure      400          {object}  dto.ErrorResponse   "Bad Request"
// @Failure      500          {object}  dto.ErrorResponse   "Internal Error"
// @Router       /api/v1/stocks/data [post]
func (h *Handler) StoreData(c *gin.Context) {
	var obs models.Observation
	if err := c.ShouldBindJSON(&obs); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err))
		return
	}
	if err := obs.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid observation", err))
		return
	}

	if err := h.svc.StoreOne(c.Request.Context(), obs); err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to store data point", err))
		return
	}

	c.JSON(http.StatusCreated, dto.StoreResponse{
		Message:   "data point stored successfully",
		Symbol:    obs.Symbol,
		Timestamp: obs.Timestamp,
	})
}

// StoreBatch handles POST /api/v1/stocks/data/batch.
//
// StoreBatch godoc
// @Summary      Store a batch of observations
// @Description  Stores multiple observations in one backend write
// @Tags         stocks
// @Accept       json
// @Produce      json
// @Param        batch  body      dto.BatchRequest   true  "Batch to store"
// @Success      201    {object}  dto.BatchResponse  "Created"
// @Failure      400    {object}  dto.ErrorResponse  "Bad Request"
// @Failure      500    {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/stocks/data/batch [post]
func (h *Handler) StoreBatch(c *gin.Context) {
	var req dto.BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err))
		return
	}
	if len(req.DataPoints) == 0 {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("data points list cannot be empty", nil))
		return
	}
	for i := range req.DataPoints {
		if err := req.DataPoints[i].Validate(); err != nil {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid observation in batch", err))
			return
		}
	}

	count, err := h.svc.StoreBatch(c.Request.Context(), req.DataPoints)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to store data batch", err))
		return
	}

	// Distinct symbols of the batch, first-seen order.
	seen := make(map[string]struct{}, len(req.DataPoints))
	symbols := make([]string, 0, len(req.DataPoints))
	for _, obs := range req.DataPoints {
		if _, dup := seen[obs.Symbol]; dup {
			continue
		}
		seen[obs.Symbol] = struct{}{}
		symbols = append(symbols, obs.Symbol)
	}

	c.JSON(http.StatusCreated, dto.BatchResponse{
		Message: "data batch stored successfully",
		Count:   count,
		Symbols: symbols,
	})
}

// QueryData handles POST /api/v1/stocks/query.
//
// QueryData godoc
// @Summary      Query observations over a time window
// @Description  Returns price (mean) and volume (sum) aggregated per interval bucket, merged by timestamp
// @Tags         stocks
// @Accept       json
// @Produce      json
// @Param        query  body      models.TimeRangeQuery  true  "Time range query"
// @Success      200    {object}  models.QueryResult     "Success"
// @Failure      400    {object}  dto.ErrorResponse      "Bad Request"
// @Failure      500    {object}  dto.ErrorResponse      "Internal Error"
// @Router       /api/v1/stocks/query [post]
func (h *Handler) QueryData(c *gin.Context) {
	var q models.TimeRangeQuery
	if err := c.ShouldBindJSON(&q); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err))
		return
	}
	if err := q.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid query", err))
		return
	}

	result, err := h.svc.QueryRange(c.Request.Context(), q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to query data", err))
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetLatest handles GET /api/v1/stocks/:symbol/latest.
//
// GetLatest godoc
// @Summary      Get latest observations for a symbol
// @Description  Returns the most recent raw observations within the last hour, newest first
// @Tags         stocks
// @Produce      json
// @Param        symbol  path      string  true   "Stock symbol"                  example(AAPL)
// @Param        limit   query     int     false  "Maximum points (default 100)"  example(100)
// @Success      200     {object}  models.QueryResult  "Success"
// @Failure      400     {object}  dto.ErrorResponse   "Bad Request"
// @Failure      500     {object}  dto.ErrorResponse   "Internal Error"
// @Router       /api/v1/stocks/{symbol}/latest [get]
func (h *Handler) GetLatest(c *gin.Context) {
	symbol, err := models.NormalizeSymbol(c.Param("symbol"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid symbol", err))
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("limit must be a positive integer", err))
			return
		}
	}

	result, err := h.svc.QueryLatest(c.Request.Context(), symbol, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to get latest data", err))
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetSymbols handles GET /api/v1/stocks/symbols.
//
// GetSymbols godoc
// @Summary      List available symbols
// @Description  Returns the distinct symbols observed over the last 30 days
// @Tags         stocks
// @Produce      json
// @Success      200  {array}   string             "Success"
// @Failure      500  {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/stocks/symbols [get]
func (h *Handler) GetSymbols(c *gin.Context) {
	symbols, err := h.svc.ListSymbols(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to get symbols", err))
		return
	}
	c.JSON(http.StatusOK, symbols)
}
