package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/roach88/datasets/internal/dataset"
)

const jsonContentType = "application/json; charset=utf-8"

// Handler serves the dataset HTTP API.
type Handler struct {
	gateway *dataset.Gateway
	logger  *slog.Logger
}

// NewRouter builds the gin engine with all routes and middleware.
// A nil logger uses slog.Default().
func NewRouter(gw *dataset.Gateway, logger *slog.Logger) *gin.Engine {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Handler{gateway: gw, logger: logger}

	router := gin.New()
	router.Use(requestID(), accessLog(logger), recovery(logger))

	router.GET("/healthz", h.health)

	apiGroup := router.Group("/api")
	{
		apiGroup.POST("/dataset/:datasetName/record", h.insertRecord)
		apiGroup.GET("/dataset/:datasetName/query", h.query)
		apiGroup.GET("/datasets", h.listDatasets)
	}

	router.NoRoute(func(c *gin.Context) {
		writeEnvelope(c, ErrorResponse{
			Status:  http.StatusNotFound,
			Error:   http.StatusText(http.StatusNotFound),
			Message: "Resource not found",
			Details: c.Request.Method + " " + c.Request.URL.Path,
		})
	})

	return router
}
