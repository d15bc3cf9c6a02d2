package api

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/roach88/datasets/internal/apperr"
	"github.com/roach88/datasets/internal/dataset"
	"github.com/roach88/datasets/internal/store"
)

// DatasetsResponse is the body of GET /api/datasets.
type DatasetsResponse struct {
	Datasets []store.DatasetInfo `json:"datasets"`
}

func (h *Handler) health(c *gin.Context) {
	if err := h.gateway.Ping(); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.Data(http.StatusOK, jsonContentType, []byte(`{"status":"ok"}`))
}

// insertRecord handles POST /api/dataset/:datasetName/record.
func (h *Handler) insertRecord(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		writeError(c, h.logger, apperr.Wrap(apperr.CodeMalformedPayload, "read request body", err))
		return
	}

	res, err := h.gateway.Insert(c.Request.Context(), c.Param("datasetName"), body)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	h.writeJSON(c, http.StatusOK, res)
}

// query handles GET /api/dataset/:datasetName/query.
func (h *Handler) query(c *gin.Context) {
	res, err := h.gateway.Query(c.Request.Context(), dataset.Request{
		Dataset: c.Param("datasetName"),
		GroupBy: c.Query("groupBy"),
		SortBy:  c.Query("sortBy"),
		Order:   c.DefaultQuery("order", "asc"),
	})
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	body, err := json.Marshal(res)
	if err != nil {
		writeError(c, h.logger, apperr.Wrap(apperr.CodeUnclassified, "encode response", err))
		return
	}
	writeCacheable(c, body)
}

// listDatasets handles GET /api/datasets.
func (h *Handler) listDatasets(c *gin.Context) {
	infos, err := h.gateway.Datasets(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	h.writeJSON(c, http.StatusOK, DatasetsResponse{Datasets: infos})
}

func (h *Handler) writeJSON(c *gin.Context, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		writeError(c, h.logger, apperr.Wrap(apperr.CodeUnclassified, "encode response", err))
		return
	}
	c.Data(status, jsonContentType, body)
}
