// Package api exposes the dataset gateway over HTTP using gin.
//
// Routes:
//
//	POST /api/dataset/:datasetName/record   insert one JSON object
//	GET  /api/dataset/:datasetName/query    groupBy=F | sortBy=F [&order=asc|desc]
//	GET  /api/datasets                      list datasets with record counts
//	GET  /healthz                           liveness
//
// Every error is reported as {status, error, message, details}, where
// status/message come from the apperr code and details carries the
// underlying error text.
package api
