// Package server exposes the save store over HTTP.
//
// Endpoints:
//   - GET  /health          service status and store identity
//   - GET  /metrics         Prometheus metrics
//   - GET  /v1/keys         all stored paths
//   - GET  /v1/data/*path   read a value
//   - PUT  /v1/data/*path   write the JSON body as the value
//   - HEAD /v1/data/*path   existence check via status code
//   - GET  /v1/stat/*path   entry metadata
//   - GET  /v1/find         glob search (?pattern=saves/**/*.json)
//
// The store itself is synchronous; this layer is where concurrent access is
// wrapped.
package server
