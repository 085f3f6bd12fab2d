package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lanternworks/savestore/internal/logging"
	"github.com/lanternworks/savestore/internal/monitoring"
	"github.com/lanternworks/savestore/internal/store"
)

// Handlers exposes the store over HTTP.
type Handlers struct {
	store   *store.Store
	metrics *monitoring.Metrics
	logger  *logging.Logger
}

// NewHandlers creates HTTP handlers around a store.
func NewHandlers(st *store.Store, metrics *monitoring.Metrics, logger *logging.Logger) *Handlers {
	return &Handlers{store: st, metrics: metrics, logger: logger}
}

// Health reports service status and the resolved store identity.
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"project": h.store.Project(),
		"root":    h.store.Root(),
	})
}

// ListKeys returns every stored path.
func (h *Handlers) ListKeys(c *gin.Context) {
	timer := monitoring.NewTimer(h.metrics, "list")
	paths, err := h.store.List()
	if err != nil {
		timer.Stop("error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	timer.Stop("ok")
	c.JSON(http.StatusOK, gin.H{"paths": paths, "count": len(paths)})
}

// ReadEntry decodes and returns the value stored at a path.
func (h *Handlers) ReadEntry(c *gin.Context) {
	path := entryPath(c)
	timer := monitoring.NewTimer(h.metrics, "read")
	value, err := h.store.Read(path)
	if err != nil {
		timer.Stop("error")
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	timer.Stop("ok")
	c.JSON(http.StatusOK, gin.H{"path": path, "value": value})
}

// WriteEntry stores the JSON request body as the value at a path.
func (h *Handlers) WriteEntry(c *gin.Context) {
	path := entryPath(c)
	var value interface{}
	if err := c.ShouldBindJSON(&value); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body must be valid JSON"})
		return
	}
	timer := monitoring.NewTimer(h.metrics, "write")
	if err := h.store.Write(path, value); err != nil {
		timer.Stop("error")
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	timer.Stop("ok")
	c.JSON(http.StatusOK, gin.H{"written": true, "path": path})
}

// ExistsEntry reports entry existence via status code only.
func (h *Handlers) ExistsEntry(c *gin.Context) {
	if h.store.Exists(entryPath(c)) {
		c.Status(http.StatusNoContent)
		return
	}
	c.Status(http.StatusNotFound)
}

// StatEntry returns entry metadata.
func (h *Handlers) StatEntry(c *gin.Context) {
	path := entryPath(c)
	info, err := h.store.Stat(path)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, info)
}

// FindEntries returns the stored paths matching a glob pattern.
func (h *Handlers) FindEntries(c *gin.Context) {
	pattern := c.Query("pattern")
	if pattern == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "pattern parameter required"})
		return
	}
	matches, err := h.store.Find(pattern)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"matches": matches, "count": len(matches)})
}

// entryPath extracts the store key from the wildcard route parameter.
func entryPath(c *gin.Context) string {
	return strings.TrimPrefix(c.Param("path"), "/")
}

func statusFor(err error) int {
	var encErr *store.EncodeError
	var decErr *store.DecodeError
	switch {
	case store.IsNotFound(err):
		return http.StatusNotFound
	case errors.As(err, &encErr), errors.As(err, &decErr):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
