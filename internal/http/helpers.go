package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/passmanager/internal/logutil"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

// InsertResponse is returned after an entry is stored.
type InsertResponse struct {
	Success    bool   `json:"success"`
	InsertedID string `json:"insertedId"`
}

// DeleteAllResponse is returned after the caller's entries are removed.
type DeleteAllResponse struct {
	Success      bool  `json:"success"`
	DeletedCount int64 `json:"deletedCount"`
}

// DeleteResponse is returned after a single delete. DeletedCount may be 0.
type DeleteResponse struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// --- Error Response Helpers ---

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// respondStorageError logs the error and sends a 500 carrying the raw store message.
func respondStorageError(c *gin.Context, err error, context string) {
	log := logutil.GetOrDefault(c.Request.Context())
	log.Error().Err(err).Str("op", context).Msg("storage failure")
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
}

// respondUnauthorized sends a 401 response.
func respondUnauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, ErrorResponse{Error: message})
}
