package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"store-backend/internal/store"
)

// respondError translates a service error into the response envelope.
// Invalid arguments map to 404 alongside missing references (kept for
// compatibility with the existing API convention); conflicts map to
// 400; anything else is an internal error reported without detail.
func respondError(c *gin.Context, log *logrus.Logger, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound), errors.Is(err, store.ErrInvalidArgument):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case errors.Is(err, store.ErrConflict):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	default:
		log.WithError(err).WithField("path", c.Request.URL.Path).Error("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "server error"})
	}
}
