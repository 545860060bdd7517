package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"store-backend/internal/favorites"
	"store-backend/internal/middleware"
	"store-backend/internal/paging"
	"store-backend/internal/store"
)

// FavoritesHandler serves the authenticated favorites endpoints. The
// caller's identity is resolved by the auth middleware before any of
// these run.
type FavoritesHandler struct {
	svc *favorites.Service
	log *logrus.Logger
}

func NewFavoritesHandler(svc *favorites.Service, log *logrus.Logger) *FavoritesHandler {
	return &FavoritesHandler{svc: svc, log: log}
}

func (h *FavoritesHandler) userID(c *gin.Context) primitive.ObjectID {
	return c.MustGet(middleware.UserIDKey).(primitive.ObjectID)
}

// GET /favorites
func (h *FavoritesHandler) GetFavorites(c *gin.Context) {
	page := paging.ParseParam(c.Query("page"))
	limit := paging.ParseParam(c.Query("limit"))
	all, _ := strconv.ParseBool(c.DefaultQuery("all", "false"))

	result, err := h.svc.List(c.Request.Context(), h.userID(c), page, limit, all)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"favorites":   result.Items,
		"currentPage": result.CurrentPage,
		"totalPages":  result.TotalPages,
	})
}

// PUT /favorites/:pid
func (h *FavoritesHandler) AddToFavorites(c *gin.Context) {
	productID, err := primitive.ObjectIDFromHex(c.Param("pid"))
	if err != nil {
		respondError(c, h.log, fmt.Errorf("invalid product id: %w", store.ErrInvalidArgument))
		return
	}

	updated, err := h.svc.Add(c.Request.Context(), h.userID(c), productID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "product added to favorites",
		"favorites": updated,
	})
}

// DELETE /favorites/:pid
func (h *FavoritesHandler) RemoveFromFavorites(c *gin.Context) {
	productID, err := primitive.ObjectIDFromHex(c.Param("pid"))
	if err != nil {
		respondError(c, h.log, fmt.Errorf("invalid product id: %w", store.ErrInvalidArgument))
		return
	}

	updated, err := h.svc.Remove(c.Request.Context(), h.userID(c), productID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "removed from favorites",
		"favorites": updated,
	})
}

// DELETE /favorites
func (h *FavoritesHandler) ClearFavorites(c *gin.Context) {
	if err := h.svc.Clear(c.Request.Context(), h.userID(c)); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "success"})
}
