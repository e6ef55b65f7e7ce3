package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"giftstore/internal/cart"
	"giftstore/internal/domain"
)

type cartPutRequest struct {
	ItemID      string `json:"itemId" binding:"required"`
	DisplayName string `json:"displayName" binding:"required"`
	Image       string `json:"image"`
	Price       int64  `json:"price" binding:"required,gt=0"`
}

// cartSessionID keys the cart by account for logged-in users and by the
// client-supplied session header for anonymous ones. The two namespaces
// never collide.
func cartSessionID(c *gin.Context) (string, bool) {
	if u := currentUser(c); u != nil {
		return "user:" + u.ID, true
	}
	if sid := strings.TrimSpace(c.GetHeader("X-Session-Id")); sid != "" {
		return "anon:" + sid, true
	}
	return "", false
}

func requireCartSession(c *gin.Context) (string, bool) {
	sid, ok := cartSessionID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing X-Session-Id header or bearer token"})
	}
	return sid, ok
}

func cartGetHandler(store cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := requireCartSession(c)
		if !ok {
			return
		}
		item, err := store.Get(c.Request.Context(), sid)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusOK, gin.H{"item": nil})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cart unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"item": item})
	}
}

func cartPutHandler(store cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := requireCartSession(c)
		if !ok {
			return
		}
		var req cartPutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		item := domain.CartItem{
			ItemID:      req.ItemID,
			DisplayName: req.DisplayName,
			Image:       req.Image,
			Price:       req.Price,
		}
		if err := store.Set(c.Request.Context(), sid, item); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cart unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"item": item})
	}
}

func cartClearHandler(store cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := requireCartSession(c)
		if !ok {
			return
		}
		if err := store.Clear(c.Request.Context(), sid); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cart unavailable"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
