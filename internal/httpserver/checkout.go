package httpserver

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"giftstore/internal/cart"
	"giftstore/internal/checkout"
	"giftstore/internal/domain"
	giftsvc "giftstore/internal/service/gift"
)

type checkoutRequest struct {
	// Recipient username for anonymous checkouts. Ignored for
	// authenticated sessions, which gift to their own account name.
	Username string `json:"username"`
}

// checkoutHandler drives the checkout session end to end for the single
// cart item: summary, the user-info step when no account supplies the
// recipient, then payment via the gift service.
func checkoutHandler(carts cart.Store, gifts GiftService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := requireCartSession(c)
		if !ok {
			return
		}

		// The body is optional: authenticated checkouts need no recipient
		// and a missing one is caught by the user-info step below.
		var req checkoutRequest
		_ = c.ShouldBindJSON(&req)

		item, err := carts.Get(c.Request.Context(), sid)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusConflict, gin.H{"error": "cart is empty"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cart unavailable"})
			return
		}

		sess, err := checkout.Begin(item, currentUser(c))
		if err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": "cart is empty"})
			return
		}

		if err := sess.Continue(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "checkout failed"})
			return
		}
		if sess.Step() == checkout.StepUserInfo {
			if err := sess.SubmitUsername(req.Username); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "username required"})
				return
			}
		}

		gift, err := sess.Pay(c.Request.Context(), gifts)
		if err != nil {
			switch {
			case errors.Is(err, giftsvc.ErrRecipientRequired):
				c.JSON(http.StatusBadRequest, gin.H{"error": "username required"})
			case errors.Is(err, giftsvc.ErrRateNotConfigured):
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": "store not configured"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "payment failed"})
			}
			return
		}

		if err := carts.Clear(c.Request.Context(), sid); err != nil {
			logger.Printf("checkout: clear cart session=%s error=%v", sid, err)
		}
		c.JSON(http.StatusCreated, gin.H{"gift": gift})
	}
}
