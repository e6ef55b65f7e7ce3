package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"giftstore/internal/domain"
	giftsvc "giftstore/internal/service/gift"
	productsvc "giftstore/internal/service/product"
	ratesvc "giftstore/internal/service/rate"
)

type setAdminRequest struct {
	IsAdmin *bool `json:"isAdmin" binding:"required"`
}

type rateUpdateRequest struct {
	Rate float64 `json:"rate" binding:"required,gt=0"`
}

type giftStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func adminUserListHandler(svc UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := svc.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "list users failed"})
			return
		}
		if users == nil {
			users = []domain.User{}
		}
		c.JSON(http.StatusOK, gin.H{"users": users})
	}
}

func adminSetAdminHandler(svc UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req setAdminRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		err := svc.SetAdmin(c.Request.Context(), c.Param("id"), *req.IsAdmin)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "update user failed"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func productListHandler(svc ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "list products failed"})
			return
		}
		if products == nil {
			products = []domain.Product{}
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

func adminProductCreateHandler(svc ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in productsvc.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		p, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"product": p})
	}
}

func adminProductUpdateHandler(svc ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in productsvc.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		p, err := svc.Update(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"product": p})
	}
}

func adminProductDeleteHandler(svc ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "delete product failed"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func rateGetHandler(svc RateService) gin.HandlerFunc {
	return func(c *gin.Context) {
		rate, err := svc.Get(c.Request.Context())
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "rate not configured"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "get rate failed"})
			return
		}
		c.JSON(http.StatusOK, rate)
	}
}

func adminRateUpdateHandler(svc RateService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req rateUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		rate, err := svc.Update(c.Request.Context(), req.Rate)
		if err != nil {
			if errors.Is(err, ratesvc.ErrInvalidRate) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "update rate failed"})
			return
		}
		c.JSON(http.StatusOK, rate)
	}
}

func adminGiftListHandler(svc GiftService) gin.HandlerFunc {
	return func(c *gin.Context) {
		gifts, err := svc.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "list gifts failed"})
			return
		}
		if gifts == nil {
			gifts = []domain.Gift{}
		}
		c.JSON(http.StatusOK, gin.H{"gifts": gifts})
	}
}

func adminGiftStatusHandler(svc GiftService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req giftStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		err := svc.SetStatus(c.Request.Context(), c.Param("id"), req.Status)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "gift not found"})
			case errors.Is(err, giftsvc.ErrUnknownStatus):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			case errors.Is(err, giftsvc.ErrStatusFinal):
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "update gift failed"})
			}
			return
		}
		c.Status(http.StatusNoContent)
	}
}
