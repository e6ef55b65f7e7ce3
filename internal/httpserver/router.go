package httpserver

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"giftstore/internal/cart"
	"giftstore/internal/domain"
	productsvc "giftstore/internal/service/product"
	usersvc "giftstore/internal/service/user"
)

// UserService is the account surface consumed by the handlers.
type UserService interface {
	Register(ctx context.Context, in usersvc.RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	LookupByToken(ctx context.Context, token string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	SetAdmin(ctx context.Context, id string, isAdmin bool) error
	AccessTTLSeconds() int
}

// ProductService is the back-office catalog surface.
type ProductService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, in productsvc.Input) (*domain.Product, error)
	Update(ctx context.Context, id string, in productsvc.Input) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

// RateService exposes the configured exchange rate.
type RateService interface {
	Get(ctx context.Context) (*domain.VBucksRate, error)
	Update(ctx context.Context, rate float64) (*domain.VBucksRate, error)
}

// GiftService places and manages gift orders.
type GiftService interface {
	PlaceGift(ctx context.Context, recipient string, item domain.CartItem, userID *string) (*domain.Gift, error)
	List(ctx context.Context) ([]domain.Gift, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Gift, error)
	SetStatus(ctx context.Context, id, status string) error
}

// ShopCatalog serves the daily shop rotation.
type ShopCatalog interface {
	DailyShop(ctx context.Context) ([]domain.ShopItem, error)
}

// Deps bundles the collaborators the router needs.
type Deps struct {
	UserSvc    UserService
	ProductSvc ProductService
	RateSvc    RateService
	GiftSvc    GiftService
	Catalog    ShopCatalog
	Carts      cart.Store
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, corsOrigins []string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "X-Session-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api")

	api.POST("/auth/register", registerHandler(deps.UserSvc))
	api.POST("/auth/login", loginHandler(deps.UserSvc))

	api.GET("/shop", shopHandler(deps.Catalog))
	api.GET("/settings/vbucks-rate", rateGetHandler(deps.RateSvc))
	api.GET("/products", productListHandler(deps.ProductSvc))

	session := api.Group("", optionalAuthMiddleware(deps.UserSvc))
	session.GET("/cart", cartGetHandler(deps.Carts))
	session.PUT("/cart", cartPutHandler(deps.Carts))
	session.DELETE("/cart", cartClearHandler(deps.Carts))
	session.POST("/checkout", checkoutHandler(deps.Carts, deps.GiftSvc, logger))

	authed := api.Group("", authMiddleware(deps.UserSvc))
	authed.GET("/auth/me", meHandler)
	authed.GET("/auth/gifts", myGiftsHandler(deps.GiftSvc))

	admin := api.Group("/admin", authMiddleware(deps.UserSvc), adminMiddleware())
	admin.GET("/users", adminUserListHandler(deps.UserSvc))
	admin.PUT("/users/:id/admin", adminSetAdminHandler(deps.UserSvc))
	admin.GET("/products", productListHandler(deps.ProductSvc))
	admin.POST("/products", adminProductCreateHandler(deps.ProductSvc))
	admin.PUT("/products/:id", adminProductUpdateHandler(deps.ProductSvc))
	admin.DELETE("/products/:id", adminProductDeleteHandler(deps.ProductSvc))
	admin.GET("/settings/vbucks-rate", rateGetHandler(deps.RateSvc))
	admin.PUT("/settings/vbucks-rate", adminRateUpdateHandler(deps.RateSvc))
	admin.GET("/gifts", adminGiftListHandler(deps.GiftSvc))
	admin.PUT("/gifts/:id/status", adminGiftStatusHandler(deps.GiftSvc))

	return router
}
