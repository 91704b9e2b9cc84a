package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"marinahub/api/internal/cache"
	"marinahub/api/internal/config"
	"marinahub/api/internal/events"
	"marinahub/api/internal/middleware"
	"marinahub/api/internal/repository"
	"marinahub/api/internal/service"
)

type HandlerSet struct {
	log zerolog.Logger
	cfg *config.AppConfig

	auth authService

	boats         boatStore
	boatBookings  boatBookingStore
	jets          jetStore
	chalets       chaletStore
	parking       parkingStore
	parkingPlaces parkingPlaceStore
	escorts       escortStore
	transit       transitStore
	delivery      deliveryStore
	catering      cateringStore
	shop          shopStore
	notifications notificationStore

	catalog *cache.Catalog
	events  *events.Publisher

	db  *pgxpool.Pool
	rdb *redis.Client
}

func NewHandlerSet(log zerolog.Logger, db *pgxpool.Pool, rdb *redis.Client, cfg *config.AppConfig) HandlerSet {
	userRepo := repository.NewUserRepository(db)
	notifRepo := repository.NewNotificationRepository(db)
	parkingRepo := repository.NewParkingRepository(db)

	return HandlerSet{
		log: log,
		cfg: cfg,

		auth: service.NewAuthService(userRepo, cfg, log),

		boats:         repository.NewBoatRepository(db),
		boatBookings:  repository.NewBoatBookingRepository(db),
		jets:          repository.NewJetRepository(db),
		chalets:       repository.NewChaletRepository(db),
		parking:       parkingRepo,
		parkingPlaces: parkingRepo,
		escorts:       repository.NewEscortRepository(db),
		transit:       repository.NewTransitRepository(db),
		delivery:      repository.NewDeliveryRepository(db),
		catering:      repository.NewCateringRepository(db),
		shop:          repository.NewShopRepository(db),
		notifications: notifRepo,

		catalog: cache.NewCatalog(rdb, cfg.Cache.CatalogTTL, log),
		events:  events.NewPublisher(rdb, log),

		db:  db,
		rdb: rdb,
	}
}

func (h HandlerSet) Register(router *gin.RouterGroup) {
	router.GET("/healthz", h.Health)

	secret := h.cfg.Security.JWTSecret
	mustAuth := middleware.Auth(secret)
	maybeAuth := middleware.OptionalAuth(secret)

	auth := router.Group("/auth")
	auth.POST("/signup", h.Signup)
	auth.POST("/login", h.Login)
	auth.PATCH("/edit-profile", mustAuth, h.EditProfile)
	auth.PATCH("/change-password", mustAuth, h.ChangePassword)

	boats := router.Group("/boats")
	boats.GET("/all-boat-list", h.ListBoats)
	boats.GET("/boat-details/:id", h.BoatDetails)
	boats.POST("/add-boat", h.CreateBoat)
	boats.GET("/category-list", h.BoatCategoryList)

	boatBookings := router.Group("/boat-bookings", mustAuth)
	boatBookings.POST("/create-booking", h.CreateBoatBooking)
	boatBookings.GET("/get-bookings", h.GetBoatBookings)

	jets := router.Group("/jets")
	jets.GET("", h.ListJets)
	jets.POST("", h.CreateJet)
	jets.POST("/booking", maybeAuth, h.CreateJetBooking)
	jets.GET("/my-bookings", mustAuth, h.MyJetBookings)

	chalets := router.Group("/chalets")
	chalets.GET("/list", h.ListChalets)
	chalets.GET("/chalet-details/:id", h.ChaletDetails)
	chalets.POST("", h.CreateChalet)
	chalets.POST("/booking", maybeAuth, h.CreateChaletBooking)
	chalets.GET("/my-bookings", mustAuth, h.MyChaletBookings)

	parking := router.Group("/parking-bookings", mustAuth)
	parking.POST("", h.CreateParkingBooking)
	parking.GET("", h.GetParkingBookings)

	parkingPlaces := router.Group("/boat-parking")
	parkingPlaces.GET("", h.ListParkingPlaces)

	escorts := router.Group("/escort-services")
	escorts.GET("", h.ListEscortBookings)
	escorts.GET("/my-bookings", mustAuth, h.MyEscortBookings)
	escorts.POST("", maybeAuth, h.CreateEscortBooking)

	transit := router.Group("/transit")
	transit.GET("/list", h.ListTransitVehicles)
	transit.GET("/brands-models", h.TransitBrandsModels)
	transit.POST("/booking", maybeAuth, h.CreateTripBooking)
	transit.GET("/my-bookings", mustAuth, h.MyTripBookings)

	delivery := router.Group("/delivery")
	delivery.GET("", h.ListDeliveryOrders)
	delivery.GET("/my-orders", mustAuth, h.MyDeliveryOrders)
	delivery.GET("/locations", h.ListDeliveryLocations)
	delivery.POST("/locations", h.CreateDeliveryLocation)
	delivery.POST("", maybeAuth, h.CreateDeliveryOrder)

	caterer := router.Group("/caterer")
	caterer.POST("", h.CreateCaterer)
	caterer.GET("/list", h.ListCaterers)
	caterer.POST("/menu-items", h.CreateCatererMenuItem)
	caterer.GET("/menu-items", h.ListCatererMenuItems)
	caterer.POST("/orders", mustAuth, h.CreateCateringOrder)
	caterer.GET("/orders", mustAuth, h.MyCateringOrders)

	shop := router.Group("/shop")
	shop.GET("/categories", h.ShopCategories)
	shop.GET("/items", h.ListShopItems)
	shop.GET("/items/:id", h.ShopItemDetails)
	shop.POST("/items", h.CreateShopItem)
	shop.POST("/orders", maybeAuth, h.CreateShopOrder)
	shop.GET("/orders", h.ListShopOrders)
	shop.GET("/orders/:id", h.ShopOrderDetails)

	notifications := router.Group("/notifications", maybeAuth)
	notifications.POST("", h.CreateNotification)
	notifications.GET("", h.ListNotifications)
	notifications.GET("/check", h.CheckNotifications)
	notifications.PATCH("/read-all", h.MarkAllNotificationsRead)
	notifications.PATCH("/:id/read", h.MarkNotificationRead)
}

// principalID returns the authenticated user's id, or nil for guests.
func principalID(c *gin.Context) *int64 {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		return nil
	}
	id := claims.UserID
	return &id
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
