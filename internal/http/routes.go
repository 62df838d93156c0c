package http

import (
	"time"

	"pirate_economy/internal/config"
	"pirate_economy/internal/http/handlers"
	"pirate_economy/internal/http/middleware"
	"pirate_economy/internal/store"
	"pirate_economy/internal/ws"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, st *store.Store, cfg *config.Config, version string) {
	h := handlers.NewHandler(st, cfg.LeaderboardLimit)
	healthHandler := handlers.NewHealthHandler(st.Pool(), version)

	// Economy event feed; action handlers publish into it.
	hub := ws.NewHub()
	h.Actions.SetPublisher(hub)

	apiRateWindow := time.Duration(cfg.APIRateWindowSec) * time.Second

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	v1 := r.Group("/api/v1")
	v1.Use(middleware.RedisRateLimit(cfg.APIRateLimit, apiRateWindow))
	registerAPIRoutes(v1, h)

	r.GET("/ws", h.WS(hub))
}

func registerAPIRoutes(api *gin.RouterGroup, h *handlers.Handler) {
	// Profile
	api.GET("/me", middleware.JWT(), h.Me)
	api.GET("/me/inventory", middleware.JWT(), h.MyInventory)
	api.GET("/me/history", middleware.JWT(), h.MyHistory)

	// Coin actions
	api.POST("/actions/search", middleware.JWT(), h.Search)
	api.POST("/actions/steal", middleware.JWT(), h.Steal)
	api.POST("/actions/passive", middleware.JWT(), h.PassiveEarn)
	api.POST("/actions/daily", middleware.JWT(), h.Daily)

	// Shop
	api.GET("/shop", h.ShopCatalog)
	api.POST("/shop/buy", middleware.JWT(), h.Buy)
	api.POST("/shop/sell", middleware.JWT(), h.Sell)

	// Item effects
	api.POST("/items/use", middleware.JWT(), h.UseItem)
	api.POST("/items/equip", middleware.JWT(), h.Equip)

	// Public leaderboard
	api.GET("/leaderboard", h.Leaderboard)

	// Admin tools for the chat adapter's operators
	admin := api.Group("/admin")
	admin.Use(middleware.JWT(), middleware.RequireAdmin())
	{
		admin.POST("/coins/give", h.GiveCoins)
		admin.POST("/coins/take", h.TakeCoins)
		admin.POST("/crews", h.AddCrewRole)
		admin.GET("/crews/:community_id", h.ListCrewRoles)
		admin.DELETE("/crews/:community_id/:role_id", h.RemoveCrewRole)
	}
}
