package routes

import (
	"net/http"
	"time"

	"niryaat/handlers"
	"niryaat/middleware"
	"niryaat/services/access"
	"niryaat/services/session"
	"niryaat/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes wires every endpoint. Each protected group is gated by a
// single capability row in the access policy table; new surfaces get a new
// row, not new conditionals.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, registry *session.Registry, policy *access.Policy) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", hb.Auth.RegisterHandler)
		auth.POST("/login", hb.Auth.LoginHandler)

		// Session-bound endpoints require a valid token.
		auth.Use(middleware.SessionAuthMiddleware(registry))
		auth.POST("/logout", hb.Auth.LogoutHandler)
		auth.GET("/session", hb.Auth.SessionHandler)
	}

	authed := r.Group("/api")
	authed.Use(middleware.SessionAuthMiddleware(registry))

	dashboard := authed.Group("/dashboard", middleware.RequireCapability(policy, access.CapDashboard))
	{
		dashboard.GET("", hb.Dashboard.SummaryHandler)
	}

	profile := authed.Group("/profile", middleware.RequireCapability(policy, access.CapProfile))
	{
		profile.GET("", hb.Profile.GetProfileHandler)
		profile.PATCH("", hb.Profile.UpdateProfileHandler)
		profile.POST("/hs-codes", hb.Profile.AddHSCodeHandler)
		profile.DELETE("/hs-codes/:hsCode", hb.Profile.RemoveHSCodeHandler)
	}

	notifications := authed.Group("/notifications", middleware.RequireCapability(policy, access.CapNotifications))
	{
		notifications.GET("", hb.Notifications.ListNotificationsHandler)
		notifications.PUT("/:id/read", hb.Notifications.MarkNotificationReadHandler)
	}

	benefits := authed.Group("/govt-benefits", middleware.RequireCapability(policy, access.CapGovtBenefits))
	{
		benefits.GET("/schemes", hb.Benefits.ListSchemesHandler)
		benefits.GET("/news", hb.Benefits.ListNewsHandler)
	}

	market := authed.Group("/market-intel", middleware.RequireCapability(policy, access.CapMarketIntel))
	{
		market.GET("/products", hb.Market.ListProductsHandler)
		market.GET("/products/:hsCode/stats", hb.Market.TradeStatsHandler)
		market.GET("/tariffs", hb.Tariff.LookupTariffHandler)
	}

	countries := authed.Group("/country-relations", middleware.RequireCapability(policy, access.CapCountryRelations))
	{
		countries.GET("", hb.Country.ListCountryRelationsHandler)
	}

	ratings := authed.Group("/importer-ratings", middleware.RequireCapability(policy, access.CapImporterRatings))
	{
		ratings.GET("", hb.Ratings.ListRatingsHandler)
		ratings.POST("", hb.Ratings.CreateRatingHandler)
	}

	admin := authed.Group("/admin", middleware.RequireCapability(policy, access.CapAdmin))
	{
		admin.PUT("/accounts/:accountID/approve", hb.Admin.ApproveAccountHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}
