package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"shipment-proof-service/config"
	"shipment-proof-service/handlers"
	"shipment-proof-service/services"
)

// NewRouter wires every route. The share-link validation endpoint is the
// only domain operation outside the authenticated group.
func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	auth *services.AuthService,
	authHandler *handlers.AuthHandler,
	shipmentHandler *handlers.ShipmentHandler,
	proofHandler *handlers.ProofHandler,
	shareLinkHandler *handlers.ShareLinkHandler,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(logger))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.Static("/media", cfg.Storage.MediaDirectory)
	router.GET("/share/:token", shareLinkHandler.HandleValidate)

	router.POST("/auth/register", authHandler.HandleRegister)
	router.POST("/auth/login", authHandler.HandleLogin)

	authed := router.Group("/api")
	authed.Use(AuthMiddleware(auth))
	{
		authed.POST("/shipments", shipmentHandler.HandleCreate)
		authed.GET("/shipments", shipmentHandler.HandleList)
		authed.GET("/shipments/:id", shipmentHandler.HandleGet)
		authed.PATCH("/shipments/:id", shipmentHandler.HandleUpdate)
		authed.PATCH("/shipments/:id/status", shipmentHandler.HandleUpdateStatus)
		authed.POST("/shipments/:id/proof", proofHandler.HandleAttach)

		authed.POST("/share-links", shareLinkHandler.HandleIssue)
		authed.DELETE("/share-links/:id", shareLinkHandler.HandleRevoke)
	}

	return router
}
