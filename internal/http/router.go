// README: HTTP router registration; delegates to module services.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roamcost/internal/http/handlers"
	"roamcost/internal/http/middleware"
	"roamcost/internal/metrics"
	"roamcost/internal/modules/catalog"
	"roamcost/internal/modules/checkout"
	"roamcost/internal/modules/recommend"
	"roamcost/internal/modules/simulation"
	"roamcost/internal/modules/trip"
	"roamcost/internal/modules/user"
)

type RouterDeps struct {
	Simulation *simulation.Service
	Recommend  *recommend.Service
	Catalog    *catalog.Service
	Trip       *trip.Service
	Checkout   *checkout.Service
	User       *user.Service
	Metrics    *metrics.Collector
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	simHandler := handlers.NewSimulationHandler(deps.Simulation)
	r.POST("/api/simulate", simHandler.Simulate)

	recHandler := handlers.NewRecommendationHandler(deps.Recommend)
	r.POST("/api/recommendation", recHandler.Recommend)

	catHandler := handlers.NewCatalogHandler(deps.Catalog)
	r.GET("/api/catalog", catHandler.Get)

	tripHandler := handlers.NewTripHandler(deps.Trip)
	r.POST("/api/trips", tripHandler.Create)
	r.GET("/api/trips", tripHandler.ListAll)
	r.GET("/api/trips/user/:userId", tripHandler.ListByUser)

	checkoutHandler := handlers.NewCheckoutHandler(deps.Checkout)
	r.POST("/api/checkout", checkoutHandler.Checkout)

	userHandler := handlers.NewUserHandler(deps.User)
	r.GET("/api/users/:id", userHandler.Get)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	return r
}
