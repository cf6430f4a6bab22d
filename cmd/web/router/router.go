package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"congress-tracker/cmd/web/handlers"
	"congress-tracker/cmd/web/middleware"
	"congress-tracker/cmd/web/services"
	"congress-tracker/cmd/web/view"
	_ "congress-tracker/docs"
)

// Deps are the collaborators the routes are built from.
type Deps struct {
	Trades   *services.TradeService
	Profiles *services.ProfileService
	Status   *services.StatusService
	Ping     handlers.PingFunc

	// Registry receives the HTTP collectors and is served on /metrics.
	// nil disables both.
	Registry *prometheus.Registry

	AllowedOrigins []string
}

func New(d Deps) (*gin.Engine, error) {
	tmpl, err := view.New()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	// Route on the raw path so a name containing %2F stays one :name segment.
	r.UseRawPath = true
	r.UnescapePathValues = true
	r.SetHTMLTemplate(tmpl)

	r.Use(gin.Recovery(), middleware.RequestTrace())
	if d.Registry != nil {
		r.Use(middleware.NewMetrics(d.Registry).Handler())
	}
	r.Use(middleware.CORS("/api/", d.AllowedOrigins))

	if d.Registry != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{})))
	}

	// Health check
	r.GET("/health", handlers.HealthHandler(d.Ping))
	r.GET("/status", handlers.StatusHandler(d.Status))

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// HTML pages
	listing := handlers.ListingPageHandler(d.Trades)
	r.GET("/", listing)
	r.GET("/dashboard", listing)
	r.GET("/politician/:name", handlers.ProfilePageHandler(d.Profiles))

	// v1 routes
	api := r.Group("/api/v1")
	{
		api.GET("/trades", handlers.ListTradesHandler(d.Trades))
		api.GET("/filters", handlers.FilterOptionsHandler(d.Trades))
		api.GET("/politicians/:name", handlers.GetPoliticianHandler(d.Profiles))
	}

	return r, nil
}
