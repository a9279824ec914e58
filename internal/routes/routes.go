package routes

import (
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/Admiral-Simo/globalvaccinator/docs"
	"github.com/Admiral-Simo/globalvaccinator/internal/config"
	"github.com/Admiral-Simo/globalvaccinator/internal/handlers"
	"github.com/Admiral-Simo/globalvaccinator/internal/metrics"
	"github.com/Admiral-Simo/globalvaccinator/internal/middleware"
	"github.com/Admiral-Simo/globalvaccinator/internal/services"
	"github.com/Admiral-Simo/globalvaccinator/internal/store"
)

// Dependencies are the collaborators the router is built from.
type Dependencies struct {
	Config   *config.Config
	Store    store.PatientStore
	Metrics  *metrics.Metrics
	Registry prometheus.Gatherer
	Logger   *zap.Logger
}

// SetupRouter initializes and returns the configured router
func SetupRouter(deps Dependencies) *gin.Engine {
	gin.SetMode(deps.Config.GinMode)

	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(deps.Logger),
		middleware.Metrics(deps.Metrics),
		cors.New(corsConfig(deps.Config.CORSAllowOrigins)),
	)

	patientService := services.NewPatientService(deps.Store, deps.Metrics, deps.Logger)

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerRoutes(r, patientService, deps.Logger)
	return r
}

// registerRoutes configures every API route
func registerRoutes(r *gin.Engine, patientService services.InterfacePatientService, logger *zap.Logger) {
	api := r.Group("/api")

	health := handlers.NewHealthHandler(patientService)
	api.GET("/ping", health.Ping)
	api.GET("/health", health.Health)

	patients := handlers.NewPatientHandler(patientService, logger)
	patientGroup := api.Group("/patients")
	{
		patientGroup.GET("", patients.GetAllPatients)
		patientGroup.POST("", patients.InsertPatient)
	}
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.HeaderRequestID},
		ExposeHeaders:    []string{"Content-Length", middleware.HeaderRequestID},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
