package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/ougirez/solarscope/internal/api/controller"
	"github.com/ougirez/solarscope/internal/config"
	"github.com/ougirez/solarscope/internal/notify"
	"github.com/ougirez/solarscope/internal/pkg/constants"
	"github.com/ougirez/solarscope/internal/pkg/logger"
	"github.com/ougirez/solarscope/internal/service/enrichment"
	"github.com/ougirez/solarscope/internal/service/listing"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type APIService struct {
	router            *echo.Echo
	listingService    *listing.Service
	enrichmentService *enrichment.Service
	hub               *notify.Hub
}

func (svc *APIService) Serve(addr string) {
	if err := svc.router.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal(context.Background(), err)
	}
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

// Handler exposes the router for in-process use.
func (svc *APIService) Handler() http.Handler {
	return svc.router
}

func NewAPIService(
	cfg config.ServerConfig,
	listingService *listing.Service,
	enrichmentService *enrichment.Service,
	hub *notify.Hub,
) (*APIService, error) {
	svc := &APIService{
		router:            echo.New(),
		listingService:    listingService,
		enrichmentService: enrichmentService,
		hub:               hub,
	}

	svc.router.HideBanner = true
	svc.router.Logger.SetLevel(log.WARN)
	svc.router.JSONSerializer = jsonSerializer{}
	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.Use(middleware.Logger())
	svc.router.Use(middleware.Recover())
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  cfg.AllowOrigins,
		AllowMethods:  []string{echo.GET, echo.PUT, echo.POST, echo.DELETE},
		AllowHeaders:  []string{echo.HeaderContentType, constants.HeaderSessionID, constants.HeaderRequestID},
		ExposeHeaders: []string{constants.HeaderSessionID, constants.HeaderRequestID},
	}))

	svc.router.GET("/health", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	svc.router.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := svc.router.Group("/api/v1", svc.SessionMiddleware)
	cntrl := controller.NewController(svc.listingService, svc.enrichmentService, svc.hub)

	listingGroup := api.Group("/listing")
	listingGroup.GET("", cntrl.GetListing)
	listingGroup.POST("/mount", cntrl.MountListing)
	listingGroup.PUT("/filters", cntrl.SetFilter)
	listingGroup.DELETE("/filters", cntrl.ClearFilters)
	listingGroup.DELETE("/filters/:category", cntrl.ClearFilter)
	listingGroup.PUT("/search-term", cntrl.SetSearchTerm)
	listingGroup.POST("/search", cntrl.SearchListing)
	listingGroup.POST("/scrape", cntrl.Scrape)
	listingGroup.PUT("/selection", cntrl.Select)
	listingGroup.POST("/selection/:id/toggle", cntrl.ToggleSelect)
	listingGroup.POST("/enrich", cntrl.Enrich)
	listingGroup.POST("/pages/next", cntrl.NextPage)
	listingGroup.POST("/pages/prev", cntrl.PrevPage)
	listingGroup.POST("/pages/:page", cntrl.GoToPage)
	listingGroup.GET("/facilities/:id/routes", cntrl.GetRoutes)

	enrichmentGroup := api.Group("/enrichment")
	enrichmentGroup.GET("", cntrl.GetEnrichment)
	enrichmentGroup.POST("/search", cntrl.SearchEnrichment)
	enrichmentGroup.DELETE("/search", cntrl.ClearEnrichmentSearch)
	enrichmentGroup.POST("/details/toggle", cntrl.ToggleDetails)
	enrichmentGroup.GET("/facilities/:id", cntrl.GetFacility)

	api.GET("/notifications", cntrl.DrainNotifications)

	return svc, nil
}
