package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/ougirez/solarscope/internal/notify"
	"github.com/ougirez/solarscope/internal/pkg/logger"
	"github.com/ougirez/solarscope/internal/service/enrichment"
	"github.com/ougirez/solarscope/internal/service/listing"
)

type Controller struct {
	listing    *listing.Service
	enrichment *enrichment.Service
	hub        *notify.Hub
}

func NewController(listingService *listing.Service, enrichmentService *enrichment.Service, hub *notify.Hub) *Controller {
	return &Controller{listing: listingService, enrichment: enrichmentService, hub: hub}
}

func sessionID(ctx echo.Context) string {
	return logger.SessionID(ctx.Request().Context())
}
