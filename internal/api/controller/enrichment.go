package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/solarscope/internal/domain/dto"
)

func (c *Controller) GetEnrichment(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, c.enrichment.View(sessionID(ctx)))
}

func (c *Controller) SearchEnrichment(ctx echo.Context) error {
	var req dto.EnrichmentSearchRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	view, err := c.enrichment.Search(ctx.Request().Context(), sessionID(ctx), req.Query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, view)
}

func (c *Controller) ClearEnrichmentSearch(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, c.enrichment.ClearSearch(sessionID(ctx)))
}

func (c *Controller) ToggleDetails(ctx echo.Context) error {
	view, err := c.enrichment.ToggleDetails(ctx.Request().Context(), sessionID(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, view)
}

// GetFacility never fails on an unknown id: it answers with the first catalog record instead.
func (c *Controller) GetFacility(ctx echo.Context) error {
	var req dto.FacilityIDRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, c.enrichment.Facility(req.ID))
}
