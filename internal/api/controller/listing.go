package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/solarscope/internal/domain/dto"
)

func (c *Controller) MountListing(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, c.listing.Mount(ctx.Request().Context(), sessionID(ctx)))
}

func (c *Controller) GetListing(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, c.listing.View(sessionID(ctx)))
}

func (c *Controller) SetFilter(ctx echo.Context) error {
	var req dto.SetFilterRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	view, err := c.listing.SetFilter(ctx.Request().Context(), sessionID(ctx), req.Category, req.Value)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, view)
}

func (c *Controller) ClearFilter(ctx echo.Context) error {
	var req dto.ClearFilterRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	view, err := c.listing.ClearFilter(ctx.Request().Context(), sessionID(ctx), req.Category)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, view)
}

func (c *Controller) ClearFilters(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, c.listing.ClearFilters(ctx.Request().Context(), sessionID(ctx)))
}

func (c *Controller) SetSearchTerm(ctx echo.Context) error {
	var req dto.SearchTermRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, c.listing.SetSearchTerm(sessionID(ctx), req.Term))
}

func (c *Controller) SearchListing(ctx echo.Context) error {
	view, err := c.listing.Search(ctx.Request().Context(), sessionID(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, view)
}

func (c *Controller) Scrape(ctx echo.Context) error {
	var req dto.ScrapeRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	view, err := c.listing.Scrape(ctx.Request().Context(), sessionID(ctx), req.Query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, view)
}

func (c *Controller) Select(ctx echo.Context) error {
	var req dto.SelectRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, c.listing.Select(sessionID(ctx), req.IDs))
}

func (c *Controller) ToggleSelect(ctx echo.Context) error {
	var req dto.FacilityIDRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	view, err := c.listing.ToggleSelect(sessionID(ctx), req.ID)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, view)
}

func (c *Controller) Enrich(ctx echo.Context) error {
	view, err := c.listing.Enrich(ctx.Request().Context(), sessionID(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, view)
}

func (c *Controller) NextPage(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, c.listing.NextPage(sessionID(ctx)))
}

func (c *Controller) PrevPage(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, c.listing.PrevPage(sessionID(ctx)))
}

func (c *Controller) GoToPage(ctx echo.Context) error {
	var req dto.PageRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, c.listing.GoToPage(sessionID(ctx), req.Page))
}

func (c *Controller) GetRoutes(ctx echo.Context) error {
	var req dto.FacilityIDRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	routes, err := c.listing.Routes(sessionID(ctx), req.ID)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, routes)
}
