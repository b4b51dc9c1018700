package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rootsec1/meals-on-heels/internal/nearby"
	"github.com/rootsec1/meals-on-heels/internal/types"
)

// SearchResponse is the body of a successful search
type SearchResponse struct {
	Data  []types.SearchResult `json:"data"`
	Error *string              `json:"error" swaggertype:"string" extensions:"x-nullable"`
}

// ErrorResponse is the body of a failed request
type ErrorResponse struct {
	Error string `json:"error" example:"radius must be a positive number"`
}

// handleSearch godoc
// @Summary Search nearby food trucks
// @Description List food trucks within a radius of a coordinate, nearest first. Distances are in kilometres rounded to 2 decimals.
// @Tags search
// @Produce json
// @Param lat query number true "Latitude in decimal degrees" minimum(-90) maximum(90) example(37.7749)
// @Param lng query number true "Longitude in decimal degrees" minimum(-180) maximum(180) example(-122.4194)
// @Param radius query number false "Search radius in kilometres" default(5)
// @Success 200 {object} SearchResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/search/ [get]
func (app *App) handleSearch(c *gin.Context) {
	results, ok := app.search(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, SearchResponse{Data: results})
}

// handleSearchGeoJSON godoc
// @Summary Search nearby food trucks as GeoJSON
// @Description Same search as /api/search/ rendered as a GeoJSON FeatureCollection of points, nearest first.
// @Tags search
// @Produce json
// @Param lat query number true "Latitude in decimal degrees" minimum(-90) maximum(90) example(37.7749)
// @Param lng query number true "Longitude in decimal degrees" minimum(-180) maximum(180) example(-122.4194)
// @Param radius query number false "Search radius in kilometres" default(5)
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/search/geojson/ [get]
func (app *App) handleSearchGeoJSON(c *gin.Context) {
	results, ok := app.search(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, nearby.ToFeatureCollection(results))
}

// search validates the query parameters and runs the search, writing the
// error response itself when either step fails.
func (app *App) search(c *gin.Context) ([]types.SearchResult, bool) {
	query, err := nearby.ParseQuery(
		c.Query("lat"),
		c.Query("lng"),
		c.Query("radius"),
		app.cfg.Search.DefaultRadiusKm,
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return nil, false
	}

	// Delegate to business layer
	results, err := app.nearbyService.Search(c.Request.Context(), query)
	if err != nil {
		app.logger.Error("failed to search food trucks",
			"latitude", query.Center.Latitude,
			"longitude", query.Center.Longitude,
			"radius_km", query.RadiusKm,
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to search food trucks"})
		return nil, false
	}

	return results, true
}
