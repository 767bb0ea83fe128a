package api

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/campusaid-inc/campusaid-api/schema"
)

// parseGeoPosition will parse latitude, longitude and an optional accuracy
// from the geo-position string, e.g. "12.9716;77.5946" or
// "12.9716;77.5946;11.5"
func parseGeoPosition(geoPosition string) (schema.Location, error) {
	positions := strings.Split(geoPosition, ";")

	if len(positions) != 2 && len(positions) != 3 {
		return schema.Location{}, fmt.Errorf("invalid geo-position value")
	}

	lat, err := strconv.ParseFloat(positions[0], 64)
	if err != nil {
		return schema.Location{}, err
	}

	long, err := strconv.ParseFloat(positions[1], 64)
	if err != nil {
		return schema.Location{}, err
	}

	loc := schema.Location{
		Latitude:  lat,
		Longitude: long,
	}

	if len(positions) == 3 {
		if accuracy, err := strconv.ParseFloat(positions[2], 64); err == nil {
			loc.Accuracy = accuracy
		}
	}

	return loc, nil
}

// updateGeoPositionMiddleware is a middleware to store the device location
// for every api request from users. Matching and request creation read the
// latest fix stored here.
func (s *Server) updateGeoPositionMiddleware(c *gin.Context) {
	gp := c.GetHeader("Geo-Position")
	accountNumber := c.GetString("requester")

	if gp != "" && accountNumber != "" {
		if loc, err := parseGeoPosition(gp); err == nil {
			if err := s.store.UpdateProfileLocation(accountNumber, loc); err != nil {
				c.Error(err)
			}
		} else {
			c.Error(err)
		}
	}
	c.Next()
}
