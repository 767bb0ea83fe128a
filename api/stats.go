package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusaid-inc/campusaid-api/schema"
	"github.com/campusaid-inc/campusaid-api/store"
)

// statsResponse wraps the raw counters with the derived average rating
// so clients never recompute it
func statsResponse(stats *schema.UserStats) gin.H {
	return gin.H{
		"stats":            stats,
		"community_rating": stats.CommunityRating(),
	}
}

// myStats is the API to read the caller's own counters
func (s *Server) myStats(c *gin.Context) {
	requester := c.GetString("requester")

	stats, err := s.store.GetUserStats(requester)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, statsResponse(stats))
}

// accountStats is the API to read another user's public counters
func (s *Server) accountStats(c *gin.Context) {
	accountNumber := c.Param("accountNumber")

	stats, err := s.store.GetUserStats(accountNumber)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, statsResponse(stats))
}

// rateAccount is the API to submit a 1-5 rating for another user
func (s *Server) rateAccount(c *gin.Context) {
	accountNumber := c.Param("accountNumber")

	var params struct {
		Rating int64 `json:"rating" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if err := s.store.AddRating(accountNumber, params.Rating); err != nil {
		if err == store.ErrInvalidRating {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidRating, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
