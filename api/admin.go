package api

import (
	"net/http"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"

	"github.com/campusaid-inc/campusaid-api/store"
)

// adminExpireRequests is an internal only api to trigger the task to
// check expired help requests
func (s *Server) adminExpireRequests(c *gin.Context) {
	if _, err := s.background.SendTask(&tasks.Signature{
		Name: "expire_help_requests",
	}); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(200, gin.H{"result": "OK"})
}

// adminPurgeChats is an internal only api to trigger the sweep for
// completed chat rooms whose grace period has passed
func (s *Server) adminPurgeChats(c *gin.Context) {
	if _, err := s.background.SendTask(&tasks.Signature{
		Name: "purge_stale_chats",
	}); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(200, gin.H{"result": "OK"})
}

// adminSetVerified is an internal only api for the verification service
// to report an account's verification verdict
func (s *Server) adminSetVerified(c *gin.Context) {
	accountNumber := c.Param("accountNumber")

	var params struct {
		Verified *bool `json:"verified" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if err := s.store.SetProfileVerified(accountNumber, *params.Verified); err != nil {
		if err == store.ErrProfileNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorAccountNotFound, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(200, gin.H{"result": "OK"})
}
