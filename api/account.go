package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusaid-inc/campusaid-api/store"
)

// accountRegister is the API for registering a new account. The account
// number and the auth key come from the identity provider; the profile
// starts unverified until the verification service reports its verdict.
func (s *Server) accountRegister(c *gin.Context) {
	logger := log.WithField("api", "accountRegister")

	var params struct {
		AccountNumber string `json:"account_number" binding:"required"`
		AuthPubKey    string `json:"auth_pub_key" binding:"required"`
		DisplayName   string `json:"display_name" binding:"required"`
		College       string `json:"college" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		logger.WithError(err).Error(errorInvalidParameters.Message)
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	profile, err := s.store.CreateProfile(params.AccountNumber, params.AuthPubKey, params.DisplayName, params.College)
	if err != nil {
		if err == store.ErrAccountTaken {
			abortWithEncoding(c, http.StatusForbidden, errorAccountTaken)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": profile,
	})
}

// accountDetail is the API to query the caller's own profile
func (s *Server) accountDetail(c *gin.Context) {
	profile, ok := currentProfile(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": profile,
	})
}

// accountUpdate is the API to update the caller's display name
func (s *Server) accountUpdate(c *gin.Context) {
	accountNumber := c.GetString("requester")

	var params struct {
		DisplayName string `json:"display_name" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		c.Error(err)
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest)
		return
	}

	if err := s.store.UpdateProfileDisplayName(accountNumber, params.DisplayName); err != nil {
		c.Error(err)
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
