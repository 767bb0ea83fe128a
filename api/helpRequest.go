package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"

	"github.com/campusaid-inc/campusaid-api/feed"
	"github.com/campusaid-inc/campusaid-api/schema"
	"github.com/campusaid-inc/campusaid-api/store"
)

// DefaultNearbyRadiusKm is the discovery radius applied when a client
// does not ask for one.
const DefaultNearbyRadiusKm = 2.0

// askForHelp is the API for creating a new help request
func (s *Server) askForHelp(c *gin.Context) {
	requester := c.GetString("requester")

	var params store.HelpRequestParams

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	request, err := s.store.CreateHelpRequest(requester, params)
	if err != nil {
		switch err {
		case store.ErrInvalidHelpType, store.ErrInvalidUrgency, store.ErrDescriptionTooLong:
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		case store.ErrProfileNotVerified:
			abortWithEncoding(c, http.StatusForbidden, errorAccountNotVerified, err)
		case store.ErrLocationUnavailable:
			abortWithEncoding(c, http.StatusBadRequest, errorLocationUnavailable, err)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	// notify surrounding users. the request is already durable, so a
	// broker hiccup only costs the push notification.
	if _, err := s.background.SendTask(&tasks.Signature{
		Name: "broadcast_new_help",
		Args: []tasks.Arg{
			{
				Type:  "string",
				Value: request.ID,
			},
		},
	}); err != nil {
		c.Error(err)
		log.WithError(err).WithField("request_id", request.ID).Error("unable to queue help broadcasting")
	}

	c.JSON(http.StatusOK, gin.H{
		"result": request,
	})
}

// myRequests is the API to list the caller's own help requests
func (s *Server) myRequests(c *gin.Context) {
	requester := c.GetString("requester")

	requests, err := s.store.ListAccountHelpRequests(requester)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"requests": requests,
	})
}

// requestDetail is the API to read a single help request
func (s *Server) requestDetail(c *gin.Context) {
	id := c.Param("requestID")

	request, err := s.store.GetHelpRequest(id)
	if err != nil {
		if err == store.ErrRequestNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": request,
	})
}

// nearbyRadiusKm reads the optional `radius` query parameter (km).
func nearbyRadiusKm(c *gin.Context) float64 {
	radiusKm := DefaultNearbyRadiusKm
	if v := c.Query("radius"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			radiusKm = parsed
		}
	}
	return radiusKm
}

// nearbyRequests is the API to take a one-shot snapshot of active help
// requests around the caller, scoped to the caller's college
func (s *Server) nearbyRequests(c *gin.Context) {
	profile, ok := currentProfile(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	if profile.LastLocation == nil {
		abortWithEncoding(c, http.StatusBadRequest, errorLocationUnavailable)
		return
	}
	viewerLoc := profile.LastLocation.ToLocation()
	radiusKm := nearbyRadiusKm(c)

	// over-fetch slightly so the precise distance cut happens on accurate
	// numbers rather than on the index's approximation
	candidates, err := s.store.NearbyHelpRequests(profile.College, viewerLoc, int(radiusKm*1000)+50)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	requests := feed.AssembleNearby(candidates, profile.AccountNumber, viewerLoc, radiusKm, time.Now())

	c.JSON(http.StatusOK, gin.H{
		"requests": requests,
	})
}

// acceptRequest is the API for a helper to claim an active help request.
// The first accept wins; everyone else gets a conflict.
func (s *Server) acceptRequest(c *gin.Context) {
	id := c.Param("requestID")
	helper := c.GetString("requester")

	var params struct {
		Message string `json:"message"`
	}

	// the helper message is optional, so an empty body is fine
	if c.Request.ContentLength > 0 {
		if err := c.BindJSON(&params); err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
			return
		}
	}

	room, err := s.store.AcceptHelpRequest(id, helper, params.Message)
	if err != nil {
		switch err {
		case store.ErrRequestNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound, err)
		case store.ErrRequestAlreadyHandled:
			abortWithEncoding(c, http.StatusConflict, errorRequestAlreadyHandled, err)
		case store.ErrChatCreationFailed:
			abortWithEncoding(c, http.StatusInternalServerError, errorChatCreationFailed, err)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	if _, err := s.background.SendTask(&tasks.Signature{
		Name: "notify_help_accepted",
		Args: []tasks.Arg{
			{
				Type:  "string",
				Value: id,
			},
		},
	}); err != nil {
		c.Error(err)
		log.WithError(err).WithField("request_id", id).Error("unable to queue acceptance notification")
	}

	c.JSON(http.StatusOK, gin.H{
		"result": room,
	})
}

// cancelRequest is the API for a requester to withdraw an unclaimed request
func (s *Server) cancelRequest(c *gin.Context) {
	id := c.Param("requestID")
	requester := c.GetString("requester")

	if err := s.store.CancelHelpRequest(id, requester); err != nil {
		switch err {
		case store.ErrRequestNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound, err)
		case store.ErrNotRequestOwner:
			abortWithEncoding(c, http.StatusForbidden, errorNotRequestOwner, err)
		case store.ErrRequestAlreadyHandled:
			abortWithEncoding(c, http.StatusConflict, errorRequestAlreadyHandled, err)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// completeRequest is the API for a requester to mark a request fulfilled.
// The attached chat room, if any, is deactivated immediately and purged
// after the grace period.
func (s *Server) completeRequest(c *gin.Context) {
	id := c.Param("requestID")
	requester := c.GetString("requester")

	request, err := s.store.CompleteHelpRequest(id, requester)
	if err != nil {
		switch err {
		case store.ErrRequestNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound, err)
		case store.ErrNotRequestOwner:
			abortWithEncoding(c, http.StatusForbidden, errorNotRequestOwner, err)
		case store.ErrRequestAlreadyHandled:
			abortWithEncoding(c, http.StatusConflict, errorRequestAlreadyHandled, err)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	if request.ChatRoomID != "" {
		s.schedulePurge(c, request.ChatRoomID)
	}

	c.JSON(http.StatusOK, gin.H{
		"result": request,
	})
}

// schedulePurge queues the deferred teardown of a completed chat room.
// The periodic sweep backstops a lost task.
func (s *Server) schedulePurge(c *gin.Context, roomID string) {
	eta := time.Now().Add(schema.ChatPurgeGracePeriod)
	if _, err := s.background.SendTask(&tasks.Signature{
		Name: "purge_chat_room",
		ETA:  &eta,
		Args: []tasks.Arg{
			{
				Type:  "string",
				Value: roomID,
			},
		},
	}); err != nil {
		c.Error(err)
		log.WithError(err).WithField("chat_room_id", roomID).Error("unable to queue chat room purge")
	}
}
