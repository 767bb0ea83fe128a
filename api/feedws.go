package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// canceller is what every live feed exposes for teardown.
type canceller interface {
	Cancel()
}

// watchConnClose cancels the feed as soon as the peer goes away. Clients
// never send application data on feed sockets; any read returning is a
// close or an error either way.
func watchConnClose(conn *websocket.Conn, f canceller) {
	go func() {
		defer f.Cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// nearbyRequestsFeed is the websocket API streaming discovery snapshots.
// Every frame is the complete current view; the client replaces, never
// appends.
func (s *Server) nearbyRequestsFeed(c *gin.Context) {
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

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.Error(err)
		return
	}
	defer conn.Close()

	f, err := s.feeds.SubscribeNearby(profile.AccountNumber, viewerLoc, radiusKm)
	if err != nil {
		log.WithError(err).Error("unable to open nearby feed")
		return
	}
	defer f.Cancel()

	watchConnClose(conn, f)

	for snapshot := range f.Updates {
		if err := conn.WriteJSON(gin.H{"requests": snapshot}); err != nil {
			return
		}
	}
}

// messagesFeed is the websocket API streaming a chat room's full message
// history on every change
func (s *Server) messagesFeed(c *gin.Context) {
	roomID := c.Param("roomID")
	requester := c.GetString("requester")

	if _, ok := s.chatRoomForParticipant(c, roomID, requester); !ok {
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.Error(err)
		return
	}
	defer conn.Close()

	f := s.feeds.SubscribeMessages(roomID)
	defer f.Cancel()

	watchConnClose(conn, f)

	for messages := range f.Updates {
		if err := conn.WriteJSON(gin.H{"messages": messages}); err != nil {
			return
		}
	}
}

// chatsFeed is the websocket API streaming the caller's active rooms
func (s *Server) chatsFeed(c *gin.Context) {
	requester := c.GetString("requester")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.Error(err)
		return
	}
	defer conn.Close()

	f := s.feeds.SubscribeUserRooms(requester)
	defer f.Cancel()

	watchConnClose(conn, f)

	for rooms := range f.Updates {
		if err := conn.WriteJSON(gin.H{"chats": rooms}); err != nil {
			return
		}
	}
}

// myStatsFeed is the websocket API streaming the caller's counters
func (s *Server) myStatsFeed(c *gin.Context) {
	requester := c.GetString("requester")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.Error(err)
		return
	}
	defer conn.Close()

	f := s.feeds.SubscribeUserStats(requester)
	defer f.Cancel()

	watchConnClose(conn, f)

	for stats := range f.Updates {
		if err := conn.WriteJSON(gin.H{
			"stats":            stats,
			"community_rating": stats.CommunityRating(),
		}); err != nil {
			return
		}
	}
}
