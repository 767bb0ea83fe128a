package api

import (
	"net/http"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"

	"github.com/campusaid-inc/campusaid-api/schema"
	"github.com/campusaid-inc/campusaid-api/store"
)

// listChats is the API to list the caller's active chat rooms
func (s *Server) listChats(c *gin.Context) {
	requester := c.GetString("requester")

	rooms, err := s.store.ListActiveChatRooms(requester)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"chats": rooms,
	})
}

// chatRoomForParticipant loads a room and checks the caller belongs to it.
// Rooms vanish entirely once purged, so a missing room after completion is
// the expected terminal state, not an error in the data.
func (s *Server) chatRoomForParticipant(c *gin.Context, roomID, accountNumber string) (*schema.ChatRoom, bool) {
	room, err := s.store.GetChatRoom(roomID)
	if err != nil {
		if err == store.ErrChatRoomNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorChatRoomNotFound, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return nil, false
	}

	if !room.HasParticipant(accountNumber) {
		abortWithEncoding(c, http.StatusForbidden, errorNotChatParticipant)
		return nil, false
	}

	return room, true
}

// listMessages is the API to read the full message history of a room
func (s *Server) listMessages(c *gin.Context) {
	roomID := c.Param("roomID")
	requester := c.GetString("requester")

	if _, ok := s.chatRoomForParticipant(c, roomID, requester); !ok {
		return
	}

	messages, err := s.store.ListChatMessages(roomID)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"messages": messages,
	})
}

// sendMessage is the API to append a text message to an active room
func (s *Server) sendMessage(c *gin.Context) {
	roomID := c.Param("roomID")
	requester := c.GetString("requester")

	var params struct {
		Text string `json:"text" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	message, err := s.store.AddChatMessage(roomID, requester, params.Text, schema.TextMessage)
	if err != nil {
		switch err {
		case store.ErrChatRoomNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorChatRoomNotFound, err)
		case store.ErrNotChatParticipant:
			abortWithEncoding(c, http.StatusForbidden, errorNotChatParticipant, err)
		case store.ErrChatRoomClosed:
			abortWithEncoding(c, http.StatusConflict, errorChatRoomClosed, err)
		case store.ErrEmptyMessage:
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	if _, err := s.background.SendTask(&tasks.Signature{
		Name: "notify_new_message",
		Args: []tasks.Arg{
			{
				Type:  "string",
				Value: roomID,
			},
			{
				Type:  "string",
				Value: requester,
			},
		},
	}); err != nil {
		c.Error(err)
		log.WithError(err).WithField("chat_room_id", roomID).Error("unable to queue message notification")
	}

	c.JSON(http.StatusOK, gin.H{
		"result": message,
	})
}

// completeChat is the API for either participant to close a room directly.
// The room stays readable for the grace period before it is purged.
func (s *Server) completeChat(c *gin.Context) {
	roomID := c.Param("roomID")
	requester := c.GetString("requester")

	if _, ok := s.chatRoomForParticipant(c, roomID, requester); !ok {
		return
	}

	if err := s.store.CompleteChatRoom(roomID, requester); err != nil {
		if err == store.ErrChatRoomNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorChatRoomNotFound, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	s.schedulePurge(c, roomID)

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
