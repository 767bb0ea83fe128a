package api

import "github.com/campusaid-inc/campusaid-api/store"

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1000: "invalid signature",
		1001: "invalid authorization format",
		1002: "difference between the request time and the current time is too large",
		1003: "invalid token",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: store.ErrAccountTaken.Error(),
		1101: store.ErrProfileNotFound.Error(),
		1102: store.ErrProfileNotVerified.Error(),
		1103: store.ErrLocationUnavailable.Error(),

		1200: store.ErrRequestNotFound.Error(),
		1201: store.ErrRequestAlreadyHandled.Error(),
		1202: store.ErrNotRequestOwner.Error(),
		1203: store.ErrChatCreationFailed.Error(),

		1300: store.ErrChatRoomNotFound.Error(),
		1301: store.ErrNotChatParticipant.Error(),
		1302: store.ErrChatRoomClosed.Error(),

		1400: store.ErrInvalidRating.Error(),
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidSignature           = errorJSON(1000)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorRequestTimeTooSkewed       = errorJSON(1002)
	errorInvalidToken               = errorJSON(1003)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorAccountTaken        = errorJSON(1100)
	errorAccountNotFound     = errorJSON(1101)
	errorAccountNotVerified  = errorJSON(1102)
	errorLocationUnavailable = errorJSON(1103)

	errorRequestNotFound       = errorJSON(1200)
	errorRequestAlreadyHandled = errorJSON(1201)
	errorNotRequestOwner       = errorJSON(1202)
	errorChatCreationFailed    = errorJSON(1203)

	errorChatRoomNotFound   = errorJSON(1300)
	errorNotChatParticipant = errorJSON(1301)
	errorChatRoomClosed     = errorJSON(1302)

	errorInvalidRating = errorJSON(1400)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
