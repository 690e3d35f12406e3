package game

import "errors"

// Code classifies a rejected command. Codes are stable: the websocket gateway
// forwards them verbatim to the originating client.
type Code string

const (
	CodeInvalidArgument Code = "invalid_argument"
	CodeRoomFull        Code = "room_full"
	CodeInvalidState    Code = "invalid_state"
	CodeForbidden       Code = "forbidden"
	CodeNotReady        Code = "not_ready"
	CodeInvalidIndex    Code = "invalid_index"
	CodeNotFound        Code = "not_found"
)

type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NewError(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// CodeOf extracts the code of a rejected command, or "" for other errors.
func CodeOf(err error) Code {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Code
	}
	return ""
}
