// Package httperr writes the gateway's error envelope:
//
//	{"error":{"message":"...","retryable":true},"detail":{...}}
//
// The message is shown to the member as is.
package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Message struct {
	Message string `json:"message"`
	// Retryable tells the app to offer a retry button instead of a dead end.
	Retryable bool `json:"retryable"`
}

type Response struct {
	Status int     `json:"-"`
	Error  Message `json:"error"`
	Detail any     `json:"detail,omitempty"`
}

func NewResponse(status int, msg string, detail any) Response {
	return Response{
		Status: status,
		Error:  Message{Message: msg, Retryable: retryable(status)},
		Detail: detail,
	}
}

// AbortWithError keeps err on the context for request logging and stops the
// chain with the envelope. err must not be nil.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("httperr: AbortWithError without an error")
	}

	resp := NewResponse(status, msg, detail)
	_ = c.Error(err).SetType(gin.ErrorTypePublic).SetMeta(resp)
	c.AbortWithStatusJSON(status, resp)
}

func retryable(status int) bool {
	switch status {
	case http.StatusRequestTimeout, http.StatusTooManyRequests,
		http.StatusInternalServerError, http.StatusBadGateway,
		http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}
