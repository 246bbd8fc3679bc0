package response

import (
	"github.com/gin-gonic/gin"
)

// ListMeta accompanies collection responses.
type ListMeta struct {
	Count int `json:"count"`
}

func Count(n int) *ListMeta {
	return &ListMeta{Count: n}
}

type Envelope struct {
	Ok        bool       `json:"ok"`
	Data      any        `json:"data,omitempty"`
	Meta      *ListMeta  `json:"meta,omitempty"`
	Error     *ErrorBody `json:"error,omitempty"`
	RequestID string     `json:"request_id,omitempty"`
}

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func Success(c *gin.Context, status int, data any, meta *ListMeta) {
	c.JSON(status, Envelope{
		Ok:        true,
		Data:      data,
		Meta:      meta,
		RequestID: c.GetString("request_id"),
	})
}

func Error(c *gin.Context, status int, code, message string, details any) {
	c.JSON(status, Envelope{
		Ok:        false,
		Error:     &ErrorBody{Code: code, Message: message, Details: details},
		RequestID: c.GetString("request_id"),
	})
}
