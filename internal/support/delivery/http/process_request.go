package http

import (
	"github.com/gin-gonic/gin"

	"multilingual-support/internal/model"
	"multilingual-support/pkg/log"
)

// processQueryReq binds and validates the query request body.
func (h *handler) processQueryReq(c *gin.Context) (queryReq, error) {
	var req queryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidBody
	}
	return req, req.validate()
}

// scope builds the request scope from the request id middleware and the client address.
func (h *handler) scope(c *gin.Context) model.Scope {
	return model.Scope{
		RequestID: log.RequestID(c.Request.Context()),
		ClientIP:  c.ClientIP(),
	}
}
