package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"multilingual-support/pkg/response"
)

// ProcessQuery godoc
// @Summary     Answer a customer message
// @Description Detects the language, classifies the intent and returns a localized reply.
// @Tags        Support
// @Accept      json
// @Produce     json
// @Param       body body     queryReq true "Customer message"
// @Success     200  {object} queryResp
// @Failure     400  {object} response.Resp "Bad Request - empty or too long query"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/support/query [POST]
func (h *handler) ProcessQuery(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processQueryReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ProcessQuery(ctx, h.scope(c), req.toInput())
	if err != nil {
		if _, ok := h.mapError(err); ok {
			response.Error(c, err, nil)
			return
		}
		h.l.Errorf(ctx, "internal.support.delivery.http.ProcessQuery: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newQueryResp(output))
}

// SupportedLanguages godoc
// @Summary     List supported languages
// @Description Returns every language code a reply can be produced in, sorted.
// @Tags        Support
// @Produce     json
// @Success     200 {object} listResp
// @Router      /api/v1/support/languages [GET]
func (h *handler) SupportedLanguages(c *gin.Context) {
	response.OK(c, h.newListResp(h.uc.SupportedLanguages(c.Request.Context())))
}

// SupportedIntents godoc
// @Summary     List supported intents
// @Description Returns the classifiable intents in declaration order.
// @Tags        Support
// @Produce     json
// @Success     200 {object} listResp
// @Router      /api/v1/support/intents [GET]
func (h *handler) SupportedIntents(c *gin.Context) {
	response.OK(c, h.newListResp(h.uc.SupportedIntents(c.Request.Context())))
}

// LegacyProcessQuery godoc
// @Summary     Answer a customer message (bare JSON)
// @Tags        Legacy
// @Accept      json
// @Produce     json
// @Param       body body     queryReq true "Customer message"
// @Success     200  {object} queryResp
// @Failure     400  {object} legacyErrorResp
// @Failure     500  {object} legacyErrorResp
// @Router      /process_query [POST]
func (h *handler) LegacyProcessQuery(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processQueryReq(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, legacyErrorResp{Detail: err.Error()})
		return
	}

	output, err := h.uc.ProcessQuery(ctx, h.scope(c), req.toInput())
	if err != nil {
		status, ok := h.mapError(err)
		if !ok {
			h.l.Errorf(ctx, "internal.support.delivery.http.LegacyProcessQuery: %v", err)
			c.JSON(status, legacyErrorResp{Detail: response.DefaultErrorMessage})
			return
		}
		c.JSON(status, legacyErrorResp{Detail: err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.newQueryResp(output))
}

// LegacySupportedLanguages godoc
// @Summary     List supported languages (bare JSON)
// @Tags        Legacy
// @Produce     json
// @Success     200 {array} string
// @Router      /supported_languages [GET]
func (h *handler) LegacySupportedLanguages(c *gin.Context) {
	c.JSON(http.StatusOK, h.newListResp(h.uc.SupportedLanguages(c.Request.Context())).Items)
}

// LegacySupportedIntents godoc
// @Summary     List supported intents (bare JSON)
// @Tags        Legacy
// @Produce     json
// @Success     200 {array} string
// @Router      /supported_intents [GET]
func (h *handler) LegacySupportedIntents(c *gin.Context) {
	c.JSON(http.StatusOK, h.newListResp(h.uc.SupportedIntents(c.Request.Context())).Items)
}
