package http

import (
	"github.com/gin-gonic/gin"

	"finmail-classifier/pkg/response"
)

// Classify godoc
// @Summary     Classify an email
// @Description Classifies a corporate email as Produtivo/Improdutivo and suggests a reply.
// @Tags        Classification
// @Accept      json
// @Produce     json
// @Param       body body     classifyReq  true "Email content"
// @Success     200  {object} classifyResp
// @Header      200  {string} X-Model-Used "Model that produced the classification"
// @Failure     400  {object} response.ErrorResp "Empty content or invalid body"
// @Failure     429  {object} response.ErrorResp "Rate limit exhausted on every attempt"
// @Failure     500  {object} response.ErrorResp "Invalid model output or internal error"
// @Router      /api/classify [POST]
func (h *handler) Classify(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processClassifyReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.Classify(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Classify: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.Header(ModelUsedHeader, output.ModelUsed)
	response.OK(c, h.newClassifyResp(output))
}

// ListModels godoc
// @Summary     List available models
// @Description Returns the models offered by the completion provider.
// @Tags        Classification
// @Produce     json
// @Success     200 {object} modelsResp
// @Router      /api/models [GET]
func (h *handler) ListModels(c *gin.Context) {
	response.OK(c, h.newModelsResp(h.uc.ListModels(c.Request.Context())))
}
