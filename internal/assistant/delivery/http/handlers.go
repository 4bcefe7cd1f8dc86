package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"formation-management/pkg/response"
)

// Chat godoc
// @Summary     Chat with the formation assistant
// @Description Sends a message (optionally with text files as context) and returns the assistant's answer.
// @Tags        Assistant
// @Accept      multipart/form-data
// @Produce     json
// @Param       user_id formData string true  "User identity key"
// @Param       message formData string false "Message (may be empty when files are provided)"
// @Param       files   formData file   false "Context files (text content)"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Upstream rate limited"
// @Failure     502 {object} response.Resp "Upstream failure"
// @Router      /api/v1/assistant/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Chat(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		status := statusOf(err)
		if status == http.StatusInternalServerError {
			response.InternalError(c, err)
			return
		}
		response.ErrorWithStatus(c, status, err)
		return
	}

	response.OK(c, newChatResp(output))
}
