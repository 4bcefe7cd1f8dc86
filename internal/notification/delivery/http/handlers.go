package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"formation-management/pkg/response"
)

// SendPassword godoc
// @Summary     Send a password notification mail
// @Description Sends an HTML mail with the fixed subject "Votre mot de passe".
// @Tags        Notification
// @Accept      json
// @Produce     json
// @Param       body body sendPasswordReq true "Recipient and HTML body"
// @Success     200 {object} sendResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Mail relay failure"
// @Router      /api/v1/notifications/password [POST]
func (h *handler) SendPassword(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSendPasswordReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SendPassword(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SendPassword: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newSendResp(output))
}

// SendDocuments godoc
// @Summary     Send a mail with attachments
// @Description Sends an HTML mail with a caller-chosen subject and optional attachments.
// @Tags        Notification
// @Accept      multipart/form-data
// @Produce     json
// @Param       email       formData string true  "Recipient address"
// @Param       subject     formData string true  "Mail subject"
// @Param       html        formData string false "HTML body"
// @Param       attachments formData file   false "Attachments"
// @Success     200 {object} sendResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Mail relay failure"
// @Router      /api/v1/notifications/send [POST]
func (h *handler) SendDocuments(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSendDocumentsReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SendDocuments(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SendDocuments: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newSendResp(output))
}

func (h *handler) respondError(c *gin.Context, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		response.InternalError(c, err)
		return
	}
	response.ErrorWithStatus(c, status, err)
}
