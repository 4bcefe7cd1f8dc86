package http

import (
	"formation-management/internal/notification"
	"formation-management/pkg/gmailer"
)

type sendPasswordReq struct {
	Email string `json:"email" binding:"required"`
	HTML  string `json:"html"`
}

func (r sendPasswordReq) toInput() notification.PasswordInput {
	return notification.PasswordInput{
		Recipient: r.Email,
		HTMLBody:  r.HTML,
	}
}

type sendDocumentsReq struct {
	Email       string
	Subject     string
	HTML        string
	Attachments []gmailer.Attachment
}

func (r sendDocumentsReq) toInput() notification.DocumentsInput {
	return notification.DocumentsInput{
		Recipient:   r.Email,
		Subject:     r.Subject,
		HTMLBody:    r.HTML,
		Attachments: r.Attachments,
	}
}

type sendResp struct {
	MessageID string `json:"message_id"`
}

func newSendResp(output notification.Output) sendResp {
	return sendResp{MessageID: output.MessageID}
}
