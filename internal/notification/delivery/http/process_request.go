package http

import (
	"fmt"
	"io"
	"mime/multipart"

	"github.com/gin-gonic/gin"

	"formation-management/pkg/gmailer"
)

// maxAttachmentBytes caps a single uploaded attachment.
const maxAttachmentBytes = 10 << 20

func (h *handler) processSendPasswordReq(c *gin.Context) (sendPasswordReq, error) {
	var req sendPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return sendPasswordReq{}, fmt.Errorf("invalid request body: %w", err)
	}
	return req, nil
}

// processSendDocumentsReq parses a multipart form: email/subject/html
// fields plus attachments under "attachments".
func (h *handler) processSendDocumentsReq(c *gin.Context) (sendDocumentsReq, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return sendDocumentsReq{}, fmt.Errorf("multipart form required: %w", err)
	}

	req := sendDocumentsReq{
		Email:   c.PostForm("email"),
		Subject: c.PostForm("subject"),
		HTML:    c.PostForm("html"),
	}

	for _, fh := range form.File["attachments"] {
		data, err := readAttachment(fh)
		if err != nil {
			return sendDocumentsReq{}, fmt.Errorf("failed to read attachment %q: %w", fh.Filename, err)
		}
		req.Attachments = append(req.Attachments, gmailer.Attachment{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	return req, nil
}

func readAttachment(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, maxAttachmentBytes))
}
