package http

import (
	"fmt"
	"io"
	"mime/multipart"

	"github.com/gin-gonic/gin"

	"formation-management/internal/assistant"
)

// maxContextFileBytes caps how much of one uploaded file is read as chat
// context.
const maxContextFileBytes = 1 << 20

// processChatReq accepts both JSON and multipart bodies. Multipart carries
// the optional context files under the "files" field.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq

	form, err := c.MultipartForm()
	if err != nil {
		// Not multipart: fall back to a JSON body.
		var body struct {
			UserID  string `json:"user_id"`
			Message string `json:"message"`
		}
		if bindErr := c.ShouldBindJSON(&body); bindErr != nil {
			return chatReq{}, fmt.Errorf("invalid request body: %w", bindErr)
		}
		req.UserID = body.UserID
		req.Message = body.Message
		return req, nil
	}

	req.UserID = c.PostForm("user_id")
	req.Message = c.PostForm("message")

	for _, fh := range form.File["files"] {
		data, err := readFormFile(fh)
		if err != nil {
			return chatReq{}, fmt.Errorf("failed to read file %q: %w", fh.Filename, err)
		}
		req.Files = append(req.Files, assistant.FileContext{
			Name: fh.Filename,
			Data: string(data),
		})
	}

	return req, nil
}

func readFormFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, maxContextFileBytes))
}
