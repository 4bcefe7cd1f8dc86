package http

import "formation-management/internal/assistant"

type chatReq struct {
	UserID  string
	Message string
	Files   []assistant.FileContext
}

func (r chatReq) toInput() assistant.ChatInput {
	return assistant.ChatInput{
		UserID:  r.UserID,
		Message: r.Message,
		Files:   r.Files,
	}
}

type chatResp struct {
	Answer string `json:"answer"`
}

func newChatResp(output assistant.ChatOutput) chatResp {
	return chatResp{Answer: output.Answer}
}
