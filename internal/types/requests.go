// Package types provides type definitions for structured data used throughout the resume-analyzer system.
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// MinResumeLength is the shortest résumé text accepted for analysis.
const MinResumeLength = 100

// AnalyzeRequest is the request body of the analyze endpoint.
type AnalyzeRequest struct {
	ResumeText string `json:"resumeText" validate:"required,min=100"`
	TargetRole string `json:"target_role,omitempty" validate:"max=200"`
}

// ChatRequest is the request body of the chat endpoint. Context is an
// AnalysisResult previously returned to the client, if any.
type ChatRequest struct {
	Message string          `json:"message" validate:"required,max=2000"`
	Context *AnalysisResult `json:"context,omitempty"`
}

// ChatResponse is a single coach reply.
type ChatResponse struct {
	Reply     string `json:"reply"`
	Timestamp string `json:"timestamp"`
}

// NewChatResponse stamps a reply with the wall-clock time in 12-hour format.
func NewChatResponse(reply string, now time.Time) ChatResponse {
	return ChatResponse{Reply: reply, Timestamp: now.Format("03:04 PM")}
}

// UploadResponse is returned after text has been extracted from an uploaded file.
type UploadResponse struct {
	Success  bool   `json:"success"`
	Text     string `json:"text"`
	Filename string `json:"filename"`
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ChatRequest using the validator.
func (r *ChatRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
