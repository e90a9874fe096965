package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/logger"
	"github.com/jonathan/resume-analyzer/internal/server/middleware"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// minExtractedLength is the shortest extracted upload text accepted.
const minExtractedLength = 50

// multipartOverhead is allowed on top of MaxUploadBytes for form boundaries and headers.
const multipartOverhead = 64 * 1024

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// analyzeResponse flattens the analysis result next to the success flag.
type analyzeResponse struct {
	Success bool `json:"success"`
	*types.AnalysisResult
}

// healthResponse reports which components are loaded.
type healthResponse struct {
	Status     string          `json:"status"`
	Components map[string]bool `json:"components"`
	Scorer     string          `json:"scorer"`
	Auth       bool            `json:"auth"`
}

// handleUpload extracts résumé text from a multipart "file" field.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	log := s.requestLogger(r)
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+multipartOverhead)

	file, header, err := r.FormFile("file")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			s.errorResponse(w, http.StatusRequestEntityTooLarge, "File is too large")
			return
		}
		// A file part without a filename is parsed as a plain form value.
		if r.MultipartForm != nil && len(r.MultipartForm.Value["file"]) > 0 {
			s.errorResponse(w, http.StatusBadRequest, "No file selected")
			return
		}
		s.errorResponse(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	if filename == "" {
		s.errorResponse(w, http.StatusBadRequest, "No file selected")
		return
	}
	format, err := ingestion.FormatFromFilename(filename)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid file type. Use PDF, DOCX, TXT or HTML")
		return
	}
	if header.Size > s.cfg.MaxUploadBytes {
		s.errorResponse(w, http.StatusRequestEntityTooLarge, "File is too large")
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		log.Error("reading upload", zap.String("filename", filename), zap.Error(err))
		s.errorResponse(w, HTTPStatus(err), "Error processing file")
		return
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		s.errorResponse(w, http.StatusRequestEntityTooLarge, "File is too large")
		return
	}

	log.Info("extracting text", zap.String("filename", filename), zap.String("format", string(format)))
	raw, err := ingestion.Extract(format, data)
	if err != nil {
		log.Warn("text extraction failed", zap.String("filename", filename), zap.Error(err))
		s.errorResponse(w, HTTPStatus(err), "Could not extract text from file")
		return
	}

	text := ingestion.CleanText(raw)
	if len([]rune(strings.TrimSpace(text))) < minExtractedLength {
		s.errorResponse(w, http.StatusBadRequest, "Could not extract meaningful text from file")
		return
	}

	s.jsonResponse(w, http.StatusOK, types.UploadResponse{
		Success:  true,
		Text:     text,
		Filename: filename,
	})
}

// handleAnalyze runs the full analysis on posted résumé text.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	req.ResumeText = strings.TrimSpace(req.ResumeText)
	req.TargetRole = strings.TrimSpace(req.TargetRole)
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	result := s.engine.Analyze(req.ResumeText, req.TargetRole)
	s.requestLogger(r).Info("analysis complete",
		zap.Int("skills", len(result.Skills)),
		zap.Int("job_matches", len(result.JobMatches)),
		zap.String("target_role", logger.TruncateForLog(req.TargetRole, 80)))

	s.jsonResponse(w, http.StatusOK, analyzeResponse{Success: true, AnalysisResult: result})
}

// handleChat answers a coach message.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req types.ChatRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	req.Message = strings.TrimSpace(req.Message)
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	s.jsonResponse(w, http.StatusOK, s.coach.Respond(req.Message, req.Context))
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	resp := healthResponse{
		Status: "healthy",
		Components: map[string]bool{
			"skill_matcher": s.engine != nil && s.engine.Context().Matcher.Len() > 0,
			"job_matcher":   s.engine != nil && s.engine.Context().Catalog.Len() > 0,
			"coach":         s.coach != nil,
		},
		Auth: s.jwtService != nil,
	}
	if s.engine != nil {
		resp.Scorer = s.engine.Context().Scorer.State().String()
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// decodeJSON reads a size-limited JSON body into dst.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return &ErrPayloadTooLarge{Limit: maxBytesErr.Limit}
		}
		return &ErrValidation{Field: "body", Message: "Invalid JSON body"}
	}
	return nil
}

func (s *Server) requestLogger(r *http.Request) *zap.Logger {
	return s.logger.With(zap.String(logger.FieldRequestID, middleware.GetRequestID(r.Context())))
}

// validationMessage turns validator errors into the user-facing message of
// the first failing field.
func validationMessage(err error) string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return "Invalid request"
	}
	fe := errs[0]
	switch fe.Field() {
	case "ResumeText":
		if fe.Tag() == "required" {
			return "Resume text is required"
		}
		return "Resume text is too short. Please provide a detailed resume."
	case "TargetRole":
		return "Target role is too long"
	case "Message":
		if fe.Tag() == "required" {
			return "Message is required"
		}
		return "Message is too long"
	default:
		return "Invalid request"
	}
}

// sanitizeFilename reduces a client filename to a safe base name.
func sanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, `\`, "/")
	name = filepath.Base(strings.TrimSpace(name))
	if name == "." || name == "/" {
		return ""
	}
	name = strings.Join(strings.Fields(name), "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "")
	return strings.Trim(name, "._")
}
