package api

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/auralog/auralog/internal/api/respond"
	"github.com/auralog/auralog/internal/genai"
)

// Uploads are streamed to the transcription API; this caps the in-memory
// multipart buffer, not the file size.
const maxUploadMemory = 10 << 20 // 10 MiB

// TranscribeHandler serves /transcribe.
type TranscribeHandler struct {
	transcriber genai.Transcriber
}

func NewTranscribeHandler(t genai.Transcriber) *TranscribeHandler {
	return &TranscribeHandler{transcriber: t}
}

// Transcribe handles POST /transcribe. It accepts a multipart "file" field,
// rejects non-audio uploads, and returns the speech-to-text transcript.
func (h *TranscribeHandler) Transcribe(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		respond.WriteBadRequest(w, "multipart form with a 'file' field is required")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respond.WriteBadRequest(w, "multipart form with a 'file' field is required")
		return
	}
	defer func() { _ = file.Close() }()

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "audio/") {
		respond.WriteBadRequest(w, "Only audio files supported")
		return
	}

	transcript, err := h.transcriber.Transcribe(r.Context(), header.Filename, file)
	if err != nil {
		log.Error().Err(err).Str("filename", header.Filename).Msg("transcription failed")
		respond.WriteInternalError(w, "Transcription failed")
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"transcript": transcript})
}
