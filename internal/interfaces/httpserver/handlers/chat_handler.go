package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/matsols/matsols-api/internal/domain/advisor"
	"github.com/matsols/matsols-api/internal/domain/chat"
	"github.com/matsols/matsols-api/internal/infrastructure/metrics"
	"github.com/matsols/matsols-api/internal/infrastructure/observability"
	"github.com/matsols/matsols-api/internal/infrastructure/telemetry"
	"github.com/matsols/matsols-api/internal/interfaces/httpserver/requests"
	"github.com/matsols/matsols-api/internal/interfaces/httpserver/responses"
	"github.com/matsols/matsols-api/internal/utils/idgen"
	"github.com/matsols/matsols-api/internal/utils/platformerrors"
)

// TranscriptReader returns stored conversation turns.
type TranscriptReader interface {
	Transcript(ctx context.Context, conversationID string) ([]chat.Turn, error)
}

// ChatHandler exposes the advisor chat.
type ChatHandler struct {
	advisor     advisor.Service
	transcripts TranscriptReader
	redact      *telemetry.Redactor
	log         zerolog.Logger
}

// NewChatHandler constructs the handler.
func NewChatHandler(advisorService advisor.Service, transcripts TranscriptReader, redactor *telemetry.Redactor, log zerolog.Logger) *ChatHandler {
	return &ChatHandler{
		advisor:     advisorService,
		transcripts: transcripts,
		redact:      redactor,
		log:         log.With().Str("handler", "chat").Logger(),
	}
}

// Create handles POST /v1/chat
// @Summary Send a chat message
// @Description Stores the message, answers it from the degree catalog and stores the reply
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body requests.ChatRequest true "Chat message"
// @Success 201 {object} responses.ChatReplyResponse
// @Failure 400 {object} platformerrors.HTTPErrorResponse
// @Failure 429 {object} platformerrors.HTTPErrorResponse
// @Failure 500 {object} platformerrors.HTTPErrorResponse
// @Router /v1/chat [post]
func (h *ChatHandler) Create(c *gin.Context) {
	var req requests.ChatRequest
	if !bindJSON(c, &req) {
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		platformerrors.WriteValidationError(c, "Content is required")
		return
	}

	sessionID := strings.TrimSpace(req.SessionID)
	if sessionID == "" {
		generated, err := idgen.New(idgen.PrefixSession)
		if err != nil {
			platformerrors.WriteError(c, err, h.log)
			return
		}
		sessionID = generated
	}

	utterance := h.redact.Text(req.Content)
	h.log.Debug().Str("session_id", sessionID).Str("utterance", utterance).Msg("chat message received")

	ctx, span := observability.StartChatSpan(c.Request.Context(), sessionID, utterance)
	result, err := h.advisor.Respond(ctx, advisor.RespondInput{
		ConversationID: sessionID,
		Utterance:      req.Content,
	})
	observability.EndSpan(span, err)
	if err != nil {
		metrics.RecordChatFailure(failureCause(err))
		platformerrors.WriteError(c, err, h.log)
		return
	}

	metrics.RecordChatReply(string(result.Rule), len(result.Matched))
	c.JSON(http.StatusCreated, responses.NewChatReplyResponse(result))
}

// Transcript handles GET /v1/chat/:session_id/messages
// @Summary List a chat transcript
// @Description Returns every stored message of a session in creation order
// @Tags Chat
// @Produce json
// @Security BearerAuth
// @Param session_id path string true "Session ID"
// @Success 200 {object} responses.TranscriptResponse
// @Failure 401 {object} platformerrors.HTTPErrorResponse
// @Failure 403 {object} platformerrors.HTTPErrorResponse
// @Failure 500 {object} platformerrors.HTTPErrorResponse
// @Router /v1/chat/{session_id}/messages [get]
func (h *ChatHandler) Transcript(c *gin.Context) {
	sessionID := c.Param("session_id")

	turns, err := h.transcripts.Transcript(c.Request.Context(), sessionID)
	if err != nil {
		platformerrors.WriteError(c, err, h.log)
		return
	}
	if turns == nil {
		turns = []chat.Turn{}
	}

	c.JSON(http.StatusOK, responses.TranscriptResponse{SessionID: sessionID, Messages: turns})
}

func failureCause(err error) string {
	switch {
	case errors.Is(err, advisor.ErrCorpusUnavailable):
		return "corpus_unavailable"
	case errors.Is(err, advisor.ErrLogWriteFailed):
		return "log_write_failed"
	default:
		return "other"
	}
}
