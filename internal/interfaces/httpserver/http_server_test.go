package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matsols/matsols-api/internal/config"
	"github.com/matsols/matsols-api/internal/domain/advisor"
	"github.com/matsols/matsols-api/internal/domain/chat"
	"github.com/matsols/matsols-api/internal/domain/degree"
	"github.com/matsols/matsols-api/internal/domain/lead"
	"github.com/matsols/matsols-api/internal/domain/update"
	"github.com/matsols/matsols-api/internal/domain/user"
	"github.com/matsols/matsols-api/internal/infrastructure/auth"
	"github.com/matsols/matsols-api/internal/infrastructure/database/dbtest"
	"github.com/matsols/matsols-api/internal/infrastructure/telemetry"
	chatrepo "github.com/matsols/matsols-api/internal/infrastructure/repository/chat"
	degreerepo "github.com/matsols/matsols-api/internal/infrastructure/repository/degree"
	leadrepo "github.com/matsols/matsols-api/internal/infrastructure/repository/lead"
	updaterepo "github.com/matsols/matsols-api/internal/infrastructure/repository/update"
	userrepo "github.com/matsols/matsols-api/internal/infrastructure/repository/user"
	"github.com/matsols/matsols-api/internal/interfaces/httpserver/handlers"
	"github.com/matsols/matsols-api/internal/interfaces/httpserver/responses"
)

type testServer struct {
	handler http.Handler
	issuer  *auth.TokenIssuer
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		ServiceName:        "matsols-api",
		Environment:        "test",
		JWTSecret:          "test-secret",
		TokenTTL:           time.Hour,
		CORSAllowedOrigins: []string{"*"},
		PublicRateLimit:    600,
		ShutdownTimeout:    time.Second,
	}
	log := zerolog.Nop()
	db := dbtest.Open(t)

	degreeService := degree.NewService(degreerepo.NewDegreeRepository(db), nil, log)
	require.NoError(t, degreeService.Upsert(context.Background(), &degree.Degree{
		Slug: "bsc-computer-science",
		Name: "BSc Computer Science",
	}))

	chatService := chat.NewService(chatrepo.NewChatRepository(db), log)
	advisorService := advisor.NewService(advisor.NewCatalogCorpus(degreeService), chatService, log)
	issuer := auth.NewTokenIssuer(cfg)
	userService := user.NewService(userrepo.NewUserRepository(db), auth.NewBcryptHasher(4), issuer, log)

	validator, err := auth.NewValidator(context.Background(), cfg, log)
	require.NoError(t, err)

	provider := handlers.NewProvider(
		advisorService,
		chatService,
		degreeService,
		lead.NewService(leadrepo.NewLeadRepository(db), log),
		update.NewService(updaterepo.NewUpdateRepository(db), log),
		userService,
		telemetry.NewRedactor(telemetry.ModeHashed, "test"),
		log,
	)
	return &testServer{
		handler: New(cfg, log, provider, validator, db).Handler(),
		issuer:  issuer,
	}
}

func (s *testServer) do(t *testing.T, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	return w
}

func (s *testServer) token(t *testing.T, role user.Role) string {
	t.Helper()
	token, err := s.issuer.Issue(&user.User{ID: "usr_" + string(role), Email: "x@example.com", Role: role})
	require.NoError(t, err)
	return token
}

func TestPublicRoutes(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/", "/healthz", "/readyz", "/metrics"} {
		w := srv.do(t, http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	w := srv.do(t, http.MethodGet, "/healthz", "", "")
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
}

func TestChatRoundTrip(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do(t, http.MethodPost, "/v1/chat", `{"session_id":"sess_it","content":"I want to study computer science"}`, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var reply responses.ChatReplyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reply))
	assert.Equal(t, "sess_it", reply.SessionID)
	assert.Equal(t, chat.RoleAgent, reply.Role)
	assert.Equal(t,
		"Based on your interest, I found some great options for you: BSc Computer Science. Would you like to know about the admission requirements for these?",
		reply.Reply)

	w = srv.do(t, http.MethodPost, "/v1/chat", `{"session_id":"sess_it","content":"hi"}`, "")
	require.Equal(t, http.StatusCreated, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reply))
	assert.Equal(t, "I'm your MATSOLS advisor. Could you tell me more about your academic goals?", reply.Reply)

	w = srv.do(t, http.MethodGet, "/v1/chat/sess_it/messages", "", srv.token(t, user.RoleAdmin))
	require.Equal(t, http.StatusOK, w.Code)
	var transcript responses.TranscriptResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &transcript))
	require.Len(t, transcript.Messages, 4)
	assert.Equal(t, chat.RoleUser, transcript.Messages[0].Role)
	assert.Equal(t, chat.RoleAgent, transcript.Messages[1].Role)
	assert.Equal(t, "hi", transcript.Messages[2].Content)
}

func TestAdminRoutesRequireAdmin(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do(t, http.MethodGet, "/v1/leads", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = srv.do(t, http.MethodGet, "/v1/leads", "", srv.token(t, user.RoleStudent))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = srv.do(t, http.MethodGet, "/v1/leads", "", srv.token(t, user.RoleAdmin))
	assert.Equal(t, http.StatusOK, w.Code)

	w = srv.do(t, http.MethodPost, "/v1/updates", `{"title":"Open day"}`, srv.token(t, user.RoleStaff))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRegisterThenLogin(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do(t, http.MethodPost, "/v1/auth/register", `{"email":"Student@Example.com","password":"correct-horse"}`, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = srv.do(t, http.MethodPost, "/v1/auth/register", `{"email":"student@example.com","password":"correct-horse"}`, "")
	assert.Equal(t, http.StatusConflict, w.Code)

	w = srv.do(t, http.MethodPost, "/v1/auth/login", `{"email":"student@example.com","password":"correct-horse"}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	var login responses.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	assert.Equal(t, user.RoleStudent, login.User.Role)

	w = srv.do(t, http.MethodGet, "/v1/leads", "", login.Token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
