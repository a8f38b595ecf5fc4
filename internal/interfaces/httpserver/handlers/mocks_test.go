package handlers

import (
	"context"

	"github.com/matsols/matsols-api/internal/domain/advisor"
	"github.com/matsols/matsols-api/internal/domain/chat"
	"github.com/matsols/matsols-api/internal/domain/degree"
	"github.com/matsols/matsols-api/internal/domain/update"
	"github.com/matsols/matsols-api/internal/domain/user"
)

type MockAdvisorService struct {
	RespondFunc func(ctx context.Context, input advisor.RespondInput) (*advisor.Result, error)
}

func (m *MockAdvisorService) Respond(ctx context.Context, input advisor.RespondInput) (*advisor.Result, error) {
	return m.RespondFunc(ctx, input)
}

type MockTranscriptReader struct {
	TranscriptFunc func(ctx context.Context, conversationID string) ([]chat.Turn, error)
}

func (m *MockTranscriptReader) Transcript(ctx context.Context, conversationID string) ([]chat.Turn, error) {
	return m.TranscriptFunc(ctx, conversationID)
}

type MockDegreeService struct {
	degree.Service
	ListFunc      func(ctx context.Context) ([]*degree.Degree, error)
	GetBySlugFunc func(ctx context.Context, slug string) (*degree.Degree, error)
}

func (m *MockDegreeService) List(ctx context.Context) ([]*degree.Degree, error) {
	return m.ListFunc(ctx)
}

func (m *MockDegreeService) GetBySlug(ctx context.Context, slug string) (*degree.Degree, error) {
	return m.GetBySlugFunc(ctx, slug)
}

type MockUpdateService struct {
	CreateFunc func(ctx context.Context, params update.CreateParams) (*update.Update, error)
	ListFunc   func(ctx context.Context) ([]*update.Update, error)
	DeleteFunc func(ctx context.Context, id string) error
}

func (m *MockUpdateService) Create(ctx context.Context, params update.CreateParams) (*update.Update, error) {
	return m.CreateFunc(ctx, params)
}

func (m *MockUpdateService) List(ctx context.Context) ([]*update.Update, error) {
	return m.ListFunc(ctx)
}

func (m *MockUpdateService) Delete(ctx context.Context, id string) error {
	return m.DeleteFunc(ctx, id)
}

type MockUserService struct {
	user.Service
	RegisterFunc func(ctx context.Context, params user.RegisterParams) (*user.User, error)
	LoginFunc    func(ctx context.Context, email, password string) (*user.Session, error)
}

func (m *MockUserService) Register(ctx context.Context, params user.RegisterParams) (*user.User, error) {
	return m.RegisterFunc(ctx, params)
}

func (m *MockUserService) Login(ctx context.Context, email, password string) (*user.Session, error) {
	return m.LoginFunc(ctx, email, password)
}
