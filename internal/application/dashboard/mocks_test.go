package dashboard

import (
	"context"

	"github.com/smartsolar/backend/internal/domain/document"
	"github.com/stretchr/testify/mock"
)

// MockStore is a mock implementation of document.Store
type MockStore struct {
	mock.Mock
}

func (m *MockStore) List(ctx context.Context, col document.Collection) ([]document.Document, error) {
	args := m.Called(ctx, col)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]document.Document), args.Error(1)
}

func (m *MockStore) Get(ctx context.Context, col document.Collection, id string) (*document.Document, error) {
	args := m.Called(ctx, col, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*document.Document), args.Error(1)
}

func (m *MockStore) Insert(ctx context.Context, col document.Collection, fields map[string]any) (string, error) {
	args := m.Called(ctx, col, fields)
	return args.String(0), args.Error(1)
}

func (m *MockStore) Delete(ctx context.Context, col document.Collection, id string) error {
	args := m.Called(ctx, col, id)
	return args.Error(0)
}

// MockBlobStore is a mock implementation of document.BlobStore
type MockBlobStore struct {
	mock.Mock
}

func (m *MockBlobStore) Upload(ctx context.Context, path string, data []byte, contentType string) (string, error) {
	args := m.Called(ctx, path, data, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockBlobStore) DownloadURL(ctx context.Context, path string) (string, error) {
	args := m.Called(ctx, path)
	return args.String(0), args.Error(1)
}

// MockIdentityProvider is a mock implementation of document.IdentityProvider
type MockIdentityProvider struct {
	mock.Mock
}

func (m *MockIdentityProvider) SignIn(ctx context.Context, email, password string) (*document.Session, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*document.Session), args.Error(1)
}

func (m *MockIdentityProvider) SignOut(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockIdentityProvider) Current(ctx context.Context, token string) (*document.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*document.Session), args.Error(1)
}

// recordingNotifier collects user-facing notifications for assertions
type recordingNotifier struct {
	successes []string
	failures  []string
}

func (n *recordingNotifier) Success(msg string) {
	n.successes = append(n.successes, msg)
}

func (n *recordingNotifier) Failure(msg string) {
	n.failures = append(n.failures, msg)
}
