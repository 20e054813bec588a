package handler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/smartsolar/backend/internal/domain/document"
	"github.com/smartsolar/backend/internal/domain/identity"
	"github.com/smartsolar/backend/internal/domain/shared"
)

// fakeStore is an in-memory document.Store for handler tests.
type fakeStore struct {
	mu      sync.Mutex
	data    map[document.Collection]map[string]map[string]any
	nextID  int
	listErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: make(map[document.Collection]map[string]map[string]any)}
}

func (s *fakeStore) seed(col document.Collection, id string, fields map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data[col] == nil {
		s.data[col] = make(map[string]map[string]any)
	}
	s.data[col][id] = fields
}

func (s *fakeStore) List(_ context.Context, col document.Collection) ([]document.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listErr != nil {
		return nil, s.listErr
	}
	docs := make([]document.Document, 0, len(s.data[col]))
	for id, fields := range s.data[col] {
		docs = append(docs, document.Document{ID: id, Fields: fields})
	}
	return docs, nil
}

func (s *fakeStore) Get(_ context.Context, col document.Collection, id string) (*document.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fields, ok := s.data[col][id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return &document.Document{ID: id, Fields: fields}, nil
}

func (s *fakeStore) Insert(_ context.Context, col document.Collection, fields map[string]any) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := fmt.Sprintf("gen-%d", s.nextID)
	if s.data[col] == nil {
		s.data[col] = make(map[string]map[string]any)
	}
	s.data[col][id] = fields
	return id, nil
}

func (s *fakeStore) Delete(_ context.Context, col document.Collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data[col], id)
	return nil
}

func (s *fakeStore) has(col document.Collection, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.data[col][id]
	return ok
}

// fakeBlobs is an in-memory document.BlobStore.
type fakeBlobs struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newFakeBlobs() *fakeBlobs {
	return &fakeBlobs{objects: make(map[string][]byte)}
}

func (b *fakeBlobs) Upload(_ context.Context, path string, data []byte, _ string) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.objects[path] = data
	return "https://cdn.test/" + path, nil
}

func (b *fakeBlobs) DownloadURL(_ context.Context, path string) (string, error) {
	return "https://cdn.test/" + path, nil
}

// fakeProvider is a document.IdentityProvider backed by a fixed account.
type fakeProvider struct {
	mu       sync.Mutex
	email    string
	password string
	userID   string
	sessions map[string]*document.Session
	issued   int
}

func newFakeProvider(email, password, userID string) *fakeProvider {
	return &fakeProvider{
		email:    email,
		password: password,
		userID:   userID,
		sessions: make(map[string]*document.Session),
	}
}

func (p *fakeProvider) SignIn(_ context.Context, email, password string) (*document.Session, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if email != p.email {
		return nil, identity.ErrUserNotFound
	}
	if password != p.password {
		return nil, identity.ErrWrongPassword
	}
	p.issued++
	session := &document.Session{
		Token:     fmt.Sprintf("token-%d", p.issued),
		UserID:    p.userID,
		Email:     p.email,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	p.sessions[session.Token] = session
	return session, nil
}

func (p *fakeProvider) SignOut(_ context.Context, token string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.sessions, token)
	return nil
}

func (p *fakeProvider) Current(_ context.Context, token string) (*document.Session, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	session, ok := p.sessions[token]
	if !ok {
		return nil, identity.ErrInvalidCredentials
	}
	return session, nil
}

type silentNotifier struct{}

func (silentNotifier) Success(string) {}
func (silentNotifier) Failure(string) {}
