package document

import (
	"context"
	"time"
)

// Store is the document-database side of the gateway. It is the sole
// source of truth: callers rebuild their in-memory state from List after
// every mutation instead of patching locally.
type Store interface {
	// List reads the complete collection in storage order.
	List(ctx context.Context, col Collection) ([]Document, error)
	// Get performs a point-read by id. Returns shared.ErrNotFound when
	// no document with that id exists.
	Get(ctx context.Context, col Collection, id string) (*Document, error)
	// Insert stores a new document and returns its generated id.
	Insert(ctx context.Context, col Collection, fields map[string]any) (string, error)
	// Delete removes a document by id. Deleting an id that is already
	// gone is not an error.
	Delete(ctx context.Context, col Collection, id string) error
}

// BlobStore is the binary side of the gateway, used for product images.
type BlobStore interface {
	// Upload writes the blob at path and returns a URL it can be
	// fetched from.
	Upload(ctx context.Context, path string, data []byte, contentType string) (string, error)
	// DownloadURL returns a fetchable URL for an existing blob.
	DownloadURL(ctx context.Context, path string) (string, error)
}

// Session is an authenticated identity-provider session. The role check
// happens against the user's profile document, not here.
type Session struct {
	Token     string
	UserID    string
	Email     string
	ExpiresAt time.Time
}

// IdentityProvider is the email/password identity side of the gateway.
type IdentityProvider interface {
	SignIn(ctx context.Context, email, password string) (*Session, error)
	// SignOut terminates the session carried by token. Terminating an
	// already-dead session is not an error.
	SignOut(ctx context.Context, token string) error
	// Current resolves a bearer token to its live session, or an error
	// when the token is invalid, expired, or signed out.
	Current(ctx context.Context, token string) (*Session, error)
}
