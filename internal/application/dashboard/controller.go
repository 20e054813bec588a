package dashboard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/smartsolar/backend/internal/domain/document"
	"github.com/smartsolar/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// State is the lifecycle of one list controller. Pagination never
// re-enters Loading; only fetches do.
type State int

const (
	StateUnloaded State = iota
	StateLoading
	StateLoaded
	StateFailed
)

// String returns the state name for logs.
func (s State) String() string {
	switch s {
	case StateUnloaded:
		return "unloaded"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// PageView is one rendered page handed to the rendering surface: the
// view models of the current slice plus everything needed to draw the
// pagination controls. A failed fetch renders a view carrying only the
// collection-scoped error message.
type PageView struct {
	Collection document.Collection `json:"collection"`
	Page       int                 `json:"page"`
	TotalPages int                 `json:"total_pages"`
	Total      int                 `json:"total"`
	Empty      bool                `json:"empty"`
	Items      any                 `json:"items,omitempty"`
	Error      string              `json:"error,omitempty"`
}

// Renderer binds a page of view models to a concrete UI surface.
type Renderer interface {
	Render(view PageView)
}

// Notifier reports mutation outcomes to the user.
type Notifier interface {
	Success(msg string)
	Failure(msg string)
}

// ConfirmFunc is the interactive yes/no gate in front of destructive
// actions. Returning false aborts with no gateway call and no state
// change.
type ConfirmFunc func(prompt string) bool

// listController is the shared machinery of the four tab controllers:
// fetch the full collection, decode and order it, page it, and push
// rendered slices at the renderer. Each entity kind wraps it with its
// own decode and presentation functions.
type listController[T any] struct {
	collection document.Collection
	store      document.Store
	renderer   Renderer
	notifier   Notifier
	logger     *zap.Logger

	decode    func(document.Document) T
	keep      func(T) bool // nil keeps everything
	eventTime func(T) time.Time
	present   func(ctx context.Context, items []T) any

	deletePrompt  string
	deletedMsg    string
	deleteFailMsg string

	mu    sync.Mutex
	state State
	pager pager[T]
}

// FetchAll replaces the in-memory collection from the gateway, orders
// it newest first, resets to page 1, and renders that page. On failure
// the previously held items stay untouched and a collection-scoped
// error view is rendered instead; the error is terminal for this fetch
// only. A fetch racing another fetch is not guarded: the last response
// to land wins.
func (c *listController[T]) FetchAll(ctx context.Context) {
	c.mu.Lock()
	c.state = StateLoading
	c.mu.Unlock()

	docs, err := c.store.List(ctx, c.collection)
	if err != nil {
		c.logger.Error("failed to load collection",
			zap.String("collection", string(c.collection)),
			zap.Error(err))
		c.mu.Lock()
		c.state = StateFailed
		c.mu.Unlock()
		c.renderer.Render(PageView{
			Collection: c.collection,
			Error:      fmt.Sprintf("Error loading %s. Please try again later.", c.collection),
		})
		return
	}

	items := make([]T, 0, len(docs))
	for _, doc := range docs {
		item := c.decode(doc)
		if c.keep != nil && !c.keep(item) {
			continue
		}
		items = append(items, item)
	}
	sortNewestFirst(items, c.eventTime)

	c.mu.Lock()
	c.pager.Reset(items)
	c.state = StateLoaded
	c.mu.Unlock()

	c.logger.Debug("collection loaded",
		zap.String("collection", string(c.collection)),
		zap.Int("count", len(items)))
	c.renderCurrent(ctx)
}

// Navigate moves to the target page and redraws it. Targets outside
// [1, TotalPages] are silently ignored: the current page stays put and
// nothing is rendered.
func (c *listController[T]) Navigate(ctx context.Context, target int) bool {
	c.mu.Lock()
	moved := c.pager.Navigate(target)
	c.mu.Unlock()
	if !moved {
		return false
	}
	c.renderCurrent(ctx)
	return true
}

// RenderCurrent redraws the current page from already-held state. It
// never touches the gateway except through cross-reference cache
// misses.
func (c *listController[T]) RenderCurrent(ctx context.Context) {
	c.renderCurrent(ctx)
}

func (c *listController[T]) renderCurrent(ctx context.Context) {
	c.mu.Lock()
	page := c.pager.Current()
	slice := c.pager.Slice(page)
	view := PageView{
		Collection: c.collection,
		Page:       page,
		TotalPages: c.pager.TotalPages(),
		Total:      c.pager.Len(),
		Empty:      len(slice) == 0,
	}
	c.mu.Unlock()

	// Presentation may resolve cross-references, so it runs unlocked.
	view.Items = c.present(ctx, slice)
	c.renderer.Render(view)
}

// Delete removes one record after interactive confirmation. A declined
// confirmation does nothing at all. Once confirmed the gateway delete
// is issued and, regardless of its outcome, the collection is refetched
// to resynchronize before the result is reported. Failures are not
// retried.
func (c *listController[T]) Delete(ctx context.Context, id string, confirm ConfirmFunc) (bool, error) {
	if confirm == nil || !confirm(c.deletePrompt) {
		return false, nil
	}

	err := c.store.Delete(ctx, c.collection, id)
	c.FetchAll(ctx)
	if err != nil {
		c.logger.Error("delete failed",
			zap.String("collection", string(c.collection)),
			zap.String("id", id),
			zap.Error(err))
		c.notifier.Failure(c.deleteFailMsg)
		return false, shared.ErrMutationFailed
	}

	c.notifier.Success(c.deletedMsg)
	return true, nil
}

// State reports the controller's lifecycle state.
func (c *listController[T]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// CurrentPage reports the tracked current page.
func (c *listController[T]) CurrentPage() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pager.Current()
}

// TotalPages reports the page count of the held collection.
func (c *listController[T]) TotalPages() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pager.TotalPages()
}

// DeletedMessage is the user-facing message for a successful delete.
func (c *listController[T]) DeletedMessage() string {
	return c.deletedMsg
}

// Count reports how many records are held after filtering.
func (c *listController[T]) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pager.Len()
}
