package dashboard

import "sync"

// CaptureRenderer retains the most recently rendered page view. The
// HTTP surface reads it back after driving a controller, which makes
// the rendering contract the same one a DOM renderer would get: the
// controller pushes, the surface draws whatever was pushed last.
type CaptureRenderer struct {
	mu       sync.Mutex
	view     PageView
	rendered bool
}

// NewCaptureRenderer creates an empty capture surface.
func NewCaptureRenderer() *CaptureRenderer {
	return &CaptureRenderer{}
}

// Render implements Renderer.
func (r *CaptureRenderer) Render(view PageView) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.view = view
	r.rendered = true
}

// Last returns the most recently rendered view and whether anything has
// been rendered yet.
func (r *CaptureRenderer) Last() (PageView, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.view, r.rendered
}
