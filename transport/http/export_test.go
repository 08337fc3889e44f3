package http

import "context"

func (h *HTTP) Cleanup(ctx context.Context) {
	h.cleanup(ctx)
}
