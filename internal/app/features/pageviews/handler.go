// internal/app/features/pageviews/handler.go
package pageviews

import (
	"net/http"

	"github.com/dalemusser/schoolreports/internal/app/store/pagestats"
	"github.com/dalemusser/schoolreports/internal/app/system/inputval"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler records page views. It never fails a request: the counter is
// best effort and the page that reported the view must not notice.
type Handler struct {
	Counters *pagestats.Store
	Log      *zap.Logger
}

// NewHandler constructs a page view Handler.
func NewHandler(counters *pagestats.Store, logger *zap.Logger) *Handler {
	return &Handler{Counters: counters, Log: logger}
}

// ServeRecord handles POST /pageviews/{page}. It answers 204 at once and
// increments in the background. Invalid page codes are logged and dropped.
func (h *Handler) ServeRecord(w http.ResponseWriter, r *http.Request) {
	p := inputval.PageViewParams{Page: chi.URLParam(r, "page")}
	if err := inputval.Struct(p); err != nil {
		h.Log.Debug("page view ignored", zap.String("page", p.Page), zap.Error(err))
	} else {
		h.Counters.IncrementAsync(p.Page)
	}
	w.WriteHeader(http.StatusNoContent)
}
