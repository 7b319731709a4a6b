package workflow

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/stocklite/inventory-client/internal/core/ports"
)

// ListPhase is the list screen's lifecycle state.
type ListPhase int

const (
	ListIdle ListPhase = iota
	ListLoading
	ListLoaded
	ListFailed
)

// ListWorkflow drives one list screen: fetch on mount, explicit search,
// confirm-then-delete with a full refetch, refresh after mutations.
//
// Overlapping fetches are not deduplicated, but each carries a generation
// number and only the most recently issued one may apply its response. A
// response that loses the race, or arrives after Dismiss, is discarded.
type ListWorkflow[T any] struct {
	svc     ports.ResourceService[T]
	confirm ports.Confirmer
	notify  ports.Notifier
	log     zerolog.Logger

	mu         sync.Mutex
	phase      ListPhase
	items      []T
	searchTerm string
	filters    ports.Filters
	gen        uint64
}

func NewListWorkflow[T any](svc ports.ResourceService[T], confirm ports.Confirmer, notify ports.Notifier, log zerolog.Logger) *ListWorkflow[T] {
	return &ListWorkflow[T]{
		svc:     svc,
		confirm: confirm,
		notify:  notify,
		log:     log,
		phase:   ListIdle,
		filters: ports.Filters{},
	}
}

// SetSearch records the search box value. It takes effect on the next Fetch;
// there is no debounce, matching the submit/Enter trigger model.
func (w *ListWorkflow[T]) SetSearch(term string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.searchTerm = term
}

// SetFilter records an extra query filter (e.g. productId, type).
func (w *ListWorkflow[T]) SetFilter(key, value string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.filters[key] = value
}

// Fetch replaces the item list wholesale from the backend. Search and filter
// values are read at trigger time. On failure the previous items are kept and
// the phase becomes ListFailed.
func (w *ListWorkflow[T]) Fetch(ctx context.Context) {
	w.mu.Lock()
	w.gen++
	gen := w.gen
	w.phase = ListLoading
	filters := ports.Filters{"search": w.searchTerm}
	for k, v := range w.filters {
		filters[k] = v
	}
	w.mu.Unlock()

	items, err := w.svc.List(ctx, filters)

	w.mu.Lock()
	defer w.mu.Unlock()
	if gen != w.gen {
		w.log.Debug().Uint64("gen", gen).Uint64("current", w.gen).Msg("stale list response discarded")
		return
	}
	if err != nil {
		w.log.Error().Err(err).Msg("list fetch failed")
		w.phase = ListFailed
		return
	}
	w.items = items
	w.phase = ListLoaded
}

// Delete asks for confirmation, removes the record, and refetches the full
// list rather than splicing in place, so stale-filter inconsistencies cannot
// occur. Failures are reported through the notifier.
func (w *ListWorkflow[T]) Delete(ctx context.Context, id string) {
	if !w.confirm.Confirm("Are you sure you want to delete this record?") {
		return
	}
	if err := w.svc.Delete(ctx, id); err != nil {
		w.log.Error().Err(err).Str("id", id).Msg("delete failed")
		w.notify.Notify("Error deleting record")
		return
	}
	w.Fetch(ctx)
}

// Dismiss marks the screen as navigated away from. Any in-flight fetch that
// resolves afterwards is discarded.
func (w *ListWorkflow[T]) Dismiss() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.gen++
	w.phase = ListIdle
}

func (w *ListWorkflow[T]) Phase() ListPhase {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.phase
}

// Items returns a copy of the current item list.
func (w *ListWorkflow[T]) Items() []T {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]T, len(w.items))
	copy(out, w.items)
	return out
}
