package workflow

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/stocklite/inventory-client/internal/core/domain"
	"github.com/stocklite/inventory-client/internal/core/ports"
)

// FormPhase is the form screen's lifecycle state.
type FormPhase int

const (
	FormIdle FormPhase = iota
	// FormLoading only occurs in edit mode while the record loads.
	FormLoading
	FormReady
	FormSubmitting
	// FormDone: submit succeeded and navigation to the list fired.
	FormDone
	// FormFailed: the edit-mode load failed; the form never became usable.
	FormFailed
)

// FormWorkflow drives one create/edit screen. Create mode starts at FormReady
// with zero-valued fields; edit mode loads the record first. Submit validates
// required fields locally (deep validation stays with the server), then calls
// create or update depending on whether an id is bound, and navigates back to
// the list screen on success. On failure the form stays populated so the user
// can correct and resubmit.
type FormWorkflow[T any] struct {
	svc       ports.ResourceService[T]
	nav       ports.Navigator
	listRoute string
	validate  *validator.Validate
	log       zerolog.Logger

	mu     sync.Mutex
	phase  FormPhase
	id     string
	fields *T
	errMsg string
	gen    uint64
}

func NewFormWorkflow[T any](svc ports.ResourceService[T], nav ports.Navigator, listRoute string, log zerolog.Logger) *FormWorkflow[T] {
	return &FormWorkflow[T]{
		svc:       svc,
		nav:       nav,
		listRoute: listRoute,
		validate:  validator.New(),
		log:       log,
		phase:     FormIdle,
	}
}

// Mount initializes the screen. An empty id means create mode.
func (w *FormWorkflow[T]) Mount(ctx context.Context, id string) {
	if id == "" {
		w.mu.Lock()
		defer w.mu.Unlock()
		w.id = ""
		w.fields = new(T)
		w.phase = FormReady
		return
	}

	w.mu.Lock()
	w.gen++
	gen := w.gen
	w.id = id
	w.phase = FormLoading
	w.mu.Unlock()

	record, err := w.svc.Get(ctx, id)

	w.mu.Lock()
	defer w.mu.Unlock()
	if gen != w.gen {
		w.log.Debug().Str("id", id).Msg("stale form load discarded")
		return
	}
	if err != nil {
		w.log.Error().Err(err).Str("id", id).Msg("form load failed")
		w.phase = FormFailed
		w.errMsg = errorMessage(err)
		return
	}
	w.fields = record
	w.phase = FormReady
}

// SetFields replaces the editable field values.
func (w *FormWorkflow[T]) SetFields(fields *T) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.fields = fields
}

// Submit validates and persists the form. The create/update choice follows
// the bound id. On any failure the phase returns to FormReady with an inline
// message and the fields untouched.
func (w *FormWorkflow[T]) Submit(ctx context.Context) {
	w.mu.Lock()
	if w.phase != FormReady {
		w.mu.Unlock()
		return
	}
	w.gen++
	gen := w.gen
	fields := w.fields
	id := w.id
	w.phase = FormSubmitting
	w.errMsg = ""
	w.mu.Unlock()

	if err := w.validate.Struct(fields); err != nil {
		w.fail(gen, humanizeValidation(err))
		return
	}

	var err error
	if id == "" {
		_, err = w.svc.Create(ctx, fields)
	} else {
		_, err = w.svc.Update(ctx, id, fields)
	}
	if err != nil {
		w.log.Warn().Err(err).Str("id", id).Msg("form submit rejected")
		w.fail(gen, errorMessage(err))
		return
	}

	w.mu.Lock()
	if gen != w.gen {
		w.mu.Unlock()
		w.log.Debug().Str("id", id).Msg("stale form submit discarded")
		return
	}
	w.phase = FormDone
	w.mu.Unlock()
	w.nav.NavigateTo(w.listRoute)
}

// Dismiss discards the screen; a load or submit resolving afterwards is
// dropped without touching the phase or firing navigation.
func (w *FormWorkflow[T]) Dismiss() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.gen++
	w.phase = FormIdle
	w.fields = nil
	w.errMsg = ""
}

func (w *FormWorkflow[T]) fail(gen uint64, msg string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if gen != w.gen {
		return
	}
	w.phase = FormReady
	w.errMsg = msg
}

func (w *FormWorkflow[T]) Phase() FormPhase {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.phase
}

func (w *FormWorkflow[T]) Fields() *T {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.fields
}

func (w *FormWorkflow[T]) ErrorMessage() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.errMsg
}

// errorMessage converts a service error into the inline text shown on the
// form. Unexpected errors degrade to a generic message, never a crash.
func errorMessage(err error) string {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	var te *domain.TransportError
	if errors.As(err, &te) {
		return "Could not reach the server. Please try again."
	}
	if errors.Is(err, domain.ErrNotFound) {
		return "Record not found"
	}
	return "Something went wrong. Please try again."
}

// humanizeValidation renders go-playground/validator failures as one inline
// message per offending field.
func humanizeValidation(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return "Invalid input"
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "email":
			msgs = append(msgs, field+" must be a valid email")
		case "gte":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", field, fe.Param()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of: %s", field, fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed validation (%s)", field, fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}
