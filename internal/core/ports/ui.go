package ports

// Navigator performs the navigation side effects workflows request, e.g.
// jumping back to a list screen after a successful submit.
type Navigator interface {
	NavigateTo(route string)
}

// Confirmer asks the user to approve a destructive action. Replaces the
// source's blocking window.confirm so workflows stay testable.
type Confirmer interface {
	Confirm(prompt string) bool
}

// Notifier surfaces non-blocking notifications (toast-style). Replaces the
// source's alert() for delete failures.
type Notifier interface {
	Notify(message string)
}
