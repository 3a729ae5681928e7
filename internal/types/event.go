package types

type (
	// Action identifies the filesystem mutation an Event reports.
	Action int

	// Event is emitted once per action performed by a copy or delete.
	// ActionEnter and ActionSkip report traversal progress rather than a
	// mutation. Target is only set for copies.
	Event struct {
		Action Action `json:"action"`
		Path   string `json:"path"`
		Target string `json:"target,omitempty"`
	}

	// Observer receives progress events. Observers are not part of the
	// result contract and must not fail the operation.
	Observer interface {
		Observe(Event)
	}

	// ObserverFunc adapts a function to the Observer interface.
	ObserverFunc func(Event)
)

const (
	ActionMkdir Action = iota
	ActionCopy
	ActionCopyTree
	ActionDelete
	ActionDeleteTree
	ActionPrune
	ActionEnter
	ActionSkip
)

// Discard is an Observer that drops every event.
var Discard Observer = ObserverFunc(func(Event) {})

func (f ObserverFunc) Observe(e Event) { f(e) }

func (a Action) String() string {
	switch a {
	case ActionMkdir:
		return "mkdir"
	case ActionCopy:
		return "copy"
	case ActionCopyTree:
		return "copy-tree"
	case ActionDelete:
		return "delete"
	case ActionDeleteTree:
		return "delete-tree"
	case ActionPrune:
		return "prune"
	case ActionEnter:
		return "enter"
	case ActionSkip:
		return "skip"
	default:
		return "unknown"
	}
}

// Message renders the event as a human-readable progress line.
func (e Event) Message() string {
	switch e.Action {
	case ActionMkdir:
		return "Created directory: " + e.Path
	case ActionCopy:
		return "Copied: " + e.Path + " -> " + e.Target
	case ActionCopyTree:
		return "Copied entire directory: " + e.Path + " -> " + e.Target
	case ActionDelete:
		return "Deleted: " + e.Path
	case ActionDeleteTree:
		return "Deleted directory: " + e.Path
	case ActionPrune:
		return "Deleted empty directory: " + e.Path
	case ActionEnter:
		return "Entering directory: " + e.Path
	case ActionSkip:
		return "Skipped: " + e.Path
	default:
		return e.Path
	}
}
