package editor

// Level grades a Status for presentation.
type Level int

const (
	// Info is a normal outcome.
	Info Level = iota
	// Warn is a non-fatal refusal: duplicate, nothing under the pointer, edge not found.
	Warn
	// Error is a failed operation; the map is unchanged.
	Error
)

// String returns the lower-case level name.
func (l Level) String() string {
	switch l {
	case Info:
		return "info"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Status is the human-readable result of one editor action.
// Err carries the underlying sentinel for Warn and Error statuses.
type Status struct {
	Level   Level
	Message string
	Err     error
}

func info(msg string) Status {
	return Status{Level: Info, Message: msg}
}

func warn(msg string, err error) Status {
	return Status{Level: Warn, Message: msg, Err: err}
}

func fail(msg string, err error) Status {
	return Status{Level: Error, Message: msg, Err: err}
}

// OK reports whether the action completed without a warning or error.
func (s Status) OK() bool { return s.Level == Info }
