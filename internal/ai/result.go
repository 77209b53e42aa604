package ai

// State classifies the outcome of a generation attempt. The adapter
// never returns an error to the assembly step; failures are data.
type State int

const (
	// Generated carries usable prose in Result.Text.
	Generated State = iota
	// Unavailable means no backend is configured; the caller must use
	// deterministic rendering.
	Unavailable
	// Failed means the backend was tried and errored or timed out.
	Failed
)

func (s State) String() string {
	switch s {
	case Generated:
		return "generated"
	case Unavailable:
		return "unavailable"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is the explicit outcome of one generation attempt.
type Result struct {
	State State
	Text  string
	Err   error
}

// Usable reports whether the result carries generated text.
func (r Result) Usable() bool {
	return r.State == Generated && r.Text != ""
}
