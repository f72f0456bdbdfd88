package models

// QueryState tracks the lifecycle of the current question turn. At most
// one turn is in flight; Pending blocks new submissions.
type QueryState int

const (
	// Idle means no turn is in flight.
	Idle QueryState = iota
	// Pending means a question was submitted and the answer is awaited.
	Pending
	// Succeeded means the last turn produced an answer.
	Succeeded
	// Failed means the last turn ended in a service failure.
	Failed
)

// String returns the lowercase state name.
func (s QueryState) String() string {
	switch s {
	case Pending:
		return "pending"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "idle"
	}
}
