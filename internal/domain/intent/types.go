package intent

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// CanTransitionTo encodes the one-way lifecycle: pending may move to either
// terminal status, terminal statuses never move again. Re-applying the current
// status is allowed so that status updates stay idempotent.
func (s Status) CanTransitionTo(next Status) bool {
	if !next.IsValid() {
		return false
	}
	if s == next {
		return true
	}
	return s == StatusPending
}
