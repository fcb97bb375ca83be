package toast

// LifecycleState is the widget's position in its one-way progression
type LifecycleState int

const (
	Created LifecycleState = iota
	Presenting
	Visible
	Dismissing
	Removed
)

// String returns the string representation of the state
func (s LifecycleState) String() string {
	switch s {
	case Created:
		return "created"
	case Presenting:
		return "presenting"
	case Visible:
		return "visible"
	case Dismissing:
		return "dismissing"
	case Removed:
		return "removed"
	default:
		return "unknown"
	}
}

// Event is an input event delivered by the host while the widget is attached
type Event int

const (
	// EventSwipeDown asks the toast to leave
	EventSwipeDown Event = iota
	// EventTapAction presses the action button
	EventTapAction
)

// EarlyDismissPolicy decides what happens to a dismiss request that arrives
// while the enter animation is still running
type EarlyDismissPolicy int

const (
	// EarlyDismissQueue starts the exit as soon as the toast is visible
	EarlyDismissQueue EarlyDismissPolicy = iota
	// EarlyDismissDrop discards the request
	EarlyDismissDrop
)

// String returns the config name of the policy
func (p EarlyDismissPolicy) String() string {
	if p == EarlyDismissDrop {
		return "drop"
	}
	return "queue"
}
