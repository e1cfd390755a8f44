package sitecrawl

// State is the lifecycle state of a crawl.
type State int

// Crawl states. A crawl moves from Idle to Running on start, toggles
// between Running and Paused, and ends in Stopped.
const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateStopped
)

// String returns the lowercase name of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// ProgressFunc receives the number of pages crawled so far.
// It is called once per successfully crawled page.
type ProgressFunc func(count int)

// StatusFunc receives human-readable narration of crawl activity,
// including per-page fetch failures.
type StatusFunc func(message string)
