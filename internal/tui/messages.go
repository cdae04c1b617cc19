package tui

import "github.com/leapstack-labs/sqlpad/internal/executor"

// Messages for async operations

// execDoneMsg is sent when a query execution finishes, successfully or not.
// TabID is the output tab the execution was started for; the tab may have
// been closed in the meantime, in which case the payload is discarded.
type execDoneMsg struct {
	TabID  string
	Result *executor.ResultSet
	Err    error
}
