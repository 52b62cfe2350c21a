package watch

import (
	"github.com/matrun/matrun/internal/engine"
	"github.com/matrun/matrun/internal/report"
)

// progressMsg carries one engine event into the update loop.
type progressMsg engine.Event

// runDoneMsg is sent when the whole matrix has finished.
type runDoneMsg struct {
	run *report.MatrixRun
}
