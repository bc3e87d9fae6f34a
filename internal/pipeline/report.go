package pipeline

import "time"

// State names the controller's convergence phase.
type State string

const (
	// StateGrowing means passes are still adding words at the current
	// threshold.
	StateGrowing State = "growing"
	// StateStalled means a full pass added nothing and the set is short.
	StateStalled State = "stalled"
	// StateRelaxing means the threshold was just lowered after a stall.
	StateRelaxing State = "relaxing"
	// StateConverged means the set holds exactly the target cardinality.
	StateConverged State = "converged"
	// StateAborted means the run cannot reach the target.
	StateAborted State = "aborted"
)

// Progress is the per-batch status snapshot delivered to observers.
type Progress struct {
	State     State
	Pass      int
	Threshold float64
	Accepted  int
	Target    int
	Scanned   int
	PoolSize  int
}

// Report summarizes a finished run, successful or not.
type Report struct {
	RunID    string
	State    State
	Accepted int
	Target   int
	// Shortfall is how many words were still missing when the run ended.
	// Zero on convergence.
	Shortfall int
	Passes    int
	// Cycles counts threshold relaxations.
	Cycles int
	// ThresholdHistory records every threshold the run used, in order.
	ThresholdHistory []float64
	Rejected         int
	Consulted        int
	Trimmed          int
	Backfilled       int
	// Synthetic lists generated fallback names, in generation order.
	Synthetic []string
	// Degraded is set when the final list contains synthetic names.
	Degraded bool
	// ChangeLogPath locates the CSV explaining every removal.
	ChangeLogPath string
	Elapsed       time.Duration
}
