package workers

// Workers aggregates background workers so callers can start and stop
// them as a group.
type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every registered worker.
func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop terminates every registered worker.
func (w *Workers) Stop() {
	for _, worker := range w.workers {
		worker.Stop()
	}
}
