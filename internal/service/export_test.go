package service

import "context"

// RunScheduled exposes a single scheduled activation to tests.
func (s *Scheduler) RunScheduled(ctx context.Context) {
	s.runOnce(ctx)
}
