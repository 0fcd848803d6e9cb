package schedulers

import (
	"golang.org/x/sync/errgroup"

	"cpusched/internal/core"
)

// Comparison is the outcome of one policy within Compare.
type Comparison struct {
	Policy    Policy
	Timeline  core.Timeline
	Processes []core.ProcessRecord
	Metrics   Metrics
}

// Compare runs every policy over the same processes in parallel. Results are
// returned in Policies order; the first failing policy fails the comparison.
func (s *Simulator) Compare(processes []core.ProcessRecord, quantum int) ([]Comparison, error) {
	results := make([]Comparison, len(Policies))

	var g errgroup.Group
	for i, policy := range Policies {
		i, policy := i, policy
		g.Go(func() error {
			timeline, records, err := s.Run(processes, policy, quantum)
			if err != nil {
				return err
			}
			results[i] = Comparison{
				Policy:    policy,
				Timeline:  timeline,
				Processes: records,
				Metrics:   CalculateMetrics(records, timeline),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
