package cli

import (
	"github.com/spf13/cobra"

	"cpusched/internal/core"
	"cpusched/internal/requests"
	"cpusched/internal/schedulers"
)

func newSimulateCmd() *cobra.Command {
	var (
		policyName string
		input      string
		quantum    int
		explain    bool
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run one scheduling policy over a job file",
		Example: `  cpusched simulate -p fcfs -i jobs.csv
  cpusched simulate -p rr -q 3 -i jobs.yaml --explain`,
		RunE: func(cmd *cobra.Command, args []string) error {
			policy, err := schedulers.ParsePolicy(policyName)
			if err != nil {
				return err
			}
			processes, q, err := loadProcesses(cmd, input, quantum)
			if err != nil {
				return err
			}

			timeline, records, err := schedulers.NewSimulator(logger).Run(processes, policy, q)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(w, schedulers.GenerateResponse(policy, q, timeline, records, explain))
			}
			title := policy.Title()
			if policy == schedulers.RoundRobin {
				title = title + " (quantum " + itoa(q) + ")"
			}
			outputTitle(w, title)
			outputGantt(w, timeline)
			outputSchedule(w, records, schedulers.CalculateMetrics(records, timeline))
			if explain {
				outputTrace(w, schedulers.BuildTrace(records, timeline))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&policyName, "policy", "p", "fcfs", "Policy: fcfs, sjf, srtf, rr, priority, priority-preemptive")
	cmd.Flags().StringVarP(&input, "input", "i", "", "Job file (.csv, .yaml, .json)")
	cmd.Flags().IntVarP(&quantum, "quantum", "q", 0, "Round robin time quantum (default from job file or config)")
	cmd.Flags().BoolVar(&explain, "explain", false, "Print the step-by-step event trace")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

// loadProcesses reads and validates the job file. The quantum comes from the
// flag when set, then the file, then the config.
func loadProcesses(cmd *cobra.Command, input string, quantum int) ([]core.ProcessRecord, int, error) {
	request, err := requests.LoadJobs(input)
	if err != nil {
		return nil, 0, err
	}
	processes, err := request.Processes()
	if err != nil {
		return nil, 0, err
	}
	q := request.Quantum(cfg.RoundRobinTimeQuantum)
	if cmd.Flags().Changed("quantum") {
		q = quantum
	}
	logger.Debug("loaded jobs", "file", input, "processes", len(processes), "quantum", q)
	return processes, q, nil
}
