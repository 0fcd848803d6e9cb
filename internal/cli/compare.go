package cli

import (
	"github.com/spf13/cobra"

	"cpusched/internal/responses"
	"cpusched/internal/schedulers"
)

func newCompareCmd() *cobra.Command {
	var (
		input   string
		quantum int
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run every policy over a job file and compare the averages",
		RunE: func(cmd *cobra.Command, args []string) error {
			processes, q, err := loadProcesses(cmd, input, quantum)
			if err != nil {
				return err
			}
			results, err := schedulers.NewSimulator(logger).Compare(processes, q)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if asJSON {
				response := responses.CompareResponse{Results: make([]responses.ScheduleResponse, 0, len(results))}
				for _, res := range results {
					response.Results = append(response.Results,
						schedulers.GenerateResponse(res.Policy, q, res.Timeline, res.Processes, false))
				}
				return writeJSON(w, response)
			}
			outputTitle(w, "Policy comparison (round robin quantum "+itoa(q)+")")
			outputComparison(w, results)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Job file (.csv, .yaml, .json)")
	cmd.Flags().IntVarP(&quantum, "quantum", "q", 0, "Round robin time quantum (default from job file or config)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
