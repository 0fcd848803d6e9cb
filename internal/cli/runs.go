package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRunsCmd() *cobra.Command {
	var limit, offset int

	cmd := &cobra.Command{
		Use:   "runs [run-id]",
		Short: "List stored runs, or print one run as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			w := cmd.OutOrStdout()
			if len(args) == 1 {
				run, err := st.GetRun(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if run == nil {
					return fmt.Errorf("run %s not found", args[0])
				}
				response := run.Response
				response.RunId = run.ID
				return writeJSON(w, response)
			}

			runs, total, err := st.ListRuns(cmd.Context(), limit, offset)
			if err != nil {
				return err
			}
			outputRuns(w, runs, total)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum runs to list")
	cmd.Flags().IntVar(&offset, "offset", 0, "Runs to skip")
	return cmd
}
