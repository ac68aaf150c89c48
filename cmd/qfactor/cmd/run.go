package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Jayaudaykmar26589/quantum-factorization-shors-algorithm/internal/common"
	"github.com/Jayaudaykmar26589/quantum-factorization-shors-algorithm/internal/qfactor"
	"github.com/Jayaudaykmar26589/quantum-factorization-shors-algorithm/pkg/backend"
)

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the factorization challenge over the semiprime table",
		Long: `Sweeps the challenge table of semiprimes starting at the given bit size,
attempting to factor each entry under the configured qubit budget.
Partial results are printed even when the budget is exhausted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			common.ConfigureLogging()
			app := qfactor.New()
			app.Params = &qfactor.Params{
				StartBit:               viper.GetInt("startBit"),
				QubitBudget:            viper.GetInt("qubitBudget"),
				MaxBases:               viper.GetUint64("maxBases"),
				MaxClassicalIterations: viper.GetUint64("maxClassicalIterations"),
				TablePath:              viper.GetString("table"),
				Poll: backend.PollConfig{
					Interval: viper.GetDuration("pollInterval"),
					Timeout:  viper.GetDuration("pollTimeout"),
				},
				ConnectionDetails: backend.ExtractCommandlineConnectionDetails(),
			}
			return app.RunChallenge(context.Background())
		},
	}

	cmd.Flags().Int("startBit", 8, "smallest semiprime bit size to attempt")
	cmd.Flags().Int("qubitBudget", 200, "maximum circuit width in qubits")
	cmd.Flags().Uint64("maxBases", 16, "maximum coprime witness bases per semiprime (0 tries all)")
	cmd.Flags().Uint64("maxClassicalIterations", 1<<20, "bound on the classical order search per base")
	cmd.Flags().String("table", "", "path to a YAML challenge table (default embedded table)")
	cmd.Flags().Duration("pollInterval", 100*time.Millisecond, "delay between job polls")
	cmd.Flags().Duration("pollTimeout", 30*time.Second, "per-job polling budget")
	for _, flag := range []string{"startBit", "qubitBudget", "maxBases", "maxClassicalIterations", "table", "pollInterval", "pollTimeout"} {
		_ = viper.BindPFlag(flag, cmd.Flags().Lookup(flag))
	}
	return cmd
}
