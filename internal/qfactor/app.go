package qfactor

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/pkg/errors"

	"github.com/Jayaudaykmar26589/quantum-factorization-shors-algorithm/internal/challenge"
	"github.com/Jayaudaykmar26589/quantum-factorization-shors-algorithm/internal/circuit"
	"github.com/Jayaudaykmar26589/quantum-factorization-shors-algorithm/internal/common/util"
	"github.com/Jayaudaykmar26589/quantum-factorization-shors-algorithm/internal/order"
	"github.com/Jayaudaykmar26589/quantum-factorization-shors-algorithm/internal/sweep"
	"github.com/Jayaudaykmar26589/quantum-factorization-shors-algorithm/pkg/backend"
)

type Params struct {
	StartBit               int
	QubitBudget            int
	MaxBases               uint64
	MaxClassicalIterations uint64
	TablePath              string
	Poll                   backend.PollConfig
	ConnectionDetails      *backend.ConnectionDetails
}

// App wires the factorization pipeline together and renders the results
// table. Out is injected so tests can capture output.
type App struct {
	Params *Params
	Out    io.Writer
}

func New() *App {
	return &App{
		Params: &Params{},
		Out:    os.Stdout,
	}
}

// RunChallenge runs the challenge table through the orchestrator and prints
// a results table. Hitting the qubit budget is a normal partial completion,
// not a failure; only configuration errors propagate.
func (a *App) RunChallenge(ctx context.Context) error {
	table, err := a.loadTable()
	if err != nil {
		return err
	}

	details := a.Params.ConnectionDetails
	if details == nil {
		details = &backend.ConnectionDetails{ShotCount: 1024}
	}
	b, err := backend.Connect(details)
	if err != nil {
		return err
	}

	builder := circuit.NewBuilder(a.Params.QubitBudget, &circuit.ApproximateModExp{})
	extractor := order.NewExtractor(a.Params.MaxClassicalIterations)
	controller := sweep.NewController(builder, b, extractor, sweep.Config{
		Shots:    details.ShotCount,
		MaxBases: a.Params.MaxBases,
		Poll:     a.Params.Poll,
	})
	orchestrator := challenge.NewOrchestrator(controller, &util.DefaultClock{})

	results, err := orchestrator.Run(ctx, table, a.Params.StartBit)
	a.printResults(results)
	if err != nil {
		var exceeded *circuit.ResourceExceededError
		if errors.As(err, &exceeded) {
			fmt.Fprintf(a.Out, "\nQubit budget exhausted: %s. Remaining entries skipped.\n", exceeded)
			return nil
		}
		return err
	}
	return nil
}

func (a *App) loadTable() ([]challenge.SemiprimeEntry, error) {
	if a.Params.TablePath == "" {
		return challenge.DefaultTable(), nil
	}
	f, err := os.Open(a.Params.TablePath)
	if err != nil {
		return nil, errors.Wrapf(err, "opening challenge table %s", a.Params.TablePath)
	}
	defer f.Close()
	return challenge.LoadTable(f)
}

func (a *App) printResults(results []challenge.Result) {
	w := util.NewTabbedStringBuilder(1, 0, 2, ' ', tabwriter.Debug)
	w.Writef("BIT SIZE\tN\tFACTORS\tQUBITS\tGATE OPS\tTIME (S)\n")
	for _, r := range results {
		factors := "not found"
		if r.Factors != nil {
			factors = r.Factors.String()
		}
		totalGates := 0
		for _, count := range r.GateTally {
			totalGates += count
		}
		w.Writef("%d\t%s\t%s\t%d\t%d\t%.2f\n",
			r.BitSize, r.Modulus, factors, r.QubitsUsed, totalGates, r.ExecutionTime.Seconds())
	}
	fmt.Fprint(a.Out, w.String())
}
