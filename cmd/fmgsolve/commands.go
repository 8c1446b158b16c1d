package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmg/fieldio"
	"github.com/katalvlaran/lvmg/mgplot"
	"github.com/katalvlaran/lvmg/multigrid"
)

// solveFlags holds the raw flag values of the solve command.
type solveFlags struct {
	configPath string
	n          int
	omega      float64
	levels     int
	coarse     int
	vIter      int
	cycles     int
	tol        float64
	monitor    string
	fieldOut   string
	plotOut    string
	profileOut string
}

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "fmgsolve",
		Short:         "1-D Full Multigrid solver for the discrete Poisson problem",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")

	root.AddCommand(newSolveCmd(&logLevel), newShowCmd())

	return root
}

func newLogger(cmd *cobra.Command, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl})), nil
}

func newSolveCmd(logLevel *string) *cobra.Command {
	var fl solveFlags

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Relax a sine-mode initial field with repeated FMG iterations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSolve(cmd, fl, *logLevel)
		},
	}

	f := cmd.Flags()
	f.StringVar(&fl.configPath, "config", "", "YAML config file")
	f.IntVar(&fl.n, "n", multigrid.DefaultN, "finest-grid interval count")
	f.Float64Var(&fl.omega, "omega", multigrid.DefaultOmega, "Jacobi damping factor in (0,2)")
	f.IntVar(&fl.levels, "levels", multigrid.DefaultNLevel, "FMG hierarchy depth (nLevel)")
	f.IntVar(&fl.coarse, "coarse", multigrid.DefaultNLevel, "V-cycle coarsest level (nCoarse)")
	f.IntVar(&fl.vIter, "v-iter", multigrid.DefaultVIter, "V-cycles per FMG level")
	f.IntVar(&fl.cycles, "cycles", multigrid.DefaultNCycle, "outer FMG iterations")
	f.Float64Var(&fl.tol, "tol", 0, "stop once the monitored norm is <= tol (0 disables)")
	f.StringVar(&fl.monitor, "monitor", "field", "history quantity: field or residual")
	f.StringVar(&fl.fieldOut, "field", "", "write the solved field to this file")
	f.StringVar(&fl.plotOut, "plot", "", "write the convergence plot to this file")
	f.StringVar(&fl.profileOut, "profile", "", "write the initial/final profile plot to this file")

	return cmd
}

// applyFlags overrides cfg with every flag the user set explicitly.
func applyFlags(cmd *cobra.Command, fl solveFlags, cfg *runConfig) {
	set := cmd.Flags().Changed
	if set("n") {
		cfg.N = fl.n
	}
	if set("omega") {
		cfg.Omega = fl.omega
	}
	if set("levels") {
		cfg.NLevel = fl.levels
	}
	if set("coarse") {
		cfg.NCoarse = fl.coarse
	}
	if set("v-iter") {
		cfg.VIter = fl.vIter
	}
	if set("cycles") {
		cfg.NCycle = fl.cycles
	}
	if set("tol") {
		cfg.Tolerance = fl.tol
	}
	if set("monitor") {
		cfg.Monitor = fl.monitor
	}
}

func runSolve(cmd *cobra.Command, fl solveFlags, logLevel string) error {
	logger, err := newLogger(cmd, logLevel)
	if err != nil {
		return err
	}

	cfg, err := loadRunConfig(fl.configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, fl, &cfg)

	opts, err := cfg.solverOptions()
	if err != nil {
		return err
	}
	solver, err := multigrid.NewSolver(cfg.Config, append(opts, multigrid.WithLogger(logger))...)
	if err != nil {
		return err
	}

	n := cfg.N
	v0 := multigrid.SineModes(n, cfg.Modes...)
	res, err := solver.Solve(v0, make([]float64, n+1))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "cycles: %d\n", res.Cycles)
	fmt.Fprintf(out, "initial norm: %.6e\n", res.History[0])
	fmt.Fprintf(out, "final norm: %.6e\n", res.History[len(res.History)-1])
	if cfg.Tolerance > 0 {
		fmt.Fprintf(out, "converged: %t\n", res.Converged)
	}

	x := multigrid.GridPoints(n)
	if fl.fieldOut != "" {
		fld, err := fieldio.FromProfile(x, res.Field, 0)
		if err != nil {
			return err
		}
		if err := fieldio.WriteFile(fl.fieldOut, fld); err != nil {
			return err
		}
		logger.Info("field written", slog.String("path", fl.fieldOut))
	}
	if fl.plotOut != "" {
		if err := mgplot.History(res.History, fl.plotOut); err != nil {
			return err
		}
		logger.Info("history plot written", slog.String("path", fl.plotOut))
	}
	if fl.profileOut != "" {
		series := []mgplot.Series{
			{Name: "initial field", Values: v0, Dashed: true},
			{Name: "solution", Values: res.Field},
		}
		if err := mgplot.Profile(x, series, fl.profileOut); err != nil {
			return err
		}
		logger.Info("profile plot written", slog.String("path", fl.profileOut))
	}

	return nil
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <field-file>",
		Short: "Print the header and max |value| of a field file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fld, err := fieldio.ReadFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "nx=%d ny=%d re=%g points=%d max=%.6e\n",
				fld.NX, fld.NY, fld.Re, fld.Points(), multigrid.InfNorm(fld.Values))
			return nil
		},
	}
}
