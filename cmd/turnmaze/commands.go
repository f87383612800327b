package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/turnmaze/config"
	"github.com/katalvlaran/turnmaze/dijkstra"
	"github.com/katalvlaran/turnmaze/gridgraph"
	"github.com/katalvlaran/turnmaze/pathset"
	"github.com/katalvlaran/turnmaze/render"
)

// errNoSolution is returned when the end tile cannot be reached.
var errNoSolution = errors.New("no solution")

// app carries state shared by the subcommands of one invocation.
type app struct {
	cfg    config.Config
	logger *slog.Logger

	// flag values; applied over cfg only when set on the command line
	configPath string
	logLevel   string
	logFormat  string
	output     string
	image      string
	facing     string
	turnCost   int64
	stepCost   int64
	cellPixels int
	printMap   bool
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "turnmaze",
		Short: "Solve mazes where every 90° turn costs extra",
		Long: `turnmaze reads an ASCII maze ('#' wall, '.' floor, 'S' start, 'E' end)
and searches (tile, heading) states: a step costs 1 and a quarter turn 1000.
It prints the cheapest cost and the number of tiles on any cheapest route.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: text or json")
	pf.StringVar(&a.facing, "facing", "", "heading on the start tile (default east)")
	pf.Int64Var(&a.turnCost, "turn-cost", 0, "cost of one 90° turn (default 1000)")
	pf.Int64Var(&a.stepCost, "step-cost", 0, "cost of one step (default 1)")

	root.AddCommand(a.solveCmd(), a.renderCmd())
	return root
}

// setup loads configuration, applies explicit flags and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = a.logFormat
	}
	if flags.Changed("facing") {
		cfg.StartFacing = a.facing
	}
	if flags.Changed("turn-cost") {
		cfg.TurnCost = a.turnCost
	}
	if flags.Changed("step-cost") {
		cfg.StepCost = a.stepCost
	}
	if flags.Changed("output") {
		cfg.Output = a.output
	}
	if flags.Changed("image") {
		cfg.Image = a.image
	}
	if flags.Changed("cell-pixels") {
		cfg.CellPixels = a.cellPixels
	}
	if len(args) > 0 {
		cfg.Input = args[0]
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = newLogger(cmd.ErrOrStderr(), cfg)
	a.logger.Debug("configuration loaded", slog.String("input", cfg.Input), slog.String("config", a.configPath))
	return nil
}

func newLogger(w io.Writer, cfg config.Config) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(cfg.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func (a *app) solveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [map-file]",
		Short: "Print the cheapest cost and the optimal-tile count",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, sum, err := a.solve(cmd.Context(), cmd.InOrStdin())
			out := cmd.OutOrStdout()
			if errors.Is(err, errNoSolution) {
				fmt.Fprintln(out, "no solution")
				return err
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%d\n%d\n", sum.Cost, sum.Tiles)
			if a.printMap {
				fmt.Fprint(out, render.ASCII(g, sum.Cells))
			}
			return a.report(g, sum)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&a.output, "output", "o", "", "also write both answers to this file")
	f.StringVar(&a.image, "image", "", "write a PNG overlay of the optimal tiles")
	f.IntVar(&a.cellPixels, "cell-pixels", 0, "PNG pixels per tile (default 9)")
	f.BoolVar(&a.printMap, "map", false, "print the map with optimal tiles marked 'O'")
	return cmd
}

func (a *app) renderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [map-file]",
		Short: "Draw the optimal tiles over the map",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, sum, err := a.solve(cmd.Context(), cmd.InOrStdin())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), render.ASCII(g, sum.Cells))
			return a.report(g, sum)
		},
	}
	f := cmd.Flags()
	f.StringVar(&a.image, "image", "", "write a PNG overlay of the optimal tiles")
	f.IntVar(&a.cellPixels, "cell-pixels", 0, "PNG pixels per tile (default 9)")
	return cmd
}

// solve reads the configured map and runs the search and the extraction.
func (a *app) solve(ctx context.Context, stdin io.Reader) (*gridgraph.Grid, pathset.Summary, error) {
	g, err := a.readGrid(stdin)
	if err != nil {
		return nil, pathset.Summary{}, err
	}
	w, h := g.Bounds()
	a.logger.Debug("map parsed", slog.Int("width", w), slog.Int("height", h),
		slog.String("start", g.Start().String()), slog.String("end", g.End().String()))

	facing, err := a.cfg.Facing()
	if err != nil {
		return nil, pathset.Summary{}, err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	began := time.Now()
	res, err := dijkstra.Solve(g,
		dijkstra.WithContext(ctx),
		dijkstra.WithStartFacing(facing),
		dijkstra.WithCosts(a.cfg.Costs()),
	)
	if err != nil {
		return nil, pathset.Summary{}, fmt.Errorf("solve: %w", err)
	}
	st := res.Stats()
	a.logger.Debug("search finished",
		slog.Int("settled", st.Settled), slog.Int("pushes", st.Pushes),
		slog.Int("stale", st.Stale), slog.Int("ties", st.Ties),
		slog.Duration("elapsed", time.Since(began)))

	sum, err := pathset.Analyze(res)
	if errors.Is(err, pathset.ErrUnreachable) {
		a.logger.Warn("end tile unreachable",
			slog.Bool("walled_off", !g.Connected(g.Start(), g.End())))
		return g, pathset.Summary{}, errNoSolution
	}
	if err != nil {
		return nil, pathset.Summary{}, err
	}
	a.logger.Info("maze solved", slog.Int64("cost", sum.Cost), slog.Int("tiles", sum.Tiles))
	return g, sum, nil
}

// readGrid parses cfg.Input, or stdin when it is "-".
func (a *app) readGrid(stdin io.Reader) (*gridgraph.Grid, error) {
	if a.cfg.Input == "-" {
		return gridgraph.Parse(stdin)
	}
	f, err := os.Open(a.cfg.Input)
	if err != nil {
		return nil, fmt.Errorf("open map: %w", err)
	}
	defer f.Close()
	return gridgraph.Parse(f)
}

// report writes the optional result file and PNG overlay.
func (a *app) report(g *gridgraph.Grid, sum pathset.Summary) error {
	if a.cfg.Output != "" {
		if err := render.WriteResult(a.cfg.Output, sum); err != nil {
			return err
		}
		a.logger.Info("result written", slog.String("path", a.cfg.Output))
	}
	if a.cfg.Image != "" {
		opts := render.DefaultImageOptions()
		opts.CellPixels = a.cfg.CellPixels
		if err := render.WritePNG(a.cfg.Image, g, sum.Cells, opts); err != nil {
			return err
		}
		a.logger.Info("image written", slog.String("path", a.cfg.Image))
	}
	return nil
}
