// Package main implements the mazesolve CLI: load a text maze, search it
// depth-first or breadth-first, and print or draw the result.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/internal/config"
	"github.com/katalvlaran/labyrinth/internal/logging"
	"github.com/katalvlaran/labyrinth/internal/metrics"
	"github.com/katalvlaran/labyrinth/mazefile"
	"github.com/katalvlaran/labyrinth/render"
	"github.com/katalvlaran/labyrinth/search"
)

// version information
var version = "dev"

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

// solveFlags holds flag values that override the loaded configuration.
type solveFlags struct {
	configPath   string
	frontier     string
	showExplored bool
	color        bool
	imagePath    string
	metricsFile  string
	logLevel     string
	logFormat    string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "mazesolve",
		Short: "Solve text mazes with depth-first or breadth-first search",
		Long: `mazesolve reads a maze where '#' is a wall, 'A' the start and 'B' the goal,
searches it with a stack (depth-first) or queue (breadth-first) frontier,
and prints the solution.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.AddCommand(newSolveCmd(stdout, stderr))
	root.AddCommand(newValidateCmd(stdout))
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the mazesolve version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	})

	return root
}

func newSolveCmd(stdout, stderr io.Writer) *cobra.Command {
	var f solveFlags
	cmd := &cobra.Command{
		Use:   "solve <maze.txt>",
		Short: "Search a maze and print the solution",
		Long: `Search a maze and print the solution.

Examples:
  # Breadth-first (shortest path)
  mazesolve solve maze1.txt

  # Depth-first, marking explored cells, with a PNG
  mazesolve solve maze2.txt --frontier stack --show-explored --image maze.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				fmt.Fprintln(stderr, "error:", err)
				return err
			}
			err = runSolve(cfg, args[0], stdout, stderr)
			if err != nil {
				fmt.Fprintln(stderr, "error:", err)
			}
			return err
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.configPath, "config", "", "YAML config file")
	fl.StringVar(&f.frontier, "frontier", "queue", "frontier ordering: stack|dfs|queue|bfs")
	fl.BoolVar(&f.showExplored, "show-explored", false, "mark explored cells")
	fl.BoolVar(&f.color, "color", false, "style text output")
	fl.StringVar(&f.imagePath, "image", "", "write a PNG of the result to this path")
	fl.StringVar(&f.metricsFile, "metrics-file", "", "write prometheus metrics to this textfile")
	fl.StringVar(&f.logLevel, "log-level", "warn", "log level")
	fl.StringVar(&f.logFormat, "log-format", "console", "log format: console|json")

	return cmd
}

// loadConfig loads file/env configuration and applies explicitly set flags
// before validating.
func loadConfig(cmd *cobra.Command, f solveFlags) (*config.Config, error) {
	fl := cmd.Flags()
	return config.Load(f.configPath, func(cfg *config.Config) {
		if fl.Changed("frontier") {
			cfg.Search.Frontier = f.frontier
		}
		if fl.Changed("show-explored") {
			cfg.Render.ShowExplored = f.showExplored
		}
		if fl.Changed("color") {
			cfg.Render.Color = f.color
		}
		if fl.Changed("image") {
			cfg.Render.ImagePath = f.imagePath
		}
		if fl.Changed("metrics-file") {
			cfg.Metrics.Textfile = f.metricsFile
		}
		if fl.Changed("log-level") {
			cfg.Log.Level = f.logLevel
		}
		if fl.Changed("log-format") {
			cfg.Log.Format = f.logFormat
		}
	})
}

// runSolve loads, searches and renders one maze.
func runSolve(cfg *config.Config, path string, stdout, stderr io.Writer) error {
	log, err := logging.New(cfg.Log, stderr)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	kind, err := cfg.FrontierKind()
	if err != nil {
		return err
	}
	log = log.With(zap.String("run_id", uuid.NewString()), zap.String("maze", path))

	g, err := mazefile.Load(path)
	if err != nil {
		log.Error("maze rejected", zap.Error(err))
		return err
	}
	log.Info("maze loaded", zap.Int("height", g.Height()), zap.Int("width", g.Width()))

	m := metrics.New()
	began := time.Now()
	res, solveErr := search.Solve(g,
		search.WithFrontier(kind),
		search.WithLogger(log),
		search.WithOnExpand(func(c grid.Coordinate, n int) {
			if ce := log.Check(zap.DebugLevel, "state expanded"); ce != nil {
				ce.Write(zap.Stringer("state", c), zap.Int("count", n))
			}
		}),
	)
	m.Observe(kind.String(), res, solveErr, time.Since(began))

	if solveErr != nil && !errors.Is(solveErr, search.ErrNoSolution) {
		log.Error("search failed", zap.Error(solveErr))
		return solveErr
	}

	fmt.Fprintln(stdout, "States Explored:", res.ExpandedCount)
	if res.Solved {
		fmt.Fprintln(stdout, "Solution:")
		log.Info("maze solved", zap.Int("moves", res.Len()), zap.Int("expanded", res.ExpandedCount))
	} else {
		fmt.Fprintln(stdout, "No solution.")
		log.Warn("maze has no solution", zap.Int("expanded", res.ExpandedCount))
	}

	// an unsolved maze is drawn bare, explored cells optional
	shown := res
	if !res.Solved && !cfg.Render.ShowExplored {
		shown = nil
	}
	if err := render.Text(stdout, g, shown, render.TextOptions{
		ShowExplored: cfg.Render.ShowExplored,
		Color:        cfg.Render.Color,
	}); err != nil {
		return err
	}

	if cfg.Render.ImagePath != "" {
		if err := writeImage(cfg, g, shown); err != nil {
			return err
		}
		log.Info("image written", zap.String("path", cfg.Render.ImagePath))
	}

	if cfg.Metrics.Textfile != "" {
		if err := m.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	return solveErr
}

// writeImage renders the PNG to cfg.Render.ImagePath.
func writeImage(cfg *config.Config, g *grid.Grid, res *search.Result) (err error) {
	out, err := os.Create(cfg.Render.ImagePath)
	if err != nil {
		return fmt.Errorf("create image: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close image: %w", cerr)
		}
	}()

	return render.Image(out, g, res, render.ImageOptions{
		CellSize:     cfg.Render.CellSize,
		CellBorder:   cfg.Render.CellBorder,
		ShowExplored: cfg.Render.ShowExplored,
	})
}

func newValidateCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <maze.txt>",
		Short: "Check that a maze has exactly one start and one goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := mazefile.Load(args[0])
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "error:", err)
				return err
			}
			fmt.Fprintf(stdout, "%s: %dx%d, %d open cells, start %v, goal %v\n",
				args[0], g.Height(), g.Width(), g.OpenCells(), g.Start(), g.Goal())
			return nil
		},
	}
}
