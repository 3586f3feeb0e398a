package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/guptarohit/asciigraph"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/playback"
	"github.com/san-kum/sortviz/internal/replay"
	"github.com/san-kum/sortviz/internal/step"
	"github.com/san-kum/sortviz/internal/trace"
	"github.com/san-kum/sortviz/internal/tui"
)

var (
	configFile string
	dataDir    string
	input      string
	seed       int64
	fps        int
	saveRun    bool
	csvPath    string
	jsonOut    bool
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sortviz",
		Short: "interactive step-by-step sorting algorithm visualizer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			app := tui.NewMenuModel(cfg, algo.Default())
			_, err = tea.NewProgram(app, tea.WithAltScreen()).Run()
			return err
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "data directory (overrides config)")

	runCmd := &cobra.Command{
		Use:   "run [algorithm]",
		Short: "run an algorithm headless and print a trace summary",
		Args:  cobra.ExactArgs(1),
		RunE:  runAlgorithm,
	}
	runCmd.Flags().StringVar(&input, "input", "", "comma-separated integers (empty randomizes)")
	runCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	runCmd.Flags().BoolVar(&saveRun, "save", false, "persist the run to the data directory")
	runCmd.Flags().StringVar(&csvPath, "csv", "", "write the step trace as CSV to this path")
	runCmd.Flags().BoolVar(&jsonOut, "json", false, "write the full run as JSON to stdout")
	runCmd.Flags().BoolVar(&verbose, "verbose", false, "narrate every step")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list algorithms and their properties",
		RunE:  listAlgorithms,
	}

	listRunsCmd := &cobra.Command{
		Use:   "list-runs",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "print a saved run's step trace",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [algorithm]",
		Short: "plot the array before and after sorting",
		Args:  cobra.ExactArgs(1),
		RunE:  plotAlgorithm,
	}
	plotCmd.Flags().StringVar(&input, "input", "", "comma-separated integers (empty randomizes)")
	plotCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")

	tuiCmd := &cobra.Command{
		Use:   "tui [algorithm]",
		Short: "open the live playback view for one algorithm",
		Args:  cobra.ExactArgs(1),
		RunE:  runTUI,
	}
	tuiCmd.Flags().StringVar(&input, "input", "", "comma-separated integers (empty randomizes)")
	tuiCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	tuiCmd.Flags().IntVar(&fps, "fps", 0, "playback rate (clamped to configured bounds)")

	rootCmd.AddCommand(runCmd, listCmd, listRunsCmd, exportCmd, plotCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	return cfg, nil
}

// resolveInput parses --input or randomizes via a throwaway controller so
// headless commands share the interactive path's bounds and distribution.
func resolveInput(cfg *config.Config, reg *algo.Registry, algorithm string) ([]int, error) {
	arr, err := playback.ParseInput(input, cfg.MaxN)
	if err != nil {
		return nil, err
	}
	if len(arr) > 0 {
		return arr, nil
	}
	ctrl, err := playback.NewController(cfg, reg, algorithm, seed)
	if err != nil {
		return nil, err
	}
	if err := ctrl.Randomize(); err != nil {
		return nil, err
	}
	return ctrl.Array(), nil
}

func runAlgorithm(cmd *cobra.Command, args []string) error {
	name := args[0]
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	reg := algo.Default()
	producer, err := reg.Get(name)
	if err != nil {
		return err
	}
	info, err := reg.Info(name)
	if err != nil {
		return err
	}
	arr, err := resolveInput(cfg, reg, name)
	if err != nil {
		return err
	}

	start := time.Now()
	steps, sorted, counters, err := playback.Record(producer, arr)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if verbose {
		live := append([]int(nil), arr...)
		var c step.Counters
		for i, s := range steps {
			fmt.Printf("%4d  %s\n", i, playback.Narrate(live, s))
			if err := replay.Apply(live, &c, s); err != nil {
				return err
			}
		}
	}

	bold := color.New(color.Bold)
	bold.Printf("%s on n=%d\n", info.Name, len(arr))
	fmt.Printf("steps:       %s\n", humanize.Comma(int64(len(steps))))
	fmt.Printf("comparisons: %s\n", humanize.Comma(int64(counters.Comparisons)))
	fmt.Printf("swaps:       %s\n", humanize.Comma(int64(counters.Swaps)))
	fmt.Printf("elapsed:     %v\n", elapsed)
	color.Green("sorted: %v", sorted)

	if csvPath != "" {
		f, err := os.Create(csvPath)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := trace.WriteCSV(f, steps); err != nil {
			return err
		}
		fmt.Printf("wrote %s steps to %s\n", humanize.Comma(int64(len(steps))), csvPath)
	}
	if jsonOut {
		if err := trace.ExportJSON(os.Stdout, info, arr, sorted, counters, steps); err != nil {
			return err
		}
	}
	if saveRun {
		store := trace.NewStore(cfg.DataDir)
		if err := store.Init(); err != nil {
			return err
		}
		runID, err := store.Save(name, seed, arr, sorted, counters, steps)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}
	return nil
}

func listAlgorithms(cmd *cobra.Command, args []string) error {
	reg := algo.Default()
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"name", "stable", "in-place", "comparison", "best", "avg", "worst"})
	for _, name := range reg.Names() {
		info, err := reg.Info(name)
		if err != nil {
			return err
		}
		t.AppendRow(table.Row{
			info.Name, info.Stable, info.InPlace, info.Comparison,
			info.Complexity.Best, info.Complexity.Avg, info.Complexity.Worst,
		})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	runs, err := trace.NewStore(cfg.DataDir).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no saved runs")
		return nil
	}
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"id", "algorithm", "n", "steps", "comparisons", "swaps", "when"})
	for _, run := range runs {
		t.AppendRow(table.Row{
			run.ID, run.Algorithm, run.N,
			humanize.Comma(int64(run.Steps)),
			humanize.Comma(int64(run.Comparisons)),
			humanize.Comma(int64(run.Swaps)),
			humanize.Time(run.Timestamp),
		})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store := trace.NewStore(cfg.DataDir)
	meta, err := store.Load(args[0])
	if err != nil {
		return err
	}
	data, err := os.ReadFile(store.StepsPath(meta.ID))
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}

func plotAlgorithm(cmd *cobra.Command, args []string) error {
	name := args[0]
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	reg := algo.Default()
	producer, err := reg.Get(name)
	if err != nil {
		return err
	}
	arr, err := resolveInput(cfg, reg, name)
	if err != nil {
		return err
	}
	_, sorted, _, err := playback.Record(producer, arr)
	if err != nil {
		return err
	}

	fmt.Println("input:")
	fmt.Println(asciigraph.Plot(toFloats(arr), asciigraph.Height(10), asciigraph.Width(70)))
	fmt.Println()
	fmt.Println("sorted:")
	fmt.Println(asciigraph.Plot(toFloats(sorted), asciigraph.Height(10), asciigraph.Width(70)))
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	reg := algo.Default()
	ctrl, err := playback.NewController(cfg, reg, args[0], seed)
	if err != nil {
		return err
	}
	if fps > 0 {
		ctrl.SetRate(fps)
	}
	if strings.TrimSpace(input) != "" {
		arr, err := playback.ParseInput(input, cfg.MaxN)
		if err != nil {
			return err
		}
		if err := ctrl.SetArray(arr); err != nil {
			return err
		}
	}
	_, err = tea.NewProgram(tui.NewLiveModel(ctrl), tea.WithAltScreen()).Run()
	return err
}

func toFloats(arr []int) []float64 {
	out := make([]float64, len(arr))
	for i, v := range arr {
		out[i] = float64(v)
	}
	return out
}
