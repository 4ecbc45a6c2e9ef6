package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dd0wney/cluso-graphanalytics/pkg/config"
	"github.com/dd0wney/cluso-graphanalytics/pkg/logging"
)

var (
	configPath string
	logLevel   string

	cfg    *config.Config
	logger logging.Logger

	rootCmd = &cobra.Command{
		Use:           "graph-analytics",
		Short:         "Run graph analyses over in-memory graphs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if logLevel != "" {
				loaded.Logging.Level = logLevel
			}
			l, err := newLogger(loaded.Logging, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			cfg, logger = loaded, l
			logging.SetDefaultLogger(l)
			return nil
		},
	}

	kindsCmd = &cobra.Command{
		Use:   "kinds",
		Short: "List the supported analysis kinds",
		Args:  cobra.NoArgs,
		RunE:  runKinds,
	}

	benchCmd = &cobra.Command{
		Use:   "bench",
		Short: "Benchmark analyses on a synthetic random graph",
		Args:  cobra.NoArgs,
		RunE:  runBench,
	}

	analyzeCmd = &cobra.Command{
		Use:   "analyze [graph file]",
		Short: "Run one analysis over a JSON or YAML graph file and print the result",
		Args:  cobra.ExactArgs(1),
		RunE:  runAnalyze,
	}
)

// Bench flags
var (
	benchNodes    int
	benchEdges    int
	benchDirected bool
	benchSeed     uint64
	benchKinds    []string
	benchMetrics  bool
)

// Analyze flags
var (
	analyzeType    string
	analyzeSource  string
	analyzeTarget  string
	analyzeK       int
	analyzeDamping float64
	analyzeMaxIter int
	analyzeAlpha   float64
	analyzeCompact bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override the configured log level (debug, info, warn, error)")

	rootCmd.AddCommand(kindsCmd)

	rootCmd.AddCommand(benchCmd)
	benchCmd.Flags().IntVar(&benchNodes, "nodes", 1000, "Number of nodes to create")
	benchCmd.Flags().IntVar(&benchEdges, "edges", 3000, "Number of edges to create")
	benchCmd.Flags().BoolVar(&benchDirected, "directed", false, "Create a directed graph")
	benchCmd.Flags().Uint64Var(&benchSeed, "seed", 42, "Random seed for the synthetic graph")
	benchCmd.Flags().StringSliceVar(&benchKinds, "kinds", defaultBenchKinds,
		"Analysis types to run (see 'kinds')")
	benchCmd.Flags().BoolVar(&benchMetrics, "metrics", false, "Print collected metrics after the run")

	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVarP(&analyzeType, "type", "t", "NetworkSummary", "Analysis type")
	analyzeCmd.Flags().StringVar(&analyzeSource, "source", "", "Source node for path and flow analyses")
	analyzeCmd.Flags().StringVar(&analyzeTarget, "target", "", "Target or sink node")
	analyzeCmd.Flags().IntVar(&analyzeK, "k", 0, "k for KCore, SpectralClustering and EdgeBetweennessClustering")
	analyzeCmd.Flags().Float64Var(&analyzeDamping, "damping", 0, "PageRank damping factor (0 uses the configured default)")
	analyzeCmd.Flags().IntVar(&analyzeMaxIter, "max-iterations", 0, "PageRank iteration cap (0 uses the configured default)")
	analyzeCmd.Flags().Float64Var(&analyzeAlpha, "alpha", 0, "Katz attenuation (0 uses the configured default)")
	analyzeCmd.Flags().BoolVar(&analyzeCompact, "compact", false, "Print the result without indentation")
}

func newLogger(lc config.LoggingConfig, w io.Writer) (logging.Logger, error) {
	level := logging.ParseLevel(lc.Level)
	if lc.Format == "zap" {
		zl, err := logging.NewProductionZapLogger(level)
		if err != nil {
			return nil, fmt.Errorf("create zap logger: %w", err)
		}
		return zl, nil
	}
	return logging.NewJSONLogger(w, level), nil
}
