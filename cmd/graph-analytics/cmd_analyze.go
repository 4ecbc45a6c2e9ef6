package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dd0wney/cluso-graphanalytics/pkg/analysis"
)

func runAnalyze(cmd *cobra.Command, args []string) error {
	gf, err := readGraphFile(args[0])
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	engine := analysis.NewEngine(analysis.WithConfig(cfg), analysis.WithLogger(logger))
	if err := engine.LoadGraphContext(ctx, gf.Nodes, gf.Edges, gf.Directed); err != nil {
		return fmt.Errorf("load graph: %w", err)
	}

	kind := analysis.Kind{
		Type:          analysis.Type(analyzeType),
		Source:        analyzeSource,
		Target:        analyzeTarget,
		Damping:       analyzeDamping,
		MaxIterations: analyzeMaxIter,
		Alpha:         analyzeAlpha,
		K:             analyzeK,
	}
	res, err := engine.Analyze(ctx, kind)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	if !analyzeCompact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(res)
}

func runKinds(cmd *cobra.Command, args []string) error {
	engine := analysis.NewEngine(analysis.WithConfig(cfg), analysis.WithLogger(logger))
	out := cmd.OutOrStdout()
	for _, t := range engine.Kinds() {
		if names := t.ParameterNames(); len(names) > 0 {
			fmt.Fprintf(out, "%s (%s)\n", t, strings.Join(names, ", "))
			continue
		}
		fmt.Fprintln(out, t)
	}
	return nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
