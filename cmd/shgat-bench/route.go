package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	routeIntentPath string
	routeContext    []string
	routeSource     string
	routeTarget     string
)

var routeCmd = &cobra.Command{
	Use:   "route",
	Short: "Suggest a capability DAG, or find the shortest hyperpath between two nodes",
	RunE:  runRoute,
}

func init() {
	routeCmd.Flags().StringVar(&routeIntentPath, "intent", "", "path to a JSON array of floats (suggestDag mode)")
	routeCmd.Flags().StringSliceVar(&routeContext, "context", nil, "context tool ids recently used")
	routeCmd.Flags().StringVar(&routeSource, "source", "", "source node id (hyperpath mode)")
	routeCmd.Flags().StringVar(&routeTarget, "target", "", "target node id (hyperpath mode)")
}

func runRoute(cmd *cobra.Command, _ []string) error {
	e, err := buildEngine()
	if err != nil {
		return err
	}

	ctx := context.Background()
	if err := e.UpdateHypergraphFeatures(ctx); err != nil {
		return fmt.Errorf("runRoute: %w", err)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")

	if routeSource != "" && routeTarget != "" {
		result, err := e.FindShortestHyperpath(ctx, routeSource, routeTarget)
		if err != nil {
			return fmt.Errorf("runRoute: %w", err)
		}
		return enc.Encode(result)
	}

	if routeIntentPath == "" {
		return fmt.Errorf("runRoute: either --source/--target or --intent must be given")
	}

	intent, err := loadIntentEmbedding(routeIntentPath)
	if err != nil {
		return err
	}

	result, err := e.SuggestDag(ctx, intent, routeContext)
	if err != nil {
		return fmt.Errorf("runRoute: %w", err)
	}

	return enc.Encode(result)
}
