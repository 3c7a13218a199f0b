package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	scoreIntentPath string
	scoreContext    []string
	scoreTarget     string
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score registered capabilities or tools against an intent embedding",
	RunE:  runScore,
}

func init() {
	scoreCmd.Flags().StringVar(&scoreIntentPath, "intent", "", "path to a JSON array of floats (required)")
	scoreCmd.Flags().StringSliceVar(&scoreContext, "context", nil, "context tool ids recently used")
	scoreCmd.Flags().StringVar(&scoreTarget, "target", "capabilities", "what to score: capabilities or tools")
	_ = scoreCmd.MarkFlagRequired("intent")
}

func loadIntentEmbedding(path string) ([]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loadIntentEmbedding: %w", err)
	}

	var v []float64
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("loadIntentEmbedding: %w", err)
	}

	return v, nil
}

func runScore(cmd *cobra.Command, _ []string) error {
	intent, err := loadIntentEmbedding(scoreIntentPath)
	if err != nil {
		return err
	}

	e, err := buildEngine()
	if err != nil {
		return err
	}

	ctx := context.Background()
	if err := e.UpdateHypergraphFeatures(ctx); err != nil {
		return fmt.Errorf("runScore: %w", err)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")

	switch scoreTarget {
	case "tools":
		scores, err := e.ScoreTools(intent, scoreContext)
		if err != nil {
			return fmt.Errorf("runScore: %w", err)
		}
		return enc.Encode(scores)
	default:
		scores, err := e.ScoreCapabilities(ctx, intent, scoreContext)
		if err != nil {
			return fmt.Errorf("runScore: %w", err)
		}
		return enc.Encode(scores)
	}
}
