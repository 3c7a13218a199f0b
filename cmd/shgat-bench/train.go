package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/shgat/routing"
)

var (
	trainEpochs    int
	trainBatchSize int
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Record the fixture's outcomes and run a training pass over them",
	RunE:  runTrain,
}

func init() {
	trainCmd.Flags().IntVar(&trainEpochs, "epochs", 10, "number of training epochs")
	trainCmd.Flags().IntVar(&trainBatchSize, "batch-size", 8, "mini-batch size")
}

func runTrain(cmd *cobra.Command, _ []string) error {
	e, err := buildEngine()
	if err != nil {
		return err
	}

	f, err := loadFixture(fixturePath)
	if err != nil {
		return err
	}

	if len(f.Outcomes) == 0 {
		return fmt.Errorf("runTrain: fixture %q has no outcomes to train on", fixturePath)
	}

	for _, o := range f.Outcomes {
		err := e.RecordOutcome(routing.Outcome{
			CapabilityID:    o.CapabilityID,
			IntentEmbedding: o.IntentEmbedding,
			ContextTools:    o.ContextTools,
			Success:         o.Success,
			DurationMs:      o.DurationMs,
		})
		if err != nil {
			return fmt.Errorf("runTrain: recording outcome for %q: %w", o.CapabilityID, err)
		}
	}

	onEpoch := func(epoch int, loss, accuracy float64) {
		fmt.Fprintf(cmd.ErrOrStderr(), "epoch=%d loss=%.6f accuracy=%.4f\n", epoch, loss, accuracy)
	}

	result, err := e.Train(trainEpochs, trainBatchSize, onEpoch)
	if err != nil {
		return fmt.Errorf("runTrain: %w", err)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")

	return enc.Encode(result)
}
