package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/de-tools/qbr-atlas/pkg/services/datagen"
)

type SeedCmd struct {
	records int
	seed    int64
	outPath string
	output  io.Writer
}

func NewSeedCmd(output io.Writer) *cobra.Command {
	sc := &SeedCmd{output: output}
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate a synthetic QBR demo dataset (CSV)",
		RunE:  sc.run,
	}

	cmd.Flags().IntVar(&sc.records, "records", 750, "Number of synthetic records")
	cmd.Flags().Int64Var(&sc.seed, "seed", 42, "Random seed")
	cmd.Flags().StringVar(&sc.outPath, "out", "qbr_sample_data.csv", "Output CSV path")

	return cmd
}

func (sc *SeedCmd) run(cmd *cobra.Command, args []string) error {
	records := datagen.NewGenerator(sc.records, sc.seed).Generate()

	f, err := os.Create(sc.outPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := datagen.WriteCSV(f, records); err != nil {
		return fmt.Errorf("failed to write dataset: %w", err)
	}

	fmt.Fprintf(sc.output, "Wrote %d records to %s\n", len(records), sc.outPath)
	return nil
}
