package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/de-tools/qbr-atlas/pkg/models/domain"
)

type MetricsCmd struct {
	profilePath string
	output      io.Writer
}

func NewMetricsCmd(output io.Writer) *cobra.Command {
	mc := &MetricsCmd{output: output}
	cmd := &cobra.Command{
		Use:   "metrics <company>",
		Short: "Show a company's current-period account metrics",
		Args:  cobra.ExactArgs(1),
		RunE:  mc.run,
	}

	cmd.Flags().StringVar(&mc.profilePath, "profile", "", "Path to the configuration profile")
	_ = cmd.MarkFlagRequired("profile")

	return cmd
}

func (mc *MetricsCmd) run(cmd *cobra.Command, args []string) error {
	sess, err := openSession(mc.profilePath)
	if err != nil {
		return err
	}
	defer sess.Close()

	metrics, err := sess.pipeline.FetchMetrics(cmd.Context(), args[0])
	if errors.Is(err, domain.ErrCompanyNotFound) {
		fmt.Fprintf(mc.output, "No metrics found for %s\n", args[0])
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to fetch metrics: %w", err)
	}

	fmt.Fprintf(mc.output, "%s (%s %d)\n", metrics.CompanyName, metrics.Quarter, metrics.Year)
	fmt.Fprintf(mc.output, "  Health Score:        %.1f\n", metrics.HealthScore)
	fmt.Fprintf(mc.output, "  Contract Value:      $%.2f\n", metrics.ContractValue)
	fmt.Fprintf(mc.output, "  CSAT Score:          %.1f\n", metrics.CSATScore)
	fmt.Fprintf(mc.output, "  Active Users:        %d\n", metrics.ActiveUsers)
	fmt.Fprintf(mc.output, "  Feature Adoption:    %.0f%%\n", metrics.FeatureAdoptionRate*100)
	fmt.Fprintf(mc.output, "  Ticket Volume:       %d\n", metrics.TicketVolume)
	fmt.Fprintf(mc.output, "  Renewal Probability: %.0f%%\n", metrics.RenewalProbability)
	return nil
}
