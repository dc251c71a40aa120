package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/de-tools/qbr-atlas/pkg/models/domain"
	"github.com/de-tools/qbr-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/qbr-atlas/pkg/services/report"
)

type GenerateCmd struct {
	profilePath string
	template    string
	view        string
	model       string
	chunks      int
	useHistory  bool
	outDir      string
	output      io.Writer
}

func NewGenerateCmd(output io.Writer) *cobra.Command {
	gc := &GenerateCmd{output: output}
	cmd := &cobra.Command{
		Use:   "generate <company>",
		Short: "Generate a QBR for a company",
		Args:  cobra.ExactArgs(1),
		RunE:  gc.run,
	}

	cmd.Flags().StringVar(&gc.profilePath, "profile", "", "Path to the configuration profile")
	cmd.Flags().StringVar(&gc.template, "template", string(domain.TemplateStandard), "QBR template")
	cmd.Flags().StringVar(&gc.view, "view", string(domain.ViewExecutive), "Audience view")
	cmd.Flags().StringVar(&gc.model, "model", "claude-3-5-sonnet", "Completion model")
	cmd.Flags().IntVar(&gc.chunks, "chunks", 4, "Number of historical context chunks")
	cmd.Flags().BoolVar(&gc.useHistory, "history", false, "Include historical context from similar QBRs")
	cmd.Flags().StringVar(&gc.outDir, "out", "", "Directory to export the report to (markdown)")

	_ = cmd.MarkFlagRequired("profile")

	return cmd
}

func (gc *GenerateCmd) run(cmd *cobra.Command, args []string) error {
	sess, err := openSession(gc.profilePath)
	if err != nil {
		return err
	}
	defer sess.Close()

	outcome := sess.pipeline.Generate(cmd.Context(), domain.ReportRequest{
		Company:    args[0],
		Template:   domain.TemplateKind(gc.template),
		View:       domain.AudienceView(gc.view),
		Model:      gc.model,
		ChunkCount: gc.chunks,
		UseHistory: gc.useHistory,
	})

	switch outcome.Kind {
	case report.OutcomeSuccess:
	case report.OutcomeNotFound:
		fmt.Fprintf(gc.output, "No metrics found for %s\n", args[0])
		return nil
	default:
		return fmt.Errorf("%s", outcome.Message)
	}

	if err := export.NewReporter(gc.output).Handle(outcome.Report); err != nil {
		return err
	}

	if gc.outDir != "" {
		path := filepath.Join(gc.outDir, report.ExportFilename(outcome.Report.Company, outcome.Report.CreatedAt))
		if err := os.WriteFile(path, []byte(outcome.Report.Content), 0o644); err != nil {
			return fmt.Errorf("failed to export report: %w", err)
		}
		fmt.Fprintf(gc.output, "\nExported to %s\n", path)
	}
	return nil
}
