package terminal

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/de-tools/qbr-atlas/pkg/runtime/terminal/commands"
)

// CLI represents the command-line interface
type CLI struct {
	rootCmd *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Output io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{}
	cli.rootCmd = cli.newRootCmd(opts.Output)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd(output io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "qbr",
		Short: "Quarterly business review generator",
	}

	cmd.AddCommand(commands.NewCompaniesCmd(output))
	cmd.AddCommand(commands.NewMetricsCmd(output))
	cmd.AddCommand(commands.NewGenerateCmd(output))
	cmd.AddCommand(commands.NewSearchCmd(output))
	cmd.AddCommand(commands.NewSeedCmd(output))

	return cmd
}
