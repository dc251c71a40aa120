package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

type CompaniesCmd struct {
	profilePath string
	output      io.Writer
}

func NewCompaniesCmd(output io.Writer) *cobra.Command {
	cc := &CompaniesCmd{output: output}
	cmd := &cobra.Command{
		Use:   "companies",
		Short: "List companies available for QBR generation",
		RunE:  cc.run,
	}

	cmd.Flags().StringVar(&cc.profilePath, "profile", "", "Path to the configuration profile")
	_ = cmd.MarkFlagRequired("profile")

	return cmd
}

func (cc *CompaniesCmd) run(cmd *cobra.Command, args []string) error {
	sess, err := openSession(cc.profilePath)
	if err != nil {
		return err
	}
	defer sess.Close()

	companies, err := sess.store.ListCompanies(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list companies: %w", err)
	}

	if len(companies) == 0 {
		fmt.Fprintln(cc.output, "No companies found")
		return nil
	}
	for _, name := range companies {
		fmt.Fprintln(cc.output, name)
	}
	return nil
}
