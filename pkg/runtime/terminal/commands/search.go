package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

type SearchCmd struct {
	profilePath string
	k           int
	model       string
	output      io.Writer
}

func NewSearchCmd(output io.Writer) *cobra.Command {
	sc := &SearchCmd{output: output}
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the historical QBR corpus",
		Args:  cobra.ExactArgs(1),
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.profilePath, "profile", "", "Path to the configuration profile")
	cmd.Flags().IntVar(&sc.k, "k", 3, "Maximum number of results")
	cmd.Flags().StringVar(&sc.model, "model", "claude-3-5-sonnet", "Model for the completion fallback")
	_ = cmd.MarkFlagRequired("profile")

	return cmd
}

func (sc *SearchCmd) run(cmd *cobra.Command, args []string) error {
	sess, err := openSession(sc.profilePath)
	if err != nil {
		return err
	}
	defer sess.Close()

	resp, err := sess.searcher.Search(cmd.Context(), args[0], sc.k, sc.model)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if resp.Answer != "" {
		fmt.Fprintln(sc.output, resp.Answer)
		return nil
	}
	if len(resp.Results) == 0 {
		fmt.Fprintln(sc.output, "No results found")
		return nil
	}
	for _, r := range resp.Results {
		fmt.Fprintf(sc.output, "%s\n  %s\n", r.CompanyName, r.Snippet)
	}
	return nil
}
