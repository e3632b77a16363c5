package cli

import (
	"context"
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/wikicloud/pkg/errors"
	"github.com/matzehuels/wikicloud/pkg/panel"
)

// summaryConcurrency bounds parallel summary requests.
const summaryConcurrency = 4

// summaryResolver resolves one title into a panel state.
type summaryResolver interface {
	Summary(ctx context.Context, title string) panel.State
}

// summaryCommand creates the summary command.
func (c *CLI) summaryCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "summary <title>...",
		Short: "Show the detail panel for one or more article titles",
		Example: `  wikicloud summary "Mount Etna"
  wikicloud summary Rome Carthage --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, title := range args {
				if err := errors.ValidateTitle(title); err != nil {
					return err
				}
			}
			return c.runSummary(cmd.Context(), args, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print panel states as JSON")
	return cmd
}

func (c *CLI) runSummary(ctx context.Context, titles []string, asJSON bool) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	runner, closer, err := c.newRunner(ctx, cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	states, err := resolveSummaries(ctx, runner, titles)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(states)
	}

	failed := 0
	for i, st := range states {
		if i > 0 {
			printNewline()
		}
		printPanel(st)
		if st.Phase == panel.Failed {
			failed++
		}
	}
	if failed > 0 {
		printNewline()
		printWarning("%d of %d summaries failed to load", failed, len(states))
	}
	return nil
}

// resolveSummaries fetches every title concurrently and returns the states
// in input order. Fetch failures become Failed states; only cancellation of
// ctx is returned as an error.
func resolveSummaries(ctx context.Context, r summaryResolver, titles []string) ([]panel.State, error) {
	states := make([]panel.State, len(titles))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(summaryConcurrency)
	for i, title := range titles {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			states[i] = r.Summary(gctx, title)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return states, ctx.Err()
}
