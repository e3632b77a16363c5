package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wikicloud/internal/tui"
	"github.com/matzehuels/wikicloud/pkg/errors"
)

// browseOpts holds flags for the browse command.
type browseOpts struct {
	query   string
	seed    uint64
	logFile string
}

// browseCommand creates the interactive terminal view.
func (c *CLI) browseCommand() *cobra.Command {
	var opts browseOpts

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Explore a word cloud of article titles in the terminal",
		Long: `Browse opens a full-screen word cloud of random Wikipedia titles.

Scroll with the mouse wheel or arrow keys, click a title to open its summary,
press / to search and esc to close the search or the summary. Resizing the
terminal starts a fresh cloud.`,
		Example: `  wikicloud browse
  wikicloud browse -q volcano --log-file /tmp/wikicloud.log`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBrowse(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.query, "query", "q", "", "start with titles matching this keyword")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "layout seed (0 for random)")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "write logs to this file (the screen is taken by the view)")

	return cmd
}

func (c *CLI) runBrowse(ctx context.Context, opts browseOpts) error {
	if opts.query != "" {
		if err := errors.ValidateKeyword(opts.query); err != nil {
			return err
		}
	}

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newFileLogger(opts.logFile, c.Logger.GetLevel())
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer closeLog()

	// Construction messages would land under the alternate screen.
	quiet := c.Logger
	c.Logger = logger
	provider, backend, err := c.newProvider(ctx, cfg)
	c.Logger = quiet
	if err != nil {
		return err
	}
	defer backend.Close()

	model := tui.New(ctx, tui.Options{
		Config:    cfg,
		Titles:    provider,
		Summaries: provider,
		Logger:    logger,
		Keyword:   opts.query,
		Seed:      opts.seed,
	})

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("browse: %w", err)
	}
	return nil
}
