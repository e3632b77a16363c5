package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wikicloud/internal/server"
)

// serveOpts holds flags for the serve command.
type serveOpts struct {
	addr       string
	debugHooks bool
}

// serveCommand creates the browser server command.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the word cloud to a browser",
		Long: `Serve starts an HTTP server with the interactive word cloud page.

The server computes every layout for the browser's window width and resolves
summaries for clicked titles. Stop it with Ctrl+C.`,
		Example: `  wikicloud serve
  wikicloud serve --addr :9000 --debug-hooks -v`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (default from config, localhost:8080)")
	cmd.Flags().BoolVar(&opts.debugHooks, "debug-hooks", false, "log layout, cache and upstream HTTP events at debug level")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts serveOpts) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	addr := opts.addr
	if addr == "" {
		addr = cfg.Server.Addr
	}

	if opts.debugHooks {
		defer installLogHooks(c.Logger)()
	}

	runner, closer, err := c.newRunner(ctx, cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	srv, err := server.New(cfg, runner, c.Logger.WithPrefix("http"))
	if err != nil {
		return err
	}
	host := addr
	if strings.HasPrefix(host, ":") {
		host = "localhost" + host
	}
	printInfo("Serving on http://%s (Ctrl+C to stop)", host)
	return srv.ListenAndServe(ctx, addr)
}
