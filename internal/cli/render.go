package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wikicloud/pkg/pipeline"
	"github.com/matzehuels/wikicloud/pkg/render"
)

// defaultBaseName is the output file stem when neither --output nor --query is given.
const defaultBaseName = appName

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string   // output file path (or base path for multiple outputs); "-" writes to stdout
	formats []string // output formats: "svg", "json", "png", "pdf"
	width   float64  // surface width in pixels; selects the narrow or wide profile
	seed    uint64   // random seed; 0 draws a fresh one
	query   string   // search keyword; empty means random titles
	links   bool     // link every label to its search page
	boxes   bool     // outline every placement box
	scale   float64  // PNG rasterization scale
}

// renderCommand creates the render command for writing a word cloud to files.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{
		width: pipeline.DefaultWidth,
		scale: pipeline.DefaultScale,
	}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Lay out a word cloud and write it to SVG, JSON, PNG or PDF",
		Long: `Fetch random titles (or titles matching --query), pack them into bands
for a surface --width pixels wide and write the result.

The same --seed and title list always produce the same layout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			if err := pipeline.ValidateWidth(opts.width); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple); - for stdout")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, png, pdf (comma-separated)")
	cmd.Flags().Float64Var(&opts.width, "width", opts.width, "surface width in pixels")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed (0 draws a fresh one)")
	cmd.Flags().StringVarP(&opts.query, "query", "q", "", "search keyword instead of random titles")
	cmd.Flags().BoolVar(&opts.links, "links", false, "link every title to its search page")
	cmd.Flags().BoolVar(&opts.boxes, "boxes", false, "outline placement boxes")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")
	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)

	return cmd
}

// runRender executes the pipeline and writes every requested format.
func (c *CLI) runRender(ctx context.Context, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	if needsConverter(opts.formats) && !render.Available() {
		return fmt.Errorf("png and pdf output require rsvg-convert (install librsvg)")
	}
	if opts.output == "-" && len(opts.formats) > 1 {
		return fmt.Errorf("cannot write %d formats to stdout", len(opts.formats))
	}

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	runner, closer, err := c.newRunner(ctx, cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	prog := newProgress(logger)
	spinner := newSpinnerWithContext(ctx, "Fetching titles...")
	spinner.Start()
	result, err := runner.Execute(ctx, pipeline.Options{
		Keyword: opts.query,
		Width:   opts.width,
		Seed:    opts.seed,
		Formats: opts.formats,
		Links:   opts.links,
		Boxes:   opts.boxes,
		Scale:   opts.scale,
	})
	spinner.Stop()
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Placed %d titles", result.Stats.Placed))

	base := basePath(opts.output, defaultBase(opts.query))
	var written []string
	for _, format := range opts.formats {
		path := outputPath(opts.output, base, format, len(opts.formats))
		if err := writeArtifact(path, result.Artifacts[format]); err != nil {
			return err
		}
		logger.Debugf("Generated %s: %d bytes", format, len(result.Artifacts[format]))
		if path != "" {
			written = append(written, path)
		}
	}
	if len(written) == 0 {
		return nil
	}

	printSuccess("Generated word cloud")
	printStats(result.Stats, result.Profile.Name)
	printKeyValue("seed", fmt.Sprintf("%d", result.Seed))
	for _, path := range written {
		printFile(path)
	}
	printNewline()
	printNextStep("Explore it interactively", appName+" serve")
	return nil
}

func needsConverter(formats []string) bool {
	for _, f := range formats {
		if f == pipeline.FormatPNG || f == pipeline.FormatPDF {
			return true
		}
	}
	return false
}

// defaultBase derives the output stem from the search keyword.
func defaultBase(query string) string {
	slug := slugify(query)
	if slug == "" {
		return defaultBaseName
	}
	return defaultBaseName + "-" + slug
}

// slugify lowercases s and collapses runs of non-alphanumerics into "-".
func slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// basePath derives the base output path.
// If output is empty, fallback is used.
// If output has a format extension (.svg, .pdf, etc.), it strips that extension.
func basePath(output, fallback string) string {
	if output == "" || output == "-" {
		return fallback
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPath returns where one format is written. A single format goes to
// output verbatim when given; "-" maps to stdout (empty path). Multiple
// formats share base with their own extension.
func outputPath(output, base, format string, count int) string {
	if output == "-" {
		return ""
	}
	if count == 1 && output != "" {
		return output
	}
	return base + "." + format
}

func writeArtifact(path string, data []byte) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = out.Write(data)
	return err
}

// openOutput opens path for writing; an empty path means stdout.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
