// Package cmd — render command.
// This is the main command that orchestrates the pipeline:
// load → dedupe/filter → paginate → render → write.
//
// It handles flag validation, renderer selection, and per-entry output.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gaurav-prasanna/extdir/catalog"
	"github.com/gaurav-prasanna/extdir/core"
	"github.com/gaurav-prasanna/extdir/core/output"
	"github.com/gaurav-prasanna/extdir/core/page"
	"github.com/gaurav-prasanna/extdir/core/render"
	"github.com/gaurav-prasanna/extdir/core/source"
)

// Flag variables.
var (
	flagHTML         bool
	flagFragment     bool
	flagMarkdown     bool
	flagJSON         bool
	flagPDF          bool
	flagPerEntry     bool
	flagOfficialOnly bool
	flagOwner        string
	flagInputFormat  string
)

var renderCmd = &cobra.Command{
	Use:   "render <records>",
	Short: "Render extension records to the specified output format",
	Long: `Render loads extension records from a JSON or YAML file (or "-" for stdin),
drops duplicate IDs, applies the filters, and writes the listing in the
specified output format (HTML page, HTML fragment, Markdown, JSON, or PDF).

Examples:
  extdir render extensions.json --html
  extdir render extensions.yaml --fragment --per_entry --output_dir ./cards
  extdir render extensions.json --json --official_only
  cat extensions.json | extdir render - --markdown --page_size 10`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	// Output format flags (mutually exclusive).
	renderCmd.Flags().BoolVar(&flagHTML, "html", false, "Output a full HTML page")
	renderCmd.Flags().BoolVar(&flagFragment, "fragment", false, "Output only the <ul> of entries")
	renderCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "Output Markdown")
	renderCmd.Flags().BoolVar(&flagJSON, "json", false, "Output structured JSON")
	renderCmd.Flags().BoolVar(&flagPDF, "pdf", false, "Output PDF")

	// Selection flags.
	renderCmd.Flags().BoolVar(&flagOfficialOnly, "official_only", false, "Only list extensions by the official account")
	renderCmd.Flags().StringVar(&flagOwner, "owner", "", "Only list extensions by this owner login")
	renderCmd.Flags().BoolVar(&flagPerEntry, "per_entry", false, "Write one file per extension (<login>/<name>)")
	renderCmd.Flags().StringVar(&flagInputFormat, "input_format", "", "Input format: json or yaml (default: from file extension, json for stdin)")

	// Settings that may also come from the config file or environment.
	renderCmd.Flags().String("output_dir", "", "Output directory (default: current directory)")
	renderCmd.Flags().Int("page_size", 0, "Entries per page (0: no pagination)")
	renderCmd.Flags().String("title", "", "Listing title")
	renderCmd.Flags().String("stylesheet", "", "Stylesheet URL linked from HTML pages")
	for _, key := range []string{"output_dir", "page_size", "title", "stylesheet"} {
		_ = viper.BindPFlag(key, renderCmd.Flags().Lookup(key))
	}
}

func runRender(cmd *cobra.Command, args []string) error {
	input := args[0]

	// --- Validate flags ---
	if err := validateFlags(); err != nil {
		return err
	}

	renderer, err := selectRenderer()
	if err != nil {
		return err
	}

	exts, err := loadRecords(cmd.InOrStdin(), input)
	if err != nil {
		return err
	}
	logger.Debug("records loaded", "input", input, "count", len(exts))

	// Dedupe and filter.
	cat := catalog.New()
	if dups := cat.AddAll(exts); dups > 0 {
		logger.Warn("duplicate extensions skipped", "count", dups)
	}
	selected := cat.Filter(selectRules()...)
	logger.Debug("extensions selected", "count", len(selected))

	writer, err := output.New(viper.GetString("output_dir"))
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	listing := core.Listing{
		Title:      viper.GetString("title"),
		Stylesheet: viper.GetString("stylesheet"),
		Extensions: selected,
	}

	out := cmd.OutOrStdout()
	if flagPerEntry {
		return runPerEntry(out, listing, renderer, writer)
	}
	return runListing(out, listing, renderer, writer)
}

// runListing writes the listing, split into pages when page_size is set.
func runListing(out io.Writer, listing core.Listing, renderer core.Renderer, writer *output.Writer) error {
	pages := []core.Listing{listing}
	if size := viper.GetInt("page_size"); size > 0 && len(listing.Extensions) > 0 {
		pages = page.New(size).Split(listing)
	}

	for _, p := range pages {
		data, err := renderer.Render(p)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		path, err := writer.WriteListing(p, data, renderer.Extension())
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "✓ Written: %s\n", path)
	}
	return nil
}

// runPerEntry renders each extension on its own and writes it under
// <login>/<name>. Failures are reported and counted but do not stop the run.
func runPerEntry(out io.Writer, listing core.Listing, renderer core.Renderer, writer *output.Writer) error {
	exts := listing.Extensions
	var errCount int
	for i, ext := range exts {
		fmt.Fprintf(out, "[%d/%d] Rendering %s\n", i+1, len(exts), ext.ID())

		single := listing
		single.Extensions = []core.Extension{ext}
		data, err := renderer.Render(single)
		if err != nil {
			logger.Error("render failed", "id", ext.ID(), "err", err)
			errCount++
			continue
		}

		path, err := writer.WriteEntry(ext, data, renderer.Extension())
		if err != nil {
			logger.Error("write failed", "id", ext.ID(), "err", err)
			errCount++
			continue
		}
		fmt.Fprintf(out, "  ✓ Written: %s\n", path)
	}

	if errCount > 0 {
		return fmt.Errorf("%d/%d extensions failed", errCount, len(exts))
	}
	return nil
}

// loadRecords reads records from a file, or from stdin when input is "-".
func loadRecords(stdin io.Reader, input string) ([]core.Extension, error) {
	if input != "-" && flagInputFormat == "" {
		return source.LoadFile(input)
	}

	format := source.FormatJSON
	if flagInputFormat != "" {
		f, err := source.ParseFormat(flagInputFormat)
		if err != nil {
			return nil, err
		}
		format = f
	}

	if input == "-" {
		return source.New(format).Load(stdin)
	}

	f, err := os.Open(input)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", input, err)
	}
	defer f.Close()
	return source.New(format).Load(f)
}

func selectRules() []catalog.Rule {
	var rules []catalog.Rule
	if flagOfficialOnly {
		rules = append(rules, catalog.OfficialOnly())
	}
	if flagOwner != "" {
		rules = append(rules, catalog.OwnedBy(flagOwner))
	}
	return rules
}

// validateFlags checks that exactly one output format is chosen.
func validateFlags() error {
	formatCount := 0
	for _, set := range []bool{flagHTML, flagFragment, flagMarkdown, flagJSON, flagPDF} {
		if set {
			formatCount++
		}
	}

	if formatCount == 0 {
		return fmt.Errorf("exactly one output format is required: --html, --fragment, --markdown, --json, or --pdf")
	}
	if formatCount > 1 {
		return fmt.Errorf("only one output format allowed per run (got %d)", formatCount)
	}

	if flagPerEntry && viper.GetInt("page_size") > 0 {
		return fmt.Errorf("--per_entry and --page_size are mutually exclusive")
	}
	return nil
}

// selectRenderer creates the appropriate Renderer based on flags.
func selectRenderer() (core.Renderer, error) {
	switch {
	case flagHTML:
		return render.NewHTMLRenderer(), nil
	case flagFragment:
		return render.NewFragmentRenderer(), nil
	case flagMarkdown:
		return render.NewMarkdownRenderer(), nil
	case flagJSON:
		return render.NewJSONRenderer(), nil
	case flagPDF:
		return render.NewPDFRenderer(), nil
	default:
		return nil, fmt.Errorf("no output format selected")
	}
}
