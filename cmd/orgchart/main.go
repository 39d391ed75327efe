package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crimson-sun/orgchart/internal/config"
	"github.com/crimson-sun/orgchart/internal/logging"
	"github.com/crimson-sun/orgchart/internal/output"
	"github.com/crimson-sun/orgchart/internal/output/markdown"
	"github.com/crimson-sun/orgchart/internal/output/multi"
	"github.com/crimson-sun/orgchart/internal/output/term"
	"github.com/crimson-sun/orgchart/internal/pipeline"
	"github.com/crimson-sun/orgchart/internal/source"

	// Register source backends.
	_ "github.com/crimson-sun/orgchart/internal/source/csvfile"
	_ "github.com/crimson-sun/orgchart/internal/source/web"
	_ "github.com/crimson-sun/orgchart/internal/source/xlsx"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "orgchart:", err)
		os.Exit(1)
	}
}

// flags shared by every subcommand.
type rootFlags struct {
	configPath string
	sourcePath string
	sourceType string
	sheet      string
	outPath    string
	format     string
	logLevel   string
	logFormat  string
}

func newRootCmd() *cobra.Command {
	var flags rootFlags
	var cfg config.Config

	root := &cobra.Command{
		Use:   "orgchart",
		Short: "Generate a hierarchical organization chart from an employee table",
		Long: `orgchart reads a flat employee table (CSV, Excel, or a hosted CSV
export), resolves manager references into reporting trees, and writes a
formatted organization chart document with summary statistics.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = loadConfig(flags)
			if err != nil {
				return err
			}
			logging.Init(cfg.Logging.Format, logging.ParseLevel(cfg.Logging.Level))
			return cfg.Validate()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "YAML config file")
	pf.StringVar(&flags.sourcePath, "source", "", "source table file path")
	pf.StringVar(&flags.sourceType, "source-type", "", "source type: csv, xlsx, web")
	pf.StringVar(&flags.sheet, "sheet", "", "xlsx sheet name (default: first sheet)")
	pf.StringVar(&flags.outPath, "out", "", "destination document path")
	pf.StringVar(&flags.format, "format", "", "output format: markdown, term, or a comma list")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&flags.logFormat, "log-format", "", "log format: text, json")

	root.AddCommand(newGenerateCmd(&cfg))
	root.AddCommand(newValidateCmd(&cfg))
	root.AddCommand(newCreateCmd(&cfg))
	return root
}

// loadConfig builds the run configuration: env defaults, optional YAML
// file, then explicit flags on top.
func loadConfig(flags rootFlags) (config.Config, error) {
	var cfg config.Config
	if flags.configPath != "" {
		var err error
		cfg, err = config.LoadFile(flags.configPath)
		if err != nil {
			return config.Config{}, err
		}
	} else {
		cfg = config.Load()
	}

	if flags.sourcePath != "" {
		cfg.Source.Path = flags.sourcePath
	}
	if flags.sourceType != "" {
		cfg.Source.Type = flags.sourceType
	}
	if flags.sheet != "" {
		cfg.Source.Sheet = flags.sheet
	}
	if flags.outPath != "" {
		cfg.Output.Path = flags.outPath
	}
	if flags.format != "" {
		cfg.Output.Format = flags.format
	}
	if flags.logLevel != "" {
		cfg.Logging.Level = flags.logLevel
	}
	if flags.logFormat != "" {
		cfg.Logging.Format = flags.logFormat
	}
	return cfg, nil
}

func newGenerateCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Run the full pipeline and write the chart document",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(cmd, *cfg, false)
		},
	}
}

func newCreateCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Run the full pipeline, always writing a brand-new document",
		Long: `create behaves like generate but never overwrites an existing
destination artifact: the document is written to a fresh, uniquely
named file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(cmd, *cfg, true)
		},
	}
}

func newValidateCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Parse the source table and report the record count without writing",
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := source.New(sourceConfig(*cfg))
			if err != nil {
				return err
			}
			p := pipeline.New(src, nil)
			n, err := p.Check(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d employee records accepted\n", n)
			return nil
		},
	}
}

func runPipeline(cmd *cobra.Command, cfg config.Config, fresh bool) error {
	src, err := source.New(sourceConfig(cfg))
	if err != nil {
		return err
	}

	doc, md, err := buildDocument(cfg, fresh)
	if err != nil {
		return err
	}

	p := pipeline.New(src, doc)
	defer p.Close()

	if err := p.Run(cmd.Context()); err != nil {
		return err
	}
	// The artifact path is only known after the write: an unwritable
	// destination falls back to a fresh file at that point.
	if md != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", md.Path())
	}
	return nil
}

// buildDocument assembles the configured document backends. The markdown
// backend is also returned on its own so the caller can report the artifact
// path actually written; nil for term-only runs.
func buildDocument(cfg config.Config, fresh bool) (output.Document, *markdown.Document, error) {
	var docs []output.Document
	var md *markdown.Document
	for _, format := range cfg.Formats() {
		switch format {
		case "markdown":
			var opts []markdown.Option
			if fresh {
				opts = append(opts, markdown.WithFresh())
			}
			m, err := markdown.New(cfg.Output.Path, opts...)
			if err != nil {
				return nil, nil, err
			}
			md = m
			docs = append(docs, m)
		case "term":
			docs = append(docs, term.New())
		}
	}
	if len(docs) == 1 {
		return docs[0], md, nil
	}
	return multi.New(docs...), md, nil
}

func sourceConfig(cfg config.Config) source.Config {
	return source.Config{
		Type:  cfg.Source.Type,
		Path:  cfg.Source.Path,
		Sheet: cfg.Source.Sheet,
		URL:   cfg.Source.URL,
		Token: cfg.Source.Token,
	}
}
