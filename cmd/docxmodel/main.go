// Package main provides the docxmodel command line tool.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/benjaminschreck/go-docxmodel/pkg/docx"
)

const version = "0.1.0"

type options struct {
	configPath string
	logLevel   string
	config     *docx.Config
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:          "docxmodel",
		Short:        "Inspect and edit the text of DOCX files",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Config file (default: ./.docxmodel.yaml)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(
		newTextCmd(opts),
		newReplaceCmd(opts),
		newImagesCmd(opts),
		newVersionCmd(),
	)
	return rootCmd
}

func (o *options) setup() error {
	cfg, err := docx.LoadConfig(o.configPath)
	if err != nil {
		return err
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	logger, err := docx.NewLogger(cfg)
	if err != nil {
		return err
	}
	docx.SetLogger(logger)
	o.config = cfg
	return nil
}

func (o *options) open(path string) (*docx.File, error) {
	f, err := docx.Open(path, docx.WithConfig(o.config))
	if err != nil {
		return nil, err
	}
	docx.Logger().Debug("document loaded", zap.String("path", path))
	return f, nil
}

func newTextCmd(opts *options) *cobra.Command {
	var leaves bool

	cmd := &cobra.Command{
		Use:   "text <file.docx>",
		Short: "Print the text of a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := opts.open(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if leaves {
				for text := range f.Texts() {
					fmt.Fprintln(out, text)
				}
				return nil
			}
			fmt.Fprintln(out, f.Text())
			return nil
		},
	}

	cmd.Flags().BoolVar(&leaves, "leaves", false, "Print every text leaf on its own line")
	return cmd
}

func newReplaceCmd(opts *options) *cobra.Command {
	var (
		sets     []string
		dictPath string
	)

	cmd := &cobra.Command{
		Use:   "replace <in.docx> <out.docx>",
		Short: "Replace text in a document",
		Long: `Replace text in every text leaf of a document.

Replacements come from the config file, then from --dict, then from --set,
in that order, and are applied one after another in that order. Text an
earlier replacement wrote is not searched again.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := buildDictionary(opts.config, dictPath, sets)
			if err != nil {
				return err
			}
			if len(dict) == 0 {
				return fmt.Errorf("no replacements given: use --set old=new or --dict file")
			}

			f, err := opts.open(args[0])
			if err != nil {
				return err
			}
			n, err := f.Replace(dict)
			if err != nil {
				return err
			}
			if err := f.SaveFile(args[1]); err != nil {
				return err
			}

			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ rewrote %d text leaves, saved %s\n", n, args[1])
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&sets, "set", nil, "Replacement as old=new (repeatable)")
	cmd.Flags().StringVar(&dictPath, "dict", "", "File with a replacements list (YAML, TOML or JSON)")
	return cmd
}

func buildDictionary(cfg *docx.Config, dictPath string, sets []string) (docx.Dictionary, error) {
	dict := append(docx.Dictionary{}, cfg.Replacements...)

	if dictPath != "" {
		dictCfg, err := docx.LoadConfig(dictPath)
		if err != nil {
			return nil, err
		}
		dict = append(dict, dictCfg.Replacements...)
	}

	for _, set := range sets {
		old, replacement, ok := strings.Cut(set, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --set %q: want old=new", set)
		}
		dict = append(dict, docx.Replacement{Old: old, New: replacement})
	}

	if err := dict.Validate(); err != nil {
		return nil, err
	}
	return dict, nil
}

func newImagesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "images <file.docx>",
		Short: "List the pictures referenced by a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := opts.open(args[0])
			if err != nil {
				return err
			}
			images, err := f.Images()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(images) == 0 {
				color.New(color.FgYellow).Fprintln(out, "no images")
				return nil
			}
			id := color.New(color.FgCyan, color.Bold)
			for _, img := range images {
				id.Fprintf(out, "%s", img.RelID)
				fmt.Fprintf(out, "\t%s", img.Target)
				if img.External {
					fmt.Fprint(out, " (external)")
				}
				if img.Title != "" {
					fmt.Fprintf(out, "\t%s", img.Title)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "docxmodel version %s\n", version)
		},
	}
}
