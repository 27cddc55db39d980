package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/save2md/iconkit/pkg/config"
	"github.com/save2md/iconkit/pkg/fonts"
	"github.com/save2md/iconkit/pkg/icon"
	"github.com/save2md/iconkit/pkg/observability"
	"github.com/save2md/iconkit/pkg/pipeline"
)

// generateOpts holds the command-line flags for icon generation.
// Flags that are set override values from the config file.
type generateOpts struct {
	configPath string // optional TOML config file
	out        string // output directory
	sizes      []int  // icon edge lengths in pixels
	font       string // preferred font file
	check      bool   // compare against disk instead of writing
	preview    bool   // also write a contact sheet
	offline    bool   // skip the platform font directory search
}

func (o *generateOpts) bind(cmd *cobra.Command) {
	defaults := config.Default()

	cmd.Flags().StringVarP(&o.configPath, "config", "c", "", "TOML config file")
	cmd.Flags().StringVarP(&o.out, "out", "o", defaults.Output, "output directory")
	cmd.Flags().IntSliceVarP(&o.sizes, "sizes", "s", defaults.Sizes, "icon sizes in pixels (comma-separated)")
	cmd.Flags().StringVar(&o.font, "font", "", "preferred font file for the label")
	cmd.Flags().BoolVar(&o.check, "check", false, "verify icons on disk match a fresh render; write nothing")
	cmd.Flags().BoolVar(&o.preview, "preview", false, "also write preview.png with every size side by side")
	cmd.Flags().BoolVar(&o.offline, "no-system-fonts", false, "use only --font and the embedded font; skip system font locations")
}

// resolve merges the config file, if any, with explicitly set flags.
func (o *generateOpts) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return config.Config{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("out") {
		cfg.Output = o.out
	}
	if flags.Changed("sizes") {
		cfg.Sizes = o.sizes
	}
	if flags.Changed("font") {
		cfg.Font = o.font
	}
	if flags.Changed("preview") {
		cfg.Preview = o.preview
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// runGenerate renders every configured size and prints one line per file.
func (c *CLI) runGenerate(cmd *cobra.Command, opts *generateOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	cfg, err := opts.resolve(cmd)
	if err != nil {
		return err
	}
	palette, err := cfg.Palette()
	if err != nil {
		return err
	}

	loader := fonts.NewLoader(logger, cfg.Font)
	loader.Offline = opts.offline

	out := newConsole(cmd.OutOrStdout())
	runner := pipeline.NewRunner(icon.NewRenderer(palette, loader, logger), logger)
	runner.Hooks = observability.Multi(consoleHooks{out: out}, logHooks{logger: logger})

	result, err := runner.Execute(ctx, pipeline.Options{
		OutDir:  cfg.Output,
		Sizes:   cfg.Sizes,
		Check:   opts.check,
		Preview: cfg.Preview,
	})
	if err != nil {
		return err
	}

	out.done()
	verb := "Generated"
	if opts.check {
		verb = "Checked"
	}
	prog.done(fmt.Sprintf("%s %d icons in %s", verb, len(result.Icons), cfg.Output))
	return nil
}
