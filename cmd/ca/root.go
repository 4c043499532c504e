package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ca-stages/internal/app"
	"ca-stages/internal/config"
	"ca-stages/internal/logging"
	"ca-stages/internal/stages"
	"ca-stages/internal/ui"
)

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "ca",
		Short: "Run a staged elementary cellular automaton",
		Long: `ca reads an automaton configuration, evolves it under its own rule, then
under rules 184 and 232, and prints the staged trace.

The configuration is read from standard input unless --input is given:

  size rule initial time_steps cell1,start1 cell2,start2`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(v, stdin, stdout, stderr)
		},
	}

	flags := cmd.Flags()
	flags.StringP("input", "i", "", "read the configuration from a file instead of stdin")
	flags.String("format", "", "configuration format: text or yaml (default: from file extension, else text)")
	flags.String("log-level", logging.LevelWarn, "diagnostic level: DEBUG, INFO, WARN or ERROR")
	flags.Bool("view", false, "play the computed run in a window (needs -tags ebiten)")
	flags.Int("scale", 4, "viewer pixel scale")
	flags.Int("tps", 10, "viewer time steps revealed per second")
	_ = v.BindPFlags(flags)

	v.SetEnvPrefix("CA")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return cmd
}

func run(v *viper.Viper, stdin io.Reader, stdout, stderr io.Writer) error {
	level := v.GetString("log-level")
	if !logging.ValidLevel(level) {
		return fmt.Errorf("unknown log level %q", level)
	}
	log := logging.NewLogger(stderr, level)

	in, format, closeInput, err := openInput(v.GetString("input"), v.GetString("format"), stdin)
	if err != nil {
		return err
	}
	defer closeInput()

	cfg, err := config.Load(in, format)
	if err != nil {
		return err
	}
	log.Info("configuration loaded", "size", cfg.Size, "rule", cfg.Rule, "time_steps", cfg.TimeSteps)

	seq, err := stages.NewRunner(cfg, log).Run(stdout)
	if err != nil {
		return err
	}

	if v.GetBool("view") {
		return app.Show(seq, app.Options{
			Scale:   v.GetInt("scale"),
			TPS:     v.GetInt("tps"),
			Markers: ui.StageMarkers(cfg.Rule, stages.NewPlan(cfg)),
		})
	}
	return nil
}

func openInput(path, format string, stdin io.Reader) (io.Reader, string, func(), error) {
	if path == "" {
		return stdin, format, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, "", nil, fmt.Errorf("opening configuration: %w", err)
	}
	if format == "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			format = config.FormatYAML
		}
	}
	return f, format, func() { _ = f.Close() }, nil
}
