// Package main provides the morph CLI, a small front end over the
// neuromorph morphology readers and writers.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"neuromorph/internal/logger"
	"neuromorph/internal/output"
	"neuromorph/internal/version"
	"neuromorph/pkg/morphedit"
	"neuromorph/pkg/morphology"
	"neuromorph/pkg/morphtypes"
)

var (
	logLevel     string
	logFile      string
	testMode     bool
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "morph",
	Short: "morph - neuron morphology inspection and conversion",
	Long: `morph reads neuron reconstruction files in Neurolucida ASC and SWC
formats and reports, validates, or converts them.`,
	SilenceUsage: true,
}

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Summarize a morphology file",
	Long:  `Parse a morphology file and print a structural summary.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check morphology files for structural errors",
	Long: `Parse each file and report the first structural error found, if any.
Exits non-zero when any file fails.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

var convertCmd = &cobra.Command{
	Use:   "convert <input> <output>",
	Short: "Convert a morphology between ASC and SWC",
	Long:  `Read the input morphology and rewrite it in the format implied by the output extension.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runConvert,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(_ *cobra.Command, _ []string) {
		info := version.Get()
		if outputFormat == "yaml" {
			data, err := yaml.Marshal(info)
			if err == nil {
				fmt.Print(string(data))
				return
			}
		}
		fmt.Println(info.String())
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Set log level (debug|info|warn|error) [default: info]")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to file instead of stderr")
	rootCmd.PersistentFlags().BoolVar(&testMode, "test-mode", false, "Run in deterministic test mode")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "text", "Output format (text|yaml)")

	for _, flag := range []string{"log-level", "log-file", "test-mode", "format"} {
		if err := viper.BindPFlag(flag, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			fmt.Fprintf(os.Stderr, "Error binding %s flag: %v\n", flag, err)
			os.Exit(1)
		}
	}

	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(versionCmd)

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	if err := logger.Configure(logLevel, logFile, testMode); err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring logger: %v\n", err)
		os.Exit(1)
	}
}

func newPrinter() *output.Printer {
	if testMode || outputFormat == "yaml" {
		return output.NewPrinter(output.PlainText())
	}
	return output.NewPrinter()
}

// summary is the yaml shape of the info subcommand output.
type summary struct {
	File         string         `yaml:"file"`
	Format       string         `yaml:"format"`
	SomaType     string         `yaml:"soma_type"`
	SomaPoints   int            `yaml:"soma_points"`
	Sections     int            `yaml:"sections"`
	SectionTypes map[string]int `yaml:"section_types"`
	Roots        int            `yaml:"roots"`
	Points       int            `yaml:"points"`
	Markers      int            `yaml:"markers"`
	Perimeters   bool           `yaml:"perimeters"`
}

func runInfo(_ *cobra.Command, args []string) error {
	path := args[0]
	m, err := morphology.Open(path)
	if err != nil {
		return err
	}

	byType := map[string]int{}
	for _, typ := range m.SectionTypes() {
		byType[typ.String()]++
	}

	s := summary{
		File:         path,
		Format:       m.Version().String(),
		SomaType:     m.SomaType().String(),
		SomaPoints:   len(m.Soma().Points()),
		Sections:     len(m.Sections()),
		SectionTypes: byType,
		Roots:        len(m.RootSections()),
		Points:       len(m.Points()),
		Markers:      len(m.Markers()),
		Perimeters:   len(m.Perimeters()) > 0,
	}

	if outputFormat == "yaml" {
		data, err := yaml.Marshal(s)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	}

	p := newPrinter()
	p.Heading(path)
	p.Field("Format", s.Format)
	p.Field("Soma", fmt.Sprintf("%s (%d points)", s.SomaType, s.SomaPoints))
	p.Field("Sections", fmt.Sprintf("%d (%d roots)", s.Sections, s.Roots))
	for _, typ := range []string{"axon", "basal_dendrite", "apical_dendrite", "undefined"} {
		if n := byType[typ]; n > 0 {
			p.Field("  "+typ, fmt.Sprintf("%d", n))
		}
	}
	p.Field("Points", fmt.Sprintf("%d", s.Points))
	p.Field("Markers", fmt.Sprintf("%d", s.Markers))
	p.Field("Perimeters", fmt.Sprintf("%t", s.Perimeters))
	return nil
}

func runValidate(_ *cobra.Command, args []string) error {
	p := newPrinter()
	failures := 0
	for _, path := range args {
		if _, err := morphology.Open(path); err != nil {
			p.Error(fmt.Sprintf("%s: %v", path, err))
			failures++
			continue
		}
		p.Success(fmt.Sprintf("%s: ok", path))
	}
	if failures > 0 {
		return fmt.Errorf("%d of %d files failed validation", failures, len(args))
	}
	return nil
}

func runConvert(_ *cobra.Command, args []string) error {
	in, out := args[0], args[1]
	m, err := morphedit.Open(in)
	if err != nil {
		return err
	}
	// Round through the builder so the output is canonical and validated.
	props, err := m.BuildReadOnly()
	if err != nil {
		return err
	}
	rebuilt := morphedit.FromImmutable(morphology.FromProperties(props))
	if err := rebuilt.Write(out); err != nil {
		if morphtypes.IsUnknownFormat(err) {
			return fmt.Errorf("unsupported output format for %s: %w", out, err)
		}
		return err
	}
	logger.Info("converted morphology", "input", in, "output", out)
	newPrinter().Success(fmt.Sprintf("%s -> %s", in, out))
	return nil
}
