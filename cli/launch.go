// Package cli implements the nexus command line: listing geometries,
// describing their commands, building them and sampling vertices.
package cli

import (
	"strings"

	"github.com/jwaiton/nexus/config"
	"github.com/jwaiton/nexus/run"
	"github.com/spf13/cobra"
)

var log = config.NamedLogger("cli")

type options struct {
	configPath   string
	loggingLevel string
	geometry     string
	macros       []string
	region       string
	vertices     int
	seed         int64
	output       string
	address      string
	watch        bool
}

// Launch runs the command line and aborts on failure.
func Launch() {
	if err := NewRootCommand().Execute(); err != nil {
		run.Fatal(err)
	}
}

// NewRootCommand creates the command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:           "nexus",
		Short:         "NEXT detector geometry builder",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "TOML configuration file")
	flags.StringVar(&opts.loggingLevel, "log-level", "", "logging level: "+strings.Join(config.AvailableLoggingLevels(), ", "))
	flags.StringVarP(&opts.geometry, "geometry", "g", "", "registered geometry name")
	flags.StringSliceVarP(&opts.macros, "macro", "m", nil, "command files applied before construction, in order")
	flags.Int64Var(&opts.seed, "seed", 0, "random seed of the vertex generation")

	rootCmd.AddCommand(
		newListCmd(opts),
		newCommandsCmd(opts),
		newConstructCmd(opts),
		newVerticesCmd(opts),
		newServeCmd(opts),
	)
	return rootCmd
}

// loadConfig merges defaults, the configuration file, the environment and
// the flags set on the command line, then configures logging.
func loadConfig(cmd *cobra.Command, opts *options, args []string) (config.Config, error) {
	conf, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		conf.LoggingLevel = strings.ToLower(opts.loggingLevel)
	}
	if flags.Changed("geometry") {
		conf.Geometry = opts.geometry
	}
	if len(args) > 0 {
		conf.Geometry = args[0]
	}
	if flags.Changed("macro") {
		conf.Macros = opts.macros
	}
	if flags.Changed("seed") {
		conf.Seed = opts.seed
	}
	if flags.Lookup("region") != nil && flags.Changed("region") {
		conf.Region = opts.region
	}
	if flags.Lookup("vertices") != nil && flags.Changed("vertices") {
		conf.Vertices = opts.vertices
	}
	if flags.Lookup("output") != nil && flags.Changed("output") {
		conf.Output = opts.output
	}
	if flags.Lookup("address") != nil && flags.Changed("address") {
		conf.Address = opts.address
	}
	if err := config.Check(&conf); err != nil {
		return config.Config{}, err
	}
	if err := config.InitLogger(conf.LoggingLevel); err != nil {
		return config.Config{}, err
	}
	log.Debugf("Config: %#v", conf)
	return conf, nil
}

// newManager creates the configured geometry and applies its macros.
func newManager(conf config.Config) (*run.Manager, error) {
	m, err := run.NewManagerFor(conf.Geometry)
	if err != nil {
		return nil, err
	}
	for _, path := range conf.Macros {
		if err := m.ExecuteMacroFile(path); err != nil {
			return nil, err
		}
	}
	if err := m.Seed(conf.Seed); err != nil {
		return nil, err
	}
	return m, nil
}
