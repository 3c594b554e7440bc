package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/jwaiton/nexus/gdml"
	"github.com/jwaiton/nexus/geometries"
	"github.com/jwaiton/nexus/run"
	"github.com/jwaiton/nexus/web"
	"github.com/spf13/cobra"
)

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list registered geometries",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadConfig(cmd, opts, args); err != nil {
				return err
			}
			for _, name := range geometries.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newCommandsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "commands [geometry]",
		Short: "describe the configuration commands of a geometry",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(cmd, opts, args)
			if err != nil {
				return err
			}
			m, err := run.NewManagerFor(conf.Geometry)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "COMMAND\tTYPE\tUNIT\tRANGE\tGUIDANCE")
			for _, d := range m.UI().Describe() {
				constraint := d.Range
				if len(d.Candidates) > 0 {
					constraint = strings.Join(d.Candidates, "|")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", d.Path, d.Type, d.UnitCategory, constraint, d.Guidance)
			}
			return w.Flush()
		},
	}
}

func newConstructCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "construct [geometry]",
		Short: "build a geometry and print its volume tree",
		Long:  "Applies the macros, builds the geometry and prints the volume tree as json or gdml.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(cmd, opts, args)
			if err != nil {
				return err
			}
			m, err := newManager(conf)
			if err != nil {
				return err
			}
			if err := m.Initialize(); err != nil {
				return err
			}
			switch conf.Output {
			case "json":
				return writeJSON(cmd.OutOrStdout(), m.Export(conf.Geometry))
			case "gdml":
				return gdml.Export(cmd.OutOrStdout(), m.World(), m.Geometry().Surfaces())
			}
			return fmt.Errorf("construct can not print %s, use json or gdml", conf.Output)
		},
	}
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output format: json, gdml")
	return cmd
}

func newVerticesCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vertices [geometry]",
		Short: "sample vertices in a region of a geometry",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(cmd, opts, args)
			if err != nil {
				return err
			}
			m, err := newManager(conf)
			if err != nil {
				return err
			}
			if err := m.Initialize(); err != nil {
				return err
			}
			vertices, err := m.GenerateVertices(conf.Region, conf.Vertices)
			if err != nil {
				return err
			}
			volumes, err := m.VolumesAt(vertices)
			if err != nil {
				return err
			}
			switch conf.Output {
			case "csv":
				return writeCSV(cmd.OutOrStdout(), vertices, volumes)
			case "json":
				return writeJSON(cmd.OutOrStdout(), vertexList{Region: conf.Region, Seed: conf.Seed, Vertices: vertices, Volumes: volumes})
			}
			return fmt.Errorf("vertices can not print %s, use csv or json", conf.Output)
		},
	}
	cmd.Flags().StringVarP(&opts.region, "region", "r", "", "vertex generation region")
	cmd.Flags().IntVarP(&opts.vertices, "vertices", "n", 0, "number of vertices")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output format: csv, json")
	return cmd
}

func newServeCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "serve geometries over HTTP",
		Long:  "Serves the registered geometries; the configured geometry is rebuilt when --watch is set and a macro changes.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(cmd, opts, args)
			if err != nil {
				return err
			}
			s := web.NewServer(&conf)
			if err := s.Reload(); err != nil {
				log.Warnf("Default geometry is not available: %v", err)
			}
			if opts.watch {
				if err := s.Watch(); err != nil {
					return err
				}
				defer s.Close()
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return s.Start(ctx)
		},
	}
	cmd.Flags().StringVarP(&opts.address, "address", "a", "", "listen address")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "rebuild the default geometry when a macro changes")
	return cmd
}
