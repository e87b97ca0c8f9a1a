package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/couchcryptid/climate-report-service/internal/domain"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var errUnknownFormat = errors.New("unknown output format (allowed: json, yaml)")

type problemTypeRow struct {
	ID    domain.ProblemType `json:"id"`
	Label string             `json:"label"`
}

func newRootCmd() *cobra.Command {
	var format string

	root := &cobra.Command{
		Use:           "reportctl",
		Short:         "Inspect climate report snapshots, solutions, and mock data",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if format != "json" && format != "yaml" {
				return fmt.Errorf("%w: %q", errUnknownFormat, format)
			}
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&format, "output", "o", "json", "output format: json or yaml")

	root.AddCommand(
		newSnapshotCmd(&format),
		newSolutionsCmd(&format),
		newProblemsCmd(&format),
		newMockReportsCmd(&format),
	)
	return root
}

func newSnapshotCmd(format *string) *cobra.Command {
	var lat, lng float64
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Generate the environmental snapshot for a coordinate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap, err := domain.GenerateEnvironmentalSnapshot(domain.Coordinate{Lat: lat, Lng: lng})
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), *format, snap)
		},
	}
	cmd.Flags().Float64Var(&lat, "lat", domain.DefaultLocation.Lat, "latitude in degrees")
	cmd.Flags().Float64Var(&lng, "lng", domain.DefaultLocation.Lng, "longitude in degrees")
	return cmd
}

func newSolutionsCmd(format *string) *cobra.Command {
	return &cobra.Command{
		Use:   "solutions TYPE...",
		Short: "Look up remediation actions for problem types",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records := domain.LookupSolutions(args)
			if len(records) < len(args) {
				fmt.Fprintf(cmd.ErrOrStderr(), "skipped %d unknown problem type(s)\n", len(args)-len(records))
			}
			return render(cmd.OutOrStdout(), *format, records)
		},
	}
}

func newProblemsCmd(format *string) *cobra.Command {
	return &cobra.Command{
		Use:   "problems",
		Short: "List the supported problem types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			types := domain.AllProblemTypes()
			rows := make([]problemTypeRow, len(types))
			for i, t := range types {
				rows[i] = problemTypeRow{ID: t, Label: t.Label()}
			}
			return render(cmd.OutOrStdout(), *format, rows)
		},
	}
}

func newMockReportsCmd(format *string) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "mock-reports",
		Short: "Write the seeded community reports as a fixture",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reports := domain.MockReports()
			if out == "" {
				return render(cmd.OutOrStdout(), *format, reports)
			}

			if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create %s: %w", out, err)
			}
			if err := render(f, *format, reports); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d reports to %s\n", len(reports), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "write to this file instead of stdout")
	return cmd
}

// render writes v as indented JSON or as YAML with the same field names.
func render(w io.Writer, format string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	switch format {
	case "json":
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case "yaml":
		// JSON is a YAML subset, so decoding into a node keeps key order.
		var node yaml.Node
		if err := yaml.Unmarshal(data, &node); err != nil {
			return err
		}
		clearStyle(&node)
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(&node); err != nil {
			return err
		}
		return enc.Close()
	default:
		return errUnknownFormat
	}
}

// clearStyle drops the flow and quoting styles inherited from the JSON source.
func clearStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		clearStyle(c)
	}
}
