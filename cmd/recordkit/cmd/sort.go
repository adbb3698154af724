package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ssargent/recordkit/pkg/record"
)

// sortCmd represents the sort command
var sortCmd = &cobra.Command{
	Use:   "sort <id:name:value> [<id:name:value> ...]",
	Short: "Sort records given as id:name:value triples",
	Long: `Sort creates one record per argument, orders them ascending by id,
presents each, then releases each exactly once.

Example:
  recordkit sort 3:Gamma:9.75 1:Alpha:42.5 2:Beta:17.25`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		factory := record.NewFactory(record.FactoryConfig{Logger: logger})

		recs := make([]*record.Record, 0, len(args))
		for _, arg := range args {
			id, name, value, err := parseRecordArg(arg)
			if err != nil {
				return fmt.Errorf("invalid record %q: %w", arg, err)
			}

			r, err := factory.New(id, name, value)
			if err != nil {
				return fmt.Errorf("failed to create record %d: %w", id, err)
			}
			recs = append(recs, r)
		}

		record.SortByID(recs)

		for _, r := range recs {
			if err := r.Present(cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("failed to present record %d: %w", r.ID(), err)
			}
		}

		for _, r := range recs {
			if err := r.Release(); err != nil {
				return fmt.Errorf("failed to release record %d: %w", r.ID(), err)
			}
		}

		return nil
	},
}

// parseRecordArg parses an id:name:value triple. The name must not
// contain a colon.
func parseRecordArg(arg string) (int, string, float64, error) {
	parts := strings.SplitN(arg, ":", 3)
	if len(parts) != 3 {
		return 0, "", 0, fmt.Errorf("expected id:name:value")
	}

	id, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, "", 0, fmt.Errorf("invalid id %q: %w", parts[0], err)
	}

	value, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return 0, "", 0, fmt.Errorf("invalid value %q: %w", parts[2], err)
	}

	return id, parts[1], value, nil
}

func init() {
	rootCmd.AddCommand(sortCmd)
}
