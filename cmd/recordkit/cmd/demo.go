package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ssargent/recordkit/pkg/record"
)

// demoCmd represents the demo command
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the create/sort/present/release demo",
	Long: `Run the standard record lifecycle sequence: create several records,
sort them by id, present each, then release each exactly once.

Example:
  recordkit demo`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		factory := record.NewFactory(record.FactoryConfig{Logger: logger})

		items := []struct {
			id    int
			name  string
			value float64
		}{
			{3, "Gamma", 9.75},
			{1, "Alpha", 42.5},
			{2, "Beta", 17.25},
		}

		recs := make([]*record.Record, 0, len(items))
		for _, it := range items {
			r, err := factory.New(it.id, it.name, it.value)
			if err != nil {
				return fmt.Errorf("failed to create record %d: %w", it.id, err)
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

func init() {
	rootCmd.AddCommand(demoCmd)
}
