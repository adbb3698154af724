package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ssargent/recordkit/pkg/calc"
)

// calcCmd represents the calc command
var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Arithmetic helpers",
	Long:  `Arithmetic helpers: add, mul, div and seq.`,
}

var calcAddCmd = &cobra.Command{
	Use:   "add <a> <b>",
	Short: "Add two numbers",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, b, err := parseOperands(args)
		if err != nil {
			return err
		}

		c := calc.NewCalculator("cli", logger)
		defer c.Close() //nolint:errcheck

		fmt.Fprintf(cmd.OutOrStdout(), "%g\n", c.Add(a, b))
		return nil
	},
}

var calcMulCmd = &cobra.Command{
	Use:   "mul <a> <b>",
	Short: "Multiply two numbers",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, b, err := parseOperands(args)
		if err != nil {
			return err
		}

		c := calc.NewCalculator("cli", logger)
		defer c.Close() //nolint:errcheck

		fmt.Fprintf(cmd.OutOrStdout(), "%g\n", c.Multiply(a, b))
		return nil
	},
}

var calcDivCmd = &cobra.Command{
	Use:   "div <a> <b>",
	Short: "Divide two numbers",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, b, err := parseOperands(args)
		if err != nil {
			return err
		}

		c := calc.NewCalculator("cli", logger)
		defer c.Close() //nolint:errcheck

		result, err := c.Divide(a, b)
		if err != nil {
			return fmt.Errorf("failed to divide: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%g\n", result)
		return nil
	},
}

var calcSeqCmd = &cobra.Command{
	Use:   "seq <n>",
	Short: "Generate the first n positive integers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid count %q: %w", args[0], err)
		}

		c := calc.NewCalculator("cli", logger)
		defer c.Close() //nolint:errcheck

		seq := c.Sequence(n)
		out := make([]string, len(seq))
		for i, v := range seq {
			out[i] = strconv.Itoa(v)
		}

		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(out, " "))
		return nil
	},
}

func parseOperands(args []string) (float64, float64, error) {
	a, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid operand %q: %w", args[0], err)
	}
	b, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid operand %q: %w", args[1], err)
	}
	return a, b, nil
}

func init() {
	rootCmd.AddCommand(calcCmd)
	calcCmd.AddCommand(calcAddCmd)
	calcCmd.AddCommand(calcMulCmd)
	calcCmd.AddCommand(calcDivCmd)
	calcCmd.AddCommand(calcSeqCmd)
}
