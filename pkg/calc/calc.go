// Package calc provides the arithmetic helpers and the lifecycle-logged
// calculator that ship alongside the record toolkit.
package calc

import "github.com/rs/zerolog"

// Errors
var (
	ErrDivideByZero     = &CalcError{"divide by zero"}
	ErrCalculatorClosed = &CalcError{"calculator already closed"}
)

// CalcError represents a calculator error
type CalcError struct {
	Message string
}

func (e *CalcError) Error() string {
	return e.Message
}

// Add returns the sum of a and b.
func Add(a, b float64) float64 {
	return a + b
}

// Multiply returns the product of a and b.
func Multiply(a, b float64) float64 {
	return a * b
}

// Divide returns a divided by b, or ErrDivideByZero when b is zero.
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivideByZero
	}
	return a / b, nil
}

// Calculator is a named instance over the arithmetic helpers whose
// construction and shutdown emit lifecycle log events. Close it exactly
// once; a second Close returns ErrCalculatorClosed.
type Calculator struct {
	name   string
	log    zerolog.Logger
	closed bool
}

// NewCalculator creates a calculator and logs its construction.
func NewCalculator(name string, logger zerolog.Logger) *Calculator {
	logger.Info().Str("calculator", name).Msg("calculator created")
	return &Calculator{
		name: name,
		log:  logger,
	}
}

// Add logs and returns the sum of a and b.
func (c *Calculator) Add(a, b float64) float64 {
	result := Add(a, b)
	c.log.Debug().
		Str("calculator", c.name).
		Float64("a", a).
		Float64("b", b).
		Float64("result", result).
		Msg("add")
	return result
}

// Multiply logs and returns the product of a and b.
func (c *Calculator) Multiply(a, b float64) float64 {
	result := Multiply(a, b)
	c.log.Debug().
		Str("calculator", c.name).
		Float64("a", a).
		Float64("b", b).
		Float64("result", result).
		Msg("multiply")
	return result
}

// Divide logs and returns a divided by b.
func (c *Calculator) Divide(a, b float64) (float64, error) {
	result, err := Divide(a, b)
	if err != nil {
		c.log.Error().
			Str("calculator", c.name).
			Float64("a", a).
			Float64("b", b).
			Msg("divide by zero")
		return 0, err
	}
	c.log.Debug().
		Str("calculator", c.name).
		Float64("a", a).
		Float64("b", b).
		Float64("result", result).
		Msg("divide")
	return result, nil
}

// Sequence returns the first n positive integers. A non-positive n
// yields an empty slice.
func (c *Calculator) Sequence(n int) []int {
	if n <= 0 {
		return []int{}
	}

	seq := make([]int, n)
	for i := range seq {
		seq[i] = i + 1
	}

	c.log.Debug().
		Str("calculator", c.name).
		Int("n", n).
		Msg("sequence generated")
	return seq
}

// Close shuts the calculator down and logs its destruction, exactly
// once.
func (c *Calculator) Close() error {
	if c.closed {
		return ErrCalculatorClosed
	}
	c.closed = true
	c.log.Info().Str("calculator", c.name).Msg("calculator destroyed")
	return nil
}
