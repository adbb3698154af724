package calc

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestAdd(t *testing.T) {
	testCases := []struct {
		name string
		a, b float64
		want float64
	}{
		{"positive", 2, 3, 5},
		{"negative", -2, -3, -5},
		{"mixed", -2, 5, 3},
		{"zero", 0, 0, 0},
		{"fractional", 1.5, 2.25, 3.75},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Add(tc.a, tc.b); got != tc.want {
				t.Errorf("Add(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestMultiply(t *testing.T) {
	testCases := []struct {
		name string
		a, b float64
		want float64
	}{
		{"positive", 2, 3, 6},
		{"by zero", 5, 0, 0},
		{"negative", -2, 3, -6},
		{"fractional", 0.5, 0.5, 0.25},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Multiply(tc.a, tc.b); got != tc.want {
				t.Errorf("Multiply(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestDivide(t *testing.T) {
	t.Run("simple division", func(t *testing.T) {
		got, err := Divide(10, 4)
		if err != nil {
			t.Fatalf("Divide failed: %v", err)
		}
		if got != 2.5 {
			t.Errorf("Divide(10, 4) = %v, want 2.5", got)
		}
	})

	t.Run("divide by zero", func(t *testing.T) {
		_, err := Divide(1, 0)
		if !errors.Is(err, ErrDivideByZero) {
			t.Errorf("expected ErrDivideByZero, got %v", err)
		}
	})

	t.Run("zero numerator", func(t *testing.T) {
		got, err := Divide(0, 5)
		if err != nil {
			t.Fatalf("Divide failed: %v", err)
		}
		if got != 0 {
			t.Errorf("Divide(0, 5) = %v, want 0", got)
		}
	})
}

func TestCalculator_Lifecycle(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	c := NewCalculator("test", logger)
	if !strings.Contains(buf.String(), "calculator created") {
		t.Errorf("construction not logged: %q", buf.String())
	}

	if got := c.Add(2, 3); got != 5 {
		t.Errorf("Add = %v, want 5", got)
	}
	if got := c.Multiply(2, 3); got != 6 {
		t.Errorf("Multiply = %v, want 6", got)
	}
	if got, err := c.Divide(6, 3); err != nil || got != 2 {
		t.Errorf("Divide = %v, %v; want 2, nil", got, err)
	}
	if _, err := c.Divide(1, 0); !errors.Is(err, ErrDivideByZero) {
		t.Errorf("expected ErrDivideByZero, got %v", err)
	}

	if err := c.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if !strings.Contains(buf.String(), "calculator destroyed") {
		t.Errorf("destruction not logged: %q", buf.String())
	}

	if err := c.Close(); !errors.Is(err, ErrCalculatorClosed) {
		t.Errorf("second Close: expected ErrCalculatorClosed, got %v", err)
	}
}

func TestCalculator_Sequence(t *testing.T) {
	c := NewCalculator("seq", zerolog.Nop())
	defer c.Close() //nolint:errcheck

	testCases := []struct {
		name string
		n    int
		want []int
	}{
		{"five", 5, []int{1, 2, 3, 4, 5}},
		{"one", 1, []int{1}},
		{"zero", 0, []int{}},
		{"negative", -3, []int{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := c.Sequence(tc.n)
			if len(got) != len(tc.want) {
				t.Fatalf("Sequence(%d) length = %d, want %d", tc.n, len(got), len(tc.want))
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("Sequence(%d)[%d] = %d, want %d", tc.n, i, got[i], tc.want[i])
				}
			}
		})
	}
}
