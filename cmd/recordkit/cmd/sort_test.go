package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestParseRecordArg(t *testing.T) {
	t.Run("valid triple", func(t *testing.T) {
		id, name, value, err := parseRecordArg("1:Alpha:42.5")
		require.NoError(t, err)
		assert.Equal(t, 1, id)
		assert.Equal(t, "Alpha", name)
		assert.Equal(t, 42.5, value)
	})

	t.Run("negative id and value", func(t *testing.T) {
		id, name, value, err := parseRecordArg("-3:Minus:-0.5")
		require.NoError(t, err)
		assert.Equal(t, -3, id)
		assert.Equal(t, "Minus", name)
		assert.Equal(t, -0.5, value)
	})

	t.Run("empty name", func(t *testing.T) {
		id, name, value, err := parseRecordArg("7::1")
		require.NoError(t, err)
		assert.Equal(t, 7, id)
		assert.Empty(t, name)
		assert.Equal(t, 1.0, value)
	})

	t.Run("missing parts", func(t *testing.T) {
		_, _, _, err := parseRecordArg("1:OnlyTwo")
		assert.Error(t, err)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		_, _, _, err := parseRecordArg("x:Name:1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid id")
	})

	t.Run("non-numeric value", func(t *testing.T) {
		_, _, _, err := parseRecordArg("1:Name:abc")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid value")
	})
}

func TestSortCommand(t *testing.T) {
	t.Run("sorts by id", func(t *testing.T) {
		out, err := executeCommand(t, "sort", "3:Gamma:9.75", "1:Alpha:42.5", "2:Beta:17.25")
		require.NoError(t, err)

		want := "id=1 name=\"Alpha\" value=42.50\n" +
			"id=2 name=\"Beta\" value=17.25\n" +
			"id=3 name=\"Gamma\" value=9.75\n"
		assert.Equal(t, want, out)
	})

	t.Run("rejects malformed triple", func(t *testing.T) {
		_, err := executeCommand(t, "sort", "not-a-record")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid record")
	})
}
