package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatters(t *testing.T) {
	assert.Contains(t, FormatSuccess("done"), "done")
	assert.Contains(t, FormatSuccess("done"), SuccessIcon)
	assert.Contains(t, FormatError("failed"), ErrorIcon)
	assert.Contains(t, FormatInfo("note"), "note")
	assert.Contains(t, FormatTitle("STT"), "STT")
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	table := NewTable(&buf, "Bulan", "Jumlah STT")

	require.NoError(t, table.WriteHeader())
	require.NoError(t, table.WriteRow("januari", 5))
	require.NoError(t, table.WriteRow("maret", 3))
	require.NoError(t, table.Flush())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Bulan")
	assert.Contains(t, lines[1], "─")
	assert.True(t, strings.HasPrefix(lines[2], "januari"))
	assert.True(t, strings.HasSuffix(lines[2], "5"))
	assert.True(t, strings.HasPrefix(lines[3], "maret"))
}
