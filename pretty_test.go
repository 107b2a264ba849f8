package tabular

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrettyWriter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePretty(&buf, samplePeople(), personDefinition()))
	out := buf.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5, out) // header, separator, 3 rows
	assert.Contains(t, lines[0], "ID")
	assert.Contains(t, lines[0], "IsActive")
	assert.Contains(t, lines[2], "Alice")
	assert.Contains(t, lines[3], "False")
	assert.NotContains(t, out, `"`, "pretty output is not quoted")
}

func TestPrettyWriter_Index(t *testing.T) {
	var buf bytes.Buffer
	w := &PrettyWriter[person]{Index: true}
	require.NoError(t, w.Write(&buf, samplePeople(), personDefinition()))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(lines[4]), "3"))
}

func TestErrorReport(t *testing.T) {
	rows, err := NewMapper(personDefinition()).ReadAll(Lines(
		[]string{"ID", "Name", "IsActive"},
		[]string{"x", "A", "True"},
		[]string{"2", "B", "True"},
		[]string{"3", "C", ""},
	))
	require.NoError(t, err)

	report := ErrorReport(rows)
	assert.Contains(t, report, "InvalidFormat")
	assert.Contains(t, report, "MissingValue")
	assert.Contains(t, report, "The value of 'IsActive' (IsActive) was NULL on line 4.")
	assert.Len(t, strings.Split(report, "\n"), 4) // header, separator, 2 errors

	assert.Empty(t, ErrorReport(rows[1:2]))
}
