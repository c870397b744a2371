package harness

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/asadandasad/openrw-editor/internal/diag"
	"github.com/asadandasad/openrw-editor/internal/testutil/golden"
)

func plainColors(t *testing.T) {
	t.Helper()
	old := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = old })
}

func TestWriteReportAllPass(t *testing.T) {
	plainColors(t)
	var buf bytes.Buffer

	ok := WriteReport(diag.New(&buf), []Outcome{
		{Check: "File Structure", Passed: true},
		{Check: "Dependencies", Passed: true},
		{Check: "CMake Configuration", Passed: true},
		{Check: "Compilation", Passed: true},
		{Check: "Code Quality", Passed: true},
		{Check: "Executable Basic", Passed: true},
	})

	assert.True(t, ok)
	golden.Assert(t, "report_all_pass", buf.String())
}

func TestWriteReportMixed(t *testing.T) {
	plainColors(t)
	var buf bytes.Buffer

	ok := WriteReport(diag.New(&buf), []Outcome{
		{Check: "File Structure", Passed: true},
		{Check: "Dependencies", Passed: false},
		{Check: "CMake Configuration", Passed: true},
		{Check: "Compilation", Passed: true},
		{Check: "Code Quality", Passed: false},
		{Check: "Executable Basic", Passed: true},
	})

	assert.False(t, ok)
	golden.Assert(t, "report_mixed", buf.String())
}

func TestWriteReportEmptyOutcomeList(t *testing.T) {
	plainColors(t)
	var buf bytes.Buffer

	// degenerate but total: zero checks means 0/0 passed
	ok := WriteReport(diag.New(&buf), nil)

	assert.True(t, ok)
	assert.Contains(t, buf.String(), "Summary: 0/0 tests passed")
}
