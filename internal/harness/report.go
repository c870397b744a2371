package harness

import (
	"strings"

	"github.com/asadandasad/openrw-editor/internal/diag"
)

const reportRule = 50

// WriteReport renders the final report: one fixed-width row per outcome,
// a summary count, and a closing verdict line. Returns true iff every
// outcome passed.
func WriteReport(log *diag.Sink, outcomes []Outcome) bool {
	rule := strings.Repeat("=", reportRule)
	log.Info(rule)
	log.Info("BUILD TEST REPORT")
	log.Info(rule)

	passed := 0
	for _, o := range outcomes {
		if o.Passed {
			log.Good("%-20s : PASS", o.Check)
			passed++
		} else {
			log.Bad("%-20s : FAIL", o.Check)
		}
	}

	log.Blank()
	log.Info("Summary: %d/%d tests passed", passed, len(outcomes))

	if passed == len(outcomes) {
		log.Good("🎉 All tests passed! Build is ready for use.")
		return true
	}
	log.Bad("❌ Some tests failed. Please check the issues above.")
	return false
}
