package scaffold

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/edlight/skafo/internal/classify"
)

var placeholderPattern = regexp.MustCompile(`\{\{(\d+)\}\}`)

// Validate renders every committed template table and checks the result is
// well formed: no empty tables, no blank labels, and the i-th {{i}}
// placeholder backed by exactly one blank. Run once at startup; a non-nil
// result means a table edit broke a template.
func Validate() error {
	var errs []error

	for cat, table := range methodTables {
		if _, ok := table[classify.TopicGeneral]; !ok {
			errs = append(errs, fmt.Errorf("method table %s: no general fallback row", cat))
		}
		for topic, labels := range table {
			errs = append(errs, checkLabels(fmt.Sprintf("method %s/%s", cat, topic), labels))
		}
	}
	for cat, labels := range categoryAnswers {
		errs = append(errs, checkLabels(fmt.Sprintf("answers %s", cat), labels))
	}
	for cat, labels := range essayOutlines {
		errs = append(errs, checkLabels(fmt.Sprintf("essay %s", cat), labels))
	}
	errs = append(errs, checkLabels("essay fallback", essayGeneric))
	errs = append(errs, checkLabels("generic fallback", genericFallback))

	for topic, framing := range mathFillBlank {
		errs = append(errs, checkScaffold(fmt.Sprintf("fill-blank math/%s", topic), single(framing)))
	}
	for cat, framing := range fillBlankFramings {
		errs = append(errs, checkScaffold(fmt.Sprintf("fill-blank %s", cat), single(framing)))
	}

	return errors.Join(errs...)
}

func checkLabels(name string, labels []string) error {
	if len(labels) == 0 {
		return fmt.Errorf("%s: empty label list", name)
	}
	return checkScaffold(name, numbered(labels...))
}

// checkScaffold verifies placeholder/blank parity on a rendered template:
// as many placeholders as blanks, numbered 0..n-1 in order, every blank
// labeled.
func checkScaffold(name string, s *Scaffold) error {
	refs := placeholderPattern.FindAllStringSubmatch(s.Text, -1)
	if len(refs) != len(s.Blanks) {
		return fmt.Errorf("%s: %d placeholders for %d blanks", name, len(refs), len(s.Blanks))
	}
	for i, ref := range refs {
		if ref[1] != strconv.Itoa(i) {
			return fmt.Errorf("%s: placeholder %s out of order at position %d", name, ref[0], i)
		}
	}
	for i, blank := range s.Blanks {
		if strings.TrimSpace(blank.Label) == "" {
			return fmt.Errorf("%s: blank %d has an empty label", name, i)
		}
	}
	return nil
}
