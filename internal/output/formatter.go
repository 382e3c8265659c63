// Package output renders a violation list in one of several formats for
// CLI consumption: plain text, JSON, and JUnit XML for CI integration.
package output

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/archguard/archguard/internal/rules"
)

// Formatter renders a violation list as a string.
type Formatter interface {
	Format(violations []rules.Violation) (string, error)
}

var (
	ruleHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	pathStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	arrowStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	messageStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// TextFormatter renders violations grouped by rule, colorized with
// lipgloss. A NoCircularDependencies violation's Path holds an
// "A -> B -> C -> A" cycle chain rather than a single file, so its arrows
// are styled separately from an ordinary module-path string.
type TextFormatter struct{}

func (f *TextFormatter) Format(violations []rules.Violation) (string, error) {
	if len(violations) == 0 {
		return "", nil
	}

	grouped := make(map[string][]rules.Violation)
	var ruleOrder []string
	for _, v := range violations {
		if _, seen := grouped[v.Rule]; !seen {
			ruleOrder = append(ruleOrder, v.Rule)
		}
		grouped[v.Rule] = append(grouped[v.Rule], v)
	}

	var sb strings.Builder
	for _, rule := range ruleOrder {
		sb.WriteString(ruleHeaderStyle.Render(rule))
		sb.WriteString("\n")
		for _, v := range grouped[rule] {
			sb.WriteString("  ")
			sb.WriteString(renderPath(v.Path))
			sb.WriteString(": ")
			sb.WriteString(messageStyle.Render(v.Message))
			sb.WriteString("\n")
		}
	}
	return sb.String(), nil
}

// renderPath styles an ordinary module path plainly, but dims the " -> "
// separators in a cycle chain so the repeated nodes stay readable.
func renderPath(path string) string {
	if !strings.Contains(path, " -> ") {
		return pathStyle.Render(path)
	}
	segments := strings.Split(path, " -> ")
	for i, seg := range segments {
		segments[i] = pathStyle.Render(seg)
	}
	return strings.Join(segments, arrowStyle.Render(" -> "))
}

// JSONFormatter formats violations as a JSON report.
type JSONFormatter struct {
	Version string
}

// JSONOutput is the top-level JSON report structure.
type JSONOutput struct {
	Version    string          `json:"version"`
	Timestamp  string          `json:"timestamp"`
	Violations int             `json:"violations"`
	Results    []JSONViolation `json:"results"`
}

// JSONViolation is a single violation in JSON form.
type JSONViolation struct {
	Rule    string `json:"rule"`
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (f *JSONFormatter) Format(violations []rules.Violation) (string, error) {
	output := JSONOutput{
		Version:    f.Version,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Violations: len(violations),
		Results:    make([]JSONViolation, 0, len(violations)),
	}

	for _, v := range violations {
		output.Results = append(output.Results, JSONViolation{
			Rule:    v.Rule,
			Path:    v.Path,
			Message: v.Message,
		})
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data), nil
}

// JUnitFormatter formats violations as JUnit XML, grouped by rule so CI
// systems can surface one failing "test" per rule violated.
type JUnitFormatter struct{}

type JUnitTestSuites struct {
	XMLName    xml.Name         `xml:"testsuites"`
	XMLNS      string           `xml:"xmlns,attr,omitempty"`
	Name       string           `xml:"name,attr"`
	Tests      int              `xml:"tests,attr"`
	Failures   int              `xml:"failures,attr"`
	Errors     int              `xml:"errors,attr"`
	Time       string           `xml:"time,attr"`
	TestSuites []JUnitTestSuite `xml:"testsuite"`
}

type JUnitTestSuite struct {
	Name      string          `xml:"name,attr"`
	Tests     int             `xml:"tests,attr"`
	Failures  int             `xml:"failures,attr"`
	Errors    int             `xml:"errors,attr"`
	Time      string          `xml:"time,attr"`
	Timestamp string          `xml:"timestamp,attr"`
	TestCases []JUnitTestCase `xml:"testcase"`
}

type JUnitTestCase struct {
	Name      string        `xml:"name,attr"`
	Classname string        `xml:"classname,attr"`
	Time      string        `xml:"time,attr"`
	Failure   *JUnitFailure `xml:"failure,omitempty"`
}

type JUnitFailure struct {
	Message string `xml:"message,attr"`
	Type    string `xml:"type,attr"`
	Content string `xml:",chardata"`
}

func (f *JUnitFormatter) Format(violations []rules.Violation) (string, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)

	ruleViolations := make(map[string][]rules.Violation)
	for _, v := range violations {
		ruleViolations[v.Rule] = append(ruleViolations[v.Rule], v)
	}

	ruleNames := make([]string, 0, len(ruleViolations))
	for ruleName := range ruleViolations {
		ruleNames = append(ruleNames, ruleName)
	}
	sort.Strings(ruleNames)

	var testSuites []JUnitTestSuite
	totalTests := 0
	totalFailures := len(violations)

	for _, ruleName := range ruleNames {
		ruleViols := ruleViolations[ruleName]
		testCases := make([]JUnitTestCase, 0, len(ruleViols))

		for _, v := range ruleViols {
			testCases = append(testCases, JUnitTestCase{
				Name:      v.Path,
				Classname: ruleName,
				Time:      "0",
				Failure: &JUnitFailure{
					Message: v.Message,
					Type:    "ArchitecturalViolation",
					Content: fmt.Sprintf("%s: %s", v.Path, v.Message),
				},
			})
		}

		testSuites = append(testSuites, JUnitTestSuite{
			Name:      ruleName,
			Tests:     len(testCases),
			Failures:  len(testCases),
			Time:      "0",
			Timestamp: timestamp,
			TestCases: testCases,
		})
		totalTests += len(testCases)
	}

	if len(violations) == 0 {
		testSuites = append(testSuites, JUnitTestSuite{
			Name:      "archguard",
			Tests:     1,
			Failures:  0,
			Time:      "0",
			Timestamp: timestamp,
			TestCases: []JUnitTestCase{
				{Name: "all-rules", Classname: "archguard", Time: "0"},
			},
		})
		totalTests = 1
	}

	output := JUnitTestSuites{
		XMLNS:      "https://github.com/archguard/archguard",
		Name:       "archguard",
		Tests:      totalTests,
		Failures:   totalFailures,
		Time:       "0",
		TestSuites: testSuites,
	}

	data, err := xml.MarshalIndent(output, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal XML: %w", err)
	}
	return xml.Header + string(data), nil
}

// GetFormatter returns a formatter for the named format.
func GetFormatter(format string, version string) (Formatter, error) {
	switch strings.ToLower(format) {
	case "text", "":
		return &TextFormatter{}, nil
	case "json":
		return &JSONFormatter{Version: version}, nil
	case "junit", "junit-xml":
		return &JUnitFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown format: %s (supported: text, json, junit)", format)
	}
}
