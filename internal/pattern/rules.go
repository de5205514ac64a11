// Package pattern recognizes the page-numbering conventions used in scanned
// book filenames and rewrites them with zero-padded page numbers.
//
// Rules are evaluated in a fixed order and the first recognizer that matches
// the whole filename wins. The package does no I/O.
package pattern

import (
	"regexp"
)

// Rule pairs a filename recognizer with the rewrite that pads its page number.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
	Rewrite func(groups []string, width int) string
}

// Proposal is the outcome of a successful match.
type Proposal struct {
	Rule string
	Name string
}

// Rule names, in priority order.
const (
	RulePartPage       = "part-page"
	RuleNameYearNumber = "name-year-number"
	RuleNameNumber     = "name-number"
)

// DefaultRules returns the built-in conventions in priority order.
//
// name-year-number currently rewrites exactly like name-number, but it stays
// ahead of the generic fallback so stricter conventions take precedence.
func DefaultRules() []Rule {
	return []Rule{
		{
			// 1_1.jpg, 12_3.png
			Name:    RulePartPage,
			Pattern: regexp.MustCompile(`^([0-9]+)_([0-9]+)\.(\w+)$`),
			Rewrite: func(g []string, width int) string {
				return g[1] + "_" + Pad(g[2], width) + "." + g[3]
			},
		},
		{
			// GBV 1950-1.png
			Name:    RuleNameYearNumber,
			Pattern: regexp.MustCompile(`^(.+\s[0-9]{4})-([0-9]+)\.(\w+)$`),
			Rewrite: func(g []string, width int) string {
				return g[1] + "-" + Pad(g[2], width) + "." + g[3]
			},
		},
		{
			// something-1.png
			Name:    RuleNameNumber,
			Pattern: regexp.MustCompile(`^(.+)-([0-9]+)\.(\w+)$`),
			Rewrite: func(g []string, width int) string {
				return g[1] + "-" + Pad(g[2], width) + "." + g[3]
			},
		},
	}
}

// Matcher applies an ordered rule list with a fixed pad width.
type Matcher struct {
	rules []Rule
	width int
}

// New creates a Matcher using the default rules. A width below 1 falls back
// to DefaultWidth.
func New(width int) *Matcher {
	return NewWithRules(DefaultRules(), width)
}

// NewWithRules creates a Matcher over a custom rule list.
func NewWithRules(rules []Rule, width int) *Matcher {
	if width < 1 {
		width = DefaultWidth
	}
	return &Matcher{rules: rules, width: width}
}

// Width returns the pad width used by the matcher.
func (m *Matcher) Width() int {
	return m.width
}

// Match returns the rewrite of the first rule that recognizes filename.
// The proposed name may equal filename; callers decide what a no-op means.
func (m *Matcher) Match(filename string) (Proposal, bool) {
	for _, rule := range m.rules {
		groups := rule.Pattern.FindStringSubmatch(filename)
		if groups == nil {
			continue
		}
		return Proposal{Rule: rule.Name, Name: rule.Rewrite(groups, m.width)}, true
	}
	return Proposal{}, false
}

// Propose returns the padded name for filename, or false if no rule matches.
func (m *Matcher) Propose(filename string) (string, bool) {
	p, ok := m.Match(filename)
	return p.Name, ok
}

var defaultMatcher = New(DefaultWidth)

// Propose runs the default rules at DefaultWidth.
func Propose(filename string) (string, bool) {
	return defaultMatcher.Propose(filename)
}
