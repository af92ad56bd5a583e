/*
Package rulematching decides which configured rules fire for one saved file.
Patterns are compiled once per configuration load into a RuleSet, so a
malformed pattern is reported when the configuration is loaded rather than
on every save.
*/
package rulematching

import (
	"errors"
	"regexp"

	"github.com/AntonioJCosta/runonsave/internal/core/domain/rule"
	"github.com/AntonioJCosta/runonsave/internal/core/domain/wslpath"
)

// ErrEmptyFilePath is returned when a selection is requested for an empty path.
var ErrEmptyFilePath = errors.New("file path cannot be empty")

type compiledRule struct {
	source   rule.Rule
	match    *regexp.Regexp // nil means always matches
	notMatch *regexp.Regexp // nil means never excludes
}

// RuleSet holds rules with their patterns already compiled, in configuration order.
type RuleSet struct {
	compiled []compiledRule
}

// Compile compiles the match and notMatch patterns of every rule.
// The first malformed pattern fails the whole set with a *rule.InvalidPatternError.
func Compile(rules []rule.Rule) (*RuleSet, error) {
	compiled := make([]compiledRule, 0, len(rules))
	for i, r := range rules {
		cr := compiledRule{source: r}

		var err error
		if cr.match, err = compilePattern(i, "match", r.Match); err != nil {
			return nil, err
		}
		if cr.notMatch, err = compilePattern(i, "notMatch", r.NotMatch); err != nil {
			return nil, err
		}
		compiled = append(compiled, cr)
	}
	return &RuleSet{compiled: compiled}, nil
}

func compilePattern(index int, field, pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &rule.InvalidPatternError{Index: index, Field: field, Pattern: pattern, Err: err}
	}
	return re, nil
}

// Len returns the number of rules in the set.
func (s *RuleSet) Len() int {
	return len(s.compiled)
}

// Select returns the active rules for filePath under the given trigger mode.
// Exclusion wins over a match, and the result keeps configuration order.
// An empty result means there is nothing to run.
func (s *RuleSet) Select(filePath string, mode rule.TriggerMode) ([]rule.Rule, error) {
	if filePath == "" {
		return nil, ErrEmptyFilePath
	}

	altPath := wslpath.Translate(filePath)
	active := []rule.Rule{}
	for _, cr := range s.compiled {
		if !keepForMode(cr.source, mode) {
			continue
		}
		testPath := filePath
		if cr.source.WSL {
			testPath = altPath
		}
		if cr.matches(testPath) {
			active = append(active, cr.source)
		}
	}
	return active, nil
}

func (cr compiledRule) matches(testPath string) bool {
	isMatch := cr.match == nil || cr.match.MatchString(testPath)
	isExcluded := cr.notMatch != nil && cr.notMatch.MatchString(testPath)
	return isMatch && !isExcluded
}

func keepForMode(r rule.Rule, mode rule.TriggerMode) bool {
	if mode == rule.TriggerShortcut {
		return r.UseShortcut
	}
	return !r.UseShortcut
}

// SelectActiveRules compiles rules and selects the active ones for filePath in one step.
func SelectActiveRules(filePath string, rules []rule.Rule, mode rule.TriggerMode) ([]rule.Rule, error) {
	set, err := Compile(rules)
	if err != nil {
		return nil, err
	}
	return set.Select(filePath, mode)
}
