package cli

import (
	"strconv"

	"github.com/AntonioJCosta/runonsave/internal/core/domain/rule"
	"github.com/AntonioJCosta/runonsave/internal/handlers/ui"
)

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func flagMark(b bool) string {
	if b {
		return ui.FlagColor("x")
	}
	return ""
}

func patternOrDash(s string) string {
	if s == "" {
		return ui.DetailColor("-")
	}
	return ui.PatternColor(s)
}

func shellLabel(shell string) string {
	if shell == "" {
		return "default"
	}
	return shell
}

func ruleRows(rules []rule.Rule) [][]string {
	rows := make([][]string, 0, len(rules))
	for i, r := range rules {
		rows = append(rows, []string{
			strconv.Itoa(i),
			patternOrDash(r.Match),
			patternOrDash(r.NotMatch),
			ui.CommandColor(r.Cmd),
			flagMark(r.IsAsync),
			flagMark(r.UseShortcut),
			flagMark(r.WSL),
		})
	}
	return rows
}

func resolvedRows(commands []rule.ResolvedCommand) [][]string {
	rows := make([][]string, 0, len(commands))
	for i, c := range commands {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			ui.CodeColor(c.CommandText),
			flagMark(c.RunAsync),
			flagMark(c.UseAltPath),
		})
	}
	return rows
}
