package ports

import "github.com/AntonioJCosta/runonsave/internal/core/domain/rule"

/*
CommandResolver defines the contract for turning a saved file into the
list of commands to run. This is a driven port over the rule matcher and
the command templater.
*/
type CommandResolver interface {
	Resolve(filePath string, mode rule.TriggerMode) ([]rule.ResolvedCommand, error)
}
