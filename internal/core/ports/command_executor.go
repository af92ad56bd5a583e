package ports

// CommandExecutor defines an interface for executing shell commands.
type CommandExecutor interface {
	// Execute runs command through shellName (empty means the user's default shell).
	Execute(shellName, command string) (stdout string, stderr string, err error)
}
