package oscommand

import "os/exec"

// runInTerminal is unsupported on windows; commands always run with pipes.
func runInTerminal(*exec.Cmd) (string, bool, error) {
	return "", false, nil
}
