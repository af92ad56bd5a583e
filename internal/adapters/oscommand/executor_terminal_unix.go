//go:build !windows

package oscommand

import (
	"bytes"
	"io"
	"os"
	"os/exec"
	"syscall"

	"github.com/creack/pty"
)

// runInTerminal runs cmd with its output on a pseudo-terminal and reports
// ok=false when none is available. Stdin is the null device and the command
// gets a new session without a controlling terminal, so a command that reads
// input sees EOF instead of waiting forever.
func runInTerminal(cmd *exec.Cmd) (output string, ok bool, err error) {
	devNull, err := os.Open(os.DevNull)
	if err != nil {
		return "", false, nil
	}
	defer devNull.Close()
	cmd.Stdin = devNull

	ptmx, err := pty.StartWithAttrs(cmd, nil, &syscall.SysProcAttr{Setsid: true})
	if err != nil {
		return "", false, nil
	}
	defer ptmx.Close()

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, ptmx) // read returns EIO once the process exits

	return buf.String(), true, cmd.Wait()
}
