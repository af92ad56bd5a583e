package console

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"

	"github.com/AntonioJCosta/runonsave/internal/core/ports"
	"github.com/AntonioJCosta/runonsave/internal/handlers/ui"
)

// clearScreen moves the cursor home and erases the display.
const clearScreen = "\033[H\033[2J"

// Reporter writes run-on-save messages to a console. It is safe for concurrent use.
type Reporter struct {
	mu       sync.Mutex
	out      io.Writer
	terminal bool
}

// NewReporter creates a Reporter writing to out.
func NewReporter(out io.Writer) ports.Reporter {
	return &Reporter{out: out, terminal: isTerminal(out)}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (r *Reporter) Output(message string) {
	r.println(message)
}

func (r *Reporter) Status(message string) {
	r.println(ui.InfoColor(message))
}

func (r *Reporter) Error(message string) {
	r.println(ui.ErrorColor(message))
}

// Clear erases the screen. It does nothing when the output is not a terminal,
// so redirected logs are never filled with escape codes.
func (r *Reporter) Clear() {
	if !r.terminal {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprint(r.out, clearScreen)
}

func (r *Reporter) println(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintln(r.out, message)
}
