package shell

import (
	"os/exec"
	"os/signal"
	"syscall"
)

// Disposition selects how a child process reacts to interrupts typed at the
// terminal.
type Disposition int

const (
	// Interruptible leaves the child in the shell's process group, so a
	// terminal interrupt reaches and terminates it. Exec restores the
	// default handler in the new program image.
	Interruptible Disposition = iota

	// Shielded places the child in its own process group, so interrupts
	// typed at the prompt never reach it.
	Shielded
)

// applyDisposition configures the command for the given role. Must run
// before Start so the new program image already carries the disposition.
func applyDisposition(cmd *exec.Cmd, d Disposition) {
	if d == Shielded {
		cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	}
}

// ignoreInterrupts makes the shell itself survive SIGINT for its entire
// lifetime. Only the currently running foreground child may die on an
// interrupt; the shell and all background jobs keep going.
func (s *Shell) ignoreInterrupts() {
	signal.Notify(s.signalChan, syscall.SIGINT)
	go func() {
		for range s.signalChan {
			// Swallowed.
		}
	}()
}
