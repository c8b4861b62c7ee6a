package shell

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
	"syscall"

	"minish/internal/parser"
)

// runExternal launches the command described by rec as a child process. A
// command that cannot be found or whose redirection files cannot be opened
// is reported and recorded as a failed status; the shell keeps going. The
// returned error is non-nil only when process creation itself fails, which
// is fatal to the shell.
func (s *Shell) runExternal(rec *parser.Command) error {
	path, err := exec.LookPath(rec.Words[0])
	if err != nil {
		fmt.Fprintf(s.stderr, "%s: no such file or directory\n", rec.Words[0])
		// The status records foreground outcomes only; a background job
		// that never came to exist leaves it alone.
		if !rec.Background {
			s.status.SetExit(1)
		}
		return nil
	}

	cmd := exec.Command(path, rec.Words[1:]...)
	// The child sees the name the user typed, not the resolved path.
	cmd.Args[0] = rec.Words[0]

	disposition := Interruptible
	if rec.Background {
		disposition = Shielded
	}
	applyDisposition(cmd, disposition)

	var closers []io.Closer
	if err := s.setupRedirects(cmd, rec, &closers); err != nil {
		closeAll(closers)
		fmt.Fprintln(s.stderr, err)
		s.status.SetExit(1)
		return nil
	}

	if err := cmd.Start(); err != nil {
		closeAll(closers)
		return fmt.Errorf("cannot create process for %s: %w", rec.Words[0], err)
	}

	if rec.Background {
		pid := cmd.Process.Pid
		s.addJob(pid, rec.Words)
		fmt.Fprintf(s.stdout, "background pid is %d\n", pid)
		go func() {
			err := cmd.Wait()
			closeAll(closers)
			s.done <- completion{pid: pid, outcome: outcomeString(err)}
		}()
		return nil
	}

	err = cmd.Wait()
	closeAll(closers)
	if ws, ok := waitStatus(err); ok && ws.Signaled() {
		s.status.SetSignal(int(ws.Signal()))
		// A signal termination is reported the moment it is observed, not
		// just on the next status call.
		fmt.Fprintln(s.stdout, s.status)
	} else {
		s.status.SetExit(exitCode(err))
	}
	return nil
}

func waitStatus(err error) (syscall.WaitStatus, bool) {
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		if ws, ok := ee.Sys().(syscall.WaitStatus); ok {
			return ws, true
		}
	}
	return 0, false
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return ee.ExitCode()
	}
	return 1
}

func outcomeString(err error) string {
	if ws, ok := waitStatus(err); ok && ws.Signaled() {
		return fmt.Sprintf("terminated by signal %d", int(ws.Signal()))
	}
	return fmt.Sprintf("exit value %d", exitCode(err))
}
