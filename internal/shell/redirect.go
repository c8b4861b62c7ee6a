package shell

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"minish/internal/parser"
)

// setupRedirects wires the command's standard input and output according to
// the record, opening files through the shell's filesystem. A background job
// that asked for redirection without naming a file is pointed at the null
// device so it never touches the terminal. Opened files are appended to
// closers; the caller must close them after the command finishes, on every
// path.
func (s *Shell) setupRedirects(cmd *exec.Cmd, rec *parser.Command, closers *[]io.Closer) error {
	if rec.WantsInput {
		name := rec.InputFile
		if name == "" {
			name = os.DevNull
		}
		f, err := s.fs.Open(name)
		if err != nil {
			return fmt.Errorf("cannot open %s for input", name)
		}
		cmd.Stdin = f
		*closers = append(*closers, f)
	} else {
		cmd.Stdin = s.stdin
	}

	if rec.WantsOutput {
		name := rec.OutputFile
		if name == "" {
			name = os.DevNull
		}
		f, err := s.fs.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return fmt.Errorf("cannot open %s for output", name)
		}
		cmd.Stdout = f
		*closers = append(*closers, f)
	} else {
		cmd.Stdout = s.stdout
	}

	cmd.Stderr = s.stderr
	return nil
}

func closeAll(closers []io.Closer) {
	for _, c := range closers {
		_ = c.Close()
	}
}
