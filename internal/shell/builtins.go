package shell

import (
	"fmt"
	"os"

	"minish/internal/parser"
)

// runBuiltin intercepts the reserved commands and runs them in the shell
// process itself, before any child is created. quit tells the loop to stop.
func (s *Shell) runBuiltin(rec *parser.Command) (handled, quit bool) {
	switch rec.Words[0] {
	case "exit":
		s.killJobs()
		return true, true
	case "status":
		fmt.Fprintln(s.stdout, s.status)
		s.status.Reset()
		return true, false
	case "cd":
		s.changeDirectory(rec.Words)
		return true, false
	}
	return false, false
}

func (s *Shell) changeDirectory(words []string) {
	dir := s.homeDir
	if len(words) > 1 {
		dir = words[1]
	}

	if err := os.Chdir(dir); err != nil {
		fmt.Fprintf(s.stderr, "cd: %s: no such file or directory\n", dir)
		s.status.SetExit(1)
		return
	}
	s.status.SetExit(0)
}
