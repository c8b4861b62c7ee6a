package shell

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/spf13/afero"

	"minish/internal/config"
	"minish/internal/parser"
)

// Shell owns all interpreter state: the prompt reader, the tracked
// background jobs, and the outcome of the last foreground command.
type Shell struct {
	homeDir    string
	fs         afero.Fs
	status     *Status
	jobs       map[int]*Job
	nextJobID  int
	done       chan completion
	signalChan chan os.Signal
	reader     *readline.Instance

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func New(cfg *config.Config) (*Shell, error) {
	prompt := cfg.Prompt
	if cfg.Color {
		prompt = color.New(color.FgGreen).Sprint(prompt)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt: prompt,
	})
	if err != nil {
		return nil, fmt.Errorf("error initializing readline: %w", err)
	}

	return &Shell{
		homeDir:    cfg.HomeDir,
		fs:         afero.NewOsFs(),
		status:     NewStatus(),
		jobs:       make(map[int]*Job),
		nextJobID:  1,
		done:       make(chan completion, 64),
		signalChan: make(chan os.Signal, 1),
		reader:     rl,
		stdin:      os.Stdin,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
	}, nil
}

// Run drives the interpreter until exit or end of input. The returned error
// is always a process-creation failure, the one unrecoverable condition in
// the whole system.
func (s *Shell) Run() error {
	defer s.reader.Close()

	s.ignoreInterrupts()
	defer signal.Stop(s.signalChan)

	for {
		s.reap()

		line, err := s.reader.Readline()
		if err == readline.ErrInterrupt {
			continue
		} else if err == io.EOF {
			s.killJobs()
			return nil
		} else if err != nil {
			return fmt.Errorf("error reading input: %w", err)
		}

		quit, err := s.Execute(line)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// Execute runs one already-read line: parse, intercept builtins, or launch
// an external command. Split out from Run so it can be driven without a
// terminal.
func (s *Shell) Execute(line string) (quit bool, err error) {
	rec, perr := parser.Parse(line)
	if perr != nil {
		fmt.Fprintln(s.stderr, perr)
		return false, nil
	}

	if rec.Empty() || rec.Comment() {
		return false, nil
	}

	if handled, quit := s.runBuiltin(rec); handled {
		return quit, nil
	}

	return false, s.runExternal(rec)
}
