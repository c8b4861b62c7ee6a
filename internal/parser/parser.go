package parser

import (
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"
)

// Command is the parsed form of one input line. It is built once per loop
// iteration and discarded at the end of it.
type Command struct {
	Words       []string
	Background  bool
	WantsInput  bool
	InputFile   string
	WantsOutput bool
	OutputFile  string
}

// Empty reports whether the line held no words at all.
func (c *Command) Empty() bool {
	return len(c.Words) == 0
}

// Comment reports whether the line is a comment.
func (c *Command) Comment() bool {
	return len(c.Words) > 0 && strings.HasPrefix(c.Words[0], "#")
}

// Parse splits one input line into a Command. Redirection operators consume
// the following word as their target; `&` marks the command as a background
// job wherever it appears on the line, matching the historical grammar
// rather than the trailing-only convention.
func Parse(line string) (*Command, error) {
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, "#") {
		return &Command{Words: []string{trimmed}}, nil
	}

	tokens, err := shellquote.Split(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	cmd := &Command{}
	for i := 0; i < len(tokens); i++ {
		switch tokens[i] {
		case "<":
			cmd.WantsInput = true
			if i+1 < len(tokens) {
				i++
				cmd.InputFile = tokens[i]
			}
		case ">":
			cmd.WantsOutput = true
			if i+1 < len(tokens) {
				i++
				cmd.OutputFile = tokens[i]
			}
		case "&":
			cmd.Background = true
		default:
			cmd.Words = append(cmd.Words, tokens[i])
		}
	}

	// A background job with a bare redirect falls back to /dev/null later;
	// for a foreground job a missing filename is a syntax error.
	if !cmd.Background {
		if cmd.WantsInput && cmd.InputFile == "" {
			return nil, fmt.Errorf("syntax error: < requires a filename")
		}
		if cmd.WantsOutput && cmd.OutputFile == "" {
			return nil, fmt.Errorf("syntax error: > requires a filename")
		}
	}

	return cmd, nil
}
