package shell

import "fmt"

const statusNone = "no status yet"

// Status records the outcome of the most recent foreground command. It is
// owned by the Shell and only ever touched from the loop goroutine;
// background completions never modify it.
type Status struct {
	text string
}

func NewStatus() *Status {
	return &Status{text: statusNone}
}

func (s *Status) SetExit(code int) {
	s.text = fmt.Sprintf("exit value %d", code)
}

func (s *Status) SetSignal(sig int) {
	s.text = fmt.Sprintf("terminated by signal %d", sig)
}

// Reset puts the status back to a successful exit. The status builtin calls
// this right after reporting, so asking twice in a row reports success.
func (s *Status) Reset() {
	s.SetExit(0)
}

func (s *Status) String() string {
	return s.text
}
