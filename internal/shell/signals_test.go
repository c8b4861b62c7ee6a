package shell

import (
	"os"
	"os/exec"
	"os/signal"
	"testing"
	"time"

	"golang.org/x/sys/unix"
)

func TestApplyDisposition(t *testing.T) {
	fg := exec.Command("true")
	applyDisposition(fg, Interruptible)
	if fg.SysProcAttr != nil {
		t.Error("foreground child must stay in the shell's process group")
	}

	bg := exec.Command("true")
	applyDisposition(bg, Shielded)
	if bg.SysProcAttr == nil || !bg.SysProcAttr.Setpgid {
		t.Error("background child must get its own process group")
	}
}

func TestShellSurvivesInterrupt(t *testing.T) {
	s, _, _ := newTestShell(t)
	s.ignoreInterrupts()
	defer signal.Stop(s.signalChan)

	if err := unix.Kill(os.Getpid(), unix.SIGINT); err != nil {
		t.Fatalf("kill: %v", err)
	}
	time.Sleep(50 * time.Millisecond)

	// Still here, and the loop state still works: without the interrupt
	// protection the signal's default action would have ended this process.
	if _, err := s.Execute("true"); err != nil {
		t.Fatalf("execute after interrupt: %v", err)
	}
	if got := s.status.String(); got != "exit value 0" {
		t.Errorf("expected working shell after interrupt, got status %q", got)
	}
}

func TestBackgroundJobImmuneToInterrupt(t *testing.T) {
	// Detach into our own process group first, so the group-wide interrupt
	// below cannot reach the test runner.
	if err := unix.Setpgid(0, 0); err != nil {
		t.Fatalf("setpgid: %v", err)
	}

	s, _, _ := newTestShell(t)
	s.ignoreInterrupts()
	defer signal.Stop(s.signalChan)

	if _, err := s.Execute("sleep 30 &"); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if len(s.jobs) != 1 {
		t.Fatalf("expected one tracked job, have %d", len(s.jobs))
	}
	var pid int
	for _, job := range s.jobs {
		pid = job.PID
	}

	// The live kernel property: the job runs outside the shell's group.
	jobPgid, err := unix.Getpgid(pid)
	if err != nil {
		t.Fatalf("getpgid(%d): %v", pid, err)
	}
	selfPgid, err := unix.Getpgid(os.Getpid())
	if err != nil {
		t.Fatalf("getpgid(self): %v", err)
	}
	if jobPgid == selfPgid {
		t.Fatalf("background job shares the shell's process group %d", selfPgid)
	}

	// An interrupt delivered to the shell's whole group must leave it alive.
	if err := unix.Kill(0, unix.SIGINT); err != nil {
		t.Fatalf("kill group: %v", err)
	}
	select {
	case c := <-s.done:
		t.Fatalf("background job died on interrupt: %s", c.outcome)
	case <-time.After(300 * time.Millisecond):
	}

	s.killJobs()
	select {
	case <-s.done:
	case <-time.After(5 * time.Second):
		t.Fatal("background job did not terminate on cleanup")
	}
}
