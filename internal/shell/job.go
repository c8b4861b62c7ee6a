package shell

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Job is one running background command.
type Job struct {
	ID   int
	PID  int
	Args []string
}

// completion is the wait outcome of a finished background job, forwarded
// from its wait goroutine to the loop goroutine.
type completion struct {
	pid     int
	outcome string
}

func (s *Shell) addJob(pid int, args []string) *Job {
	job := &Job{
		ID:   s.nextJobID,
		PID:  pid,
		Args: args,
	}
	s.jobs[job.ID] = job
	s.nextJobID++
	return job
}

// reap collects finished background jobs without blocking and reports each
// outcome. It runs at the top of every loop iteration, so a completion can
// surface one prompt later than the moment the process actually exited.
// Foreground commands are waited for synchronously by the launcher and
// never pass through here.
func (s *Shell) reap() {
	for {
		select {
		case c := <-s.done:
			for id, job := range s.jobs {
				if job.PID == c.pid {
					delete(s.jobs, id)
					break
				}
			}
			fmt.Fprintf(s.stdout, "background pid %d is done: %s\n", c.pid, c.outcome)
		default:
			return
		}
	}
}

// killJobs sends SIGTERM to every live background job's process group so
// none of them outlives the shell.
func (s *Shell) killJobs() {
	for _, job := range s.jobs {
		_ = unix.Kill(-job.PID, unix.SIGTERM)
	}
}
