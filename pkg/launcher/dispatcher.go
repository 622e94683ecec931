package launcher

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"spree/internal/debug"
)

// DispatchError reports a button whose command could not be started. It is
// the one recoverable error: the menu stays usable afterwards.
type DispatchError struct {
	Index   int
	Command []string
	Err     error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("failed to run command for button #%d: %v", e.Index, e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}

// Result describes a successful dispatch.
type Result struct {
	Index  int
	DryRun bool
	Pid    int
}

func (r Result) String() string {
	if r.DryRun {
		return fmt.Sprintf("Invoked button #%d", r.Index)
	}
	return fmt.Sprintf("Launched button #%d (pid %d)", r.Index, r.Pid)
}

// Dispatcher turns a confirmed selection into a process launch.
type Dispatcher struct {
	commands [][]string
	dryRun   bool
	exit     func(code int)
}

// NewDispatcher returns a dispatcher over the given argv vectors. In dry-run
// mode nothing is spawned. exit is called by Exit; nil means os.Exit.
func NewDispatcher(commands [][]string, dryRun bool, exit func(code int)) *Dispatcher {
	if exit == nil {
		exit = os.Exit
	}
	return &Dispatcher{commands: commands, dryRun: dryRun, exit: exit}
}

// Dispatch starts the command for button index without waiting for it. The
// child inherits stdio and is reaped in the background.
func (d *Dispatcher) Dispatch(index int) (Result, error) {
	if index < 0 || index >= len(d.commands) {
		return Result{}, &DispatchError{Index: index, Err: fmt.Errorf("no button at index %d", index)}
	}

	argv := d.commands[index]
	if d.dryRun {
		debug.Log("Invoked button #%d: %s", index, strings.Join(argv, " "))
		return Result{Index: index, DryRun: true}, nil
	}
	if len(argv) == 0 {
		return Result{}, &DispatchError{Index: index, Err: fmt.Errorf("empty command")}
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		debug.Log("Failed to run command for button #%d: %v", index, err)
		return Result{}, &DispatchError{Index: index, Command: argv, Err: err}
	}

	pid := cmd.Process.Pid
	debug.Log("Launched button #%d as pid %d: %s", index, pid, strings.Join(argv, " "))

	go func() {
		if err := cmd.Wait(); err != nil {
			debug.Log("Button #%d (pid %d) exited: %v", index, pid, err)
			return
		}
		debug.Log("Button #%d (pid %d) exited cleanly", index, pid)
	}()

	return Result{Index: index, Pid: pid}, nil
}

// Exit is the reserved exit action. It terminates with status 0.
func (d *Dispatcher) Exit() {
	debug.Log("Exit requested")
	d.exit(0)
}
