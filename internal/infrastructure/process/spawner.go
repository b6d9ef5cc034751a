// Package process starts the commands bound to leaves.
package process

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"
	"sync"
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/bnema/chordbar/internal/application/port"
	"github.com/bnema/chordbar/internal/logging"
)

// ErrEmptyArgv is returned when asked to spawn nothing.
var ErrEmptyArgv = errors.New("empty argv")

// Spawner implements port.ProcessSpawner by starting detached processes.
// Spawned processes are never waited on; exited children are reaped after
// each spawn so they do not linger as zombies.
type Spawner struct{}

var _ port.ProcessSpawner = (*Spawner)(nil)

// NewSpawner creates a new spawner.
func NewSpawner() *Spawner {
	return &Spawner{}
}

// Spawn implements port.ProcessSpawner.
func (*Spawner) Spawn(ctx context.Context, argv []string) error {
	log := logging.FromContext(ctx)

	if len(argv) == 0 {
		return ErrEmptyArgv
	}

	cmd := exec.Command(argv[0], argv[1:]...)

	// Detach into a new session so the process survives the bar exiting.
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("spawn %s: %w", argv[0], err)
	}
	pid := cmd.Process.Pid

	if err := cmd.Process.Release(); err != nil {
		log.Warn().Err(err).Msg("failed to release spawned process (non-fatal)")
	}

	log.Debug().
		Strs("argv", argv).
		Int("pid", pid).
		Msg("spawned command")

	if n := Reap(); n > 0 {
		log.Debug().Int("count", n).Msg("reaped exited children")
	}
	return nil
}

// Reap collects every child that has already exited without blocking and
// returns how many were collected.
func Reap() int {
	count := 0
	for {
		var status unix.WaitStatus
		pid, err := unix.Wait4(-1, &status, unix.WNOHANG, nil)
		if err != nil || pid <= 0 {
			return count
		}
		count++
	}
}

// DryRunSpawner implements port.ProcessSpawner by printing each argv
// instead of running it.
type DryRunSpawner struct {
	mu sync.Mutex
	w  io.Writer
}

var _ port.ProcessSpawner = (*DryRunSpawner)(nil)

// NewDryRunSpawner creates a spawner writing to w.
func NewDryRunSpawner(w io.Writer) *DryRunSpawner {
	return &DryRunSpawner{w: w}
}

// Spawn implements port.ProcessSpawner.
func (d *DryRunSpawner) Spawn(_ context.Context, argv []string) error {
	if len(argv) == 0 {
		return ErrEmptyArgv
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	_, err := fmt.Fprintf(d.w, "$ %s\n", FormatArgv(argv))
	return err
}

// FormatArgv joins argv for display, quoting arguments that would not
// survive a round trip through shell word splitting.
func FormatArgv(argv []string) string {
	parts := make([]string, len(argv))
	for i, arg := range argv {
		if arg == "" || strings.ContainsAny(arg, " \t\n'\"\\;&|<>$`") {
			parts[i] = strconv.Quote(arg)
			continue
		}
		parts[i] = arg
	}
	return strings.Join(parts, " ")
}
