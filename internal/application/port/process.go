package port

import "context"

// ProcessSpawner launches detached processes. Spawn returns once the process
// has started; the caller never waits for it to finish.
type ProcessSpawner interface {
	Spawn(ctx context.Context, argv []string) error
}
