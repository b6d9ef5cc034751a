package entity

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for binding tree construction. They are wrapped in a
// *ConfigError that records where in the tree the problem was found.
var (
	ErrUnknownKey    = errors.New("unknown key")
	ErrEmptyGroup    = errors.New("group has no children")
	ErrAmbiguousNode = errors.New("node must have exactly one of command or group")
	ErrDuplicateKey  = errors.New("duplicate sibling key")
	ErrRootNotGroup  = errors.New("root node must be a group")
	ErrEmptyCommand  = errors.New("empty command")
	ErrShellSyntax   = errors.New("unsupported shell syntax")
)

// ErrInvalidKey matches any *InvalidKeyError via errors.Is.
var ErrInvalidKey = errors.New("invalid key")

// ConfigError reports a binding that cannot be turned into a tree node.
// Path is the chain of node names from the root to the offending node.
type ConfigError struct {
	Path []string
	Err  error
}

func (e *ConfigError) Error() string {
	if len(e.Path) == 0 {
		return fmt.Sprintf("bindings: %v", e.Err)
	}
	return fmt.Sprintf("bindings: %s: %v", strings.Join(e.Path, " > "), e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// InvalidKeyError is returned by direct child lookups for a key that is not
// bound at that node. Valid lists the node's child keys in order.
type InvalidKeyError struct {
	Key   Keybind
	Valid []Keybind
}

func (e *InvalidKeyError) Error() string {
	labels := make([]string, len(e.Valid))
	for i, k := range e.Valid {
		labels[i] = k.Label()
	}
	return fmt.Sprintf("invalid key %q (valid keys: [%s])", e.Key.Label(), strings.Join(labels, ", "))
}

// Is makes errors.Is(err, ErrInvalidKey) true.
func (e *InvalidKeyError) Is(target error) bool {
	return target == ErrInvalidKey
}
