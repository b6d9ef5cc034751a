package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/chordbar/internal/domain/entity"
	"github.com/bnema/chordbar/internal/logging"
)

// ShadowKind names the key set that hides a binding.
type ShadowKind string

const (
	// ShadowedByBack means a back key takes precedence.
	ShadowedByBack ShadowKind = "back"
	// ShadowedByExit means an exit key takes precedence.
	ShadowedByExit ShadowKind = "exit"
)

// KeyOverlap is a binding that can never be selected because a key with
// higher precedence uses the same keysym.
type KeyOverlap struct {
	// Path locates the hidden binding. It is empty for an exit key hidden
	// by a back key.
	Path []string
	Key  string
	By   ShadowKind
}

func (o KeyOverlap) String() string {
	if len(o.Path) == 0 {
		return fmt.Sprintf("exit key %q is also a back key and never exits", o.Key)
	}
	return fmt.Sprintf("%v: key %q is shadowed by the %s keys", o.Path, o.Key, o.By)
}

// CheckBindingsInput contains a built tree and the configured action keys.
type CheckBindingsInput struct {
	Tree *entity.BindTree
	Back entity.KeySet
	Exit entity.KeySet
}

// CheckBindingsOutput summarizes a binding tree.
type CheckBindingsOutput struct {
	Nodes    int
	Leaves   int
	Depth    int
	Overlaps []KeyOverlap
}

// CheckBindingsUseCase reports bindings hidden by the back/exit precedence.
// Overlaps are legal, so they are reported as warnings, never errors.
type CheckBindingsUseCase struct{}

// NewCheckBindingsUseCase creates a new CheckBindingsUseCase.
func NewCheckBindingsUseCase() *CheckBindingsUseCase {
	return &CheckBindingsUseCase{}
}

// Execute walks the tree in construction order.
func (uc *CheckBindingsUseCase) Execute(ctx context.Context, input CheckBindingsInput) (*CheckBindingsOutput, error) {
	if input.Tree == nil {
		return nil, fmt.Errorf("no binding tree")
	}
	log := logging.FromContext(ctx)

	out := &CheckBindingsOutput{}

	for _, sym := range sortedSyms(input.Exit) {
		if input.Back.Contains(sym) {
			out.Overlaps = append(out.Overlaps, KeyOverlap{Key: input.Exit[sym].Label(), By: ShadowedByBack})
		}
	}

	input.Tree.Walk(func(n entity.Node, depth int) bool {
		out.Nodes++
		if depth > out.Depth {
			out.Depth = depth
		}
		if n.IsLeaf() {
			out.Leaves++
		}
		if n.IsRoot() {
			return true
		}

		sym := n.Key().Sym()
		switch {
		case input.Back.Contains(sym):
			out.Overlaps = append(out.Overlaps, KeyOverlap{Path: n.Path(), Key: n.Key().Label(), By: ShadowedByBack})
		case input.Exit.Contains(sym):
			out.Overlaps = append(out.Overlaps, KeyOverlap{Path: n.Path(), Key: n.Key().Label(), By: ShadowedByExit})
		}
		return true
	})

	log.Debug().
		Int("nodes", out.Nodes).
		Int("leaves", out.Leaves).
		Int("overlaps", len(out.Overlaps)).
		Msg("bindings checked")

	return out, nil
}
