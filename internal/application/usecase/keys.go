package usecase

import (
	"sort"

	"github.com/bnema/chordbar/internal/domain/entity"
	"github.com/bnema/chordbar/internal/domain/keysym"
)

func sortedSyms(set entity.KeySet) []keysym.Keysym {
	syms := make([]keysym.Keysym, 0, len(set))
	for sym := range set {
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
	return syms
}
