package configtypes

import "github.com/samber/lo"

// ArchSet is the set of architectures recognised as a package spec suffix.
type ArchSet map[string]struct{}

// NewArchSet builds an ArchSet from a list of architecture names
func NewArchSet(arches ...string) ArchSet {
	return lo.SliceToMap(arches, func(arch string) (string, struct{}) {
		return arch, struct{}{}
	})
}

// Contains reports whether arch is a known architecture
func (s ArchSet) Contains(arch string) bool {
	_, ok := s[arch]
	return ok
}
