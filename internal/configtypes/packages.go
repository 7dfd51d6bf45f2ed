package configtypes

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gobwas/glob"
	"github.com/ralt/ubiconfig/internal/models"
)

const (
	wildcard = "*"

	// anyArch is a trailing suffix that selects every architecture of a package
	anyArch = ".*"
)

var errWildcardWithArch = errors.New("<name>*.<arch> is not supported in whitelist")

// Package is a package spec split into name and optional architecture
type Package struct {
	Name string
	Arch string // empty when the spec has no known arch suffix
}

// NewPackage parses a blacklist spec. The part after the last dot becomes the
// arch only when it is one of arches.
func NewPackage(spec string, arches ArchSet) Package {
	pkg, _ := parsePackage(spec, arches, false)
	return pkg
}

// NewIncludePackage parses a whitelist spec. Whitelist entries may not combine
// a wildcard with an architecture. A trailing ".*" is allowed and selects all
// arches of a single package.
func NewIncludePackage(spec string, arches ArchSet) (Package, error) {
	return parsePackage(spec, arches, true)
}

func parsePackage(spec string, arches ArchSet, strict bool) (Package, error) {
	pkg := Package{Name: spec}
	if i := strings.LastIndex(spec, "."); i >= 0 && arches.Contains(spec[i+1:]) {
		pkg.Name, pkg.Arch = spec[:i], spec[i+1:]
	}

	if strict && strings.Contains(pkg.baseName(), wildcard) {
		return Package{}, &models.ConfigError{
			Type:    models.ErrInvalidWhitelistPattern,
			Subject: spec,
			Err:     errWildcardWithArch,
		}
	}

	return pkg, nil
}

// Spec rebuilds the spec string the package was parsed from
func (p Package) Spec() string {
	if p.Arch == "" {
		return p.Name
	}
	return p.Name + "." + p.Arch
}

// String returns the diagnostic form of the package
func (p Package) String() string {
	return fmt.Sprintf("<Package: %s>", p.Name)
}

func (p Package) baseName() string {
	if p.Arch == "" {
		return strings.TrimSuffix(p.Name, anyArch)
	}
	return p.Name
}

// Verdict is the outcome of matching a package against a PackageList
type Verdict int

const (
	NotListed Verdict = iota
	Included
	Excluded
)

// String returns the string representation of Verdict
func (v Verdict) String() string {
	switch v {
	case Included:
		return "included"
	case Excluded:
		return "excluded"
	default:
		return "not-listed"
	}
}

// PackageList holds the whitelist and blacklist of a config in input order
type PackageList struct {
	Whitelist []Package
	Blacklist []Package

	include []matcher
	exclude []matcher
}

// NewPackageList parses include entries as whitelist packages and exclude
// entries as blacklist packages.
func NewPackageList(include, exclude, arches []string) (*PackageList, error) {
	archSet := NewArchSet(arches...)
	list := &PackageList{
		Whitelist: make([]Package, 0, len(include)),
		Blacklist: make([]Package, 0, len(exclude)),
	}

	for _, spec := range include {
		pkg, err := NewIncludePackage(spec, archSet)
		if err != nil {
			return nil, err
		}
		list.Whitelist = append(list.Whitelist, pkg)
		list.include = append(list.include, newMatcher(pkg))
	}

	for _, spec := range exclude {
		pkg := NewPackage(spec, archSet)
		list.Blacklist = append(list.Blacklist, pkg)
		list.exclude = append(list.exclude, newMatcher(pkg))
	}

	return list, nil
}

// Match classifies a concrete package. The blacklist wins over the whitelist.
func (l *PackageList) Match(name, arch string) Verdict {
	for _, m := range l.exclude {
		if m.matches(name, arch) {
			return Excluded
		}
	}
	for _, m := range l.include {
		if m.matches(name, arch) {
			return Included
		}
	}
	return NotListed
}

// IncludeSpecs returns the whitelist as spec strings
func (l *PackageList) IncludeSpecs() []string {
	return specs(l.Whitelist)
}

// ExcludeSpecs returns the blacklist as spec strings
func (l *PackageList) ExcludeSpecs() []string {
	return specs(l.Blacklist)
}

func specs(pkgs []Package) []string {
	out := make([]string, 0, len(pkgs))
	for _, pkg := range pkgs {
		out = append(out, pkg.Spec())
	}
	return out
}

type matcher struct {
	name glob.Glob
	arch string
}

func newMatcher(pkg Package) matcher {
	pattern := pkg.baseName()
	g, err := glob.Compile(pattern)
	if err != nil {
		// Not a valid glob, match the name literally
		g = glob.MustCompile(glob.QuoteMeta(pattern))
	}
	return matcher{name: g, arch: pkg.Arch}
}

func (m matcher) matches(name, arch string) bool {
	if m.arch != "" && m.arch != arch {
		return false
	}
	return m.name.Match(name)
}
