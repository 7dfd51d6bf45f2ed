package configtypes

import (
	"testing"

	"github.com/ralt/ubiconfig/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testArches = NewArchSet("i686", "ppc64le")

func TestPackageWithArch(t *testing.T) {
	pkg := NewPackage("glibc.i686", testArches)
	assert.Equal(t, "glibc", pkg.Name)
	assert.Equal(t, "i686", pkg.Arch)
	assert.Equal(t, "glibc.i686", pkg.Spec())
}

func TestPackageWithDotInName(t *testing.T) {
	// The part after the dot is not an arch, so it stays in the name
	pkg := NewPackage("python2.7", testArches)
	assert.Equal(t, "python2.7", pkg.Name)
	assert.Empty(t, pkg.Arch)
	assert.Equal(t, "<Package: python2.7>", pkg.String())
}

func TestPackageWithoutDot(t *testing.T) {
	for _, spec := range []string{"bash", "kernel*", "linux-firmware"} {
		pkg := NewPackage(spec, testArches)
		assert.Equal(t, spec, pkg.Name)
		assert.Empty(t, pkg.Arch)
	}
}

func TestPackageStringOmitsArch(t *testing.T) {
	assert.Equal(t, "<Package: glibc>", NewPackage("glibc.ppc64le", testArches).String())
}

func TestIncludePackageRejectsWildcard(t *testing.T) {
	for _, spec := range []string{"kernel*", "kernel*.i686", "*-devel.ppc64le"} {
		_, err := NewIncludePackage(spec, testArches)
		require.Error(t, err, spec)
		assert.True(t, models.IsErrorType(err, models.ErrInvalidWhitelistPattern), spec)
		assert.Contains(t, err.Error(), "<name>*.<arch> is not supported in whitelist")
	}
}

func TestIncludePackageAcceptsAnyArchSuffix(t *testing.T) {
	pkg, err := NewIncludePackage("yum.*", testArches)
	require.NoError(t, err)
	assert.Equal(t, "yum.*", pkg.Name)
	assert.Empty(t, pkg.Arch)

	pkg, err = NewIncludePackage("glibc.i686", testArches)
	require.NoError(t, err)
	assert.Equal(t, "glibc", pkg.Name)
	assert.Equal(t, "i686", pkg.Arch)
}

func TestPackageList(t *testing.T) {
	include := []string{"python2.7", "yum.*"}
	exclude := []string{"linux-firmware", "kernel*"}

	pkgs, err := NewPackageList(include, exclude, []string{"i686", "ppc64le"})
	require.NoError(t, err)

	require.Len(t, pkgs.Whitelist, 2)
	require.Len(t, pkgs.Blacklist, 2)
	assert.Equal(t, "python2.7", pkgs.Whitelist[0].Name)
	assert.Equal(t, "linux-firmware", pkgs.Blacklist[0].Name)
	assert.Equal(t, include, pkgs.IncludeSpecs())
	assert.Equal(t, exclude, pkgs.ExcludeSpecs())
}

func TestPackageListPropagatesWhitelistError(t *testing.T) {
	_, err := NewPackageList([]string{"bash", "kernel*.i686"}, nil, []string{"i686"})
	require.Error(t, err)
	assert.True(t, models.IsErrorType(err, models.ErrInvalidWhitelistPattern))
}

func TestPackageListMatch(t *testing.T) {
	pkgs, err := NewPackageList(
		[]string{"yum.*", "glibc.i686", "bash", "kernel"},
		[]string{"kernel*", "bash.ppc64le"},
		[]string{"i686", "ppc64le", "x86_64"},
	)
	require.NoError(t, err)

	tests := []struct {
		name string
		arch string
		want Verdict
	}{
		{"yum", "x86_64", Included},
		{"yum", "ppc64le", Included},
		{"glibc", "i686", Included},
		{"glibc", "x86_64", NotListed},
		{"bash", "x86_64", Included},
		{"bash", "ppc64le", Excluded},
		{"kernel", "x86_64", Excluded},
		{"kernel-core", "i686", Excluded},
		{"zsh", "x86_64", NotListed},
	}

	for _, tt := range tests {
		t.Run(tt.name+"."+tt.arch, func(t *testing.T) {
			assert.Equal(t, tt.want, pkgs.Match(tt.name, tt.arch))
		})
	}
}
