package filter

import (
	"context"
	"errors"
	"testing"

	"github.com/ralt/ubiconfig/internal/configtypes"
	"github.com/ralt/ubiconfig/internal/models"
	"github.com/ralt/ubiconfig/internal/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *configtypes.Config {
	t.Helper()
	cfg, err := configtypes.LoadConfig(map[string]any{
		"content_sets": map[string]any{
			"rpm":       map[string]any{"input": "rhel-rpms", "output": "ubi-rpms"},
			"srpm":      map[string]any{"input": "rhel-source-rpms", "output": "ubi-source-rpms"},
			"debuginfo": map[string]any{"input": "rhel-debug-rpms", "output": "ubi-debug-rpms"},
		},
		"arches": []any{"x86_64", "src"},
		"packages": map[string]any{
			"include": []any{"bash", "glibc.*"},
			"exclude": []any{"kernel*", "glibc.src"},
		},
	}, "ubi.yaml", "ubi8")
	require.NoError(t, err)
	return cfg
}

func candidate(name, arch string, pkgType scanner.PackageType) Candidate {
	return Candidate{
		Package: models.Package{Name: name, Version: "1.0", Release: "1", Architecture: arch},
		Type:    pkgType,
	}
}

func TestClassify(t *testing.T) {
	result, err := Classify(testConfig(t), []Candidate{
		candidate("bash", "x86_64", scanner.TypeRpm),
		candidate("bash-debuginfo", "x86_64", scanner.TypeDebuginfo),
		candidate("glibc", "x86_64", scanner.TypeRpm),
		candidate("glibc", "src", scanner.TypeSrpm),
		candidate("kernel-core", "x86_64", scanner.TypeRpm),
		candidate("zsh", "x86_64", scanner.TypeRpm),
	})
	require.NoError(t, err)

	names := func(entries []Entry) []string {
		var out []string
		for _, e := range entries {
			out = append(out, e.Package.NEVRA())
		}
		return out
	}

	assert.Equal(t, []string{
		"bash-1.0-1.x86_64",
		"bash-debuginfo-1.0-1.x86_64",
		"glibc-1.0-1.x86_64",
	}, names(result.Included))
	assert.Equal(t, []string{"glibc-1.0-1.src", "kernel-core-1.0-1.x86_64"}, names(result.Excluded))
	assert.Equal(t, []string{"zsh-1.0-1.x86_64"}, names(result.NotListed))

	assert.Equal(t, "ubi-debug-rpms", result.Included[1].ContentSet.Output)
	assert.Equal(t, "ubi-rpms", result.Included[0].ContentSet.Output)
}

func TestClassifyUnknownType(t *testing.T) {
	_, err := Classify(testConfig(t), []Candidate{candidate("bash", "x86_64", scanner.TypeUnknown)})
	require.Error(t, err)
	assert.True(t, models.IsErrorType(err, models.ErrInvalidConfig))
}

type fakeScanner struct {
	packages []scanner.ScannedPackage
	err      error
}

func (f *fakeScanner) Scan(ctx context.Context, dir string) ([]scanner.ScannedPackage, error) {
	return f.packages, f.err
}

func (f *fakeScanner) DetectType(path string) (scanner.PackageType, error) {
	return scanner.TypeRpm, nil
}

func TestRunSkipsUnparsablePackages(t *testing.T) {
	sc := &fakeScanner{packages: []scanner.ScannedPackage{
		{Path: "/nonexistent/bash-1.0-1.x86_64.rpm", Type: scanner.TypeRpm},
	}}

	result, err := Run(context.Background(), testConfig(t), sc, "/nonexistent")
	require.NoError(t, err)
	assert.Empty(t, result.Included)
	assert.Empty(t, result.Excluded)
	assert.Empty(t, result.NotListed)
}

func TestRunScanError(t *testing.T) {
	sc := &fakeScanner{err: errors.New("permission denied")}

	_, err := Run(context.Background(), testConfig(t), sc, "/repo")
	require.Error(t, err)
	assert.True(t, models.IsErrorType(err, models.ErrFileOp))
}
