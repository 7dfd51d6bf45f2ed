package filter

import (
	"context"
	"fmt"
	"strings"

	"github.com/ralt/ubiconfig/internal/configtypes"
	"github.com/ralt/ubiconfig/internal/models"
	"github.com/ralt/ubiconfig/internal/rpm"
	"github.com/ralt/ubiconfig/internal/scanner"
	"github.com/sirupsen/logrus"
)

// Candidate is a parsed RPM together with its content set category
type Candidate struct {
	Package models.Package
	Type    scanner.PackageType
}

// Entry is a classified candidate and the content sets it moves between
type Entry struct {
	Candidate
	Verdict    configtypes.Verdict
	ContentSet configtypes.ContentSet
}

// Result groups classified packages by verdict
type Result struct {
	Included  []Entry
	Excluded  []Entry
	NotListed []Entry
}

// Run scans dir for RPMs and classifies them against cfg
func Run(ctx context.Context, cfg *configtypes.Config, sc scanner.Scanner, dir string) (*Result, error) {
	scanned, err := sc.Scan(ctx, dir)
	if err != nil {
		return nil, &models.ConfigError{
			Type:    models.ErrFileOp,
			Subject: dir,
			Err:     err,
		}
	}

	candidates := make([]Candidate, 0, len(scanned))
	for _, s := range scanned {
		logrus.Debugf("Parsing %s package: %s", s.Type, s.Path)

		pkg, err := rpm.ParsePackage(s.Path, s.Type)
		if err != nil {
			logrus.Warnf("Failed to parse %s: %v", s.Path, err)
			continue
		}
		candidates = append(candidates, Candidate{Package: *pkg, Type: s.Type})
	}

	return Classify(cfg, candidates)
}

// Classify matches every candidate against the package lists of cfg.
// Debuginfo packages are matched by the name of the package they belong to.
func Classify(cfg *configtypes.Config, candidates []Candidate) (*Result, error) {
	result := &Result{}

	for _, c := range candidates {
		cs, ok := cfg.ContentSets.Get(c.Type.String())
		if !ok {
			return nil, &models.ConfigError{
				Type:    models.ErrInvalidConfig,
				Subject: c.Package.Filename,
				Err:     fmt.Errorf("no content set for package type %s", c.Type),
			}
		}

		name := c.Package.Name
		if c.Type == scanner.TypeDebuginfo {
			name = debugBaseName(name)
		}

		entry := Entry{
			Candidate:  c,
			Verdict:    cfg.Packages.Match(name, c.Package.Architecture),
			ContentSet: cs,
		}

		switch entry.Verdict {
		case configtypes.Included:
			result.Included = append(result.Included, entry)
		case configtypes.Excluded:
			result.Excluded = append(result.Excluded, entry)
		default:
			result.NotListed = append(result.NotListed, entry)
		}
	}

	logrus.Infof("%s: %d included, %d excluded, %d not listed",
		cfg.FileName, len(result.Included), len(result.Excluded), len(result.NotListed))
	return result, nil
}

func debugBaseName(name string) string {
	for _, suffix := range []string{"-debuginfo", "-debugsource"} {
		if base, ok := strings.CutSuffix(name, suffix); ok {
			return base
		}
	}
	return name
}
