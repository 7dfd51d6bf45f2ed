package rpm

import (
	"fmt"
	"os"

	"github.com/ralt/ubiconfig/internal/models"
	"github.com/ralt/ubiconfig/internal/scanner"
	"github.com/ralt/ubiconfig/internal/utils"
	"github.com/sassoftware/go-rpmutils"
)

// SourceArch is the architecture reported for source RPMs
const SourceArch = "src"

// ParsePackage reads the header of an RPM file and extracts its identity
func ParsePackage(path string, pkgType scanner.PackageType) (*models.Package, error) {
	checksums, err := utils.CalculateChecksums(path)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate checksums: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rpm, err := rpmutils.ReadRpm(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read RPM: %w", err)
	}

	pkg := &models.Package{
		Name:         getStringTag(rpm, rpmutils.NAME),
		Version:      getStringTag(rpm, rpmutils.VERSION),
		Release:      getStringTag(rpm, rpmutils.RELEASE),
		Architecture: getStringTag(rpm, rpmutils.ARCH),
		SourceRPM:    getStringTag(rpm, rpmutils.SOURCERPM),
		Filename:     path,
		Size:         checksums.Size,
		SHA256Sum:    checksums.SHA256,
	}

	// Source RPMs record the build host arch, configs refer to them as src
	if pkgType == scanner.TypeSrpm {
		pkg.Architecture = SourceArch
	}

	if pkg.Name == "" {
		return nil, fmt.Errorf("RPM header has no name: %s", path)
	}

	return pkg, nil
}

// getStringTag safely gets a string tag from RPM
func getStringTag(rpm *rpmutils.Rpm, tag int) string {
	val, err := rpm.Header.Get(tag)
	if err != nil {
		return ""
	}

	// Handle different types that might be returned
	switch v := val.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	default:
		return fmt.Sprintf("%v", v)
	}

	return ""
}
