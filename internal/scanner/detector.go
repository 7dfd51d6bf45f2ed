package scanner

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// RPM packages start with 0xED 0xAB 0xEE 0xDB
var rpmMagic = []byte{0xED, 0xAB, 0xEE, 0xDB}

// debuginfo packages are named <pkg>-debuginfo or <pkg>-debugsource
var debugSuffixes = []string{"-debuginfo-", "-debugsource-"}

// DetectPackageType determines the package type based on magic bytes and file name
func DetectPackageType(path string) (PackageType, error) {
	f, err := os.Open(path)
	if err != nil {
		return TypeUnknown, err
	}
	defer f.Close()

	header := make([]byte, len(rpmMagic))
	n, err := io.ReadFull(f, header)
	if err != nil && n == 0 && err != io.EOF {
		return TypeUnknown, err
	}
	header = header[:n]

	basename := filepath.Base(path)
	if !bytes.HasPrefix(header, rpmMagic) && filepath.Ext(basename) != ".rpm" {
		return TypeUnknown, nil
	}

	return TypeFromFilename(basename), nil
}

// TypeFromFilename classifies an RPM by its file name
func TypeFromFilename(basename string) PackageType {
	if strings.HasSuffix(basename, ".src.rpm") || strings.HasSuffix(basename, ".nosrc.rpm") {
		return TypeSrpm
	}
	for _, suffix := range debugSuffixes {
		if strings.Contains(basename, suffix) {
			return TypeDebuginfo
		}
	}
	return TypeRpm
}
