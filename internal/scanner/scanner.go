package scanner

import "context"

// PackageType represents the content set category of an RPM file
type PackageType int

const (
	TypeUnknown PackageType = iota
	TypeRpm
	TypeSrpm
	TypeDebuginfo
)

// String returns the content set category name of PackageType
func (pt PackageType) String() string {
	switch pt {
	case TypeRpm:
		return "rpm"
	case TypeSrpm:
		return "srpm"
	case TypeDebuginfo:
		return "debuginfo"
	default:
		return "unknown"
	}
}

// ScannedPackage represents an RPM file found during scanning
type ScannedPackage struct {
	Path string
	Type PackageType
	Size int64
}

// Scanner interface for detecting and scanning packages
type Scanner interface {
	// Scan recursively scans a directory for packages
	Scan(ctx context.Context, dir string) ([]ScannedPackage, error)

	// DetectType determines the package type of a file
	DetectType(path string) (PackageType, error)
}
