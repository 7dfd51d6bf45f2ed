package models

// Package represents a binary or source RPM found on disk
type Package struct {
	Name         string
	Version      string
	Release      string
	Architecture string
	SourceRPM    string

	// File information
	Filename  string
	Size      int64
	SHA256Sum string
}

// NEVRA returns the name-version-release.arch form of the package
func (p Package) NEVRA() string {
	return p.Name + "-" + p.Version + "-" + p.Release + "." + p.Architecture
}
