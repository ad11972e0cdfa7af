// Package version holds the filepacker release version stamped into generated files.
package version

// Version is overridden at build time with -ldflags "-X github.com/xll-gen/filepacker/version.Version=...".
var Version = "0.3.0"
