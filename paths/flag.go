package paths

import (
	"flag"
	"path/filepath"
)

// SetupFilePathFlag registers a string flag for the file or directory at rel.
// Its default is where Find locates rel, falling back to rel itself.
func SetupFilePathFlag(rel, flagName string, flagPtr *string) {
	flag.StringVar(flagPtr, flagName, Default(rel), "Path to "+rel)
}

// SetupOutputPathFlag registers a string flag for a file or directory the
// tool writes. Its default is always rel, relative to the working directory.
func SetupOutputPathFlag(rel, flagName string, flagPtr *string) {
	flag.StringVar(flagPtr, flagName, filepath.FromSlash(rel), "Path to write "+rel+" to")
}
