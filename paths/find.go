// Package paths locates the pipeline's input and output files.
//
// The jobs use fixed locations relative to the project root. Find looks for
// them in the working directory, in the source checkout under GOPATH and next
// to the running binary, so the tools work when run from any of those.
package paths

import (
	"os"
	"path/filepath"

	"github.com/golang/glog"
)

// Fixed locations, relative to the project root.
const (
	// FlagsDir holds the downloaded flag images.
	FlagsDir = "temp/assets"
	// SpritePath is the composed sprite sheet.
	SpritePath = "assets/flags.png"
	// IndexPath is the JSON index of the sprite sheet.
	IndexPath = "assets/flags.json"
)

func possibleRoots() []string {
	roots := []string{"."}
	if gopath := os.Getenv("GOPATH"); gopath != "" {
		roots = append(roots, filepath.Join(gopath, "src", "badc0de.net", "pkg", "flagquiz"))
	}
	if len(os.Args) > 0 {
		roots = append(roots, filepath.Dir(os.Args[0]))
	}
	return roots
}

// Find returns the first existing location of rel among the usual project
// roots, or "" if there is none.
func Find(rel string) string {
	return FindIn(possibleRoots(), rel)
}

// FindIn returns the first root/rel that exists, or "".
func FindIn(roots []string, rel string) string {
	for _, root := range roots {
		p := filepath.Join(root, filepath.FromSlash(rel))
		if _, err := os.Stat(p); err == nil {
			glog.V(1).Infof("paths.Find(%q)=%s", rel, p)
			return p
		}
	}
	return ""
}

// Default returns Find(rel), or rel itself when nothing exists yet.
func Default(rel string) string {
	if p := Find(rel); p != "" {
		return p
	}
	return filepath.FromSlash(rel)
}
