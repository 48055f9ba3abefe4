package sprite

import (
	"image"
	"io/ioutil"
	"path/filepath"
	"sort"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	_ "golang.org/x/image/webp"

	"badc0de.net/pkg/flagquiz/batch"
)

// Extensions lists the file extensions Collect picks up. Matching ignores case.
var Extensions = []string{".png", ".jpg", ".jpeg", ".webp"}

// Source is one decoded flag image.
type Source struct {
	// Name is the file name without extension, e.g. "United_States".
	Name string
	// File is the base file name.
	File string
	// Image always has an alpha channel and bounds starting at (0, 0).
	Image *image.NRGBA
}

func hasImageExt(fn string) bool {
	ext := strings.ToLower(filepath.Ext(fn))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Collect decodes every image in dir, in byte order of the file names. Files
// that fail to decode are left out and reported as skipped.
func Collect(dir string) ([]Source, *batch.Report, error) {
	infos, err := ioutil.ReadDir(dir)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "listing %s", dir)
	}

	var files []string
	for _, fi := range infos {
		if fi.IsDir() || !hasImageExt(fi.Name()) {
			continue
		}
		files = append(files, fi.Name())
	}
	sort.Strings(files)

	report := &batch.Report{}
	sources := make([]Source, 0, len(files))
	for _, fn := range files {
		img, err := imaging.Open(filepath.Join(dir, fn))
		if err != nil {
			glog.Warningf("error processing %s: %v", fn, err)
			report.Skip(fn, err)
			continue
		}
		sources = append(sources, Source{
			Name:  strings.TrimSuffix(fn, filepath.Ext(fn)),
			File:  fn,
			Image: imaging.Clone(img),
		})
		report.Done(fn)
	}
	return sources, report, nil
}
