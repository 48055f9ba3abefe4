// Package sprite packs flag images into a single sprite sheet with a JSON
// index.
//
// Images are stacked vertically in byte order of their file names, left
// aligned, with no packing. The quiz crops each flag back out using the
// rectangle stored in the index, so the sheet never needs to be tiled.
package sprite

import (
	"github.com/golang/glog"

	"badc0de.net/pkg/flagquiz/batch"
)

// Builder builds a sprite sheet from a directory of flag images.
type Builder struct {
	// Names resolves file name stems into display names. It must be fully
	// loaded before Build is called.
	Names Resolver
}

// Build reads every image in flagsDir and writes the sprite sheet to
// imagePath and its index to jsonPath. The report lists each image file
// and whether it made it onto the sheet.
//
// If no image could be decoded, Build writes nothing and returns ErrNoImages.
func (b *Builder) Build(flagsDir, imagePath, jsonPath string) (*batch.Report, error) {
	sources, report, err := Collect(flagsDir)
	if err != nil {
		return nil, err
	}
	if len(sources) == 0 {
		glog.Errorf("no images to process in %s", flagsDir)
		return report, ErrNoImages
	}

	sheet, err := Compose(sources, b.Names)
	if err != nil {
		return report, err
	}
	size := sheet.Image.Bounds().Size()
	glog.Infof("composed %d flags into a %dx%d sheet", len(sheet.Entries), size.X, size.Y)

	if err := sheet.WriteImage(imagePath); err != nil {
		return report, err
	}
	glog.Infof("sprite saved: %s", imagePath)

	if err := sheet.WriteIndex(jsonPath); err != nil {
		return report, err
	}
	glog.Infof("index saved: %s", jsonPath)
	return report, nil
}
