package sprite

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"

	"badc0de.net/pkg/flagquiz/names"
)

// ErrNoImages is returned when there is nothing to put on a sheet.
var ErrNoImages = errors.New("no images")

// Resolver turns a flag's file name stem into its display names.
type Resolver interface {
	Lookup(name string) names.Names
}

// Entry is one flag in the index.
type Entry struct {
	Img  Rect        `json:"img"`
	Name names.Names `json:"name"`
}

// Sheet is a composed sprite sheet and its index, in placement order.
type Sheet struct {
	Image   *image.NRGBA
	Entries []Entry
}

// Compose stacks sources top to bottom in the order given and resolves each
// source's name with r. A nil r reports the file name stem in every language.
func Compose(sources []Source, r Resolver) (*Sheet, error) {
	if len(sources) == 0 {
		return nil, ErrNoImages
	}

	sizes := make([]image.Point, len(sources))
	for i, src := range sources {
		sizes[i] = src.Image.Bounds().Size()
	}
	size, rects := Layout(sizes)

	sheet := &Sheet{
		Image:   imaging.New(size.X, size.Y, color.NRGBA{255, 255, 255, 0}),
		Entries: make([]Entry, len(sources)),
	}
	for i, src := range sources {
		draw.Draw(sheet.Image, rects[i].Image(), src.Image, src.Image.Bounds().Min, draw.Src)

		n := names.Same(src.Name)
		if r != nil {
			n = r.Lookup(src.Name)
		}
		sheet.Entries[i] = Entry{Img: rects[i], Name: n}
	}
	return sheet, nil
}

// Crop returns the image of entry i.
func (s *Sheet) Crop(i int) (image.Image, error) {
	if i < 0 || i >= len(s.Entries) {
		return nil, errors.Errorf("entry %d out of range [0,%d)", i, len(s.Entries))
	}
	return CropImage(s.Image, s.Entries[i].Img), nil
}

// CropImage cuts r out of a sprite sheet.
func CropImage(sheet image.Image, r Rect) *image.NRGBA {
	return imaging.Crop(sheet, r.Image())
}

// WriteImage saves the sheet as a PNG file, creating parent directories.
func (s *Sheet) WriteImage(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, "creating directory for %s", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	if err := png.Encode(f, s.Image); err != nil {
		f.Close()
		return errors.Wrapf(err, "encoding %s", path)
	}
	return errors.Wrapf(f.Close(), "closing %s", path)
}

// MarshalIndex encodes entries as indented UTF-8 JSON. Non-ASCII characters
// are written as is.
func MarshalIndex(entries []Entry) ([]byte, error) {
	if entries == nil {
		entries = []Entry{}
	}
	b := &bytes.Buffer{}
	enc := json.NewEncoder(b)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return nil, errors.Wrap(err, "encoding index")
	}
	return b.Bytes(), nil
}

// WriteIndex saves the sheet's entries as JSON, creating parent directories.
func (s *Sheet) WriteIndex(path string) error {
	data, err := MarshalIndex(s.Entries)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, "creating directory for %s", path)
	}
	return errors.Wrapf(ioutil.WriteFile(path, data, 0644), "writing %s", path)
}

// ReadIndex loads entries written by WriteIndex.
func ReadIndex(path string) ([]Entry, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, errors.Wrapf(err, "decoding %s", path)
	}
	return entries, nil
}
