// Binary flagprint prints flags from a built sprite sheet on the terminal,
// cropped using the rectangles in the index.
package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"strings"

	"badc0de.net/pkg/flagutil/v1"
	"github.com/disintegration/imaging"
	"github.com/golang/glog"
	"github.com/nfnt/resize"

	"badc0de.net/pkg/flagquiz/imageprint"
	"badc0de.net/pkg/flagquiz/names"
	"badc0de.net/pkg/flagquiz/paths"
	"badc0de.net/pkg/flagquiz/sprite"
)

var (
	entryIdx = flag.Int("flag", -1, "index of the flag to print; -1 prints all of them")
	name     = flag.String("name", "", "print the flag with this name in any language instead")
	mode     = flag.String("mode", "24bit", "one of 24bit, 256, none, iterm, rasterm")
	blanks   = flag.Bool("blanks", true, "whether to just use colored blanks instead of some bad ascii art")
	downsize = flag.Bool("downsize", true, "whether to fit flags to the terminal size")
	lang     = flag.String("lang", "en", "language of the caption")

	spritePath string
	indexPath  string
)

// matches reports whether entry e has name n in any language. Names without
// ASCII letters, such as "Бразилия", are compared ignoring case only.
func matches(e sprite.Entry, n string) bool {
	key := names.Normalize(n)
	for _, l := range names.Languages {
		v := e.Name.Get(l)
		if strings.EqualFold(v, n) || (key != "" && names.Normalize(v) == key) {
			return true
		}
	}
	return false
}

func out(img image.Image, m imageprint.Mode) {
	if *downsize {
		termSize, err := GetTermSize()
		if err == nil {
			if (termSize.WSXPixel != 0 && termSize.WSYPixel != 0) && (m == imageprint.RasTerm || m == imageprint.ITerm) {
				img = resize.Thumbnail(termSize.WSXPixel/2, termSize.WSYPixel/2, img, resize.Lanczos3)
			} else {
				// Every pixel takes two columns.
				img = resize.Thumbnail(termSize.WSCol/2, termSize.WSRow, img, resize.Lanczos3)
			}
		} else {
			glog.V(1).Infof("not downsizing: %v", err)
		}
	}
	if err := imageprint.Print(os.Stdout, img, m, *blanks); err != nil {
		glog.Errorf("printing: %v", err)
	}
}

func main() {
	paths.SetupFilePathFlag(paths.SpritePath, "sprite_path", &spritePath)
	paths.SetupFilePathFlag(paths.IndexPath, "index_path", &indexPath)
	flagutil.Parse()
	flag.Set("logtostderr", "true")

	m, err := imageprint.ParseMode(*mode)
	if err != nil {
		glog.Exit(err)
	}
	sheet, err := imaging.Open(spritePath)
	if err != nil {
		glog.Exitf("opening sprite sheet: %v", err)
	}
	entries, err := sprite.ReadIndex(indexPath)
	if err != nil {
		glog.Exit(err)
	}

	printed := 0
	for i, e := range entries {
		switch {
		case *name != "":
			if !matches(e, *name) {
				continue
			}
		case *entryIdx >= 0:
			if i != *entryIdx {
				continue
			}
		}
		fmt.Printf("%d: %s\n", i, e.Name.Get(*lang))
		out(sprite.CropImage(sheet, e.Img), m)
		printed++
	}
	if printed == 0 {
		glog.Exitf("no matching flag among %d entries", len(entries))
	}
}
