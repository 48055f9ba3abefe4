// Package imageprint prints images on terminal. UNSUPPORTED debug package.
//
// This package has an API with no stability guarantees.
package imageprint

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	ic "image/color"
	"image/png"
	"io"

	"github.com/gookit/color"
	"github.com/pkg/errors"
)

// Mode selects how an image is drawn.
type Mode int

const (
	// TrueColor uses 24 bit background color escapes.
	TrueColor Mode = iota
	// Color256 uses gookit/color, which degrades to what the terminal supports.
	Color256
	// NoColor prints shading characters only.
	NoColor
	// ITerm uses iTerm2's inline image escape.
	ITerm
	// RasTerm picks kitty, iTerm or sixel output, whichever the terminal supports.
	RasTerm
)

// ParseMode maps a flag value to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "24bit", "truecolor", "":
		return TrueColor, nil
	case "256":
		return Color256, nil
	case "none":
		return NoColor, nil
	case "iterm":
		return ITerm, nil
	case "rasterm":
		return RasTerm, nil
	}
	return TrueColor, errors.Errorf("unknown print mode %q", s)
}

// Print draws img on w. With blanks set, pixels are drawn as colored blanks
// instead of shading characters.
func Print(w io.Writer, img image.Image, mode Mode, blanks bool) error {
	switch mode {
	case ITerm:
		return PrintITerm(w, img, "flag.png")
	case RasTerm:
		return PrintRasTerm(w, img)
	}

	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			io.WriteString(w, shade(img.At(x, y), mode, blanks))
		}
		if mode != NoColor {
			io.WriteString(w, "\x1b[0m")
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// shade returns the two-character cell for one pixel.
func shade(col ic.Color, mode Mode, blanks bool) string {
	cR, cG, cB, cA := col.RGBA()
	if cA == 0 {
		if mode == NoColor {
			return "  "
		}
		return "\x1b[0m  "
	}

	cell := "  "
	if !blanks {
		a := ((cR + cG + cB) / 3) >> 8
		switch {
		case a < 32:
			cell = ".."
		case a < 64:
			cell = "--"
		case a < 128:
			cell = "=="
		default:
			cell = "##"
		}
	}

	r, g, bl := uint8(cR>>8), uint8(cG>>8), uint8(cB>>8)
	switch mode {
	case NoColor:
		return cell
	case Color256:
		return color.RGB(r, g, bl, true).Sprint(cell)
	default:
		return fmt.Sprintf("\x1b[48;2;%d;%d;%dm%s\x1b[0m", r, g, bl, cell)
	}
}

// PrintITerm draws an image using iTerm2's escape sequences.
//
// https://www.iterm2.com/documentation-images.html
func PrintITerm(w io.Writer, i image.Image, fn string) error {
	name := base64.StdEncoding.EncodeToString([]byte(fn))
	b := &bytes.Buffer{}
	bEnc := base64.NewEncoder(base64.StdEncoding, b)
	if err := png.Encode(bEnc, i); err != nil {
		return errors.Wrap(err, "encoding png for iterm")
	}
	bEnc.Close()
	_, err := fmt.Fprintf(w, "\n\033]1337;File=name=%s;inline=1;size=%d,width=%dpx;height=%dpx:%s\a\n", name, b.Len(), i.Bounds().Dx(), i.Bounds().Dy(), b.String())
	return err
}
