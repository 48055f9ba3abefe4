package fetcher

import (
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// FlagSuffix marks an image as a flag: its alt text must end with it.
const FlagSuffix = "Flag"

// lazyAttrs hold the real image location on pages that lazy-load images and
// put a placeholder in src.
var lazyAttrs = []string{"data-src", "data-lazy-src"}

// Flag is one flag image found on a listing page.
type Flag struct {
	// Country is the display name, e.g. "United States".
	Country string
	// Source is an absolute URL, or a data: URL for inline images.
	Source string
}

// ParseListing finds all flag images in the HTML read from r. Relative image
// locations are resolved against pageURL, or against the page's <base> if it
// has one.
func ParseListing(r io.Reader, pageURL *url.URL) ([]Flag, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "parsing listing page")
	}

	base := pageURL
	if href, ok := doc.Find("base[href]").First().Attr("href"); ok {
		if u, err := pageURL.Parse(strings.TrimSpace(href)); err == nil {
			base = u
		} else {
			glog.Warningf("ignoring bad <base href=%q>: %v", href, err)
		}
	}

	var flags []Flag
	doc.Find("img[alt]").Each(func(_ int, s *goquery.Selection) {
		alt := s.AttrOr("alt", "")
		if !strings.HasSuffix(alt, FlagSuffix) {
			return
		}
		country := strings.TrimSpace(strings.TrimSuffix(alt, FlagSuffix))
		src := imageSource(s)
		if country == "" || src == "" {
			return
		}
		if !strings.HasPrefix(src, "data:") {
			u, err := base.Parse(src)
			if err != nil {
				glog.Warningf("%s: bad image location %q: %v", country, src, err)
				return
			}
			src = u.String()
		}
		flags = append(flags, Flag{Country: country, Source: src})
	})
	return flags, nil
}

func imageSource(s *goquery.Selection) string {
	src := strings.TrimSpace(s.AttrOr("src", ""))
	if src != "" && !strings.HasPrefix(src, "data:") {
		return src
	}
	for _, attr := range lazyAttrs {
		if v := strings.TrimSpace(s.AttrOr(attr, "")); v != "" {
			return v
		}
	}
	return src
}
