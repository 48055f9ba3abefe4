// Binary flagfetch downloads country flag images from a listing page into the
// flags directory, one file per country.
package main

import (
	"context"
	"flag"
	"time"

	"badc0de.net/pkg/flagutil/v1"
	"github.com/golang/glog"

	"badc0de.net/pkg/flagquiz/fetcher"
	"badc0de.net/pkg/flagquiz/paths"
)

var (
	listingURL   = flag.String("listing_url", fetcher.DefaultListingURL, "page listing the flags")
	userAgent    = flag.String("user_agent", fetcher.DefaultUserAgent, "User-Agent sent with every request")
	imageTimeout = flag.Duration("image_timeout", fetcher.DefaultImageTimeout, "timeout for each image download")

	flagsDir string
)

func main() {
	paths.SetupOutputPathFlag(paths.FlagsDir, "flags_dir", &flagsDir)
	flagutil.Parse()
	flag.Set("logtostderr", "true")

	f := fetcher.New(flagsDir)
	f.UserAgent = *userAgent
	f.ImageTimeout = *imageTimeout

	start := time.Now()
	report, err := f.FetchAll(context.Background(), *listingURL)
	if err != nil {
		glog.Exitf("fetching flags: %v", err)
	}
	glog.Infof("done in %v: %s", time.Since(start).Round(time.Millisecond), report.Summary())
	glog.Flush()
}
