// Package fetcher downloads country flag images listed on a web page.
//
// The listing page is a hard dependency: if it cannot be retrieved the whole
// run fails. Individual images are best effort; a failed image is recorded in
// the returned report and the run continues with the next one.
package fetcher

import (
	"context"
	"io/ioutil"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/vincent-petithory/dataurl"
	"golang.org/x/net/html/charset"

	"badc0de.net/pkg/flagquiz/batch"
)

const (
	// DefaultListingURL is the page the flags are scraped from.
	DefaultListingURL = "https://theflags.org/country-flags-of-the-world/"

	// DefaultUserAgent identifies the scraper on every request.
	DefaultUserAgent = "Mozilla/5.0 (compatible; FlagsQuizBot/1.0)"

	// DefaultImageTimeout bounds each image download.
	DefaultImageTimeout = 10 * time.Second
)

// ErrStatus is the cause of errors for non-2xx responses.
var ErrStatus = errors.New("unexpected http status")

// Fetcher downloads flags into OutputDir.
type Fetcher struct {
	Client       *http.Client
	OutputDir    string
	UserAgent    string
	ImageTimeout time.Duration
}

// New returns a Fetcher with default settings that saves into outputDir.
func New(outputDir string) *Fetcher {
	return &Fetcher{
		Client:       http.DefaultClient,
		OutputDir:    outputDir,
		UserAgent:    DefaultUserAgent,
		ImageTimeout: DefaultImageTimeout,
	}
}

// FetchAll downloads every flag on the listing page. The returned report has
// one result per flag found; report.Saved() is the number of files written.
//
// An error is returned only when the listing page itself is unusable or the
// output directory cannot be created.
func (f *Fetcher) FetchAll(ctx context.Context, listingURL string) (*batch.Report, error) {
	flags, err := f.Listing(ctx, listingURL)
	if err != nil {
		return nil, err
	}
	glog.Infof("found %d flag images", len(flags))

	if err := os.MkdirAll(f.OutputDir, 0755); err != nil {
		return nil, errors.Wrapf(err, "creating %s", f.OutputDir)
	}

	report := &batch.Report{}
	written := make(map[string]string)
	for _, fl := range flags {
		fn, err := f.Save(ctx, fl)
		if err != nil {
			glog.Warningf("failed to download %s: %v", fl.Country, err)
			report.Skip(fl.Country, err)
			continue
		}
		if prev, ok := written[fn]; ok && prev != fl.Country {
			glog.Warningf("%s overwrote %s: both are saved as %s", fl.Country, prev, fn)
		}
		written[fn] = fl.Country
		glog.Infof("saved: %s", fn)
		report.Done(fl.Country)
	}
	return report, nil
}

// Listing retrieves and parses the listing page.
func (f *Fetcher) Listing(ctx context.Context, listingURL string) ([]Flag, error) {
	pageURL, err := url.Parse(listingURL)
	if err != nil {
		return nil, errors.Wrapf(err, "bad listing url %q", listingURL)
	}

	resp, err := f.get(ctx, listingURL)
	if err != nil {
		return nil, errors.Wrap(err, "fetching listing page")
	}
	defer resp.Body.Close()

	body, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, errors.Wrap(err, "decoding listing page")
	}
	return ParseListing(body, pageURL)
}

// Save downloads one flag and writes it into the output directory. It
// returns the name of the written file.
func (f *Fetcher) Save(ctx context.Context, fl Flag) (string, error) {
	stem := Sanitize(fl.Country)
	if stem == "" {
		return "", errors.Errorf("%q has no usable file name", fl.Country)
	}

	var (
		data []byte
		ext  string
		err  error
	)
	if strings.HasPrefix(fl.Source, "data:") {
		data, ext, err = decodeDataURL(fl.Source)
	} else {
		data, ext, err = f.download(ctx, fl.Source)
	}
	if err != nil {
		return "", err
	}

	fn := stem + ext
	if err := ioutil.WriteFile(filepath.Join(f.OutputDir, fn), data, 0644); err != nil {
		return "", errors.Wrapf(err, "writing %s", fn)
	}
	return fn, nil
}

func (f *Fetcher) download(ctx context.Context, src string) ([]byte, string, error) {
	u, err := url.Parse(src)
	if err != nil {
		return nil, "", errors.Wrapf(err, "bad image url %q", src)
	}

	timeout := f.ImageTimeout
	if timeout <= 0 {
		timeout = DefaultImageTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := f.get(ctx, src)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, "", errors.Wrapf(err, "reading %s", src)
	}
	return data, path.Ext(u.Path), nil
}

// get performs a GET with the scraper's user agent and fails on non-2xx.
func (f *Fetcher) get(ctx context.Context, u string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "building request for %q", u)
	}
	req = req.WithContext(ctx)
	ua := f.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}
	req.Header.Set("User-Agent", ua)

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "GET %s", u)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, errors.Wrapf(ErrStatus, "GET %s: status %d", u, resp.StatusCode)
	}
	return resp, nil
}

// decodeDataURL returns the payload of an inline image and a file extension
// derived from its media type.
func decodeDataURL(src string) ([]byte, string, error) {
	du, err := dataurl.DecodeString(src)
	if err != nil {
		return nil, "", errors.Wrap(err, "decoding inline image")
	}
	if du.MediaType.Type != "image" {
		return nil, "", errors.Errorf("inline data is %s, not an image", du.MediaType.ContentType())
	}
	sub := strings.SplitN(du.MediaType.Subtype, "+", 2)[0]
	return du.Data, "." + sub, nil
}
