package names

import (
	"context"
	"encoding/json"
	"io"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// DefaultDatasetURL is the restcountries.com endpoint, limited to the fields
// the index needs.
const DefaultDatasetURL = "https://restcountries.com/v3.1/all?fields=name,translations,altSpellings"

// FetchTimeout bounds the bulk dataset request.
const FetchTimeout = 30 * time.Second

// UserAgent is sent with the dataset request.
var UserAgent = "Mozilla/5.0 (compatible; FlagsQuizBot/1.0)"

// ErrStatus is the cause of errors returned by Fetch when the dataset
// endpoint answers with anything but 200 OK.
var ErrStatus = errors.New("unexpected http status")

// translationKeys maps the dataset's translation keys to our language codes.
var translationKeys = map[string]string{
	"rus": "ru",
	"spa": "es",
	"zho": "cn",
	"fra": "fr",
}

type country struct {
	Name struct {
		Common   string `json:"common"`
		Official string `json:"official"`
	} `json:"name"`
	AltSpellings []string `json:"altSpellings"`
	Translations map[string]struct {
		Common string `json:"common"`
	} `json:"translations"`
}

// Fetch downloads the bulk dataset at url and builds an Index from it. A nil
// client means http.DefaultClient.
//
// There is no retry: any failure to get a 200 response is returned.
func Fetch(ctx context.Context, client *http.Client, url string) (*Index, error) {
	if client == nil {
		client = http.DefaultClient
	}
	ctx, cancel := context.WithTimeout(ctx, FetchTimeout)
	defer cancel()

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "names: building request for %q", url)
	}
	req = req.WithContext(ctx)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", UserAgent)

	glog.Infof("loading country data from %s", url)
	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "names: fetching %q", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		excerpt, _ := ioutil.ReadAll(io.LimitReader(resp.Body, 512))
		glog.Errorf("country data request failed: %d %s", resp.StatusCode, excerpt)
		return nil, errors.Wrapf(ErrStatus, "names: %q: status %d: %s", url, resp.StatusCode, excerpt)
	}

	ix, err := Decode(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "names: %q", url)
	}
	glog.Infof("loaded %d country spellings", ix.Len())
	return ix, nil
}

// Decode builds an Index from a restcountries-style JSON array. Entries
// without a common name are skipped.
func Decode(r io.Reader) (*Index, error) {
	var countries []country
	if err := json.NewDecoder(r).Decode(&countries); err != nil {
		return nil, errors.Wrap(err, "decoding country data")
	}

	ix := &Index{}
	for i, c := range countries {
		if c.Name.Common == "" {
			glog.V(1).Infof("names: skipping entry %d: no common name", i)
			continue
		}

		tr := make(map[string]string, len(translationKeys))
		for key, lang := range translationKeys {
			if t, ok := c.Translations[key]; ok && t.Common != "" {
				tr[lang] = t.Common
			}
		}
		rec := NewRecord(c.Name.Common, tr)

		spellings := append([]string{c.Name.Common, c.Name.Official}, c.AltSpellings...)
		ix.Add(rec, spellings...)
	}
	return ix, nil
}
