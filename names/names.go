// Package names resolves country names to their display names in the
// languages the quiz supports.
//
// An Index is built once from a bulk country reference dataset. Every
// spelling of a country (common, official and alternate spellings) is
// registered under its normalized form and points to the same Record.
// Asset identifiers are looked up with the same normalization, so
// "United_States" finds the record registered for "United States".
package names

import (
	"strings"

	"github.com/golang/glog"
)

// Languages lists the supported language codes in output order.
var Languages = []string{"ru", "en", "es", "cn", "fr"}

// Normalize lowercases s and drops every character outside [a-z0-9].
//
// Only ASCII letters and digits survive. Accented letters are dropped, not
// transliterated, so Normalize("São Tomé") is "sotom".
func Normalize(s string) string {
	s = strings.ToLower(s)
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if ('a' <= c && c <= 'z') || ('0' <= c && c <= '9') {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Record is the canonical multilingual name of one country. It always has an
// English name; other languages are optional.
type Record struct {
	names map[string]string
}

// NewRecord returns a record with English name en. Translations with an empty
// value or an unsupported language code are ignored.
func NewRecord(en string, translations map[string]string) *Record {
	r := &Record{names: map[string]string{"en": en}}
	for lang, name := range translations {
		if name == "" || lang == "en" || !supported(lang) {
			continue
		}
		r.names[lang] = name
	}
	return r
}

func supported(lang string) bool {
	for _, l := range Languages {
		if l == lang {
			return true
		}
	}
	return false
}

// Name returns the name in lang, falling back to English.
func (r *Record) Name(lang string) string {
	if n, ok := r.names[lang]; ok {
		return n
	}
	return r.names["en"]
}

// Has reports whether the record carries its own name for lang.
func (r *Record) Has(lang string) bool {
	_, ok := r.names[lang]
	return ok
}

// Names expands the record into all supported languages.
func (r *Record) Names() Names {
	return Names{
		RU: r.Name("ru"),
		EN: r.Name("en"),
		ES: r.Name("es"),
		CN: r.Name("cn"),
		FR: r.Name("fr"),
	}
}

// Names is a country name resolved into every supported language. Field
// order matches the order of the JSON index.
type Names struct {
	RU string `json:"ru"`
	EN string `json:"en"`
	ES string `json:"es"`
	CN string `json:"cn"`
	FR string `json:"fr"`
}

// Same returns Names with every language set to s.
func Same(s string) Names {
	return Names{RU: s, EN: s, ES: s, CN: s, FR: s}
}

// Get returns the name for lang, or "" for an unknown code.
func (n Names) Get(lang string) string {
	switch lang {
	case "ru":
		return n.RU
	case "en":
		return n.EN
	case "es":
		return n.ES
	case "cn":
		return n.CN
	case "fr":
		return n.FR
	}
	return ""
}

// Index maps normalized spellings to records.
//
// The zero value and a nil *Index are usable and contain nothing.
type Index struct {
	records map[string]*Record
}

// Add registers r under the normalized form of each spelling. Spellings that
// normalize to an empty string are ignored. A spelling already registered by
// an earlier record is taken over by r.
func (ix *Index) Add(r *Record, spellings ...string) {
	if ix.records == nil {
		ix.records = make(map[string]*Record)
	}
	for _, s := range spellings {
		key := Normalize(s)
		if key == "" {
			continue
		}
		if prev, ok := ix.records[key]; ok && prev != r {
			glog.V(2).Infof("names: %q now resolves to %q instead of %q", key, r.Name("en"), prev.Name("en"))
		}
		ix.records[key] = r
	}
}

// Record returns the record registered for name, if any.
func (ix *Index) Record(name string) (*Record, bool) {
	if ix == nil {
		return nil, false
	}
	r, ok := ix.records[Normalize(name)]
	return r, ok
}

// Lookup resolves name into every supported language. An unknown name is
// returned unchanged for every language.
func (ix *Index) Lookup(name string) Names {
	if r, ok := ix.Record(name); ok {
		return r.Names()
	}
	return Same(name)
}

// Len returns the number of registered spellings.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.records)
}
