package names

import (
	"strings"
	"testing"

	"pgregory.net/rapid"

	"badc0de.net/pkg/flagquiz/ttesting"
)

const testDataset = `[
  {
    "name": {"common": "Brazil", "official": "Federative Republic of Brazil"},
    "altSpellings": ["BR", "Brasil", "República Federativa do Brasil"],
    "translations": {
      "rus": {"official": "Федеративная Республика Бразилия", "common": "Бразилия"},
      "spa": {"official": "República Federativa del Brasil", "common": "Brasil"},
      "zho": {"official": "巴西联邦共和国", "common": "巴西"},
      "fra": {"official": "République fédérative du Brésil", "common": "Brésil"}
    }
  },
  {
    "name": {"common": "United States", "official": "United States of America"},
    "altSpellings": ["US", "USA"],
    "translations": {
      "rus": {"common": "Соединённые Штаты Америки"}
    }
  },
  {
    "name": {"official": "Nameless Republic"},
    "altSpellings": ["NR"]
  },
  {
    "name": {"common": "Côte d'Ivoire"},
    "altSpellings": ["CI", "Ivory Coast", "--"]
  }
]`

func testIndex(t *testing.T) *Index {
	t.Helper()
	ix, err := Decode(strings.NewReader(testDataset))
	ttesting.AssertNoError(t, "Decode", err)
	return ix
}

func TestNormalize(t *testing.T) {
	for _, tc := range []struct {
		in, want string
	}{
		{"Brazil", "brazil"},
		{"United_States", "unitedstates"},
		{"United States", "unitedstates"},
		{"Guinea-Bissau", "guineabissau"},
		{"Côte d'Ivoire", "ctedivoire"},
		{"Cote_dIvoire", "cotedivoire"},
		{"São Tomé", "sotom"},
		{"sao tome", "saotome"},
		{"G20 2024!", "g202024"},
		{"", ""},
		{"___", ""},
	} {
		ttesting.AssertEqualString(t, tc.in, Normalize(tc.in), tc.want)
	}
}

func TestNormalizeProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.String().Draw(t, "s")
		n := Normalize(s)
		if Normalize(n) != n {
			t.Fatalf("Normalize not idempotent for %q: %q -> %q", s, n, Normalize(n))
		}
		for _, c := range n {
			if !(('a' <= c && c <= 'z') || ('0' <= c && c <= '9')) {
				t.Fatalf("Normalize(%q) = %q contains %q", s, n, c)
			}
		}
	})

	rapid.Check(t, func(t *rapid.T) {
		s := rapid.StringMatching(`[A-Za-z0-9 _'.,-]{0,30}`).Draw(t, "s")
		if Normalize(strings.ToUpper(s)) != Normalize(strings.ToLower(s)) {
			t.Fatalf("Normalize is case sensitive for %q", s)
		}
		stripped := strings.NewReplacer(" ", "", "_", "", "'", "", ".", "", ",", "", "-", "").Replace(s)
		if Normalize(s) != Normalize(stripped) {
			t.Fatalf("Normalize(%q) = %q; punctuation-free %q gives %q", s, Normalize(s), stripped, Normalize(stripped))
		}
	})
}

func TestLookup(t *testing.T) {
	ix := testIndex(t)

	brazil := ix.Lookup("Brazil")
	ttesting.AssertEqualString(t, "brazil ru", brazil.RU, "Бразилия")
	ttesting.AssertEqualString(t, "brazil en", brazil.EN, "Brazil")
	ttesting.AssertEqualString(t, "brazil es", brazil.ES, "Brasil")
	ttesting.AssertEqualString(t, "brazil cn", brazil.CN, "巴西")
	ttesting.AssertEqualString(t, "brazil fr", brazil.FR, "Brésil")

	us := ix.Lookup("United_States")
	ttesting.AssertEqualString(t, "us ru", us.RU, "Соединённые Штаты Америки")
	for _, lang := range []string{"en", "es", "cn", "fr"} {
		ttesting.AssertEqualString(t, "us fallback "+lang, us.Get(lang), "United States")
	}

	ci := ix.Lookup("Ivory_Coast")
	ttesting.AssertEqualString(t, "alt spelling", ci.EN, "Côte d'Ivoire")
}

func TestLookupFallback(t *testing.T) {
	ix := testIndex(t)
	rapid.Check(t, func(t *rapid.T) {
		name := rapid.StringMatching(`zz[A-Za-z_ ]{0,20}`).Draw(t, "name")
		if _, ok := ix.Record(name); ok {
			return
		}
		got := ix.Lookup(name)
		for _, lang := range Languages {
			if got.Get(lang) != name {
				t.Fatalf("Lookup(%q)[%s] = %q; want the input back", name, lang, got.Get(lang))
			}
		}
	})

	chad := ix.Lookup("Chad")
	if chad != Same("Chad") {
		t.Errorf("Lookup(Chad) = %+v; want Chad everywhere", chad)
	}

	// "--" normalizes to nothing and must not be indexed.
	if _, ok := ix.Record("--"); ok {
		t.Errorf("empty normalized spelling was indexed")
	}
	if got := ix.Lookup("--"); got != Same("--") {
		t.Errorf("Lookup(--) = %+v", got)
	}
}

func TestLookupCompleteness(t *testing.T) {
	ix := testIndex(t)
	for canonical, spellings := range map[string][]string{
		"Brazil":        {"Brazil", "Federative Republic of Brazil", "BR", "Brasil", "República Federativa do Brasil", "brazil", "BRAZIL"},
		"United States": {"United States", "United States of America", "US", "USA", "united_states"},
		"Côte d'Ivoire": {"Côte d'Ivoire", "CI", "Ivory Coast"},
	} {
		want, ok := ix.Record(canonical)
		if !ok {
			t.Fatalf("no record for %q", canonical)
		}
		for _, s := range spellings {
			got, ok := ix.Record(s)
			if !ok {
				t.Errorf("%q: spelling %q not indexed", canonical, s)
				continue
			}
			if got != want {
				t.Errorf("%q: spelling %q resolves to a different record (%q)", canonical, s, got.Name("en"))
			}
		}
	}
}

func TestDecodeSkipsEntriesWithoutCommonName(t *testing.T) {
	ix := testIndex(t)
	if _, ok := ix.Record("Nameless Republic"); ok {
		t.Errorf("entry without common name was indexed")
	}
	if _, ok := ix.Record("NR"); ok {
		t.Errorf("alt spelling of entry without common name was indexed")
	}
}

func TestDecodeBrokenJSON(t *testing.T) {
	if _, err := Decode(strings.NewReader(`{"not": "an array"`)); err == nil {
		t.Errorf("Decode accepted broken JSON")
	}
}

func TestNilIndex(t *testing.T) {
	var ix *Index
	ttesting.AssertEqualInt(t, "len", ix.Len(), 0)
	if got := ix.Lookup("Brazil"); got != Same("Brazil") {
		t.Errorf("nil index Lookup = %+v", got)
	}
}

func TestRecord(t *testing.T) {
	r := NewRecord("Peru", map[string]string{"es": "Perú", "de": "Peru", "fr": "", "en": "ignored"})
	ttesting.AssertEqualString(t, "en", r.Name("en"), "Peru")
	ttesting.AssertEqualString(t, "es", r.Name("es"), "Perú")
	ttesting.AssertEqualString(t, "fr falls back", r.Name("fr"), "Peru")
	if r.Has("de") || r.Has("fr") {
		t.Errorf("unsupported or empty translations were stored")
	}
}
