package main

import (
	"testing"

	"badc0de.net/pkg/flagquiz/names"
	"badc0de.net/pkg/flagquiz/sprite"
)

func TestMatches(t *testing.T) {
	e := sprite.Entry{Name: names.Names{RU: "Бразилия", EN: "Brazil", ES: "Brasil", CN: "巴西", FR: "Brésil"}}
	for n, want := range map[string]bool{
		"Brazil":   true,
		"brasil":   true,
		"Brésil":   true,
		"бразилия": true,
		"巴西":       true,
		"乍得":       false,
		"Chad":     false,
	} {
		if got := matches(e, n); got != want {
			t.Errorf("matches(%q) = %v; want %v", n, got, want)
		}
	}
}
