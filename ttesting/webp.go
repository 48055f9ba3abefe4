package ttesting

import (
	"encoding/base64"
	"strings"
	"testing"
)

// WebPWidth and WebPHeight are the dimensions of the image WebPBytes returns.
const (
	WebPWidth  = 75
	WebPHeight = 100
)

// A lossless 1bpp gopher from the golang.org/x/image test data.
const gopherWebP = `
UklGRrIBAABXRUJQVlA4TKUBAAAvSsAYAA8w//M///MfeJAkbXvaSG7m8Q3GfYSBJekwQztm
/IcZlgwnmWImn2BK7aFmBtnVir6q//8VOkFE/xm4baTIu8c48ArEo6+B3zFKYln3pqClSCKX
0begFTAXFOLXHSyF8cCNcZEG4OywuA4KVVfJCiArU7GAgJI8+lJP/OKMT/fBAjevg1cYB7YV
kFuWga2lyPi5I0HFy5YTpWIHg0RZpkniRVW9odHAKOwosWuOGdxIyn2OvaCDvhg/we6TwadP
BPbqBV58MsLmMJ8yZnOWk8SRz4N+QoyPL+MnamzMvcE1rHNEr91F9GKZPVUcS9w7PhhH36su
B9qPeYb/oLk6cuTiJ0wOK3m5h1cKjW6EVZCYMK7dxcKCBdgP9HkKr9gkAO2P8GKZGWVdIAat
Qa+1IDpt6qyorVwdy01xdW8Jkfk6xjEXmVQQ+HQdFr6OKhIN34dXWq0+0qr6EJSCeeVLH9+g
vGTLyqM65PQ44ihzlTXxQKjKbAvshXgir7Lil9w4L2bvMycmjQcqXaMCO6BlY28i+FOLzbfI
1vEqxAhotocAAA==
`

// WebPBytes returns a small lossless WebP image.
func WebPBytes(t *testing.T) []byte {
	t.Helper()
	data, err := base64.StdEncoding.DecodeString(strings.Replace(gopherWebP, "\n", "", -1))
	if err != nil {
		t.Fatalf("decoding webp fixture: %v", err)
	}
	return data
}

// WriteWebP writes the WebPBytes image named name into dir and returns its path.
func WriteWebP(t *testing.T, dir, name string) string {
	t.Helper()
	return WriteFile(t, dir, name, WebPBytes(t))
}
