// Package web serves a built sprite sheet and its index over HTTP, along with
// each flag cropped out of the sheet. It is a preview aid for working on the
// assets, not part of the quiz.
package web

import (
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/disintegration/imaging"
	"github.com/golang/glog"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"

	"badc0de.net/pkg/flagquiz/sprite"
)

// Handler serves one sprite sheet and its entries.
type Handler struct {
	sheet   image.Image
	entries []sprite.Entry
	modTime time.Time

	sheetPNG  []byte
	indexJSON []byte
	etag      string

	cropLock sync.Mutex
	crops    map[int][]byte
	group    singleflight.Group
}

// NewHandler constructs a web handler for the passed sheet and entries.
// modTime is reported as Last-Modified; it may be zero.
func NewHandler(sheet image.Image, entries []sprite.Entry, modTime time.Time) (*Handler, error) {
	h := &Handler{
		sheet:   sheet,
		entries: entries,
		modTime: modTime,
		crops:   make(map[int][]byte),
	}

	b := &bytes.Buffer{}
	if err := png.Encode(b, sheet); err != nil {
		return nil, errors.Wrap(err, "encoding sheet")
	}
	h.sheetPNG = b.Bytes()

	idx, err := sprite.MarshalIndex(entries)
	if err != nil {
		return nil, err
	}
	h.indexJSON = idx

	sum := sha1.New()
	sum.Write(h.sheetPNG)
	sum.Write(h.indexJSON)
	h.etag = fmt.Sprintf(`W/"flags:%x"`, sum.Sum(nil)[:8])
	return h, nil
}

// Load reads the sheet and index written by the sprite builder.
func Load(spritePath, indexPath string) (*Handler, error) {
	sheet, err := imaging.Open(spritePath)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", spritePath)
	}
	entries, err := sprite.ReadIndex(indexPath)
	if err != nil {
		return nil, err
	}
	var modTime time.Time
	if s, err := os.Stat(spritePath); err == nil {
		modTime = s.ModTime()
	}
	glog.Infof("serving %d flags from %s", len(entries), spritePath)
	return NewHandler(sheet, entries, modTime)
}

// cached sets caching headers and reports whether the client's copy is current.
func (h *Handler) cached(w http.ResponseWriter, r *http.Request, etag string) bool {
	w.Header().Set("Cache-Control", "public; max-age=36000") // 36000 = 10h
	w.Header().Set("ETag", etag)
	if !h.modTime.IsZero() {
		w.Header().Set("Last-Modified", h.modTime.UTC().Format(http.TimeFormat))
	}
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return true
	}
	return false
}

func (h *Handler) write(w http.ResponseWriter, r *http.Request, etag, mime string, body []byte) {
	if h.cached(w, r, etag) {
		return
	}
	w.Header().Set("Content-Type", mime)
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

func (h *Handler) entryIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	idx, err := strconv.Atoi(mux.Vars(r)["idx"])
	if err != nil {
		http.Error(w, "idx not a number", http.StatusBadRequest)
		return 0, false
	}
	if idx < 0 || idx >= len(h.entries) {
		http.Error(w, fmt.Sprintf("no flag %d", idx), http.StatusNotFound)
		return 0, false
	}
	return idx, true
}

func (h *Handler) sheetHandler(w http.ResponseWriter, r *http.Request) {
	h.write(w, r, h.etag, "image/png", h.sheetPNG)
}

func (h *Handler) indexHandler(w http.ResponseWriter, r *http.Request) {
	h.write(w, r, h.etag, "application/json; charset=utf-8", h.indexJSON)
}

func (h *Handler) entryHandler(w http.ResponseWriter, r *http.Request) {
	idx, ok := h.entryIndex(w, r)
	if !ok {
		return
	}
	body, err := json.Marshal(h.entries[idx])
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.write(w, r, fmt.Sprintf(`%s-%d"`, h.etag[:len(h.etag)-1], idx), "application/json; charset=utf-8", body)
}

func (h *Handler) cropHandler(w http.ResponseWriter, r *http.Request) {
	idx, ok := h.entryIndex(w, r)
	if !ok {
		return
	}
	body, err := h.crop(idx)
	if err != nil {
		glog.Errorf("cropping flag %d: %v", idx, err)
		http.Error(w, "image could not be generated", http.StatusInternalServerError)
		return
	}
	h.write(w, r, fmt.Sprintf(`%s-%d.png"`, h.etag[:len(h.etag)-1], idx), "image/png", body)
}

// crop returns the PNG of entry idx, encoding it on first use.
func (h *Handler) crop(idx int) ([]byte, error) {
	h.cropLock.Lock()
	body, ok := h.crops[idx]
	h.cropLock.Unlock()
	if ok {
		return body, nil
	}

	v, err, _ := h.group.Do(strconv.Itoa(idx), func() (interface{}, error) {
		img := sprite.CropImage(h.sheet, h.entries[idx].Img)
		b := &bytes.Buffer{}
		if err := png.Encode(b, img); err != nil {
			return nil, err
		}
		h.cropLock.Lock()
		h.crops[idx] = b.Bytes()
		h.cropLock.Unlock()
		return b.Bytes(), nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

// RegisterRoutes adds the sheet, index and per-flag routes to r.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/flags.png", h.sheetHandler)
	r.HandleFunc("/flags.json", h.indexHandler)
	r.HandleFunc("/flag/{idx:[0-9]+}.png", h.cropHandler)
	r.HandleFunc("/flag/{idx:[0-9]+}", h.entryHandler)
}
