// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fonts

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/go-text/typesetting/fontscan"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// maxScanDepth limits recursion into font directories.
const maxScanDepth = 3

// maxFontFileSize skips oversized files while indexing font directories.
const maxFontFileSize = 20 << 20

// resolver finds installed fonts by name. The system font map is consulted
// first; the font directories are indexed by file and family name on the
// first miss.
type resolver struct {
	logger *log.Logger

	fm      *fontscan.FontMap
	fmReady bool

	index map[string]Source
}

func newResolver(logger *log.Logger) *resolver {
	return &resolver{logger: logger}
}

// Variants returns the spellings tried for a font name: as given, without
// spaces, and with spaces replaced by '-' or '_'.
func Variants(name string) []string {
	name = strings.Join(strings.Fields(name), " ")
	var out []string
	seen := make(map[string]bool)
	for _, v := range []string{
		name,
		strings.ReplaceAll(name, " ", ""),
		strings.ReplaceAll(name, " ", "-"),
		strings.ReplaceAll(name, " ", "_"),
	} {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

func (r *resolver) find(name string) (Source, bool) {
	for _, v := range Variants(name) {
		if s, ok := r.fromFontMap(v); ok {
			return s, true
		}
	}
	for _, v := range Variants(name) {
		if s, ok := r.fromIndex(v); ok {
			return s, true
		}
	}
	return Source{}, false
}

func (r *resolver) fromFontMap(family string) (Source, bool) {
	if !r.fmReady {
		r.fmReady = true
		// fontscan is chatty about every font it cannot parse.
		fm := fontscan.NewFontMap(log.New(io.Discard, "", 0))
		dir, err := os.UserCacheDir()
		if err != nil {
			dir = os.TempDir()
		}
		if err := fm.UseSystemFonts(dir); err != nil {
			r.logger.Printf("fontscan: loading system fonts: %v", err)
		} else {
			r.fm = fm
		}
	}
	if r.fm == nil {
		return Source{}, false
	}
	loc, ok := r.fm.FindSystemFont(family)
	if !ok {
		return Source{}, false
	}
	if _, err := os.Stat(loc.File); err != nil {
		return Source{}, false
	}
	return Source{Path: loc.File, Index: int(loc.Index)}, true
}

func (r *resolver) fromIndex(name string) (Source, bool) {
	if r.index == nil {
		r.index = make(map[string]Source)
		for _, dir := range systemFontDirs() {
			r.scanDir(dir, 0)
		}
	}
	s, ok := r.index[strings.ToLower(name)]
	return s, ok
}

func (r *resolver) scanDir(dir string, depth int) {
	if depth > maxScanDepth {
		return
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			r.scanDir(path, depth+1)
			continue
		}
		lower := strings.ToLower(entry.Name())
		switch filepath.Ext(lower) {
		case ".ttf", ".otf", ".ttc", ".otc":
		default:
			continue
		}
		base := strings.TrimSuffix(lower, filepath.Ext(lower))
		if _, ok := r.index[base]; !ok {
			r.index[base] = Source{Path: path}
		}
		r.indexNames(path)
	}
}

// indexNames registers a font file under its family and full names.
func (r *resolver) indexNames(path string) {
	info, err := os.Stat(path)
	if err != nil || info.Size() > maxFontFileSize {
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	var fonts []*opentype.Font
	if isCollection(path) {
		c, err := opentype.ParseCollection(data)
		if err != nil {
			return
		}
		for i := 0; i < c.NumFonts(); i++ {
			f, err := c.Font(i)
			if err != nil {
				fonts = append(fonts, nil)
				continue
			}
			fonts = append(fonts, f)
		}
	} else {
		f, err := opentype.Parse(data)
		if err != nil {
			return
		}
		fonts = append(fonts, f)
	}
	for i, f := range fonts {
		if f == nil {
			continue
		}
		for _, id := range []sfnt.NameID{sfnt.NameIDFull, sfnt.NameIDFamily} {
			n, err := f.Name(nil, id)
			if err != nil || n == "" {
				continue
			}
			key := strings.ToLower(n)
			if _, ok := r.index[key]; !ok {
				r.index[key] = Source{Path: path, Index: i}
			}
		}
	}
}

// systemFontDirs returns OS-specific font directories.
func systemFontDirs() []string {
	home, _ := os.UserHomeDir()
	switch runtime.GOOS {
	case "windows":
		windir := os.Getenv("WINDIR")
		if windir == "" {
			windir = `C:\Windows`
		}
		dirs := []string{filepath.Join(windir, "Fonts")}
		if local := os.Getenv("LOCALAPPDATA"); local != "" {
			dirs = append(dirs, filepath.Join(local, "Microsoft", "Windows", "Fonts"))
		}
		return dirs
	case "darwin":
		dirs := []string{"/System/Library/Fonts", "/Library/Fonts"}
		if home != "" {
			dirs = append(dirs, filepath.Join(home, "Library", "Fonts"))
		}
		return dirs
	default:
		dirs := []string{"/usr/share/fonts", "/usr/local/share/fonts"}
		if home != "" {
			dirs = append(dirs, filepath.Join(home, ".local", "share", "fonts"), filepath.Join(home, ".fonts"))
		}
		return dirs
	}
}
