// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fonts resolves font names to files and caches sized faces.
package fonts

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// Source locates a font: a file, and the font's index when the file is a
// collection.
type Source struct {
	Path  string
	Index int
}

func (s Source) String() string {
	if s.Index == 0 {
		return s.Path
	}
	return fmt.Sprintf("%s#%d", s.Path, s.Index)
}

// Bundled is the font used when no named font is usable.
var Bundled = Source{Path: "gobold"}

// Fallback is returned when not even the bundled font can be loaded. It can
// still report glyph bounds.
var Fallback font.Face = basicfont.Face7x13

type faceKey struct {
	src  Source
	size int
}

// Provider hands out font faces at requested sizes. Faces are cached for
// the lifetime of the Provider and never evicted.
type Provider struct {
	// Logger receives font loading warnings.
	Logger *log.Logger

	sources []Source

	mu     sync.Mutex
	fonts  map[Source]*opentype.Font
	faces  map[faceKey]font.Face
	failed map[faceKey]bool
}

// NewProvider is New with the standard logger.
func NewProvider(names ...string) *Provider {
	return New(log.Default(), names...)
}

// New resolves names once. A name may be a path to a font file or a system
// font family such as "Liberation Sans Bold". Names that cannot be resolved
// are dropped; if names were given and none resolved, a warning is logged.
func New(logger *log.Logger, names ...string) *Provider {
	p := &Provider{
		Logger: logger,
		fonts:  make(map[Source]*opentype.Font),
		faces:  make(map[faceKey]font.Face),
		failed: make(map[faceKey]bool),
	}
	var r *resolver
	var requested []string
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		requested = append(requested, name)
		if fi, err := os.Stat(name); err == nil && !fi.IsDir() {
			p.sources = append(p.sources, Source{Path: name})
			continue
		}
		if r == nil {
			r = newResolver(p.Logger)
		}
		if s, ok := r.find(name); ok {
			p.sources = append(p.sources, s)
		}
	}
	if len(requested) > 0 && len(p.sources) == 0 {
		p.Logger.Printf("Warning: none of the fonts %q were found, using the default font", requested)
	}
	return p
}

// Sources returns the resolved fonts.
func (p *Provider) Sources() []Source {
	return append([]Source(nil), p.sources...)
}

// Face returns a face of the given size. If named fonts were resolved, one
// is picked uniformly at random using r. Loading failures are logged and
// fall back to the bundled font, then to Fallback.
func (p *Provider) Face(r *rand.Rand, size int) font.Face {
	if len(p.sources) > 0 {
		src := p.sources[r.Intn(len(p.sources))]
		if f, err := p.load(src, size); err == nil {
			return f
		}
	}
	if f, err := p.load(Bundled, size); err == nil {
		return f
	}
	return Fallback
}

func (p *Provider) load(src Source, size int) (font.Face, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	key := faceKey{src: src, size: size}
	if f, ok := p.faces[key]; ok {
		return f, nil
	}
	if p.failed[key] {
		return nil, fmt.Errorf("font %v previously failed to load", src)
	}
	f, err := p.newFace(src, size)
	if err != nil {
		p.failed[key] = true
		p.Logger.Printf("Warning: could not load font from %q: %v", src.String(), err)
		return nil, err
	}
	p.faces[key] = f
	return f, nil
}

func (p *Provider) newFace(src Source, size int) (font.Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid font size %d", size)
	}
	f, ok := p.fonts[src]
	if !ok {
		var err error
		f, err = parse(src)
		if err != nil {
			return nil, err
		}
		p.fonts[src] = f
	}
	ff, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("opentype.NewFace(%v, %d) = %w", src, size, err)
	}
	return ff, nil
}

func parse(src Source) (*opentype.Font, error) {
	var data []byte
	if src == Bundled {
		data = gobold.TTF
	} else {
		var err error
		data, err = os.ReadFile(src.Path)
		if err != nil {
			return nil, err
		}
	}
	if !isCollection(src.Path) && src.Index == 0 {
		f, err := opentype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("opentype.Parse(%q) = %w", src.Path, err)
		}
		return f, nil
	}
	c, err := opentype.ParseCollection(data)
	if err != nil {
		return nil, fmt.Errorf("opentype.ParseCollection(%q) = %w", src.Path, err)
	}
	f, err := c.Font(src.Index)
	if err != nil {
		return nil, fmt.Errorf("%q font %d: %w", src.Path, src.Index, err)
	}
	return f, nil
}

func isCollection(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttc", ".otc":
		return true
	}
	return false
}
