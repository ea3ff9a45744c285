// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fightword

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ReadWords reads one word or phrase per line. Blank lines and lines
// starting with '#' are skipped.
func ReadWords(r io.Reader) ([]string, error) {
	var words []string
	s := bufio.NewScanner(r)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading words: %w", err)
	}
	return words, nil
}

var separators = strings.NewReplacer("!", "", "-", "_", " ", "_")

// Filename returns a file name for word: '!' is dropped, '-' and spaces
// become '_', accents are folded and anything else outside letters, digits,
// '_' and '.' is removed. Words with nothing left are named after n.
func Filename(word string, n int, ext string) string {
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	name, _, err := transform.String(fold, separators.Replace(word))
	if err != nil {
		name = separators.Replace(word)
	}
	name = strings.Map(func(r rune) rune {
		if r == '_' || r == '.' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, name)
	name = strings.TrimLeft(name, ".")
	if name == "" {
		name = fmt.Sprintf("word_%d", n)
	}
	return name + ext
}
