// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fightword

import (
	"fmt"
	"strings"
)

// DistortionSet is a set of geometric distortions. Enabled distortions are
// always applied in the order shear, fisheye, perspective.
type DistortionSet uint8

const (
	DistortShear DistortionSet = 1 << iota
	DistortFisheye
	DistortPerspective

	AllDistortions = DistortShear | DistortFisheye | DistortPerspective
)

var distortionNames = []struct {
	d    DistortionSet
	name string
}{
	{DistortShear, "shear"},
	{DistortFisheye, "fisheye"},
	{DistortPerspective, "perspective"},
}

// ValidDistortions lists the accepted distortion names, in application order.
func ValidDistortions() []string {
	var names []string
	for _, dn := range distortionNames {
		names = append(names, dn.name)
	}
	return names
}

// Has reports whether every distortion in d is in s.
func (s DistortionSet) Has(d DistortionSet) bool {
	return s&d == d
}

func (s DistortionSet) String() string {
	var names []string
	for _, dn := range distortionNames {
		if s.Has(dn.d) {
			names = append(names, dn.name)
		}
	}
	return strings.Join(names, ",")
}

// ParseDistortions parses a comma separated list such as "shear,fisheye".
// An empty list is the empty set. Unknown names are an error listing the
// valid options.
func ParseDistortions(list string) (DistortionSet, error) {
	var s DistortionSet
	var invalid []string
	for _, name := range strings.Split(list, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		found := false
		for _, dn := range distortionNames {
			if dn.name == name {
				s |= dn.d
				found = true
				break
			}
		}
		if !found {
			invalid = append(invalid, name)
		}
	}
	if len(invalid) > 0 {
		return 0, fmt.Errorf("invalid distortion types: %s (valid options: %s)",
			strings.Join(invalid, ", "), strings.Join(ValidDistortions(), ", "))
	}
	return s, nil
}
