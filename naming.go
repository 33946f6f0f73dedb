// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Typemark Authors
// Source: github.com/typemark/typemark

package typemark

import (
	"strconv"
	"strings"
	"unicode"
)

// exportName converts one schema identifier into an exported display name:
// word boundaries on separators, leading letter upper-cased, digits kept
// except in leading position.
func exportName(value string) string {
	var out strings.Builder
	upperNext := true
	for _, r := range strings.TrimSpace(value) {
		switch {
		case unicode.IsLetter(r):
			if upperNext {
				out.WriteRune(unicode.ToUpper(r))
				upperNext = false
				continue
			}

			out.WriteRune(r)
		case unicode.IsDigit(r):
			if out.Len() == 0 {
				continue
			}

			out.WriteRune(r)
			upperNext = true
		default:
			upperNext = true
		}
	}

	return out.String()
}

// caseName derives an enum case display name from its wire value.
func caseName(value string) string {
	name := exportName(value)
	if name == "" {
		return "Empty"
	}

	return name
}

// uniqueName claims one collision-free display name, suffixing a counter when
// the base is already taken. Unique names are what keep typedef anchors
// pairwise distinct across the document.
func (r *resolver) uniqueName(base string) string {
	if base == "" {
		base = "Type"
	}

	name := base
	for i := 2; ; i++ {
		if _, taken := r.claimed[name]; !taken {
			break
		}

		name = base + strconv.Itoa(i)
	}

	r.claimed[name] = struct{}{}
	return name
}
