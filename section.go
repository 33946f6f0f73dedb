// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Typemark Authors
// Source: github.com/typemark/typemark

package typemark

// appendClassSection appends one self-contained class block: anchor, header,
// description, then the ordered property bullets. The caller owns section
// separation; this function never emits leading or trailing blank lines
// beyond the block shape itself.
func appendClassSection(lines []string, namedType NamedType, fallback FallbackFormatter) []string {
	lines = appendSectionHead(lines, namedType)
	lines = append(lines, "**Properties:**", "")

	for _, property := range namedType.Properties {
		bullet := "* `" + property.Name + "`"
		if property.Optional {
			bullet += " (optional)"
		}

		expression := FormatTypeRef(property.Type, fallback)
		bullet += ": <code>" + expression.Code + "</code>"
		lines = append(lines, bullet)

		if len(property.Description) == 0 {
			continue
		}

		lines = append(lines, "")
		for _, descriptionLine := range property.Description {
			lines = append(lines, "  "+descriptionLine)
		}

		lines = append(lines, "")
	}

	return lines
}

// appendEnumSection appends one self-contained enum block. Each bullet shows
// the case wire-format value double-quoted, not the display name: the wire
// value is what a consumer of the schema actually sees.
func appendEnumSection(lines []string, namedType NamedType) []string {
	lines = appendSectionHead(lines, namedType)
	lines = append(lines, "**Variants:**", "")

	for _, enumCase := range namedType.Cases {
		lines = append(lines, "* `\""+enumCase.WireName+"\"`")
	}

	return lines
}

// appendSectionHead appends the anchor, header and optional description that
// open every section. Anchor and header always appear together and always
// precede member content.
func appendSectionHead(lines []string, namedType NamedType) []string {
	lines = append(lines,
		"<a name='typedef-"+namedType.Name+"'></a>",
		"## `"+namedType.Name+"`",
		"",
	)

	if len(namedType.Description) == 0 {
		return lines
	}

	lines = append(lines, namedType.Description...)
	return append(lines, "")
}
