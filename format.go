// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Typemark Authors
// Source: github.com/typemark/typemark

package typemark

import "strings"

// Fragment is one formatted inline type expression. NeedsParens reports
// whether the fragment must be parenthesized before a suffix such as the
// array bracket pair is appended to it.
type Fragment struct {
	Code        string
	NeedsParens bool
}

// FallbackFormatter renders the type kinds the markdown formatter does not
// customize: primitives, maps, unions and transformed strings. Injecting it
// keeps the cross-referencing and escaping logic decoupled from the baseline
// generator.
type FallbackFormatter interface {
	FormatType(ref TypeRef) Fragment
}

// FormatTypeRef maps one type reference to its inline markdown fragment.
// Named kinds become anchor links, arrays pick between suffix and wrapped
// notation, everything else is delegated to the fallback formatter. The
// function is pure and byte-exact: equal inputs produce equal fragments.
func FormatTypeRef(ref TypeRef, fallback FallbackFormatter) Fragment {
	if fallback == nil {
		fallback = DefaultFormatter{}
	}

	switch typed := ref.(type) {
	case ClassRef:
		return anchorFragment(typed.Name)
	case EnumRef:
		return anchorFragment(typed.Name)
	case NamedObjectRef:
		return anchorFragment(typed.Name)
	case ArrayRef:
		return formatArray(typed, fallback)
	default:
		return fallback.FormatType(ref)
	}
}

// anchorFragment renders a bare hyperlinked name token. A single anchor link
// is never ambiguous as a sub-expression, so no parentheses are needed.
func anchorFragment(name string) Fragment {
	return Fragment{Code: "<a href='#typedef-" + name + "'>" + name + "</a>"}
}

// formatArray renders one array reference. When the item is itself an array
// or a union, plain suffix notation (T[][], A|B[]) is ambiguous, so the
// expression escalates to the entity-escaped wrapped form. The rule applies
// at every recursion level, not just the outermost one.
func formatArray(ref ArrayRef, fallback FallbackFormatter) Fragment {
	item := FormatTypeRef(ref.Item, fallback)

	switch ref.Item.(type) {
	case ArrayRef, UnionRef:
		return Fragment{Code: "Array&lt;" + item.Code + "&gt;"}
	}

	code := item.Code
	if item.NeedsParens {
		code = "(" + code + ")"
	}

	return Fragment{Code: code + "[]"}
}

// DefaultFormatter is the baseline formatting rule for the kinds this
// renderer leaves uncustomized.
type DefaultFormatter struct{}

// FormatType renders primitives as their documentation tokens, maps in the
// escaped generic form and unions as variants joined inline. Union fragments
// need parentheses before any suffix.
func (formatter DefaultFormatter) FormatType(ref TypeRef) Fragment {
	switch typed := ref.(type) {
	case PrimitiveRef:
		return Fragment{Code: typed.Kind.String()}
	case MapRef:
		value := FormatTypeRef(typed.Value, formatter)
		return Fragment{Code: "Map&lt;string, " + value.Code + "&gt;"}
	case UnionRef:
		parts := make([]string, 0, len(typed.Variants))
		for _, variant := range typed.Variants {
			parts = append(parts, FormatTypeRef(variant, formatter).Code)
		}

		return Fragment{Code: strings.Join(parts, " | "), NeedsParens: true}
	case ArrayRef, ClassRef, EnumRef, NamedObjectRef:
		return FormatTypeRef(ref, formatter)
	default:
		return Fragment{Code: "unknown"}
	}
}
