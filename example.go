// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Typemark Authors
// Source: github.com/typemark/typemark

package typemark

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// exampleBuilder materializes placeholder payloads from the resolved graph
// for the non-declarations rendering mode.
type exampleBuilder struct {
	byName map[string]NamedType
	active map[string]int
}

// newExampleBuilder indexes named types for cross-reference lookups.
func newExampleBuilder(doc Document) *exampleBuilder {
	byName := make(map[string]NamedType, len(doc.Types))
	for _, namedType := range doc.Types {
		byName[namedType.Name] = namedType
	}

	return &exampleBuilder{
		byName: byName,
		active: make(map[string]int),
	}
}

// appendExampleBlock appends a fenced JSON example under one class section.
func appendExampleBlock(lines []string, namedType NamedType, examples *exampleBuilder) []string {
	payload, err := examples.marshalClass(namedType)
	if err != nil {
		return lines
	}

	lines = append(lines, "", "**Example:**", "", "```json")
	lines = append(lines, strings.Split(payload, "\n")...)
	return append(lines, "```")
}

// marshalClass encodes one generated class payload as indented JSON. HTML
// escaping stays off so angle-bracket placeholders survive verbatim.
func (builder *exampleBuilder) marshalClass(namedType NamedType) (string, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(builder.classValue(namedType)); err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodeExample, err)
	}

	return strings.TrimRight(buf.String(), "\n"), nil
}

// classValue builds the property map for one class, required and optional
// members alike, in a recursion-guarded walk.
func (builder *exampleBuilder) classValue(namedType NamedType) map[string]any {
	out := make(map[string]any, len(namedType.Properties))
	for _, property := range namedType.Properties {
		out[property.WireName] = builder.valueFor(property.Type)
	}

	return out
}

// valueFor builds one placeholder value for a type reference.
func (builder *exampleBuilder) valueFor(ref TypeRef) any {
	switch typed := ref.(type) {
	case PrimitiveRef:
		return primitivePlaceholder(typed)
	case ArrayRef:
		return []any{builder.valueFor(typed.Item)}
	case MapRef:
		return map[string]any{"<key>": builder.valueFor(typed.Value)}
	case ClassRef:
		return builder.namedValue(typed.Name)
	case EnumRef:
		return builder.namedValue(typed.Name)
	case UnionRef:
		if len(typed.Variants) == 0 {
			return nil
		}

		return builder.valueFor(typed.Variants[0])
	case NamedObjectRef:
		return map[string]any{}
	default:
		return nil
	}
}

// namedValue resolves a cross-reference to its example payload. Recursive
// references stop at one level to keep the payload finite.
func (builder *exampleBuilder) namedValue(name string) any {
	namedType, ok := builder.byName[name]
	if !ok {
		return nil
	}

	if builder.active[name] > 0 {
		return nil
	}

	builder.active[name]++
	defer func() { builder.active[name]-- }()

	switch namedType.Kind {
	case NamedClass:
		return builder.classValue(namedType)
	case NamedEnum:
		if len(namedType.Cases) == 0 {
			return "<string>"
		}

		return namedType.Cases[0].WireName
	case NamedUnion:
		if namedType.Union == nil || len(namedType.Union.Variants) == 0 {
			return nil
		}

		return builder.valueFor(namedType.Union.Variants[0])
	default:
		return nil
	}
}

// primitivePlaceholder returns the scalar placeholder for one primitive kind.
func primitivePlaceholder(ref PrimitiveRef) any {
	switch ref.Kind {
	case PrimitiveNull:
		return nil
	case PrimitiveBool:
		return false
	case PrimitiveInteger, PrimitiveDouble:
		return 0
	case PrimitiveTransformedString:
		if format := strings.TrimSpace(ref.Format); format != "" {
			return "<" + format + ">"
		}

		return "<string>"
	default:
		return "<string>"
	}
}
