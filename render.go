// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Typemark Authors
// Source: github.com/typemark/typemark

package typemark

import (
	"fmt"
	"os"
	"strings"
)

// Options configures one rendering pass.
type Options struct {
	// Title, when set, becomes a level-1 heading before the first section.
	Title string
	// Fallback renders uncustomized type kinds; nil selects DefaultFormatter.
	Fallback FallbackFormatter
	// DeclarationsOnly is forced to true when nil. An explicit false adds a
	// generated example block to every class section.
	DeclarationsOnly *bool
}

// RenderSchemaFile reads a schema file and renders its markdown reference.
func RenderSchemaFile(path, schemaName string, opt Options) (string, error) {
	schemaBytes, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadSchemaFile, err)
	}

	return RenderSchema(schemaBytes, schemaName, opt)
}

// RenderSchema resolves schema bytes into a type graph and renders it.
func RenderSchema(schemaBytes []byte, schemaName string, opt Options) (string, error) {
	doc, err := Resolve(schemaBytes, schemaName)
	if err != nil {
		return "", err
	}

	return Render(doc, opt), nil
}

// Render renders a resolved type graph into one markdown document. Rendering
// is a pure single pass over the immutable graph: equal inputs produce
// byte-identical output.
func Render(doc Document, opt Options) string {
	lines := RenderLines(doc, opt)
	if len(lines) == 0 {
		return ""
	}

	return strings.Join(lines, "\n") + "\n"
}

// RenderLines drives the leading-and-interposing traversal over the named
// types: a blank separator precedes every section, including the first, so
// spacing stays uniform regardless of position. Union entries are suppressed
// and unrecognized kinds skip silently instead of crashing the pass.
func RenderLines(doc Document, opt Options) []string {
	fallback := opt.Fallback
	if fallback == nil {
		fallback = DefaultFormatter{}
	}

	declarationsOnly := opt.DeclarationsOnly == nil || *opt.DeclarationsOnly

	lines := make([]string, 0, 16*len(doc.Types))
	if title := strings.TrimSpace(opt.Title); title != "" {
		lines = append(lines, "# "+title)
	}

	var examples *exampleBuilder
	if !declarationsOnly {
		examples = newExampleBuilder(doc)
	}

	for _, namedType := range doc.Types {
		switch namedType.Kind {
		case NamedClass:
			lines = append(lines, "")
			lines = appendClassSection(lines, namedType, fallback)
			if examples != nil {
				lines = appendExampleBlock(lines, namedType, examples)
			}
		case NamedEnum:
			lines = append(lines, "")
			lines = appendEnumSection(lines, namedType)
		case NamedUnion:
			// Unions never materialize as their own sections; they are
			// reachable only through member type expressions.
		default:
			// Future named kinds must not crash the renderer, only skip.
		}
	}

	return lines
}
