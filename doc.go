// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Typemark Authors
// Source: github.com/typemark/typemark

/*
Package typemark renders resolved type graphs from JSON Schema documents into
cross-referenced markdown reference documentation.

The package splits into a resolver and a rendering core. The resolver parses a
schema document (JSON or YAML text), preserves property and case declaration
order, and assigns a unique display name to every named type. The rendering
core is a pure pass over the resolved graph: every class and enum becomes a
self-contained, anchor-addressable section, and every type reference inside a
section formats as an inline expression with exact escaping and
parenthesization. Equal inputs always produce byte-identical output.

Render straight from schema bytes:

	schemaBytes, err := os.ReadFile("schema.json")
	if err != nil {
		return err
	}

	md, err := typemark.RenderSchema(schemaBytes, "Person", typemark.Options{})
	if err != nil {
		return err
	}

	fmt.Println(md)

Render from a file path:

	md, err := typemark.RenderSchemaFile("schema.json", "Person", typemark.Options{})
	if err != nil {
		return err
	}

	fmt.Println(md)

Work with the resolved graph directly:

	doc, err := typemark.Resolve(schemaBytes, "Person")
	if err != nil {
		return err
	}

	fmt.Println(typemark.Render(doc, typemark.Options{Title: "API Reference"}))

Format one type expression with the default fallback:

	fragment := typemark.FormatTypeRef(typemark.ArrayRef{
		Item: typemark.ClassRef{Name: "Person"},
	}, nil)

	fmt.Println(fragment.Code)

Rendering emits type declarations and documentation only by default; set
Options.DeclarationsOnly to an explicit false to add generated example blocks
under class sections.
*/
package typemark
