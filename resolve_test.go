// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Typemark Authors
// Source: github.com/typemark/typemark

package typemark

import (
	"errors"
	"strings"
	"testing"
)

func TestResolvePreservesPropertyDeclarationOrder(t *testing.T) {
	t.Parallel()

	doc, err := Resolve([]byte(`{
  "type": "object",
  "required": ["zulu"],
  "properties": {
    "zulu": { "type": "string" },
    "alpha": { "type": "integer" },
    "mike": { "type": "boolean" }
  }
}`), "Config")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if len(doc.Types) != 1 {
		t.Fatalf("type count = %d, want 1", len(doc.Types))
	}

	names := make([]string, 0, 3)
	for _, property := range doc.Types[0].Properties {
		names = append(names, property.Name)
	}

	got := strings.Join(names, ",")
	want := "zulu,alpha,mike"
	if got != want {
		t.Fatalf("property order = %q, want %q", got, want)
	}

	if doc.Types[0].Properties[0].Optional {
		t.Fatal("required property marked optional")
	}

	if !doc.Types[0].Properties[1].Optional {
		t.Fatal("non-required property not marked optional")
	}
}

func TestResolveRootRefSkipsSyntheticRoot(t *testing.T) {
	t.Parallel()

	doc, err := Resolve([]byte(`{
  "$ref": "#/$defs/Config",
  "$defs": {
    "Config": { "type": "object", "properties": { "name": { "type": "string" } } },
    "Extra": { "type": "object", "properties": { "id": { "type": "integer" } } }
  }
}`), "Whatever")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	names := make([]string, 0, len(doc.Types))
	for _, namedType := range doc.Types {
		names = append(names, namedType.Name)
	}

	got := strings.Join(names, ",")
	want := "Config,Extra"
	if got != want {
		t.Fatalf("document order = %q, want %q", got, want)
	}
}

func TestResolveAssignsUniqueDisplayNames(t *testing.T) {
	t.Parallel()

	doc, err := Resolve([]byte(`{
  "type": "object",
  "properties": { "other": { "$ref": "#/$defs/Person" } },
  "$defs": {
    "Person": { "type": "object", "properties": { "name": { "type": "string" } } }
  }
}`), "Person")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	seen := make(map[string]struct{}, len(doc.Types))
	for _, namedType := range doc.Types {
		if _, duplicate := seen[namedType.Name]; duplicate {
			t.Fatalf("duplicate display name %q", namedType.Name)
		}

		seen[namedType.Name] = struct{}{}
	}

	if _, ok := seen["Person"]; !ok {
		t.Fatalf("root display name missing: %v", seen)
	}

	if _, ok := seen["Person2"]; !ok {
		t.Fatalf("colliding definition should get a suffixed name: %v", seen)
	}
}

func TestResolveEnumCasesKeepWireValues(t *testing.T) {
	t.Parallel()

	doc, err := Resolve([]byte(`{
  "$ref": "#/$defs/Color",
  "$defs": {
    "Color": { "enum": ["RED", "GREEN"] }
  }
}`), "Color")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if len(doc.Types) != 1 || doc.Types[0].Kind != NamedEnum {
		t.Fatalf("expected one enum, got %+v", doc.Types)
	}

	wire := make([]string, 0, 2)
	for _, enumCase := range doc.Types[0].Cases {
		wire = append(wire, enumCase.WireName)
	}

	if strings.Join(wire, ",") != "RED,GREEN" {
		t.Fatalf("wire values = %v", wire)
	}
}

func TestResolveLiftsInlineObjects(t *testing.T) {
	t.Parallel()

	doc, err := Resolve([]byte(`{
  "type": "object",
  "properties": {
    "address": {
      "type": "object",
      "properties": { "street": { "type": "string" } }
    }
  }
}`), "Person")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if len(doc.Types) != 2 {
		t.Fatalf("type count = %d, want 2", len(doc.Types))
	}

	lifted := false
	for _, namedType := range doc.Types {
		if namedType.Name == "PersonAddress" && namedType.Kind == NamedClass {
			lifted = true
		}
	}

	if !lifted {
		t.Fatalf("lifted inline object missing in %+v", doc.Types)
	}

	classRef, isClass := findProperty(t, doc, "Person", "address").Type.(ClassRef)
	if !isClass || classRef.Name != "PersonAddress" {
		t.Fatalf("address type = %#v, want ClassRef{PersonAddress}", findProperty(t, doc, "Person", "address").Type)
	}
}

func TestResolveInlineEnumPrefersTitle(t *testing.T) {
	t.Parallel()

	doc, err := Resolve([]byte(`{
  "type": "object",
  "properties": {
    "mode": { "title": "run mode", "enum": ["safe", "fast"] }
  }
}`), "Config")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	enumRef, isEnum := findProperty(t, doc, "Config", "mode").Type.(EnumRef)
	if !isEnum || enumRef.Name != "RunMode" {
		t.Fatalf("mode type = %#v, want EnumRef{RunMode}", findProperty(t, doc, "Config", "mode").Type)
	}
}

func TestResolveMapFromAdditionalProperties(t *testing.T) {
	t.Parallel()

	doc, err := Resolve([]byte(`{
  "type": "object",
  "properties": {
    "labels": { "type": "object", "additionalProperties": { "type": "integer" } }
  }
}`), "Config")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	mapRef, isMap := findProperty(t, doc, "Config", "labels").Type.(MapRef)
	if !isMap {
		t.Fatalf("labels type = %#v, want MapRef", findProperty(t, doc, "Config", "labels").Type)
	}

	value, isPrimitive := mapRef.Value.(PrimitiveRef)
	if !isPrimitive || value.Kind != PrimitiveInteger {
		t.Fatalf("map value = %#v, want integer primitive", mapRef.Value)
	}
}

func TestResolveTransformedString(t *testing.T) {
	t.Parallel()

	doc, err := Resolve([]byte(`{
  "type": "object",
  "properties": {
    "created": { "type": "string", "format": "date-time" }
  }
}`), "Event")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	primitive, isPrimitive := findProperty(t, doc, "Event", "created").Type.(PrimitiveRef)
	if !isPrimitive || primitive.Kind != PrimitiveTransformedString || primitive.Format != "date-time" {
		t.Fatalf("created type = %#v", findProperty(t, doc, "Event", "created").Type)
	}

	if FormatTypeRef(primitive, nil).Code != "string" {
		t.Fatal("transformed string must document as plain string")
	}
}

func TestResolveUnionDefinitionStaysSuppressed(t *testing.T) {
	t.Parallel()

	schema := []byte(`{
  "type": "object",
  "properties": { "target": { "$ref": "#/$defs/Target" } },
  "$defs": {
    "Endpoint": { "type": "object", "properties": { "url": { "type": "string" } } },
    "Target": {
      "oneOf": [
        { "$ref": "#/$defs/Endpoint" },
        { "type": "string" }
      ]
    }
  }
}`)

	doc, err := Resolve(schema, "Config")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	unions := 0
	for _, namedType := range doc.Types {
		if namedType.Kind == NamedUnion {
			unions++
		}
	}

	if unions != 1 {
		t.Fatalf("union entry count = %d, want 1", unions)
	}

	rendered := Render(doc, Options{})
	assertNotContains(t, rendered, "typedef-Target")
	assertContains(t, rendered, "<code><a href='#typedef-Endpoint'>Endpoint</a> | string</code>")
}

func TestResolveYAMLInput(t *testing.T) {
	t.Parallel()

	doc, err := Resolve([]byte(`
type: object
required: [name]
properties:
  name:
    type: string
  count:
    type: integer
`), "Config")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if len(doc.Types) != 1 || len(doc.Types[0].Properties) != 2 {
		t.Fatalf("unexpected graph: %+v", doc.Types)
	}
}

func TestResolveUnsupportedReference(t *testing.T) {
	t.Parallel()

	_, err := Resolve([]byte(`{
  "type": "object",
  "properties": { "other": { "$ref": "https://example.com/schema.json" } }
}`), "Config")
	if !errors.Is(err, ErrUnsupportedRef) {
		t.Fatalf("error = %v, want ErrUnsupportedRef", err)
	}
}

func TestResolveAliasCycle(t *testing.T) {
	t.Parallel()

	_, err := Resolve([]byte(`{
  "type": "object",
  "properties": { "self": { "$ref": "#/$defs/Loop" } },
  "$defs": {
    "Loop": { "$ref": "#/$defs/Loop" }
  }
}`), "Config")
	if !errors.Is(err, ErrRefCycle) {
		t.Fatalf("error = %v, want ErrRefCycle", err)
	}
}

func TestResolveRecursiveClassReference(t *testing.T) {
	t.Parallel()

	doc, err := Resolve([]byte(`{
  "$ref": "#/$defs/Node",
  "$defs": {
    "Node": {
      "type": "object",
      "properties": {
        "children": { "type": "array", "items": { "$ref": "#/$defs/Node" } }
      }
    }
  }
}`), "Node")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	arrayRef, isArray := findProperty(t, doc, "Node", "children").Type.(ArrayRef)
	if !isArray {
		t.Fatalf("children type = %#v, want ArrayRef", findProperty(t, doc, "Node", "children").Type)
	}

	classRef, isClass := arrayRef.Item.(ClassRef)
	if !isClass || classRef.Name != "Node" {
		t.Fatalf("recursive item = %#v, want ClassRef{Node}", arrayRef.Item)
	}
}

func TestResolveRejectsNonMappingRoot(t *testing.T) {
	t.Parallel()

	_, err := Resolve([]byte(`[1, 2, 3]`), "Config")
	if !errors.Is(err, ErrSchemaRoot) {
		t.Fatalf("error = %v, want ErrSchemaRoot", err)
	}
}

func TestResolveRejectsMalformedInput(t *testing.T) {
	t.Parallel()

	_, err := Resolve([]byte("{\n  \"type\": \"object\",\n"), "Config")
	if !errors.Is(err, ErrDecodeSchema) {
		t.Fatalf("error = %v, want ErrDecodeSchema", err)
	}
}

func findProperty(t *testing.T, doc Document, typeName, propertyName string) Property {
	t.Helper()

	for _, namedType := range doc.Types {
		if namedType.Name != typeName {
			continue
		}

		for _, property := range namedType.Properties {
			if property.Name == propertyName {
				return property
			}
		}
	}

	t.Fatalf("property %s.%s not found", typeName, propertyName)
	return Property{}
}
