// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Typemark Authors
// Source: github.com/typemark/typemark

package typemark

// PrimitiveKind identifies one leaf scalar kind in the resolved type graph.
type PrimitiveKind int

const (
	// PrimitiveNull is the JSON null type.
	PrimitiveNull PrimitiveKind = iota
	// PrimitiveBool is the JSON boolean type.
	PrimitiveBool
	// PrimitiveInteger is the JSON integer type.
	PrimitiveInteger
	// PrimitiveDouble is the JSON number type.
	PrimitiveDouble
	// PrimitiveString is the plain JSON string type.
	PrimitiveString
	// PrimitiveTransformedString is a string carrying a source format
	// (date-time, uri and similar); it documents as a plain string.
	PrimitiveTransformedString
)

// String returns the documentation token for the primitive kind.
func (kind PrimitiveKind) String() string {
	switch kind {
	case PrimitiveNull:
		return "null"
	case PrimitiveBool:
		return "boolean"
	case PrimitiveInteger:
		return "integer"
	case PrimitiveDouble:
		return "double"
	case PrimitiveString, PrimitiveTransformedString:
		return "string"
	default:
		return "unknown"
	}
}

// TypeRef is one reference to a resolved type. It is a closed tagged variant:
// the concrete types in this package are the only implementations.
type TypeRef interface {
	typeRef()
}

// PrimitiveRef references a scalar type.
type PrimitiveRef struct {
	// Format is the source schema format for transformed strings, empty otherwise.
	Format string
	Kind   PrimitiveKind
}

func (PrimitiveRef) typeRef() {}

// ArrayRef references an array of exactly one item type.
type ArrayRef struct {
	Item TypeRef
}

func (ArrayRef) typeRef() {}

// MapRef references an object with arbitrary string keys and one value type.
type MapRef struct {
	Value TypeRef
}

func (MapRef) typeRef() {}

// ClassRef references a named class type by its unique display name.
type ClassRef struct {
	Name string
}

func (ClassRef) typeRef() {}

// EnumRef references a named enum type by its unique display name.
type EnumRef struct {
	Name string
}

func (EnumRef) typeRef() {}

// UnionRef references an anonymous union of variant types.
type UnionRef struct {
	Variants []TypeRef
}

func (UnionRef) typeRef() {}

// NamedObjectRef references an externally defined named kind that documents as
// a plain cross-reference, without a class or enum section of its own here.
type NamedObjectRef struct {
	Name string
}

func (NamedObjectRef) typeRef() {}

// NamedKind identifies the member shape of one named type entry.
type NamedKind int

const (
	// NamedClass is a named type with ordered properties.
	NamedClass NamedKind = iota
	// NamedEnum is a named type with ordered cases.
	NamedEnum
	// NamedUnion is a union the resolver kept in the named list; the renderer
	// never materializes it as a section.
	NamedUnion
)

// Property is one class member in declaration order.
type Property struct {
	// Name is the renderer-facing display name.
	Name string
	// WireName is the literal schema key as it appears on the wire.
	WireName string
	// Type references the resolved property type.
	Type TypeRef
	// Description holds verbatim description lines, one per output line.
	Description []string
	// Optional marks properties absent from the schema required list.
	Optional bool
}

// EnumCase is one enum member in declaration order.
type EnumCase struct {
	// Name is the renderer-facing display name.
	Name string
	// WireName is the literal value a schema consumer sees on the wire.
	WireName string
}

// NamedType is one class or enum node with a unique display name. The name is
// assigned by the resolver and is what makes typedef anchors collision-free.
type NamedType struct {
	Name        string
	Description []string
	Properties  []Property
	Cases       []EnumCase
	// Union carries the variant list for suppressed union entries.
	Union *UnionRef
	Kind  NamedKind
}

// Document is the ordered named-type sequence as produced by the resolver.
// The renderer preserves this order verbatim and never mutates the graph.
type Document struct {
	Types []NamedType
}
