// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Typemark Authors
// Source: github.com/typemark/typemark

package typemark

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// schemaShape classifies one schema node before type resolution.
type schemaShape int

const (
	shapeScalar schemaShape = iota
	shapeClass
	shapeEnum
	shapeUnion
	shapeArray
	shapeMap
	shapeRef
)

// resolver builds the immutable type graph out of one decoded schema tree.
// Decoding goes through yaml.Node trees on purpose: YAML is a JSON superset
// and mapping nodes preserve key order, which is what keeps property and case
// declaration order intact in the rendered document.
type resolver struct {
	defs       map[string]*yaml.Node
	defDisplay map[string]string
	defShape   map[string]schemaShape
	defRefs    map[string]TypeRef
	activeDefs map[string]struct{}
	claimed    map[string]struct{}
	defOrder   []string
	types      []NamedType
}

// Resolve parses schema bytes (JSON or YAML text) into a resolved type graph.
// schemaName names the root type when the schema root is not a plain $defs
// reference.
func Resolve(schemaBytes []byte, schemaName string) (Document, error) {
	var tree yaml.Node
	if err := yaml.Unmarshal(schemaBytes, &tree); err != nil {
		return Document{}, fmt.Errorf("%w: %w", ErrDecodeSchema, err)
	}

	root := unwrapNode(&tree)
	if root == nil || root.Kind != yaml.MappingNode {
		return Document{}, ErrSchemaRoot
	}

	r := &resolver{
		defs:       make(map[string]*yaml.Node),
		defDisplay: make(map[string]string),
		defShape:   make(map[string]schemaShape),
		defRefs:    make(map[string]TypeRef),
		activeDefs: make(map[string]struct{}),
		claimed:    make(map[string]struct{}),
	}

	return r.resolveDocument(root, schemaName)
}

// resolveDocument walks the schema root and definitions into document order:
// root type first, then definitions in declaration order, with lifted inline
// types appended as they are encountered.
func (r *resolver) resolveDocument(root *yaml.Node, schemaName string) (Document, error) {
	rootRef := scalarValue(mappingValue(root, "$ref"))

	rootDisplay := ""
	if rootRef == "" {
		name := exportName(schemaName)
		if name == "" {
			name = "Root"
		}

		rootDisplay = r.uniqueName(name)
	}

	r.collectDefs(root)

	if rootDisplay != "" {
		if err := r.materialize(rootDisplay, root); err != nil {
			return Document{}, err
		}
	}

	for _, key := range r.defOrder {
		if err := r.materialize(r.defDisplay[key], r.defs[key]); err != nil {
			return Document{}, err
		}
	}

	return Document{Types: r.types}, nil
}

// collectDefs registers $defs and definitions entries and pre-claims their
// display names so references resolve before materialization.
func (r *resolver) collectDefs(root *yaml.Node) {
	for _, keyword := range []string{"$defs", "definitions"} {
		defs := unwrapNode(mappingValue(root, keyword))
		if defs == nil || defs.Kind != yaml.MappingNode {
			continue
		}

		for i := 0; i+1 < len(defs.Content); i += 2 {
			key := defs.Content[i].Value
			node := unwrapNode(defs.Content[i+1])
			if _, exists := r.defs[key]; exists || node == nil {
				continue
			}

			r.defs[key] = node
			r.defOrder = append(r.defOrder, key)
			r.defShape[key] = classifyNode(node)
			r.defDisplay[key] = r.uniqueName(exportName(key))
		}
	}
}

// materialize appends one named-type entry for a class, enum or union shaped
// schema node. Alias, scalar, array and map definitions are flattened at use
// sites and produce no entry of their own.
func (r *resolver) materialize(display string, node *yaml.Node) error {
	switch classifyNode(node) {
	case shapeClass:
		namedType, err := r.classType(display, node)
		if err != nil {
			return err
		}

		r.types = append(r.types, namedType)
	case shapeEnum:
		r.types = append(r.types, enumType(display, node))
	case shapeUnion:
		union, err := r.unionRef(node, display)
		if err != nil {
			return err
		}

		r.types = append(r.types, NamedType{
			Name:        display,
			Kind:        NamedUnion,
			Description: descriptionLines(node),
			Union:       &union,
		})
	}

	return nil
}

// classType builds one class entry with properties in declaration order.
func (r *resolver) classType(display string, node *yaml.Node) (NamedType, error) {
	namedType := NamedType{
		Name:        display,
		Kind:        NamedClass,
		Description: descriptionLines(node),
	}

	required := make(map[string]struct{})
	for _, item := range sequenceItems(mappingValue(node, "required")) {
		required[item.Value] = struct{}{}
	}

	properties := unwrapNode(mappingValue(node, "properties"))
	if properties == nil || properties.Kind != yaml.MappingNode {
		return namedType, nil
	}

	for i := 0; i+1 < len(properties.Content); i += 2 {
		key := properties.Content[i].Value
		propNode := unwrapNode(properties.Content[i+1])

		ref, err := r.typeOf(propNode, display+exportName(key))
		if err != nil {
			return NamedType{}, err
		}

		_, isRequired := required[key]
		namedType.Properties = append(namedType.Properties, Property{
			Name:        key,
			WireName:    key,
			Type:        ref,
			Optional:    !isRequired,
			Description: descriptionLines(propNode),
		})
	}

	return namedType, nil
}

// enumType builds one enum entry with cases in declaration order.
func enumType(display string, node *yaml.Node) NamedType {
	namedType := NamedType{
		Name:        display,
		Kind:        NamedEnum,
		Description: descriptionLines(node),
	}

	for _, item := range sequenceItems(mappingValue(node, "enum")) {
		namedType.Cases = append(namedType.Cases, EnumCase{
			Name:     caseName(item.Value),
			WireName: item.Value,
		})
	}

	return namedType
}

// typeOf resolves one schema node in a member position to a type reference.
// Inline object and enum schemas are lifted into named types under nameHint.
func (r *resolver) typeOf(node *yaml.Node, nameHint string) (TypeRef, error) {
	node = unwrapNode(node)
	if node == nil || node.Kind != yaml.MappingNode {
		return PrimitiveRef{Kind: PrimitiveString}, nil
	}

	switch classifyNode(node) {
	case shapeRef:
		return r.resolveRef(scalarValue(mappingValue(node, "$ref")))
	case shapeUnion:
		union, err := r.unionRef(node, nameHint)
		if err != nil {
			return nil, err
		}

		return union, nil
	case shapeEnum:
		display := r.uniqueName(liftedName(node, nameHint))
		r.types = append(r.types, enumType(display, node))
		return EnumRef{Name: display}, nil
	case shapeClass:
		display := r.uniqueName(liftedName(node, nameHint))
		namedType, err := r.classType(display, node)
		if err != nil {
			return nil, err
		}

		r.types = append(r.types, namedType)
		return ClassRef{Name: display}, nil
	case shapeMap:
		value := unwrapNode(mappingValue(node, "additionalProperties"))
		if value == nil || value.Kind != yaml.MappingNode {
			return MapRef{Value: PrimitiveRef{Kind: PrimitiveString}}, nil
		}

		valueRef, err := r.typeOf(value, nameHint+"Value")
		if err != nil {
			return nil, err
		}

		return MapRef{Value: valueRef}, nil
	case shapeArray:
		items := unwrapNode(mappingValue(node, "items"))
		if items == nil {
			return ArrayRef{Item: PrimitiveRef{Kind: PrimitiveString}}, nil
		}

		itemRef, err := r.typeOf(items, nameHint+"Item")
		if err != nil {
			return nil, err
		}

		return ArrayRef{Item: itemRef}, nil
	default:
		return scalarRef(node), nil
	}
}

// unionRef resolves oneOf/anyOf variants in declaration order.
func (r *resolver) unionRef(node *yaml.Node, nameHint string) (UnionRef, error) {
	variants := sequenceItems(mappingValue(node, "oneOf"))
	if len(variants) == 0 {
		variants = sequenceItems(mappingValue(node, "anyOf"))
	}

	union := UnionRef{Variants: make([]TypeRef, 0, len(variants))}
	for _, variant := range variants {
		ref, err := r.typeOf(variant, nameHint)
		if err != nil {
			return UnionRef{}, err
		}

		union.Variants = append(union.Variants, ref)
	}

	return union, nil
}

// resolveRef maps one local reference to the target definition's type
// reference. Class and enum targets become cross-references; alias chains
// and anonymous shapes flatten recursively with a cycle guard.
func (r *resolver) resolveRef(ref string) (TypeRef, error) {
	key := defKeyFromRef(ref)
	if key == "" {
		return nil, fmt.Errorf("%w %q", ErrUnsupportedRef, ref)
	}

	target, ok := r.defs[key]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnsupportedRef, ref)
	}

	if resolved, ok := r.defRefs[key]; ok {
		return resolved, nil
	}

	switch r.defShape[key] {
	case shapeClass:
		return ClassRef{Name: r.defDisplay[key]}, nil
	case shapeEnum:
		return EnumRef{Name: r.defDisplay[key]}, nil
	}

	if _, active := r.activeDefs[key]; active {
		return nil, fmt.Errorf("%w through %q", ErrRefCycle, ref)
	}

	r.activeDefs[key] = struct{}{}
	defer delete(r.activeDefs, key)

	resolved, err := r.typeOf(target, r.defDisplay[key])
	if err != nil {
		return nil, err
	}

	r.defRefs[key] = resolved
	return resolved, nil
}

// classifyNode reports the member shape of one schema node.
func classifyNode(node *yaml.Node) schemaShape {
	node = unwrapNode(node)
	if node == nil || node.Kind != yaml.MappingNode {
		return shapeScalar
	}

	if scalarValue(mappingValue(node, "$ref")) != "" {
		return shapeRef
	}

	if mappingValue(node, "oneOf") != nil || mappingValue(node, "anyOf") != nil {
		return shapeUnion
	}

	if mappingValue(node, "enum") != nil {
		return shapeEnum
	}

	schemaType := scalarValue(mappingValue(node, "type"))
	if mappingValue(node, "properties") != nil {
		return shapeClass
	}

	switch schemaType {
	case "object":
		return shapeMap
	case "array":
		return shapeArray
	}

	if mappingValue(node, "items") != nil {
		return shapeArray
	}

	return shapeScalar
}

// scalarRef maps one scalar schema node to its primitive reference.
func scalarRef(node *yaml.Node) TypeRef {
	schemaType := scalarValue(mappingValue(node, "type"))
	format := scalarValue(mappingValue(node, "format"))

	switch schemaType {
	case "null":
		return PrimitiveRef{Kind: PrimitiveNull}
	case "boolean":
		return PrimitiveRef{Kind: PrimitiveBool}
	case "integer":
		return PrimitiveRef{Kind: PrimitiveInteger}
	case "number":
		return PrimitiveRef{Kind: PrimitiveDouble}
	case "string":
		if format != "" {
			return PrimitiveRef{Kind: PrimitiveTransformedString, Format: format}
		}

		return PrimitiveRef{Kind: PrimitiveString}
	default:
		return PrimitiveRef{Kind: PrimitiveString}
	}
}

// liftedName selects the display name base for one lifted inline schema:
// the schema title when present, the synthesized parent+property hint
// otherwise.
func liftedName(node *yaml.Node, nameHint string) string {
	if title := exportName(scalarValue(mappingValue(node, "title"))); title != "" {
		return title
	}

	if nameHint != "" {
		return nameHint
	}

	return "Type"
}

// defKeyFromRef extracts the definition key from a local JSON pointer.
func defKeyFromRef(ref string) string {
	ref = strings.TrimSpace(ref)
	for _, prefix := range []string{"#/$defs/", "#/definitions/"} {
		if !strings.HasPrefix(ref, prefix) {
			continue
		}

		key := strings.TrimPrefix(ref, prefix)
		if key == "" || strings.Contains(key, "/") {
			return ""
		}

		return key
	}

	return ""
}

// descriptionLines splits one description into verbatim output lines with
// normalized endings and no trailing blanks.
func descriptionLines(node *yaml.Node) []string {
	text := scalarValue(mappingValue(node, "description"))
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil
	}

	return strings.Split(text, "\n")
}

// unwrapNode strips document and alias wrappers from one node.
func unwrapNode(node *yaml.Node) *yaml.Node {
	for node != nil {
		switch node.Kind {
		case yaml.DocumentNode:
			if len(node.Content) == 0 {
				return nil
			}

			node = node.Content[0]
		case yaml.AliasNode:
			node = node.Alias
		default:
			return node
		}
	}

	return nil
}

// mappingValue returns the value node for one mapping key, nil when absent.
func mappingValue(node *yaml.Node, key string) *yaml.Node {
	node = unwrapNode(node)
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}

	return nil
}

// sequenceItems returns unwrapped sequence items, nil for non-sequences.
func sequenceItems(node *yaml.Node) []*yaml.Node {
	node = unwrapNode(node)
	if node == nil || node.Kind != yaml.SequenceNode {
		return nil
	}

	out := make([]*yaml.Node, 0, len(node.Content))
	for _, item := range node.Content {
		out = append(out, unwrapNode(item))
	}

	return out
}

// scalarValue returns the scalar text of one node, empty for non-scalars.
func scalarValue(node *yaml.Node) string {
	node = unwrapNode(node)
	if node == nil || node.Kind != yaml.ScalarNode {
		return ""
	}

	return node.Value
}
