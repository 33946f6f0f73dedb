// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Typemark Authors
// Source: github.com/typemark/typemark

package typemark

import "errors"

var (
	// ErrReadSchemaFile is returned when schema file loading fails.
	ErrReadSchemaFile = errors.New("read schema file")
	// ErrDecodeSchema is returned when schema document decoding fails.
	ErrDecodeSchema = errors.New("decode schema")
	// ErrSchemaRoot is returned when the schema root is not a mapping.
	ErrSchemaRoot = errors.New("schema root must be a mapping")
	// ErrUnsupportedRef is returned for references outside the local $defs space.
	ErrUnsupportedRef = errors.New("unsupported schema reference")
	// ErrRefCycle is returned when reference aliases form a cycle that never
	// reaches a concrete schema.
	ErrRefCycle = errors.New("schema reference cycle")
	// ErrEncodeExample is returned when generated example encoding fails.
	ErrEncodeExample = errors.New("encode example")
)
