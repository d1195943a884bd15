// Package fields defines the closed set of leaf field kinds an adaptive
// tree form supports and the registry that resolves schema field-kind
// identifiers into constructors. Each kind is a concrete type with a pure
// Value() over its raw input; unknown identifiers fail resolution instead of
// degrading to a fallback kind.
package fields
