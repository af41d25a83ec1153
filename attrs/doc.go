// Package attrs defines the typed attribute values that bmesh entities
// carry and the definitions a mesh registers per entity kind.
//
// Key features:
//   - Value: a tagged sum over two kinds — IntValue ([]int32) and
//     FloatValue ([]float32) — each a flat array of fixed dimension
//   - DeepCopy semantics everywhere a default is installed, so mutating
//     one entity's value (or the registry default) never leaks into
//     another entity
//   - Distance(a, b): elementwise euclidean distance when both values
//     share kind and dimension, +Inf otherwise
//   - Definition: (name, kind, dimensions, default) registered on a mesh;
//     the Default field stays caller-mutable so later entities can
//     receive an updated default
//
// Complexity:
//
//   - DeepCopy, Check, Distance: O(dimensions).
//
// Errors:
//
//   - None. Mismatches are reported through Check (bool) and Distance
//     (+Inf); the recovery policy lives in the core registries.
package attrs
