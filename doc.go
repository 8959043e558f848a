// Package toml implements a TOML document parser with an explicit,
// order-preserving tree (Table / Array / Value), deterministic
// multi-error diagnostics, and JSON and canonical-TOML serializers.
//
// Scope:
//   - TOML v1.0.0 core grammar, with v0.4.0 and v0.5.0 gating for
//     dotted keys, heterogeneous arrays, and raw tabs in strings
//   - An explicit value model (String / Integer / Float / Boolean /
//     the four datetime variants / Array / Table)
//   - Table-definition invariants: implicit-to-explicit promotion,
//     dotted-key and inline-table sealing, array-of-tables addressing
//   - A parser that recovers after a bad statement and keeps going,
//     so one document can report more than one problem
//
// Non-goals:
//   - Comment or formatting preservation
//   - Decoding into caller-defined Go structs
//   - Streaming or incremental mutation of an already-parsed tree
package toml
