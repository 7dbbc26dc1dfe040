// Package mango provides the core types and operations for managing a
// small farm's product inventory. It is designed to be local-first and
// auditable: every stock movement is recorded in an append-only history
// that can reproduce the live stock pools exactly.
//
// The core functionalities include:
//   - Product Store: Tracking each product's stock as a single pool in the
//     canonical weight unit (pounds), regardless of the containers stock
//     arrives or leaves in.
//   - Unit Learning: A per-product catalog of container units (crates,
//     boxes, ...) whose weights are learned from the transactions that use
//     them, so entry gets faster over time.
//   - Transaction Ledger: Validated, atomic IN/OUT movements that update
//     the pool, learn units, and append a history entry in one step.
//   - Contact Directory: Vendors and customers that movements can be
//     attributed to.
//   - Flow Reconciliation: A balanced vendor→farm→customer flow graph per
//     product, with unexplained stock absorbed into a synthetic
//     "Initial / Unknown" source.
//   - Data Persistence: The whole state saved as one human-readable JSON
//     snapshot that survives a load/save round-trip byte for byte.
//
// This package serves as the foundational logic for the `mango`
// command-line tool, ensuring that all operations are consistent and
// based on a single source of truth.
package mango
