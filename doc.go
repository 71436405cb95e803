// Package stockpile provides functions and types for tracking named item
// quantities, persisting them to a JSON file, and reporting items that have
// fallen below a stock threshold. It is designed to be local-first and
// human-readable: the durable state is a single JSON object a user can read
// and edit by hand.
//
// The core functionalities include:
//   - Inventory Store: an insertion-order-preserving mapping from item name
//     to quantity, mutated by add and remove operations.
//   - Session Journal: an ephemeral, chronological record of additions,
//     displayed in-session and never persisted.
//   - Data Persistence: encoding and decoding the inventory to and from a
//     stable, indented JSON object on disk.
//   - Importing: merging item quantities from external JSON documents using
//     JSONPath expressions.
//
// This package serves as the foundational logic for the `stk` command-line
// tool.
package stockpile
