// Package store provides SQLite-backed durable storage for dataset records.
//
// The store is an append-only log of (id, dataset_name, json_data) rows.
// Payloads are stored verbatim and never interpreted here; decoding belongs
// to the value package.
//
// # Guarantees
//
// Ids are assigned by SQLite AUTOINCREMENT. The connection pool is limited
// to one connection, so concurrent Append calls are serialized and each
// receives a unique, increasing id. A failed append leaves no partial row.
//
// Reads for a dataset are ordered by id ASC, which is arrival order.
// Listing an unknown dataset returns an empty slice, not an error.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
package store
