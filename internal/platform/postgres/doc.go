// Package postgres provides the PostgreSQL-specific implementation of the
// task store interface defined in the internal/store package. Task documents
// are kept as JSONB records, so the collection behaves as a document store:
// inserts write whole documents, updates apply JSONB merge-patches, and a
// unique expression index on the logical task ID enforces uniqueness.
package postgres
