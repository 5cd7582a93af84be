// Package snapshot persists ranked affix tables in a SQLite database so a run
// can be inspected or reused later without recomputing it.
//
// Each Save records a run (identified by a UUID) together with its entries.
// The schema is versioned; opening a database written by an incompatible
// version fails with ErrSchemaMismatch.
package snapshot
