// Package table provides Table, a heterogeneous record store with
// dynamically named but statically typed fields.
//
// Every value stored in a Table lives in a typed pool: all values of one Go
// type share a single contiguous slice, and a field records which pool and
// which slot hold its value. Reads are generic and never box the value:
//
//	t := table.New()
//	_ = table.Set(t, "port", 8080)
//	_ = table.Set(t, "host", "localhost")
//
//	port := table.GetOr(t, "port", 80)       // 8080
//	name := table.GetOr(t, "port", "none")   // "none": port is not a string
//
//	for name, v := range table.All[int](t) {
//	    fmt.Println(name, v)
//	}
//
// A field keeps the type it was created with. Setting an existing name with
// a value of another type fails with ErrTypeConflict. Readers treat absence
// and type mismatch alike and never fail.
//
// Nested tables are stored as *Table values and are owned by the parent.
// Clone performs a deep copy through nested tables, slices and maps.
//
// # Concurrency
//
// A Table is not safe for concurrent use. It follows a single-writer or
// quiesced-readers discipline: Set must not run concurrently with any other
// access to the same Table. Slices and nested tables returned by readers
// share storage with the Table and are only valid until its next mutation;
// an iteration started with All observes the fields that existed when it
// began. Callers needing concurrent access must synchronize externally or
// work on a Clone.
package table
