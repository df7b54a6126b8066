// Package numberset implements the in-memory store of distinct positive
// integers. It maintains a red-black tree keyed by number, so uniqueness
// checks and removals are O(log n) and ascending enumeration falls out of
// the structure with no separate sort step.
//
// The set is guarded by a single exclusive mutex. Reads and writes are
// both serialized: List must observe a consistent snapshot, and Insert
// and Delete must not race on the uniqueness check. Duplicate inserts and
// missing deletes are ordinary outcomes, reported as sentinel errors, not
// failures.
package numberset
