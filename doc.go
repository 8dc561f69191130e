// Package smartenum models a closed, named, ordered set of domain values as a
// value type: each member of a concrete set carries a stable integer value and
// a human-readable display name, and the set as a whole can be enumerated and
// searched generically.
//
// A concrete set embeds Member, declares its members as package-level
// variables, and exposes them through Enumerate:
//
//	type Status struct{ smartenum.Member }
//
//	var (
//		StatusActive   = Status{smartenum.New(1, "Active")}
//		StatusInactive = Status{smartenum.New(2, "Inactive")}
//	)
//
//	func (Status) Enumerate() []Status {
//		return []Status{StatusActive, StatusInactive}
//	}
//
// With that in place the generic operations work unchanged for any set:
//
//	smartenum.Members[Status]()                 // all declared members
//	smartenum.FromValue[Status](1)              // StatusActive
//	smartenum.FromDisplayName[Status]("Active") // StatusActive
//	smartenum.FromStoredValue[Status](raw)      // persistence reconciliation
//
// Persistence layers should store Value(), never the display name; the
// database subpackage provides the column adapter and catalog tooling for
// enum-typed columns.
package smartenum
