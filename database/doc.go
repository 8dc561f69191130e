// Package database wires smartenum sets into relational storage built on
// Bun: a Scanner/Valuer column adapter that reconciles stored values to their
// canonical members, a catalog manager that mirrors registered sets into a
// reference table and detects drift in live columns, CHECK-constraint DDL
// helpers, YAML catalog export/import, and classification of the SQL errors
// an enum-constrained column can raise.
package database
