// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// EnvReport is the predicate function for envreport builders.
type EnvReport func(*sql.Selector)

// GateRun is the predicate function for gaterun builders.
type GateRun func(*sql.Selector)

// MatrixRun is the predicate function for matrixrun builders.
type MatrixRun func(*sql.Selector)
