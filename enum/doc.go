// SPDX-License-Identifier: MIT

// Package enum declares closed sets of named constants and hands out one
// immutable value object per declared payload.
//
// A type is declared once, usually at package level:
//
//	var Color = enum.Declare("Color").
//	    Const("RED", "red").
//	    Const("GREEN", "green").
//	    Const("NONE", nil).
//	    MustBuild()
//
//	red, err := Color.FromValue("red")
//	red == Color.MustGet("RED") // true: one instance per (type, payload)
//
// Payloads are nil, bool, any Go integer, or string, compared strictly:
// 0, false, "" and nil are four different members. Values of different
// types never compare equal, even when their payloads coincide.
//
// Declared types live in a Registry. Default returns the process-wide one;
// NewRegistry returns an isolated registry with its own instance pool.
package enum
