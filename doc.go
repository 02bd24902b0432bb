// Package hexlath is your in-memory toolkit for cube-coordinate hexagonal
// grids — from the core coordinate algebra to pixel layouts and sparse maps.
//
// 🚀 What is hexlath?
//
//	A small library that brings together:
//		• Hex primitives: exact integer cube coordinates with the q+r+s=0 invariant
//		• Fractional hexes: float coordinates for interpolation and pixel math
//		• Lattice rounding: the one correct way to snap a fractional hex to the grid
//		• Rotation & reflection: closed-form 60°-step rotations around any center
//		• Lines, rings, ranges, spirals: deterministic cell enumeration
//		• Layouts: pointy-top, flat-top and custom orientations, hex↔pixel both ways
//		• HexMap: an insertion-ordered sparse container with shape builders
//
// ✨ Why choose hexlath?
//
//   - Value semantics – Hex, FracHex, Point and Layout are immutable values
//   - Rock-solid invariants – every constructed hex satisfies q+r+s=0
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – line drawing, rings and shape builders always emit the
//     same order for the same inputs
//
// Under the hood, everything is organized under three subpackages:
//
//	hex/    — Hex & FracHex value types and all coordinate algorithms
//	layout/ — orientation matrices, pixel conversion, corners, clock faces
//	hexmap/ — generic sparse grid container and shape builders
//
// Quick ASCII example:
//
//	     ⬡ ⬡
//	    ⬡ ⬢ ⬡      hex.Ring(hex.Hexigo, 1) — the six neighbors of the origin.
//	     ⬡ ⬡
//
// Dive into the per-package docs for full examples and the error contracts.
//
//	go get github.com/katalvlaran/hexlath
package hexlath
