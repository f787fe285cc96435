// Package fixture is a small, self-contained user model used as sample
// input for source analysis tooling.
//
// It exports a handful of constants, three independent capability
// interfaces, a concrete entity implementing all of them, a two-variant
// Result type, a keyed collection and a few free functions. Every type
// that travels as JSON also declares a schema through the model package.
package fixture
