// Package render provides the color styling used by layout output.
//
// Coloring is purely cosmetic: hole and padding markers and the summary
// lines are highlighted, and nested brace markers cycle through a fixed
// palette keyed by nesting depth. Styles degrade to identity when disabled,
// so plain output is byte-identical to colored output minus the escape
// sequences. Nothing downstream may depend on color being present.
package render
