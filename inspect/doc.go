// Package inspect implements the layout computations over type descriptors.
//
// Two operations share the descriptor model from typesys:
//
//	ListOffsets  - flat per-field byte offsets, no hole accounting
//	Walker.Walk  - nested layout with hole and trailing-padding detection
//
// # Holes and padding
//
// A hole is an unused byte range between the end of coverage from prior
// fields and the start of the next field. Padding is the unused range
// between the end of the last field's coverage and the type's declared
// size. Coverage is tracked as the running maximum of all field end
// offsets seen so far, not the previous field's end, so overlapping
// members (empty base subobjects, unions folded into structs) never
// produce negative holes.
//
// Totals returned by Walk only include nested contributions in recursive
// mode; a non-recursive walk never descends and therefore reports only the
// top level's own holes and padding.
package inspect
