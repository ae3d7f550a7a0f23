// Package dwarfres resolves type descriptors from DWARF debug info in ELF
// binaries.
//
// It is the bundled backend behind the typesys.Resolver contract. An open
// Resolver wraps one ELF file and answers lookups two ways:
//
//  1. Direct type-name lookup against struct, class, and union DIEs,
//     matching either the plain name or the namespace-qualified form
//     ("ns::Type"). Typedefs resolve through to the underlying type.
//  2. Fallback symbol lookup: the argument is matched against variable
//     DIEs and the variable's type is taken, stripped of typedef and
//     cv-qualifier wrappers.
//
// Members without a data member location (static and declaration-only
// members) and bitfield members come back with HasStorage false. Base
// class subobjects are surfaced as ordinary fields named after the base
// type, which is how debuggers present them and what makes empty-base
// overlap visible to the layout walk.
//
// Descriptors are built eagerly with a visited set over DIE offsets, so
// malformed debug info describing a by-value cycle degrades to a leaf
// descriptor instead of recursing forever.
package dwarfres
