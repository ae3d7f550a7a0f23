// Package layoutof inspects the in-memory layout of struct and class types
// recorded in a binary's debug information.
//
// The tool reports field byte offsets, the unused gaps between fields
// ("holes"), trailing padding, and total size, optionally recursing into
// nested struct members and aggregating hole/padding totals over the whole
// tree. It is a debugging aid for reasoning about ABI layout, alignment
// waste, and struct packing.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	layoutof/            Root package documentation
//	├── typesys/         Type and field descriptors plus the Resolver contract
//	├── inspect/         Offset listing and the layout walk algorithm
//	├── render/          Color styling with a plain-text fallback
//	├── errors/          Structured error types
//	├── dwarfres/        ELF/DWARF-backed type resolver
//	└── cmd/layout/      Command-line interface and interactive browser
//
// # Quick Start
//
// Resolve a type from a binary and walk its layout:
//
//	res, err := dwarfres.Open("./a.out")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer res.Close()
//
//	desc, err := res.Resolve("MyStruct")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	w := inspect.NewWalker(os.Stdout, render.Plain())
//	holes, padding, err := w.Walk(desc, "MyStruct", true)
//	fmt.Println(holes, padding, desc.SizeOf)
//
// # Descriptor Model
//
// All layout computation runs over typesys.TypeDescriptor snapshots: plain
// value types carrying field names, byte offsets, byte sizes, and a
// struct/class discriminator. Any introspection backend that can supply
// those four facts can plug in behind typesys.Resolver; dwarfres is the
// bundled backend for ELF binaries with DWARF debug info.
//
// # Thread Safety
//
// Descriptors are immutable snapshots and safe to share. A dwarfres.Resolver
// wraps a single open ELF handle and is not safe for concurrent use.
package layoutof
