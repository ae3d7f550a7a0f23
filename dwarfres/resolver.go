package dwarfres

import (
	"debug/dwarf"
	"debug/elf"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/VorpalBlade/layout-of/errors"
	"github.com/VorpalBlade/layout-of/typesys"
)

// Resolver answers type lookups against one ELF binary's DWARF data.
// Not safe for concurrent use.
type Resolver struct {
	path    string
	file    *elf.File
	data    *dwarf.Data
	ptrSize int64
}

// Open loads the DWARF data of the ELF binary at path.
func Open(path string) (*Resolver, error) {
	f, err := elf.Open(path)
	if err != nil {
		return nil, errors.New(errors.PhaseLoad, errors.KindInvalidInput).
			Argument(path).
			Cause(err).
			Detail("cannot open ELF binary").
			Build()
	}

	d, err := f.DWARF()
	if err != nil {
		f.Close()
		return nil, errors.NoDebugInfo(path, err)
	}

	ptrSize := int64(4)
	if f.Class == elf.ELFCLASS64 {
		ptrSize = 8
	}

	return &Resolver{path: path, file: f, data: d, ptrSize: ptrSize}, nil
}

// Close releases the underlying ELF handle.
func (r *Resolver) Close() error {
	return r.file.Close()
}

// Resolve implements typesys.Resolver. It tries a direct type-name lookup
// and falls back to matching the argument against a variable and taking the
// variable's type, typedef-stripped and unqualified.
func (r *Resolver) Resolve(argument string) (*typesys.TypeDescriptor, error) {
	off, found, err := r.findTypeDIE(argument)
	if err != nil {
		return nil, errors.Unresolvable(argument, err)
	}
	if found {
		Logger().Debug("resolved as type",
			zap.String("argument", argument),
			zap.Uint64("die", uint64(off)))
		return r.typeAt(off, map[dwarf.Offset]bool{}), nil
	}

	off, found, err = r.findVariableType(argument)
	if err != nil {
		return nil, errors.Unresolvable(argument, err)
	}
	if found {
		Logger().Debug("resolved as variable",
			zap.String("argument", argument),
			zap.Uint64("type_die", uint64(off)))
		return r.typeAt(off, map[dwarf.Offset]bool{}), nil
	}

	return nil, errors.Unresolvable(argument, nil)
}

// TypeNames returns the sorted, namespace-qualified names of all named
// struct, class, and union types in the binary. Intended for completion.
func (r *Resolver) TypeNames() []string {
	seen := map[string]struct{}{}
	err := r.each(func(qual string, e *dwarf.Entry) bool {
		switch e.Tag {
		case dwarf.TagStructType, dwarf.TagClassType, dwarf.TagUnionType:
			if qual != "" && !isDeclaration(e) {
				seen[qual] = struct{}{}
			}
		}
		return true
	})
	if err != nil {
		// Completion still works with a truncated list.
		Logger().Debug("DIE walk aborted, type name list truncated",
			zap.String("binary", r.path),
			zap.Error(err))
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// qualFrame tracks one level of the DIE tree while scanning. Only named
// namespaces and record types contribute to qualified names.
type qualFrame struct {
	name  string
	quals bool
}

// each walks every DIE, handing the callback the namespace-qualified name.
// The callback returns false to stop early. Subprogram subtrees are skipped;
// function-local types are not addressable by name.
func (r *Resolver) each(fn func(qual string, e *dwarf.Entry) bool) error {
	rd := r.data.Reader()
	var stack []qualFrame

	for {
		e, err := rd.Next()
		if err != nil {
			return err
		}
		if e == nil {
			return nil
		}
		if e.Tag == 0 {
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			continue
		}

		name, _ := e.Val(dwarf.AttrName).(string)
		qual := name
		if name != "" {
			var parts []string
			for _, f := range stack {
				if f.quals {
					parts = append(parts, f.name)
				}
			}
			if len(parts) > 0 {
				qual = strings.Join(parts, "::") + "::" + name
			}
		}

		if !fn(qual, e) {
			return nil
		}

		if e.Tag == dwarf.TagSubprogram && e.Children {
			rd.SkipChildren()
			continue
		}
		if e.Children {
			quals := name != ""
			switch e.Tag {
			case dwarf.TagNamespace, dwarf.TagStructType, dwarf.TagClassType:
			default:
				quals = false
			}
			stack = append(stack, qualFrame{name: name, quals: quals})
		}
	}
}

func isDeclaration(e *dwarf.Entry) bool {
	decl, _ := e.Val(dwarf.AttrDeclaration).(bool)
	return decl
}

func nameOf(e *dwarf.Entry) string {
	name, _ := e.Val(dwarf.AttrName).(string)
	return name
}

// findTypeDIE locates a record or typedef DIE whose plain or qualified name
// matches the argument. Declaration-only DIEs carry no members and are
// skipped.
func (r *Resolver) findTypeDIE(argument string) (dwarf.Offset, bool, error) {
	var off dwarf.Offset
	found := false
	err := r.each(func(qual string, e *dwarf.Entry) bool {
		switch e.Tag {
		case dwarf.TagStructType, dwarf.TagClassType, dwarf.TagUnionType, dwarf.TagTypedef,
			dwarf.TagBaseType, dwarf.TagEnumerationType:
		default:
			return true
		}
		if isDeclaration(e) {
			return true
		}
		if name := nameOf(e); name != argument && qual != argument {
			return true
		}
		off = e.Offset
		found = true
		return false
	})
	return off, found, err
}

// findVariableType locates a variable DIE matching the argument and returns
// the offset of its type DIE.
func (r *Resolver) findVariableType(argument string) (dwarf.Offset, bool, error) {
	var off dwarf.Offset
	found := false
	err := r.each(func(qual string, e *dwarf.Entry) bool {
		if e.Tag != dwarf.TagVariable {
			return true
		}
		if name := nameOf(e); name != argument && qual != argument {
			return true
		}
		typeOff, ok := e.Val(dwarf.AttrType).(dwarf.Offset)
		if !ok {
			return true
		}
		off = typeOff
		found = true
		return false
	})
	return off, found, err
}

type rawMember struct {
	name       string
	typeOff    dwarf.Offset
	hasType    bool
	byteOffset int64
	hasStorage bool
	inherited  bool
}

// typeAt builds a descriptor for the DIE at off, stripping typedef and
// cv-qualifier wrappers first. seen holds the record DIEs on the current
// path; revisiting one means the debug info describes a by-value cycle, and
// the revisit degrades to a field-less leaf.
func (r *Resolver) typeAt(off dwarf.Offset, seen map[dwarf.Offset]bool) *typesys.TypeDescriptor {
	rd := r.data.Reader()
	rd.Seek(off)
	e, err := rd.Next()
	if err != nil || e == nil {
		return &typesys.TypeDescriptor{Code: typesys.CodeOther}
	}

	for isWrapper(e.Tag) {
		next, ok := e.Val(dwarf.AttrType).(dwarf.Offset)
		if !ok {
			// const void and friends
			return &typesys.TypeDescriptor{Name: nameOf(e), Code: typesys.CodeOther}
		}
		off = next
		rd.Seek(off)
		e, err = rd.Next()
		if err != nil || e == nil {
			return &typesys.TypeDescriptor{Code: typesys.CodeOther}
		}
	}

	desc := &typesys.TypeDescriptor{
		Name:   nameOf(e),
		SizeOf: r.sizeAt(e, off),
		Code:   codeFor(e.Tag),
	}

	record := e.Tag == dwarf.TagStructType || e.Tag == dwarf.TagClassType || e.Tag == dwarf.TagUnionType
	if !record || !e.Children {
		return desc
	}
	if seen[off] {
		Logger().Warn("cyclic by-value type graph in debug info",
			zap.String("type", desc.Name),
			zap.Uint64("die", uint64(off)))
		return desc
	}

	var raw []rawMember
	for {
		child, err := rd.Next()
		if err != nil || child == nil || child.Tag == 0 {
			break
		}
		switch child.Tag {
		case dwarf.TagMember:
			m := rawMember{name: nameOf(child)}
			m.typeOff, m.hasType = child.Val(dwarf.AttrType).(dwarf.Offset)
			m.byteOffset, m.hasStorage = memberOffset(child)
			raw = append(raw, m)
		case dwarf.TagInheritance:
			m := rawMember{inherited: true}
			m.typeOff, m.hasType = child.Val(dwarf.AttrType).(dwarf.Offset)
			m.byteOffset, m.hasStorage = memberOffset(child)
			raw = append(raw, m)
		}
		if child.Children {
			rd.SkipChildren()
		}
	}

	// Member types are resolved after the child scan so the single reader
	// is free to seek.
	seen[off] = true
	for _, m := range raw {
		f := typesys.FieldDescriptor{
			Name:       m.name,
			HasStorage: m.hasStorage,
			ByteOffset: m.byteOffset,
		}
		if m.hasType {
			f.Type = r.typeAt(m.typeOff, seen)
		}
		if m.inherited {
			f.Name = "<anonymous base>"
			if f.Type != nil && f.Type.Name != "" {
				f.Name = f.Type.Name
			}
		}
		desc.Fields = append(desc.Fields, f)
	}
	delete(seen, off)

	return desc
}

func isWrapper(tag dwarf.Tag) bool {
	switch tag {
	case dwarf.TagTypedef, dwarf.TagConstType, dwarf.TagVolatileType, dwarf.TagRestrictType:
		return true
	}
	return false
}

func codeFor(tag dwarf.Tag) typesys.TypeCode {
	switch tag {
	case dwarf.TagStructType, dwarf.TagClassType:
		return typesys.CodeStruct
	case dwarf.TagUnionType:
		return typesys.CodeUnion
	case dwarf.TagBaseType:
		return typesys.CodeBase
	case dwarf.TagPointerType:
		return typesys.CodePointer
	case dwarf.TagArrayType:
		return typesys.CodeArray
	case dwarf.TagEnumerationType:
		return typesys.CodeEnum
	case dwarf.TagSubroutineType:
		return typesys.CodeFunc
	}
	return typesys.CodeOther
}

// sizeAt returns the byte size of the type DIE. DW_AT_byte_size wins;
// pointers default to the ELF class word size; anything else (arrays in
// particular) goes through the dwarf package's type parser.
func (r *Resolver) sizeAt(e *dwarf.Entry, off dwarf.Offset) int64 {
	if size, ok := e.Val(dwarf.AttrByteSize).(int64); ok {
		return size
	}
	if e.Tag == dwarf.TagPointerType {
		return r.ptrSize
	}
	if t, err := r.data.Type(off); err == nil && t.Size() >= 0 {
		return t.Size()
	}
	return 0
}

// memberOffset extracts a whole-byte member position. Members without a
// data member location (static members), bitfield members, and locations
// this does not understand (virtual bases) report no storage.
func memberOffset(e *dwarf.Entry) (int64, bool) {
	if e.Val(dwarf.AttrBitSize) != nil || e.Val(dwarf.AttrDataBitOffset) != nil {
		return 0, false
	}

	switch loc := e.Val(dwarf.AttrDataMemberLoc).(type) {
	case int64:
		return loc, true
	case []byte:
		// DW_OP_plus_uconst <uleb>, the one expression form compilers emit
		// for plain members.
		if len(loc) >= 2 && loc[0] == 0x23 {
			if v, ok := uleb128(loc[1:]); ok {
				return v, true
			}
		}
		return 0, false
	}
	return 0, false
}

func uleb128(b []byte) (int64, bool) {
	var v uint64
	var shift uint
	for _, x := range b {
		v |= uint64(x&0x7f) << shift
		if x&0x80 == 0 {
			return int64(v), true
		}
		shift += 7
		if shift > 63 {
			break
		}
	}
	return 0, false
}
