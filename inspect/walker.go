package inspect

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/VorpalBlade/layout-of/errors"
	"github.com/VorpalBlade/layout-of/render"
	"github.com/VorpalBlade/layout-of/typesys"
)

// DefaultMaxDepth bounds the recursive walk. Well-formed type systems
// cannot nest a struct inside itself by value, but DWARF from a broken or
// hostile producer can.
const DefaultMaxDepth = 64

// Walker prints the nested layout of a type and accounts holes and
// trailing padding.
type Walker struct {
	out    io.Writer
	styles render.Styles

	// MaxDepth is the recursion ceiling. Zero means DefaultMaxDepth.
	MaxDepth int
}

// NewWalker returns a Walker writing to out with the given styles.
func NewWalker(out io.Writer, styles render.Styles) *Walker {
	return &Walker{out: out, styles: styles}
}

// Walk prints the layout of t and returns the total hole and padding bytes
// found. In recursive mode the walk descends into struct-typed members and
// the totals include their contributions; otherwise nested waste is neither
// computed nor included.
//
// A non-struct t fails with a not_a_struct error before any output.
func (w *Walker) Walk(t *typesys.TypeDescriptor, displayName string, recursive bool) (holes, padding int64, err error) {
	if !t.Code.IsStruct() {
		return 0, 0, errors.NotAStruct(t.Name)
	}
	return w.walk(t, displayName, recursive, 0)
}

// Report prints the summary lines that follow a top-level Walk. Hole and
// padding totals are only printed in recursive mode and only when nonzero;
// the totals of a non-recursive walk exclude nested waste and would
// mislead. Total size is always printed.
func (w *Walker) Report(t *typesys.TypeDescriptor, holes, padding int64, recursive bool) {
	if recursive && holes > 0 {
		fmt.Fprintln(w.out, w.styles.Warn(fmt.Sprintf("Total hole size: %d", holes)))
	}
	if recursive && padding > 0 {
		fmt.Fprintln(w.out, w.styles.Warn(fmt.Sprintf("Total padding size: %d", padding)))
	}
	fmt.Fprintln(w.out, w.styles.Total(fmt.Sprintf("Total size: %d", t.SizeOf)))
}

func (w *Walker) maxDepth() int {
	if w.MaxDepth > 0 {
		return w.MaxDepth
	}
	return DefaultMaxDepth
}

func (w *Walker) printIndented(depth int, text string) {
	fmt.Fprintln(w.out, strings.Repeat("   ", depth)+text)
}

func (w *Walker) walk(t *typesys.TypeDescriptor, displayName string, recursive bool, depth int) (holes, padding int64, err error) {
	if depth > w.maxDepth() {
		return 0, 0, errors.DepthExceeded(t.Name, w.maxDepth())
	}

	if t.Name != "" && t.Name != displayName {
		displayName += " (" + t.Name + ")"
	}
	w.printIndented(depth, displayName+w.styles.Brace(depth, " {"))

	fields := make([]typesys.FieldDescriptor, 0, len(t.Fields))
	for _, f := range t.Fields {
		if f.HasStorage {
			fields = append(fields, f)
		}
	}
	// Stable: members at the same offset keep resolver order.
	sort.SliceStable(fields, func(i, j int) bool {
		return fields[i].ByteOffset < fields[j].ByteOffset
	})

	// prevEnd is the running max of covered byte ends at this level only.
	// Members may overlap (empty base subobjects) or end out of order, so
	// a plain "previous field's end" would report phantom holes.
	var prevEnd int64
	for _, f := range fields {
		byteStart := f.ByteOffset
		byteEnd := byteStart + f.SizeOf()

		if prevEnd < byteStart {
			gap := byteStart - prevEnd
			fmt.Fprintln(w.out)
			w.printIndented(depth, w.styles.Warn(fmt.Sprintf("   --- Hole: %d bytes ---", gap)))
			fmt.Fprintln(w.out)
			holes += gap
		}

		label := fmt.Sprintf("%s => %d - %d", f.Name, byteStart, byteEnd)
		if recursive && f.Type != nil && f.Type.Code.IsStruct() {
			subHoles, subPadding, err := w.walk(f.Type, label, recursive, depth+1)
			if err != nil {
				return holes, padding, err
			}
			holes += subHoles
			padding += subPadding
		} else {
			w.printIndented(depth, "   "+label)
		}

		if byteEnd > prevEnd {
			prevEnd = byteEnd
		}
	}

	if t.SizeOf > prevEnd {
		gap := t.SizeOf - prevEnd
		fmt.Fprintln(w.out)
		w.printIndented(depth, w.styles.Warn(fmt.Sprintf("   --- Padding: %d bytes ---", gap)))
		fmt.Fprintln(w.out)
		padding += gap
	}
	w.printIndented(depth, w.styles.Brace(depth, "}"))

	// A zero-field type of size 1 whose whole byte shows up as padding is
	// an empty base subobject (a noncopyable marker base, say). Its one
	// byte legitimately overlaps sibling data, so reporting it as waste is
	// a false positive.
	if t.SizeOf == 1 && len(t.Fields) == 0 && padding == 1 && holes == 0 {
		return 0, 0, nil
	}
	return holes, padding, nil
}
