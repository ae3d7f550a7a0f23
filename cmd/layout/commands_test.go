package main

import (
	"bytes"
	goerrors "errors"
	"strings"
	"testing"

	"github.com/VorpalBlade/layout-of/errors"
	"github.com/VorpalBlade/layout-of/render"
	"github.com/VorpalBlade/layout-of/typesys"
)

// fakeResolver serves canned descriptors and records what was resolved, so
// tests can assert that usage errors fire before any resolution.
type fakeResolver struct {
	types    map[string]*typesys.TypeDescriptor
	resolved []string
}

func (f *fakeResolver) Resolve(argument string) (*typesys.TypeDescriptor, error) {
	f.resolved = append(f.resolved, argument)
	if t, ok := f.types[argument]; ok {
		return t, nil
	}
	return nil, errors.Unresolvable(argument, nil)
}

func testTypes() map[string]*typesys.TypeDescriptor {
	intT := &typesys.TypeDescriptor{Name: "int", SizeOf: 4, Code: typesys.CodeBase}
	point := &typesys.TypeDescriptor{
		Name: "Point", SizeOf: 8, Code: typesys.CodeStruct,
		Fields: []typesys.FieldDescriptor{
			{Name: "x", HasStorage: true, ByteOffset: 0, Type: intT},
			{Name: "y", HasStorage: true, ByteOffset: 4, Type: intT},
			{Name: "origin", HasStorage: false, Type: nil},
		},
	}
	return map[string]*typesys.TypeDescriptor{
		"Point":    point,
		"my_point": point,
		"int":      intT,
	}
}

func newTestCommands() (*commands, *fakeResolver, *bytes.Buffer) {
	res := &fakeResolver{types: testTypes()}
	var buf bytes.Buffer
	return &commands{resolver: res, out: &buf, styles: render.Plain()}, res, &buf
}

func TestOffsetsOf(t *testing.T) {
	cmds, _, buf := newTestCommands()

	if err := cmds.offsetsOf([]string{"Point"}); err != nil {
		t.Fatalf("offsetsOf: %v", err)
	}

	want := "Point {\n" +
		"  x => 0\n" +
		"  y => 4\n" +
		"  origin => ? (static member?)\n" +
		"}\n"
	if buf.String() != want {
		t.Errorf("output:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestOffsetsOfDisplayName(t *testing.T) {
	cmds, _, buf := newTestCommands()

	if err := cmds.offsetsOf([]string{"my_point"}); err != nil {
		t.Fatalf("offsetsOf: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "my_point (Point) {") {
		t.Errorf("header: %q", buf.String())
	}
}

func TestOffsetsOfUsage(t *testing.T) {
	tests := [][]string{
		{},
		{"a", "b"},
	}
	for _, argv := range tests {
		cmds, res, _ := newTestCommands()
		err := cmds.offsetsOf(argv)
		if !goerrors.Is(err, errors.Usage("")) {
			t.Errorf("offsetsOf(%v) = %v, want usage error", argv, err)
		}
		if len(res.resolved) != 0 {
			t.Errorf("offsetsOf(%v) attempted resolution of %v", argv, res.resolved)
		}
	}
}

func TestLayoutOf(t *testing.T) {
	cmds, _, buf := newTestCommands()

	if err := cmds.layoutOf([]string{"Point"}); err != nil {
		t.Fatalf("layoutOf: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "x => 0 - 4") || !strings.Contains(out, "y => 4 - 8") {
		t.Errorf("missing fields:\n%s", out)
	}
	if strings.Contains(out, "Hole") || strings.Contains(out, "Padding") {
		t.Errorf("phantom waste reported:\n%s", out)
	}
	if !strings.Contains(out, "Total size: 8") {
		t.Errorf("missing total size:\n%s", out)
	}
	if strings.Contains(out, "Total hole size") || strings.Contains(out, "Total padding size") {
		t.Errorf("zero totals printed:\n%s", out)
	}
}

func TestLayoutOfRecursiveFlag(t *testing.T) {
	cmds, _, _ := newTestCommands()
	if err := cmds.layoutOf([]string{"-r", "Point"}); err != nil {
		t.Fatalf("layoutOf -r: %v", err)
	}
}

func TestLayoutOfUsage(t *testing.T) {
	// Wrong argument count or -r out of position fails before any
	// resolution is attempted.
	tests := [][]string{
		{},
		{"a", "b"},
		{"Point", "-r"},
		{"-r", "Point", "extra"},
	}
	for _, argv := range tests {
		cmds, res, _ := newTestCommands()
		err := cmds.layoutOf(argv)
		if !goerrors.Is(err, errors.Usage("")) {
			t.Errorf("layoutOf(%v) = %v, want usage error", argv, err)
		}
		if len(res.resolved) != 0 {
			t.Errorf("layoutOf(%v) attempted resolution of %v", argv, res.resolved)
		}
	}
}

func TestLayoutOfNotAStruct(t *testing.T) {
	cmds, _, buf := newTestCommands()

	// Informational message, normal termination, no layout output.
	if err := cmds.layoutOf([]string{"int"}); err != nil {
		t.Fatalf("layoutOf: %v", err)
	}
	if got, want := buf.String(), "int is not a class or struct\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestLayoutOfUnresolvable(t *testing.T) {
	cmds, _, _ := newTestCommands()
	err := cmds.layoutOf([]string{"NoSuchType"})
	if !goerrors.Is(err, errors.Unresolvable("", nil)) {
		t.Errorf("err = %v, want unresolvable_type", err)
	}
}

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"blank", "   ", nil},
		{"simple", "layout-of Point", []string{"layout-of", "Point"}},
		{"flag", "layout-of -r Point", []string{"layout-of", "-r", "Point"}},
		{"double_quoted", `layout-of "std::map<int, int>"`, []string{"layout-of", "std::map<int, int>"}},
		{"single_quoted", `offsets-of 'struct foo'`, []string{"offsets-of", "struct foo"}},
		{"escaped_space", `offsets-of a\ b`, []string{"offsets-of", "a b"}},
		{"escape_in_double", `x "a\"b"`, []string{"x", `a"b`}},
		{"empty_quotes", `x ""`, []string{"x", ""}},
		{"tabs", "a\tb", []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := splitArgs(tt.in)
			if err != nil {
				t.Fatalf("splitArgs(%q): %v", tt.in, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("splitArgs(%q) = %v, want %v", tt.in, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("arg %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSplitArgsUnterminated(t *testing.T) {
	for _, in := range []string{`"open`, `'open`, `trail\`} {
		if _, err := splitArgs(in); err == nil {
			t.Errorf("splitArgs(%q) succeeded, want error", in)
		}
	}
}
