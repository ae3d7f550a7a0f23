package typesys

import "testing"

func TestTypeCodeString(t *testing.T) {
	tests := []struct {
		code TypeCode
		want string
	}{
		{CodeOther, "other"},
		{CodeStruct, "struct"},
		{CodeUnion, "union"},
		{CodeBase, "base"},
		{CodePointer, "pointer"},
		{CodeArray, "array"},
		{CodeEnum, "enum"},
		{CodeFunc, "func"},
		{TypeCode(200), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("TypeCode(%d).String() = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestIsStruct(t *testing.T) {
	if !CodeStruct.IsStruct() {
		t.Error("CodeStruct.IsStruct() = false")
	}
	for _, c := range []TypeCode{CodeOther, CodeUnion, CodeBase, CodePointer, CodeArray, CodeEnum, CodeFunc} {
		if c.IsStruct() {
			t.Errorf("%v.IsStruct() = true", c)
		}
	}
}

func TestFieldSizeOf(t *testing.T) {
	f := FieldDescriptor{Name: "x"}
	if f.SizeOf() != 0 {
		t.Errorf("nil type SizeOf = %d, want 0", f.SizeOf())
	}
	f.Type = &TypeDescriptor{SizeOf: 12}
	if f.SizeOf() != 12 {
		t.Errorf("SizeOf = %d, want 12", f.SizeOf())
	}
}
