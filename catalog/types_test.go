package catalog

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   Kind
		want Kind
	}{
		{"INT", KindInt},
		{"INTEGER", KindInt},
		{"INT8", KindBigInt},
		{"VARCHAR", KindVarchar},
		{"STRING", KindVarchar},
		{"TEXT", KindVarchar},
		{"DATETIME", KindDatetime},
		{"TIMESTAMP", KindDatetime},
		{"DECIMAL", KindDecimal},
		{"BOOL", KindBoolean},
	}
	for _, tt := range tests {
		if got := tt.in.Normalize(); got != tt.want {
			t.Errorf("Normalize(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
	if Kind("bogus").Valid() {
		t.Error("unknown kind must not be valid")
	}
}

func TestKindCategories(t *testing.T) {
	if !KindDate.IsDate() || !KindDatetime.IsDate() {
		t.Error("date kinds must report IsDate")
	}
	if !KindChar.IsString() || !KindVarchar.IsString() {
		t.Error("string kinds must report IsString")
	}
	if KindVarchar.IsDate() || KindInt.IsString() {
		t.Error("category predicates must not overlap")
	}
	if !KindTinyInt.IsNumeric() || !KindDecimal.IsNumeric() || KindDate.IsNumeric() {
		t.Error("numeric category mismatch")
	}
	if KindInvalid.Valid() {
		t.Error("KindInvalid must not be valid")
	}
}

func TestCastTolerable(t *testing.T) {
	tests := []struct {
		declared Kind
		operand  Kind
		want     bool
	}{
		{KindDate, KindDatetime, true},
		{KindDatetime, KindDate, true},
		{KindChar, KindVarchar, true},
		{KindVarchar, KindChar, true},
		{KindDate, KindInt, false},
		{KindInt, KindDate, false},
		{KindVarchar, KindInt, false},
		{KindInt, KindBigInt, false},
		{KindDouble, KindFloat, false},
	}
	for _, tt := range tests {
		if got := CastTolerable(tt.declared, tt.operand); got != tt.want {
			t.Errorf("CastTolerable(%s, %s) = %v, want %v", tt.declared, tt.operand, got, tt.want)
		}
		// Tolerance is symmetric.
		if got := CastTolerable(tt.operand, tt.declared); got != tt.want {
			t.Errorf("CastTolerable(%s, %s) = %v, want %v", tt.operand, tt.declared, got, tt.want)
		}
	}
}

func TestSchemaResolve(t *testing.T) {
	s := &Schema{Columns: []Column{
		{ID: 3, Name: "a", Kind: KindInt},
		{ID: 7, Name: "b", Kind: KindVarchar},
	}}

	col, ok := s.Resolve(7)
	if !ok {
		t.Fatal("expected slot 7 to resolve")
	}
	if col.Name != "b" || col.Kind != KindVarchar {
		t.Errorf("resolved wrong column: %+v", col)
	}

	if _, ok := s.Resolve(42); ok {
		t.Error("slot 42 must not resolve")
	}
}
