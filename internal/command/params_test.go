package command

import "testing"

func TestIntParam_CoercesJSONNumberForms(t *testing.T) {
	params := map[string]any{
		"float":  float64(42),
		"int":    7,
		"string": "13",
		"junk":   "abc",
	}
	if got := IntParam(params, "float", 0); got != 42 {
		t.Errorf("float64 coercion = %d", got)
	}
	if got := IntParam(params, "int", 0); got != 7 {
		t.Errorf("int = %d", got)
	}
	if got := IntParam(params, "string", 0); got != 13 {
		t.Errorf("numeric string = %d", got)
	}
	if got := IntParam(params, "junk", 99); got != 99 {
		t.Errorf("junk should fall back, got %d", got)
	}
	if got := IntParam(params, "missing", 5); got != 5 {
		t.Errorf("missing should fall back, got %d", got)
	}
}

func TestBoolParam(t *testing.T) {
	params := map[string]any{"b": true, "s": "true", "junk": "nope"}
	if !BoolParam(params, "b", false) || !BoolParam(params, "s", false) {
		t.Error("expected true for bool and string forms")
	}
	if BoolParam(params, "junk", false) {
		t.Error("unparseable string should fall back")
	}
	if !BoolParam(params, "missing", true) {
		t.Error("missing should fall back")
	}
}

func TestFloatParam(t *testing.T) {
	params := map[string]any{"f": 0.25, "i": 2, "s": "0.75"}
	if got := FloatParam(params, "f", 0); got != 0.25 {
		t.Errorf("f = %v", got)
	}
	if got := FloatParam(params, "i", 0); got != 2.0 {
		t.Errorf("i = %v", got)
	}
	if got := FloatParam(params, "s", 0); got != 0.75 {
		t.Errorf("s = %v", got)
	}
}

func TestRequireInt(t *testing.T) {
	if _, cerr := requireInt(map[string]any{}, "x"); cerr == nil || cerr.Code != CodeInvalidRequest {
		t.Error("missing key must be INVALID_REQUEST")
	}
	if _, cerr := requireInt(map[string]any{"x": "abc"}, "x"); cerr == nil {
		t.Error("non-numeric value must be INVALID_REQUEST")
	}
	n, cerr := requireInt(map[string]any{"x": float64(9)}, "x")
	if cerr != nil || n != 9 {
		t.Errorf("got (%d, %v)", n, cerr)
	}
}

func TestClampInt(t *testing.T) {
	tests := []struct{ v, lo, hi, want int }{
		{5, 40, 1000, 40},
		{40, 40, 1000, 40},
		{60, 40, 1000, 60},
		{1000, 40, 1000, 1000},
		{4000, 40, 1000, 1000},
	}
	for _, tt := range tests {
		if got := clampInt(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("clampInt(%d, %d, %d) = %d, want %d", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}
