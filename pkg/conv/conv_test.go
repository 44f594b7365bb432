package conv

import (
	"reflect"
	"testing"
)

func TestToFloat64(t *testing.T) {
	tests := []struct {
		name   string
		in     any
		want   float64
		wantOK bool
	}{
		{"float64", 0.2, 0.2, true},
		{"int", 2, 2.0, true},
		{"int64", int64(3), 3.0, true},
		{"bool true", true, 1.0, true},
		{"string 不支持", "0.2", 0, false},
		{"nil", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToFloat64(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ToFloat64(%v) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestSliceAnyToString(t *testing.T) {
	// YAML 解析出的列表是 []any；非字符串元素跳过
	in := []any{"bread", 42, "milk"}
	if got := SliceAnyToString(in); !reflect.DeepEqual(got, []string{"bread", "milk"}) {
		t.Errorf("SliceAnyToString(%v) = %v", in, got)
	}
	if got := SliceAnyToString(nil); got != nil {
		t.Errorf("SliceAnyToString(nil) = %v, want nil", got)
	}
	if got := SliceAnyToString("not-a-slice"); got != nil {
		t.Errorf("SliceAnyToString(非切片) = %v, want nil", got)
	}
}

func TestConfigGetters(t *testing.T) {
	cfg := map[string]any{
		"min_support": 0.2,
		"top_n":       10,
		"top_float":   20.0, // JSON 数字统一解析为 float64
		"expr":        "rule.lift > 2.0",
	}

	if got := ConfigGetFloat64(cfg, "min_support", 0.1); got != 0.2 {
		t.Errorf("ConfigGetFloat64(min_support) = %v, want 0.2", got)
	}
	if got := ConfigGetFloat64(cfg, "top_n", 0.1); got != 10.0 {
		t.Errorf("ConfigGetFloat64(top_n) = %v, want 10（int 兼容）", got)
	}
	if got := ConfigGetFloat64(cfg, "missing", 0.1); got != 0.1 {
		t.Errorf("ConfigGetFloat64(missing) = %v, want 默认值 0.1", got)
	}

	if got := ConfigGetInt(cfg, "top_n", 20); got != 10 {
		t.Errorf("ConfigGetInt(top_n) = %v, want 10", got)
	}
	if got := ConfigGetInt(cfg, "top_float", 0); got != 20 {
		t.Errorf("ConfigGetInt(top_float) = %v, want 20（float64 兼容）", got)
	}
	if got := ConfigGetInt(nil, "top_n", 20); got != 20 {
		t.Errorf("ConfigGetInt(nil) = %v, want 默认值 20", got)
	}

	if got := ConfigGet(cfg, "expr", ""); got != "rule.lift > 2.0" {
		t.Errorf("ConfigGet(expr) = %q", got)
	}
	if got := ConfigGet(cfg, "top_n", "fallback"); got != "fallback" {
		t.Errorf("类型不符应返回默认值, got %q", got)
	}
}
