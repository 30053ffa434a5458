package xsdtype

import (
	"errors"
	"strings"
	"testing"
	"testing/quick"
)

// Every enumeration literal must have exactly one validator; a newly
// added type without one would otherwise fail silently at runtime.
func TestDispatchTableComplete(t *testing.T) {
	for vt := ValueType(0); vt < valueTypeCount; vt++ {
		if _, ok := validators[vt]; !ok {
			t.Errorf("no validator for %v", vt)
		}
	}
	if len(validators) != int(valueTypeCount) {
		t.Fatalf("validator count = %d, want %d", len(validators), valueTypeCount)
	}
}

func TestValidateUnknownValueType(t *testing.T) {
	_, err := Validate("anything", valueTypeCount)
	if err == nil {
		t.Fatalf("expected error for out-of-enumeration value type")
	}
	if !errors.Is(err, ErrUnknownValueType) {
		t.Fatalf("error = %v, want ErrUnknownValueType", err)
	}
}

func TestValidateDispatches(t *testing.T) {
	tests := []struct {
		value     string
		valueType ValueType
		want      bool
	}{
		{"true", Boolean, true},
		{"true", Byte, false},
		{"127", Byte, true},
		{"2024-02-29", Date, true},
		{"NaN", Double, true},
	}

	for _, tc := range tests {
		t.Run(tc.valueType.String()+"/"+tc.value, func(t *testing.T) {
			got, err := Validate(tc.value, tc.valueType)
			if err != nil {
				t.Fatalf("Validate() error = %v", err)
			}
			if got != tc.want {
				t.Fatalf("Validate(%q, %v) = %v, want %v", tc.value, tc.valueType, got, tc.want)
			}
		})
	}
}

// Validation is a total function over the enumeration: no input text
// may panic or error, whatever it contains.
func TestQuickValidateTotal(t *testing.T) {
	cfg := &quick.Config{MaxCount: 2000}
	err := quick.Check(func(value string, raw uint8) bool {
		vt := ValueType(raw % uint8(valueTypeCount))
		_, err := Validate(value, vt)
		return err == nil
	}, cfg)
	if err != nil {
		t.Fatal(err)
	}
}

func TestValueTypeString(t *testing.T) {
	tests := []struct {
		valueType ValueType
		want      string
	}{
		{AnyURI, "anyURI"},
		{Base64Binary, "base64Binary"},
		{DateTime, "dateTime"},
		{GMonthDay, "gMonthDay"},
		{NonNegativeInteger, "nonNegativeInteger"},
		{UnsignedShort, "unsignedShort"},
		{valueTypeCount, "unknown"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			if got := tc.valueType.String(); got != tc.want {
				t.Fatalf("String() = %q, want %q", got, tc.want)
			}
		})
	}

	seen := make(map[string]bool, valueTypeCount)
	for vt := ValueType(0); vt < valueTypeCount; vt++ {
		name := vt.String()
		if name == "unknown" {
			t.Errorf("value type %d has no name", vt)
		}
		if seen[name] {
			t.Errorf("duplicate name %q", name)
		}
		seen[name] = true
	}
}

func BenchmarkValidateDate(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		if ok, _ := Validate("2024-02-29", Date); !ok {
			b.Fatal("expected valid")
		}
	}
}

func BenchmarkValidateLongInput(b *testing.B) {
	input := strings.Repeat("9", 4096)
	b.ReportAllocs()
	for b.Loop() {
		if ok, _ := Validate(input, Integer); !ok {
			b.Fatal("expected valid")
		}
	}
}
