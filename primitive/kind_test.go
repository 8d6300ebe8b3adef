package primitive

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func Example() {
	fmt.Println(KindInt64)
	fmt.Println(KindTime.GoType())
	fmt.Println(FormatExpr(KindUint8, "value"))
	fmt.Println(KindEnum(0))
	// Output:
	// KindInt64
	// time.Time
	// strconv.FormatUint(uint64(value), 10)
	// KindEnum(0)
}

func TestFormatExpr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind    KindEnum
		goType  string
		expr    string
		imports []string
	}{
		{KindInt, "int", "strconv.FormatInt(int64(v), 10)", []string{"strconv"}},
		{KindInt64, "int64", "strconv.FormatInt(v, 10)", []string{"strconv"}},
		{KindUint64, "uint64", "strconv.FormatUint(v, 10)", []string{"strconv"}},
		{KindUint16, "uint16", "strconv.FormatUint(uint64(v), 10)", []string{"strconv"}},
		{KindFloat32, "float32", "strconv.FormatFloat(float64(v), 'g', -1, 32)", []string{"strconv"}},
		{KindFloat64, "float64", "strconv.FormatFloat(v, 'g', -1, 64)", []string{"strconv"}},
		{KindBool, "bool", "strconv.FormatBool(v)", []string{"strconv"}},
		{KindString, "string", "v", nil},
		{KindTime, "time.Time", "v.Format(time.RFC3339Nano)", []string{"time"}},
		{KindDuration, "time.Duration", "v.String()", []string{"time"}},
		{KindAny, "any", "fmt.Sprint(v)", []string{"fmt"}},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.goType, tt.kind.GoType())
			assert.Equal(t, tt.expr, FormatExpr(tt.kind, "v"))
			assert.Equal(t, tt.imports, tt.kind.Imports())
		})
	}
}

func TestFormatExpr_CoversEveryKind(t *testing.T) {
	t.Parallel()

	for k := KindEnum(1); int(k) < KindTotal; k++ {
		assert.NotPanics(t, func() { FormatExpr(k, "v") }, k.String())
	}

	assert.Panics(t, func() { FormatExpr(0, "v") })
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want KindEnum
		ok   bool
	}{
		{"string", KindString, true},
		{"String", KindString, true},
		{" int64 ", KindInt64, true},
		{"time", KindTime, true},
		{"time.Time", KindTime, true},
		{"time.Duration", KindDuration, true},
		{"duration", KindDuration, true},
		{"interface{}", KindAny, true},
		{"complex128", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseKind(tt.name)
		assert.Equal(t, tt.ok, ok, tt.name)
		assert.Equal(t, tt.want, got, tt.name)
	}
}

func TestKindEnum_YAML(t *testing.T) {
	t.Parallel()

	var out struct {
		Kinds []KindEnum `yaml:"kinds"`
	}

	require.NoError(t, yaml.Unmarshal([]byte("kinds: [string, uint32, time.Duration]"), &out))
	assert.Equal(t, []KindEnum{KindString, KindUint32, KindDuration}, out.Kinds)

	data, err := yaml.Marshal(out)
	require.NoError(t, err)
	assert.Equal(t, "kinds:\n    - string\n    - uint32\n    - duration\n", string(data))

	err = yaml.Unmarshal([]byte("kinds: [decimal]"), &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown field kind "decimal"`)

	_, err = yaml.Marshal(struct{ K KindEnum }{})
	assert.Error(t, err)
}

func TestKindEnum_Predicates(t *testing.T) {
	t.Parallel()

	assert.True(t, KindInt8.IsSigned())
	assert.True(t, KindUint.IsUnsigned())
	assert.True(t, KindFloat32.IsNumber())
	assert.False(t, KindBool.IsNumber())
	assert.False(t, KindEnum(0).IsValid())
	assert.False(t, KindEnum(KindTotal).IsValid())
	assert.True(t, KindAny.IsValid())
	assert.Equal(t, "any", KindAny.Name())
	assert.Len(t, KindNames(), KindTotal-1)
	assert.Panics(t, func() { KindInt.Bits() })
}
