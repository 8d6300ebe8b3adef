package primitive

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum is the semantic type tag of a log field. It decides the Go type
// a generated setter accepts and how the value is rendered.
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindBool
	KindString
	KindTime
	KindDuration
	KindAny // any value, rendered with fmt.Sprint

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

var kindNames = map[KindEnum]string{
	KindInt:      "int",
	KindInt8:     "int8",
	KindInt16:    "int16",
	KindInt32:    "int32",
	KindInt64:    "int64",
	KindUint:     "uint",
	KindUint8:    "uint8",
	KindUint16:   "uint16",
	KindUint32:   "uint32",
	KindUint64:   "uint64",
	KindFloat32:  "float32",
	KindFloat64:  "float64",
	KindBool:     "bool",
	KindString:   "string",
	KindTime:     "time",
	KindDuration: "duration",
	KindAny:      "any",
}

// IsValid reports whether k is one of the declared kinds.
func (k KindEnum) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

func (k KindEnum) IsNumber() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint, KindUint8, KindUint16, KindUint32, KindUint64,
		KindFloat32, KindFloat64:
		return true
	}
}

func (k KindEnum) IsFloat() bool {
	switch k {
	default:
		return false
	case KindFloat32, KindFloat64:
		return true
	}
}

func (k KindEnum) IsSigned() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64:
		return true
	}
}

func (k KindEnum) IsUnsigned() bool {
	switch k {
	default:
		return false
	case KindUint, KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
}

// Bits returns the size of a float kind, as strconv.FormatFloat expects it.
func (k KindEnum) Bits() int {
	switch k {
	default:
		panic("only float kinds have a meaningful bit size, but requested for: " + k.String())
	case KindFloat32:
		return 32
	case KindFloat64:
		return 64
	}
}

// Name returns the lower-case name used in configuration files.
func (k KindEnum) Name() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return k.String()
}

// GoType returns the Go type a setter for this kind accepts.
func (k KindEnum) GoType() string {
	switch k {
	case KindTime:
		return "time.Time"
	case KindDuration:
		return "time.Duration"
	case KindAny:
		return "any"
	default:
		return kindNames[k]
	}
}

// Imports returns the standard library packages the setter of this kind
// needs, both for its parameter type and its formatting expression.
func (k KindEnum) Imports() []string {
	switch {
	case k.IsNumber(), k == KindBool:
		return []string{"strconv"}
	case k == KindTime, k == KindDuration:
		return []string{"time"}
	case k == KindAny:
		return []string{"fmt"}
	default:
		return nil
	}
}

// ParseKind resolves a kind by configuration name or Go type name,
// ignoring case. "time.Time" and "time" both resolve to KindTime.
func ParseKind(name string) (KindEnum, bool) {
	name = strings.ToLower(strings.TrimSpace(name))

	for k := KindEnum(1); int(k) < KindTotal; k++ {
		if name == k.Name() || name == strings.ToLower(k.GoType()) {
			return k, true
		}
	}

	if name == "interface{}" {
		return KindAny, true
	}

	return 0, false
}

// KindNames lists every configuration name in declaration order.
func KindNames() []string {
	names := make([]string, 0, KindTotal-1)
	for k := KindEnum(1); int(k) < KindTotal; k++ {
		names = append(names, k.Name())
	}

	return names
}

// UnmarshalYAML decodes a kind from its configuration name.
func (k *KindEnum) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}

	parsed, ok := ParseKind(name)
	if !ok {
		return fmt.Errorf("line %d: unknown field kind %q (known kinds: %s)",
			node.Line, name, strings.Join(KindNames(), ", "))
	}

	*k = parsed

	return nil
}

// MarshalYAML encodes a kind as its configuration name.
func (k KindEnum) MarshalYAML() (any, error) {
	if !k.IsValid() {
		return nil, fmt.Errorf("cannot marshal invalid kind %s", k)
	}

	return k.Name(), nil
}
