package primitive

import (
	"fmt"
)

var (
	templates map[KindEnum]string
)

func init() {
	templates = map[KindEnum]string{}

	for kind := KindEnum(1); int(kind) < KindTotal; kind++ {
		switch {
		case kind == KindInt64:
			templates[kind] = "strconv.FormatInt({{.value}}, 10)"
		case kind.IsSigned():
			templates[kind] = "strconv.FormatInt(int64({{.value}}), 10)"
		case kind == KindUint64:
			templates[kind] = "strconv.FormatUint({{.value}}, 10)"
		case kind.IsUnsigned():
			templates[kind] = "strconv.FormatUint(uint64({{.value}}), 10)"
		case kind == KindFloat64:
			templates[kind] = "strconv.FormatFloat({{.value}}, 'g', -1, 64)"
		case kind.IsFloat():
			templates[kind] = fmt.Sprintf("strconv.FormatFloat(float64({{.value}}), 'g', -1, %d)", kind.Bits())
		}
	}

	templates[KindBool] = "strconv.FormatBool({{.value}})"
	templates[KindString] = "{{.value}}"
	templates[KindTime] = "{{.value}}.Format(time.RFC3339Nano)"
	templates[KindDuration] = "{{.value}}.String()"
	templates[KindAny] = "fmt.Sprint({{.value}})"
}
