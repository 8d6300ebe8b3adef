package verify

import (
	"fmt"
	"sort"
	"strings"
)

// Backend parses Go source text into a declaration tree rooted at a
// KindFile node. Implementations must be safe for concurrent use.
type Backend interface {
	Name() string
	Parse(src []byte) (*Node, error)
}

var backends = map[string]Backend{
	GoBackend{}.Name():         GoBackend{},
	TreeSitterBackend{}.Name(): TreeSitterBackend{},
}

// BackendByName returns the backend registered under name.
func BackendByName(name string) (Backend, error) {
	if b, ok := backends[name]; ok {
		return b, nil
	}

	return nil, fmt.Errorf("unknown parser backend %q (available: %s)", name, strings.Join(BackendNames(), ", "))
}

// BackendNames lists the registered backends in sorted order.
func BackendNames() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
