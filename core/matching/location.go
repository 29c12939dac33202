package matching

import (
	"fmt"
	"strings"
)

// DefaultNamespace is assumed when a resource location has no namespace.
const DefaultNamespace = "minecraft"

// ResourceLocation is a namespaced registry name such as "minecraft:apple".
type ResourceLocation struct {
	Namespace string
	Path      string
}

// ParseResourceLocation parses "namespace:path" or a bare "path".
func ParseResourceLocation(s string) (ResourceLocation, error) {
	if s == "" {
		return ResourceLocation{}, fmt.Errorf("empty resource location")
	}
	ns, path, found := strings.Cut(s, ":")
	if !found {
		return ResourceLocation{Namespace: DefaultNamespace, Path: s}, nil
	}
	if ns == "" || path == "" {
		return ResourceLocation{}, fmt.Errorf("invalid resource location %q", s)
	}
	return ResourceLocation{Namespace: ns, Path: path}, nil
}

// MustParseResourceLocation is like ParseResourceLocation but panics on error.
func MustParseResourceLocation(s string) ResourceLocation {
	loc, err := ParseResourceLocation(s)
	if err != nil {
		panic(err)
	}
	return loc
}

func (l ResourceLocation) String() string {
	return l.Namespace + ":" + l.Path
}
