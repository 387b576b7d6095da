package facts

import (
	"fmt"
	"sort"
	"strings"

	"github.com/effectus/simplerules-go"
)

// Registry routes lookups to providers by namespace. The namespace is
// the first path segment: "applicant.age" routes to the provider
// registered under "applicant", which then resolves "age".
type Registry struct {
	providers map[string]simplerules.Facts
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{providers: make(map[string]simplerules.Facts)}
}

// Register adds a provider under a namespace. Registering the same
// namespace again replaces the previous provider.
func (r *Registry) Register(namespace string, provider simplerules.Facts) {
	r.providers[namespace] = provider
}

// Get routes the lookup to the provider owning the path's namespace.
func (r *Registry) Get(path string) (interface{}, bool) {
	namespace := namespaceOf(path)
	provider, ok := r.providers[namespace]
	if !ok {
		return nil, false
	}
	return provider.Get(pathWithoutNamespace(path, namespace))
}

// namespaceOf extracts everything before the first '.' or '['.
func namespaceOf(path string) string {
	for i, c := range path {
		if c == '.' || c == '[' {
			return path[:i]
		}
	}
	return path
}

// pathWithoutNamespace strips the namespace prefix, keeping bracket
// access intact.
func pathWithoutNamespace(path, namespace string) string {
	if path == namespace {
		return ""
	}
	rest := path[len(namespace):]
	if rest[0] == '.' {
		return rest[1:]
	}
	return rest
}

// MergeStrategy controls how overlapping fact sources are combined.
type MergeStrategy string

const (
	MergeFirst MergeStrategy = "first" // highest priority source wins
	MergeLast  MergeStrategy = "last"  // lowest priority source wins
	MergeError MergeStrategy = "error" // conflicting sources resolve to absent
)

// Source couples a fact provider with a name and priority.
type Source struct {
	Name     string
	Facts    simplerules.Facts
	Priority int
}

// Merged combines multiple fact sources into one provider.
type Merged struct {
	sources  []Source
	strategy MergeStrategy
}

// NewMerged creates a merged provider. Sources are consulted in
// descending priority order; ties keep their given order.
func NewMerged(sources []Source, strategy MergeStrategy) *Merged {
	return &Merged{
		sources:  normalizeSources(sources),
		strategy: normalizeStrategy(strategy),
	}
}

// Get retrieves the value at path by applying the merge strategy.
func (m *Merged) Get(path string) (interface{}, bool) {
	value, err := m.Resolve(path)
	if err != nil {
		return nil, false
	}
	return value, true
}

// Resolve retrieves the value at path, reporting a conflict between
// sources when the strategy is MergeError.
func (m *Merged) Resolve(path string) (interface{}, error) {
	if m == nil || len(m.sources) == 0 {
		return nil, fmt.Errorf("path not found: %s", path)
	}

	type match struct {
		source string
		value  interface{}
	}

	matches := make([]match, 0, 1)
	for _, source := range m.sources {
		if value, ok := source.Facts.Get(path); ok {
			matches = append(matches, match{source: source.Name, value: value})
		}
	}

	if len(matches) == 0 {
		return nil, fmt.Errorf("path not found: %s", path)
	}

	if m.strategy == MergeError && len(matches) > 1 {
		names := make([]string, 0, len(matches))
		for _, hit := range matches {
			names = append(names, hit.source)
		}
		return nil, fmt.Errorf("conflicting values for %s from sources: %v", path, names)
	}

	if m.strategy == MergeLast {
		return matches[len(matches)-1].value, nil
	}
	return matches[0].value, nil
}

func normalizeStrategy(strategy MergeStrategy) MergeStrategy {
	switch strategy {
	case MergeLast, MergeError:
		return strategy
	default:
		return MergeFirst
	}
}

func normalizeSources(sources []Source) []Source {
	ordered := make([]Source, 0, len(sources))
	for _, src := range sources {
		if src.Facts == nil {
			continue
		}
		ordered = append(ordered, src)
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority > ordered[j].Priority
	})
	return ordered
}

// Aliased rewrites namespace aliases before delegating to the base
// provider, so rules written against "applicant.age" can evaluate
// against facts stored under "source1.applicant.age".
type Aliased struct {
	base    simplerules.Facts
	aliases map[string]string
}

// NewAliased wraps a provider with alias-to-target prefix mappings.
func NewAliased(base simplerules.Facts, aliases map[string]string) *Aliased {
	copied := make(map[string]string, len(aliases))
	for alias, target := range aliases {
		copied[alias] = target
	}
	return &Aliased{base: base, aliases: copied}
}

// Get resolves any alias prefix and delegates to the base provider.
func (a *Aliased) Get(path string) (interface{}, bool) {
	if a == nil || a.base == nil {
		return nil, false
	}
	return a.base.Get(resolveAlias(path, a.aliases))
}

// resolveAlias rewrites the path when it equals an alias or begins with
// an alias followed by '.' or '['.
func resolveAlias(path string, aliases map[string]string) string {
	if path == "" || len(aliases) == 0 {
		return path
	}
	for alias, target := range aliases {
		if path == alias {
			return target
		}
		if strings.HasPrefix(path, alias) {
			rest := path[len(alias):]
			if rest[0] == '.' || rest[0] == '[' {
				return target + rest
			}
		}
	}
	return path
}
