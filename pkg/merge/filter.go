// File: pkg/merge/filter.go
package merge

// NameSet is a set of exact file or directory basenames.
type NameSet map[string]struct{}

// NewNameSet builds a NameSet from a list of names.
func NewNameSet(names ...string) NameSet {
	set := make(NameSet, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

// Contains reports whether name is a member of the set.
func (s NameSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// FilterIgnoredFiles returns names minus any entry whose basename exactly
// matches a member of ignored. Order of survivors is preserved and the
// operation is idempotent.
func FilterIgnoredFiles(names []string, ignored NameSet) []string {
	return filterNames(names, ignored)
}

// FilterIgnoredDirs returns names minus any entry whose basename exactly
// matches a member of ignored, with the same ordering and idempotence
// guarantees as FilterIgnoredFiles.
func FilterIgnoredDirs(names []string, ignored NameSet) []string {
	return filterNames(names, ignored)
}

// filterNames keeps entries not present in ignored. Matching is exact and
// case-sensitive: ignoring "build" does not prune "build-tools".
func filterNames(names []string, ignored NameSet) []string {
	kept := make([]string, 0, len(names))
	for _, name := range names {
		if !ignored.Contains(name) {
			kept = append(kept, name)
		}
	}
	return kept
}
