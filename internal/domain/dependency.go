package domain

// Dependency is one uniquely named dependency discovered in the ancestor chain.
// It is immutable once collected; selection state lives with the picker.
type Dependency struct {
	// Kind is the section the dependency was declared in.
	Kind Kind `json:"kind"`

	// Name is the package name, unique within a Set.
	Name string `json:"name"`

	// Version is the version spec exactly as written in the manifest.
	Version string `json:"version"`

	// Source is the absolute path of the manifest that declared it first.
	Source string `json:"source"`
}

// Token returns the "name@version" form used on the command line.
func (d Dependency) Token() string {
	return d.Name + "@" + d.Version
}

// Set maps dependency names to the dependency that claimed the name first.
type Set map[string]Dependency

// Add inserts dep unless its name is already present.
// It reports whether the dependency was inserted.
func (s Set) Add(dep Dependency) bool {
	if _, ok := s[dep.Name]; ok {
		return false
	}
	s[dep.Name] = dep
	return true
}
