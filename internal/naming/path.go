package naming

import "strings"

// Path is an ordered sequence of Names, e.g. "morphir/sdk".
type Path struct {
	names []Name
}

// ParsePath splits s on "/" and parses every segment as a Name.
// Segments that contain no word are dropped.
func ParsePath(s string) Path {
	var names []Name
	for _, seg := range strings.Split(s, "/") {
		n := ParseName(seg)
		if n.IsEmpty() {
			continue
		}
		names = append(names, n)
	}
	return Path{names: names}
}

// PathOf builds a Path from Names in order.
func PathOf(names ...Name) Path {
	if len(names) == 0 {
		return Path{}
	}
	return Path{names: append([]Name(nil), names...)}
}

// Names returns the segments of the Path.
func (p Path) Names() []Name {
	if len(p.names) == 0 {
		return nil
	}
	return append([]Name(nil), p.names...)
}

// Len returns the number of segments.
func (p Path) Len() int { return len(p.names) }

// IsEmpty reports whether the Path has no segments.
func (p Path) IsEmpty() bool { return len(p.names) == 0 }

// Equal reports segment-wise equality. Order matters.
func (p Path) Equal(other Path) bool {
	if len(p.names) != len(other.names) {
		return false
	}
	for i := range p.names {
		if !p.names[i].Equal(other.names[i]) {
			return false
		}
	}
	return true
}

// IsPrefixOf reports whether p is a leading subsequence of other.
func (p Path) IsPrefixOf(other Path) bool {
	if len(p.names) > len(other.names) {
		return false
	}
	for i := range p.names {
		if !p.names[i].Equal(other.names[i]) {
			return false
		}
	}
	return true
}

// String returns the canonical "/"-joined kebab-case form.
func (p Path) String() string {
	parts := make([]string, len(p.names))
	for i, n := range p.names {
		parts[i] = n.String()
	}
	return strings.Join(parts, "/")
}

// PackageName is a Path naming a package.
type PackageName struct {
	path Path
}

// NewPackageName wraps p as a PackageName.
func NewPackageName(p Path) PackageName { return PackageName{path: p} }

// ParsePackageName parses the canonical string form, e.g. "morphir/sdk".
func ParsePackageName(s string) PackageName { return PackageName{path: ParsePath(s)} }

// Path returns the underlying Path.
func (p PackageName) Path() Path { return p.path }

// Equal reports whether two package names are equal.
func (p PackageName) Equal(other PackageName) bool { return p.path.Equal(other.path) }

// String returns the canonical string form.
func (p PackageName) String() string { return p.path.String() }

// ModuleName is a Path naming a module inside a package.
type ModuleName struct {
	path Path
}

// NewModuleName wraps p as a ModuleName.
func NewModuleName(p Path) ModuleName { return ModuleName{path: p} }

// ParseModuleName parses the canonical string form, e.g. "domain/users".
func ParseModuleName(s string) ModuleName { return ModuleName{path: ParsePath(s)} }

// Path returns the underlying Path.
func (m ModuleName) Path() Path { return m.path }

// Equal reports whether two module names are equal.
func (m ModuleName) Equal(other ModuleName) bool { return m.path.Equal(other.path) }

// String returns the canonical string form.
func (m ModuleName) String() string { return m.path.String() }
