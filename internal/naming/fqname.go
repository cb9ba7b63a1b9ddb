package naming

import "strings"

// FQName is a fully qualified reference: package path, module path and
// local name.
//
// String always renders the Classic form, whichever form was parsed; use
// CanonicalString to get "pkg:mod#local" back.
type FQName struct {
	pkg   Path
	mod   Path
	local Name
}

// NewFQName builds an FQName from its parts.
func NewFQName(pkg, mod Path, local Name) FQName {
	return FQName{pkg: pkg, mod: mod, local: local}
}

// FQNameOf parses each part from its canonical string form.
//
//	FQNameOf("morphir/sdk", "basics", "int")
func FQNameOf(pkg, mod, local string) FQName {
	return FQName{pkg: ParsePath(pkg), mod: ParsePath(mod), local: ParseName(local)}
}

// ParseFQName parses either canonical form:
//
//	"acme/finance:ledger#balance"  (V4)
//	"acme/finance:ledger:balance"  (Classic)
//
// Returns false when s does not have exactly three parts or the local name
// is empty.
func ParseFQName(s string) (FQName, bool) {
	var pkg, mod, local string
	if strings.Contains(s, "#") {
		head, tail, _ := strings.Cut(s, "#")
		if strings.ContainsAny(tail, "#:") {
			return FQName{}, false
		}
		parts := strings.Split(head, ":")
		if len(parts) != 2 {
			return FQName{}, false
		}
		pkg, mod, local = parts[0], parts[1], tail
	} else {
		parts := strings.Split(s, ":")
		if len(parts) != 3 {
			return FQName{}, false
		}
		pkg, mod, local = parts[0], parts[1], parts[2]
	}
	fq := FQNameOf(pkg, mod, local)
	if fq.local.IsEmpty() {
		return FQName{}, false
	}
	return fq, true
}

// ParseFQNameIn parses a module-relative reference ("mod:local" or
// "mod#local") against pkg. Fully qualified input is accepted as well.
func ParseFQNameIn(s string, pkg PackageName) (FQName, bool) {
	if fq, ok := ParseFQName(s); ok {
		return fq, true
	}
	q, ok := ParseQName(strings.Replace(s, "#", ":", 1))
	if !ok {
		return FQName{}, false
	}
	return FQName{pkg: pkg.Path(), mod: q.mod, local: q.local}, true
}

// PackagePath returns the package part.
func (f FQName) PackagePath() Path { return f.pkg }

// ModulePath returns the module part.
func (f FQName) ModulePath() Path { return f.mod }

// LocalName returns the local part.
func (f FQName) LocalName() Name { return f.local }

// QName drops the package part.
func (f FQName) QName() QName { return QName{mod: f.mod, local: f.local} }

// Equal reports part-wise equality.
func (f FQName) Equal(other FQName) bool {
	return f.pkg.Equal(other.pkg) && f.mod.Equal(other.mod) && f.local.Equal(other.local)
}

// String returns the Classic canonical form "pkg:mod:local".
func (f FQName) String() string {
	return f.pkg.String() + ":" + f.mod.String() + ":" + f.local.String()
}

// CanonicalString returns the V4 canonical form "pkg:mod#local".
func (f FQName) CanonicalString() string {
	return f.pkg.String() + ":" + f.mod.String() + "#" + f.local.String()
}

// QName is a module-qualified reference without a package.
type QName struct {
	mod   Path
	local Name
}

// NewQName builds a QName from its parts.
func NewQName(mod Path, local Name) QName { return QName{mod: mod, local: local} }

// ParseQName parses "mod/path:local".
func ParseQName(s string) (QName, bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return QName{}, false
	}
	q := QName{mod: ParsePath(parts[0]), local: ParseName(parts[1])}
	if q.local.IsEmpty() {
		return QName{}, false
	}
	return q, true
}

// ModulePath returns the module part.
func (q QName) ModulePath() Path { return q.mod }

// LocalName returns the local part.
func (q QName) LocalName() Name { return q.local }

// Equal reports part-wise equality.
func (q QName) Equal(other QName) bool {
	return q.mod.Equal(other.mod) && q.local.Equal(other.local)
}

// String returns "mod:local".
func (q QName) String() string { return q.mod.String() + ":" + q.local.String() }
