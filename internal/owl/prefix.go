package owl

import "strings"

// PrefixTable maps prefix names to namespace IRIs. Declaration order is
// preserved so a serialized document lists its prefixes the way they were
// written. The empty string is a valid prefix name (the default prefix).
type PrefixTable struct {
	namespaces map[string]string
	order      []string
}

// NewPrefixTable creates an empty prefix table.
func NewPrefixTable() *PrefixTable {
	return &PrefixTable{namespaces: make(map[string]string)}
}

// Set declares or redeclares a prefix. A redeclaration overwrites the
// namespace but keeps the prefix's original position.
func (t *PrefixTable) Set(prefix, namespace string) {
	if _, exists := t.namespaces[prefix]; !exists {
		t.order = append(t.order, prefix)
	}
	t.namespaces[prefix] = namespace
}

// Get returns the namespace declared for prefix, if any.
func (t *PrefixTable) Get(prefix string) (string, bool) {
	ns, ok := t.namespaces[prefix]
	return ns, ok
}

// Names returns the declared prefix names in declaration order.
func (t *PrefixTable) Names() []string {
	names := make([]string, len(t.order))
	copy(names, t.order)
	return names
}

// Len returns the number of declared prefixes.
func (t *PrefixTable) Len() int { return len(t.order) }

// Resolve expands an abbreviated name of the form prefix:local against
// the table. When the prefix is not declared (or the token has no colon)
// the token is returned unchanged and ok is false; the caller decides
// whether that is an error.
func (t *PrefixTable) Resolve(token string) (IRI, bool) {
	prefix, local, found := strings.Cut(token, ":")
	if !found {
		return IRI(token), false
	}
	ns, ok := t.namespaces[prefix]
	if !ok {
		return IRI(token), false
	}
	return IRI(ns + local), true
}

// Abbreviate reverses Resolve: when a declared namespace is a prefix of
// iri with a non-empty remainder, the abbreviated form and true are
// returned. The longest matching namespace wins; ties go to the earliest
// declaration.
func (t *PrefixTable) Abbreviate(iri IRI) (string, bool) {
	s := string(iri)
	bestPrefix, bestLen := "", -1
	for _, name := range t.order {
		ns := t.namespaces[name]
		if ns == "" || !strings.HasPrefix(s, ns) || len(s) == len(ns) {
			continue
		}
		local := s[len(ns):]
		if !isLocalName(local) {
			continue
		}
		if len(ns) > bestLen {
			bestPrefix, bestLen = name, len(ns)
		}
	}
	if bestLen < 0 {
		return "", false
	}
	return bestPrefix + ":" + s[bestLen:], true
}

// isLocalName reports whether s can stand after the colon of an
// abbreviated IRI without re-tokenizing differently on input.
func isLocalName(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', ')', '<', '>', '"', '=', '@', '^', '#', ':', ' ', '\t', '\r', '\n':
			return false
		}
	}
	return s != ""
}
