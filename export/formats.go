package export

import (
	"fmt"
	"sort"
	"strings"
)

// toTurtle serializes the statements to Turtle. Prefixes are written
// first; subjects are not grouped, which keeps the writer simple and
// the output line-diffable.
func (e *Exporter) toTurtle(triples []triple) string {
	var sb strings.Builder

	prefixes := make([]string, 0, len(e.prefixes))
	for p := range e.prefixes {
		prefixes = append(prefixes, p)
	}
	sort.Strings(prefixes)
	for _, p := range prefixes {
		sb.WriteString(fmt.Sprintf("@prefix %s: <%s> .\n", p, e.prefixes[p]))
	}
	sb.WriteString("\n")

	for _, t := range triples {
		sb.WriteString(fmt.Sprintf("%s %s %s .\n",
			e.turtleTerm(t.s), e.turtleTerm(t.p), e.turtleTerm(t.o)))
	}
	return sb.String()
}

// turtleTerm renders a term, compacting IRIs against the prefix table.
func (e *Exporter) turtleTerm(t term) string {
	switch {
	case t.blank != "":
		return "_:" + t.blank
	case t.iri != "":
		for prefix, ns := range e.prefixes {
			if rest, ok := strings.CutPrefix(t.iri, ns); ok && isLocalName(rest) {
				return prefix + ":" + rest
			}
		}
		return "<" + t.iri + ">"
	default:
		return literal(t)
	}
}

// isLocalName reports whether a suffix is safe to render as the local
// part of a prefixed name.
func isLocalName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
		default:
			return false
		}
	}
	return true
}

// toNTriples serializes the statements to N-Triples, one full
// statement per line, no prefixes.
func (e *Exporter) toNTriples(triples []triple) string {
	var sb strings.Builder
	for _, t := range triples {
		sb.WriteString(fmt.Sprintf("%s %s %s .\n",
			ntriplesTerm(t.s), ntriplesTerm(t.p), ntriplesTerm(t.o)))
	}
	return sb.String()
}

func ntriplesTerm(t term) string {
	switch {
	case t.blank != "":
		return "_:" + t.blank
	case t.iri != "":
		return "<" + t.iri + ">"
	default:
		return literal(t)
	}
}

func literal(t term) string {
	out := "\"" + escapeString(t.lit) + "\""
	if t.lang != "" {
		out += "@" + t.lang
	}
	return out
}

// toJSONLD serializes the statements as a flat JSON-LD graph: one node
// object per subject, predicates as expanded IRIs.
func (e *Exporter) toJSONLD(triples []triple) string {
	type object struct {
		id   string // IRI or blank-node reference
		lit  string
		lang string
		isID bool
	}

	subjects := make([]string, 0)
	seen := make(map[string]bool)
	props := make(map[string]map[string][]object)

	key := func(t term) string {
		if t.blank != "" {
			return "_:" + t.blank
		}
		return t.iri
	}

	for _, t := range triples {
		s := key(t.s)
		if !seen[s] {
			seen[s] = true
			subjects = append(subjects, s)
		}
		if props[s] == nil {
			props[s] = make(map[string][]object)
		}
		var o object
		if t.o.lit != "" || (t.o.iri == "" && t.o.blank == "") {
			o = object{lit: t.o.lit, lang: t.o.lang}
		} else {
			o = object{id: key(t.o), isID: true}
		}
		props[s][t.p.iri] = append(props[s][t.p.iri], o)
	}

	var sb strings.Builder
	sb.WriteString("{\n")
	sb.WriteString("  \"@context\": {\n")
	prefixes := make([]string, 0, len(e.prefixes))
	for p := range e.prefixes {
		prefixes = append(prefixes, p)
	}
	sort.Strings(prefixes)
	for i, p := range prefixes {
		sb.WriteString(fmt.Sprintf("    %q: %q", p, e.prefixes[p]))
		if i < len(prefixes)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("  },\n")
	sb.WriteString("  \"@graph\": [\n")

	for i, s := range subjects {
		sb.WriteString("    {\n")
		sb.WriteString(fmt.Sprintf("      \"@id\": %q", s))

		predicates := make([]string, 0, len(props[s]))
		for p := range props[s] {
			predicates = append(predicates, p)
		}
		sort.Strings(predicates)
		for _, p := range predicates {
			sb.WriteString(",\n")
			sb.WriteString(fmt.Sprintf("      %q: [", p))
			for j, o := range props[s][p] {
				if j > 0 {
					sb.WriteString(", ")
				}
				switch {
				case o.isID:
					sb.WriteString(fmt.Sprintf("{\"@id\": %q}", o.id))
				case o.lang != "":
					sb.WriteString(fmt.Sprintf("{\"@value\": %q, \"@language\": %q}", o.lit, o.lang))
				default:
					sb.WriteString(fmt.Sprintf("%q", o.lit))
				}
			}
			sb.WriteString("]")
		}
		sb.WriteString("\n    }")
		if i < len(subjects)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}

	sb.WriteString("  ]\n")
	sb.WriteString("}\n")
	return sb.String()
}

// escapeString escapes special characters for RDF serialization.
func escapeString(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}
