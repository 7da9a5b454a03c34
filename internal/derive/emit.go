package derive

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
	"strings"
)

// header marks files written by the generator.
const header = "// Code generated by scarab-derive; DO NOT EDIT."

// emitter accumulates generated code for one package.
type emitter struct {
	enginePath string
	engineName string
	modulePath string
	// self is set when generating inside the engine package, where engine
	// identifiers are referenced unqualified.
	self bool

	imports map[string]bool
	buf     bytes.Buffer
}

func newEmitter(enginePath, engineName, modulePath string, self bool) *emitter {
	return &emitter{
		enginePath: enginePath,
		engineName: engineName,
		modulePath: modulePath,
		self:       self,
		imports:    make(map[string]bool),
	}
}

// child returns an empty emitter sharing e's configuration. Its output is
// merged back with adopt once a type derives cleanly.
func (e *emitter) child() *emitter {
	return newEmitter(e.enginePath, e.engineName, e.modulePath, e.self)
}

func (e *emitter) adopt(c *emitter) {
	for path := range c.imports {
		e.imports[path] = true
	}
	e.buf.Write(c.buf.Bytes())
}

func (e *emitter) Printf(format string, args ...any) {
	fmt.Fprintf(&e.buf, format, args...)
}

// engine qualifies an engine identifier.
func (e *emitter) engine(name string) string {
	if e.self {
		return name
	}
	e.imports[e.enginePath] = true
	return e.engineName + "." + name
}

func (e *emitter) use(paths ...string) {
	for _, p := range paths {
		if p != "" {
			e.imports[p] = true
		}
	}
}

// file assembles and formats the generated source.
func (e *emitter) file(pkgName string) ([]byte, error) {
	var out bytes.Buffer
	out.WriteString(header)
	out.WriteString("\n\n")
	fmt.Fprintf(&out, "package %s\n\n", pkgName)

	groups := make([][]string, 3)
	for path := range e.imports {
		g := e.importGroup(path)
		groups[g] = append(groups[g], path)
	}
	if len(e.imports) > 0 {
		out.WriteString("import (\n")
		first := true
		for _, g := range groups {
			if len(g) == 0 {
				continue
			}
			if !first {
				out.WriteString("\n")
			}
			first = false
			sort.Strings(g)
			for _, path := range g {
				fmt.Fprintf(&out, "\t%q\n", path)
			}
		}
		out.WriteString(")\n\n")
	}
	out.Write(e.buf.Bytes())

	src, err := format.Source(out.Bytes())
	if err != nil {
		return out.Bytes(), fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}

// importGroup orders imports as standard library, third party, then the
// current module.
func (e *emitter) importGroup(path string) int {
	if e.modulePath != "" && (path == e.modulePath || strings.HasPrefix(path, e.modulePath+"/")) {
		return 2
	}
	first, _, _ := strings.Cut(path, "/")
	if strings.Contains(first, ".") {
		return 1
	}
	return 0
}

// enumKind writes the <Enum>Kind type and the Kind accessor.
func (e *emitter) enumKind(s *TypeShape) {
	kind := s.Name + "Kind"
	r := s.receiver()

	e.Printf("// %s names the variants of %s.\n", kind, s.Name)
	e.Printf("type %s uint8\n\n", kind)
	e.Printf("const (\n")
	e.Printf("\t%sNone %s = iota\n", kind, kind)
	for _, m := range s.Members {
		e.Printf("\t%s%s\n", kind, m.Name)
	}
	e.Printf(")\n\n")

	names := make([]string, 0, len(s.Members)+1)
	names = append(names, `"None"`)
	for _, m := range s.Members {
		names = append(names, fmt.Sprintf("%q", m.Name))
	}
	table := lowerFirst(kind) + "Names"
	e.use("fmt")
	e.Printf("var %s = [...]string{%s}\n\n", table, strings.Join(names, ", "))
	e.Printf("func (k %s) String() string {\n", kind)
	e.Printf("\tif int(k) < len(%s) {\n\t\treturn %s[k]\n\t}\n", table, table)
	e.Printf("\treturn fmt.Sprintf(\"%s(%%d)\", k)\n}\n\n", kind)

	e.Printf("// Kind reports which variant of %s is active.\n", s.Name)
	e.Printf("func (%s *%s) Kind() %s {\n", r, s.Name, kind)
	e.Printf("\tswitch {\n")
	for _, m := range s.Members {
		e.Printf("\tcase %s.%s != nil:\n\t\treturn %s%s\n", r, m.Name, kind, m.Name)
	}
	e.Printf("\t}\n\treturn %sNone\n}\n\n", kind)
}

// dispatch writes a switch over the variants of s, calling call on the
// active payload.
func (e *emitter) dispatch(s *TypeShape, call string) {
	r := s.receiver()
	e.Printf("\tswitch {\n")
	for _, m := range s.Members {
		e.Printf("\tcase %s.%s != nil:\n\t\treturn %s.%s.%s\n", r, m.Name, r, m.Name, call)
	}
	e.Printf("\t}\n")
	e.Printf("\tpanic(\"scarab: %s has no active variant\")\n", s.Name)
}

// assert writes a compile-time interface assertion for *s.
func (e *emitter) assert(s *TypeShape, iface string) {
	e.Printf("var _ %s = (*%s)(nil)\n\n", iface, s.Name)
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
