package derive

import (
	"errors"
	"go/ast"
	"go/parser"
	"go/token"
	"testing"
)

// parseShape inspects the single type declaration in src.
func parseShape(t *testing.T, src string) (*TypeShape, error) {
	t.Helper()
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "shape.go", "package p\n\n"+src, parser.ParseComments)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	for _, decl := range f.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		ts := gd.Specs[0].(*ast.TypeSpec)
		d, err := parseDirectives(gd.Doc, ts.Doc)
		if err != nil {
			return nil, err
		}
		return shapeOf(fset, ts, d)
	}
	t.Fatal("no type declaration in source")
	return nil, nil
}

func TestShapeKinds(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		kind    Kind
		members []string
		types   []string
	}{
		{
			name:    "struct",
			src:     "//scarab:derive HasUuid\ntype T struct {\n\tid ID `scarab:\"has_uuid\"`\n\tname string\n}",
			kind:    KindStruct,
			members: []string{"id", "name"},
			types:   []string{"ID", "string"},
		},
		{
			name:    "grouped fields",
			src:     "//scarab:derive HasUuid\ntype T struct {\n\ta, b int\n}",
			kind:    KindStruct,
			members: []string{"a", "b"},
			types:   []string{"int", "int"},
		},
		{
			name:    "tuple",
			src:     "//scarab:derive HasBox\ntype T struct {\n\tengine.ID\n\t*engine.PhysBox `scarab:\"has_box\"`\n}",
			kind:    KindTuple,
			members: []string{"ID", "PhysBox"},
			types:   []string{"engine.ID", "*engine.PhysBox"},
		},
		{
			name:    "mixed embedded and named",
			src:     "//scarab:derive HasBox\ntype T struct {\n\tengine.ID\n\tbox PhysBox\n}",
			kind:    KindStruct,
			members: []string{"ID", "box"},
			types:   []string{"engine.ID", "PhysBox"},
		},
		{
			name:    "enum",
			src:     "//scarab:enum\n//scarab:derive HasBox\ntype T struct {\n\tCircle *Circle\n\tSquare *geo.Square\n}",
			kind:    KindEnum,
			members: []string{"Circle", "Square"},
			types:   []string{"Circle", "geo.Square"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := parseShape(t, tt.src)
			if err != nil {
				t.Fatalf("shapeOf: %v", err)
			}
			if s.Kind != tt.kind {
				t.Errorf("kind = %s; want %s", s.Kind, tt.kind)
			}
			if len(s.Members) != len(tt.members) {
				t.Fatalf("got %d members; want %d", len(s.Members), len(tt.members))
			}
			for i, m := range s.Members {
				if m.Name != tt.members[i] || m.Type != tt.types[i] || m.Index != i {
					t.Errorf("member %d = %s %s (index %d); want %s %s", i, m.Name, m.Type, m.Index, tt.members[i], tt.types[i])
				}
			}
		})
	}
}

func TestShapeMarks(t *testing.T) {
	s, err := parseShape(t, "//scarab:derive HasUuid, HasBox\ntype T struct {\n\tentity Entity `json:\"-\" scarab:\"has_uuid, has_box\"`\n\tother int `json:\"other\"`\n}")
	if err != nil {
		t.Fatalf("shapeOf: %v", err)
	}
	if !s.Members[0].Marks[HasUuid] || !s.Members[0].Marks[HasBox] {
		t.Errorf("entity marks = %v; want has_uuid and has_box", s.Members[0].Marks)
	}
	if s.Members[0].Marks[HasEntity] {
		t.Error("entity should not be marked has_entity")
	}
	if len(s.Members[1].Marks) != 0 {
		t.Errorf("other marks = %v; want none", s.Members[1].Marks)
	}
}

func TestShapePlayerMark(t *testing.T) {
	s, err := parseShape(t, "//scarab:enum\n//scarab:derive RegisteredEntity\ntype T struct {\n\tHero *Hero `scarab:\"player\"`\n\tMob *Mob\n}")
	if err != nil {
		t.Fatalf("shapeOf: %v", err)
	}
	if !s.Members[0].Player || s.Members[1].Player {
		t.Errorf("player marks = %v, %v; want true, false", s.Members[0].Player, s.Members[1].Player)
	}
}

func TestShapeDirectives(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []Capability
	}{
		{"comma separated", "//scarab:derive HasUuid, HasBox\ntype T struct{ a int }", []Capability{HasUuid, HasBox}},
		{"space separated", "//scarab:derive HasBox HasUuid\ntype T struct{ a int }", []Capability{HasBox, HasUuid}},
		{"case insensitive", "//scarab:derive hasuuid\ntype T struct{ a int }", []Capability{HasUuid}},
		{"health and solidity", "//scarab:derive HasSolidity, hashealth\ntype T struct{ a int }", []Capability{HasSolidity, HasHealth}},
		{"input binding alias", "//scarab:enum\n//scarab:derive InputBinding\ntype T struct{ a *int }", []Capability{MaybeToAction}},
		{"repeated", "//scarab:derive HasUuid\n//scarab:derive HasUuid, HasEntity\ntype T struct{ a int }", []Capability{HasUuid, HasEntity}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := parseShape(t, tt.src)
			if err != nil {
				t.Fatalf("shapeOf: %v", err)
			}
			if len(s.Derives) != len(tt.want) {
				t.Fatalf("derives = %v; want %v", s.Derives, tt.want)
			}
			for i := range tt.want {
				if s.Derives[i] != tt.want[i] {
					t.Errorf("derives = %v; want %v", s.Derives, tt.want)
				}
			}
		})
	}
}

func TestShapeUnknownCapability(t *testing.T) {
	_, err := parseShape(t, "//scarab:derive HasColor\ntype T struct{ a int }")
	if err == nil {
		t.Fatal("expected an error for an unknown capability")
	}
}

func TestShapeMalformedDirectives(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"misspelled verb", "//scarab:derives HasUuid\ntype T struct{ a int }"},
		{"bare derive", "//scarab:derive\ntype T struct{ a int }"},
		{"derive with only separators", "//scarab:derive , ,\ntype T struct{ a int }"},
		{"enum with arguments", "//scarab:enum HasBox\n//scarab:derive HasBox\ntype T struct{ a *int }"},
		{"empty verb", "//scarab:\ntype T struct{ a int }"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseShape(t, tt.src); err == nil {
				t.Fatal("expected an error for a malformed directive")
			}
		})
	}
}

func TestShapeIgnoresOtherComments(t *testing.T) {
	s, err := parseShape(t, "// T is a //scarab:derive target.\n//go:generate true\n//scarab:derive\tHasUuid\ntype T struct{ a int }")
	if err != nil {
		t.Fatalf("shapeOf: %v", err)
	}
	if len(s.Derives) != 1 || s.Derives[0] != HasUuid {
		t.Errorf("derives = %v; want [HasUuid]", s.Derives)
	}
}

func TestShapeErrors(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		code   Code
		member string
	}{
		{"not a struct", "//scarab:derive HasUuid\ntype T int", CodeUnsupportedShape, ""},
		{"unit struct", "//scarab:derive HasUuid\ntype T struct{}", CodeUnsupportedShape, ""},
		{"type parameters", "//scarab:derive HasUuid\ntype T[X any] struct{ x X }", CodeUnsupportedShape, ""},
		{"alias", "//scarab:derive HasUuid\ntype T = U", CodeUnsupportedShape, ""},
		{"value variant", "//scarab:enum\n//scarab:derive HasBox\ntype T struct {\n\tCircle Circle\n}", CodeUnsupportedShape, "Circle"},
		{"reserved None", "//scarab:enum\n//scarab:derive HasBox\ntype T struct {\n\tNone *Circle\n}", CodeUnsupportedShape, "None"},
		{"reserved Kind", "//scarab:enum\n//scarab:derive HasBox\ntype T struct {\n\tKind *Circle\n}", CodeUnsupportedShape, "Kind"},
		{"unknown mark", "//scarab:derive HasUuid\ntype T struct {\n\tid ID `scarab:\"has_color\"`\n}", CodeUnknownDirective, "id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseShape(t, tt.src)
			if err == nil {
				t.Fatal("expected an error")
			}
			var d *Diagnostic
			if !errors.As(err, &d) {
				t.Fatalf("error %v is not a *Diagnostic", err)
			}
			if d.Code != tt.code {
				t.Errorf("code = %s; want %s", d.Code, tt.code)
			}
			if d.Member != tt.member {
				t.Errorf("member = %q; want %q", d.Member, tt.member)
			}
			if d.Type != "T" {
				t.Errorf("type = %q; want T", d.Type)
			}
			if !d.Pos.IsValid() {
				t.Error("diagnostic has no position")
			}
		})
	}
}

func TestDiagnosticIs(t *testing.T) {
	d := &Diagnostic{Code: CodeNoBoxSource, Type: "T", Capability: HasBox, Reason: "nothing tagged"}
	if !errors.Is(d, &Diagnostic{Code: CodeNoBoxSource}) {
		t.Error("errors.Is should match on code")
	}
	if errors.Is(d, &Diagnostic{Code: CodeNoUuidSource}) {
		t.Error("errors.Is should not match a different code")
	}
	want := "NO_BOX_SOURCE: cannot derive HasBox for T: nothing tagged"
	if got := d.Error(); got != want {
		t.Errorf("Error() = %q; want %q", got, want)
	}
}
