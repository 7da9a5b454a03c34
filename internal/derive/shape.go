package derive

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/printer"
	"go/token"
	"go/types"
	"reflect"
	"strconv"
	"strings"
)

// Kind classifies a TypeShape.
type Kind uint8

const (
	KindStruct Kind = iota // named fields
	KindTuple              // embedded fields only
	KindEnum               // //scarab:enum union of variant pointers
)

func (k Kind) String() string {
	switch k {
	case KindStruct:
		return "struct"
	case KindTuple:
		return "tuple struct"
	case KindEnum:
		return "enum"
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// TypeShape is the derivation view of one annotated type declaration.
type TypeShape struct {
	Name    string
	Kind    Kind
	Members []Member
	Derives []Capability
	Pos     token.Position

	// pkg is the type-checked package declaring the shape.
	pkg *types.Package

	// ActionType is the action argument shared by every variant when the
	// enum derives MaybeToAction, rendered for the generated file.
	ActionType    string
	ActionImports []string
}

// Member is a struct field, tuple element or enum variant. For enums Type
// is the payload type without the pointer.
type Member struct {
	Name    string
	Index   int
	Type    string
	Imports []string

	// Marks are the capabilities named in the member's struct tag.
	Marks map[Capability]bool

	// Witness holds the capabilities the member's type was resolved to
	// implement.
	Witness map[Capability]bool

	// Player marks the player variant of a RegisteredEntity enum.
	Player bool

	// Converts reports that the payload has To<Enum>() <Enum>.
	Converts bool

	// Failed reports that the payload is annotated in the same run and
	// its own derive failed, so none of its generated methods exist.
	Failed bool

	// Action is the action argument of the payload's MaybeToAction.
	Action        string
	ActionImports []string
}

func (m *Member) witnesses(c Capability) bool {
	return m.Witness[c]
}

// uncovered reports the variants of s whose payload does not witness c.
// The diagnostic names the first one and lists all of them.
func (s *TypeShape) uncovered(code Code, c Capability, lacks string) error {
	var missing []*Member
	for i := range s.Members {
		if !s.Members[i].witnesses(c) {
			missing = append(missing, &s.Members[i])
		}
	}
	if len(missing) == 0 {
		return nil
	}
	first := missing[0]
	reason := fmt.Sprintf("variant payload %s %s", first.Type, lacks)
	if first.Failed {
		reason = fmt.Sprintf("variant payload %s failed to derive, so it %s", first.Type, lacks)
	}
	d := s.diag(code, c, first.Name, reason)
	for _, m := range missing {
		d.Candidates = append(d.Candidates, m.Name)
	}
	return d
}

// derives reports whether s requests c.
func (s *TypeShape) derives(c Capability) bool {
	for _, d := range s.Derives {
		if d == c {
			return true
		}
	}
	return false
}

// receiver is the receiver name used for methods on s.
func (s *TypeShape) receiver() string {
	return strings.ToLower(s.Name[:1])
}

// directives are the scarab comment directives attached to a declaration.
type directives struct {
	derives []Capability
	enum    bool
}

func parseDirectives(groups ...*ast.CommentGroup) (directives, error) {
	var d directives
	for _, g := range groups {
		if g == nil {
			continue
		}
		for _, c := range g.List {
			rest, ok := strings.CutPrefix(c.Text, directivePrefix)
			if !ok {
				continue
			}
			verb, args := rest, ""
			if i := strings.IndexAny(rest, " \t"); i >= 0 {
				verb, args = rest[:i], rest[i:]
			}
			switch verb {
			case enumVerb:
				if strings.TrimSpace(args) != "" {
					return d, fmt.Errorf("%s%s takes no arguments", directivePrefix, enumVerb)
				}
				d.enum = true
			case deriveVerb:
				names := strings.FieldsFunc(args, func(r rune) bool {
					return r == ',' || r == ' ' || r == '\t'
				})
				if len(names) == 0 {
					return d, fmt.Errorf("%s%s names no capabilities", directivePrefix, deriveVerb)
				}
				for _, name := range names {
					capability, err := parseCapability(name)
					if err != nil {
						return d, err
					}
					d.derives = appendUnique(d.derives, capability)
				}
			default:
				return d, fmt.Errorf("unknown directive %q", c.Text)
			}
		}
	}
	return d, nil
}

func appendUnique(list []Capability, c Capability) []Capability {
	for _, have := range list {
		if have == c {
			return list
		}
	}
	return append(list, c)
}

// shapeOf extracts the shape of an annotated declaration from syntax alone.
// Witnesses are filled in later by the resolver.
func shapeOf(fset *token.FileSet, spec *ast.TypeSpec, d directives) (*TypeShape, error) {
	s := &TypeShape{
		Name:    spec.Name.Name,
		Derives: d.derives,
		Pos:     fset.Position(spec.Name.Pos()),
	}
	if spec.TypeParams != nil && len(spec.TypeParams.List) > 0 {
		return nil, s.diag(CodeUnsupportedShape, "", "", "types with type parameters cannot be derived")
	}
	if spec.Assign.IsValid() {
		return nil, s.diag(CodeUnsupportedShape, "", "", "type aliases cannot be derived")
	}
	st, ok := spec.Type.(*ast.StructType)
	if !ok {
		return nil, s.diag(CodeUnsupportedShape, "", "", fmt.Sprintf("%s is not a struct", exprString(fset, spec.Type)))
	}
	if st.Fields == nil || len(st.Fields.List) == 0 {
		return nil, s.diag(CodeUnsupportedShape, "", "", "empty structs have no members to derive from")
	}

	s.Kind = KindTuple
	if d.enum {
		s.Kind = KindEnum
	}
	for _, field := range st.Fields.List {
		marks, player, err := parseMarks(field.Tag)
		if err != nil {
			return nil, s.diag(CodeUnknownDirective, "", fieldLabel(fset, field), err.Error())
		}
		typeExpr := field.Type
		if s.Kind == KindEnum {
			star, ok := field.Type.(*ast.StarExpr)
			if !ok {
				return nil, s.diag(CodeUnsupportedShape, "", fieldLabel(fset, field), "enum variants must be pointers")
			}
			typeExpr = star.X
		}
		names := make([]string, 0, len(field.Names))
		for _, n := range field.Names {
			names = append(names, n.Name)
		}
		if len(names) == 0 {
			names = append(names, embeddedName(field.Type))
		} else if s.Kind == KindTuple {
			s.Kind = KindStruct
		}
		for _, name := range names {
			if s.Kind == KindEnum && (name == "None" || name == "Kind") {
				return nil, s.diag(CodeUnsupportedShape, "", name, fmt.Sprintf("variant name %s is reserved", name))
			}
			s.Members = append(s.Members, Member{
				Name:    name,
				Index:   len(s.Members),
				Type:    exprString(fset, typeExpr),
				Marks:   marks,
				Witness: make(map[Capability]bool),
				Player:  player,
			})
		}
	}
	return s, nil
}

func parseMarks(tag *ast.BasicLit) (map[Capability]bool, bool, error) {
	marks := make(map[Capability]bool)
	if tag == nil {
		return marks, false, nil
	}
	raw, err := strconv.Unquote(tag.Value)
	if err != nil {
		return marks, false, nil
	}
	value, ok := reflect.StructTag(raw).Lookup(tagKey)
	if !ok {
		return marks, false, nil
	}
	player := false
	for _, m := range strings.Split(value, ",") {
		m = strings.TrimSpace(m)
		if m == "" {
			continue
		}
		if m == markPlayer {
			player = true
			continue
		}
		c, ok := markCapability(m)
		if !ok {
			return nil, false, fmt.Errorf("unknown %s mark %q", tagKey, m)
		}
		marks[c] = true
	}
	return marks, player, nil
}

// embeddedName is the implicit field name of an embedded type.
func embeddedName(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		return embeddedName(t.X)
	case *ast.SelectorExpr:
		return t.Sel.Name
	case *ast.IndexExpr:
		return embeddedName(t.X)
	case *ast.IndexListExpr:
		return embeddedName(t.X)
	}
	return ""
}

func fieldLabel(fset *token.FileSet, field *ast.Field) string {
	if len(field.Names) > 0 {
		return field.Names[0].Name
	}
	return exprString(fset, field.Type)
}

func exprString(fset *token.FileSet, expr ast.Expr) string {
	var buf bytes.Buffer
	_ = printer.Fprint(&buf, fset, expr)
	return buf.String()
}
