package derive

import (
	"fmt"
	"go/types"
)

// engineAPI is the set of capability contracts exported by the engine
// package.
type engineAPI struct {
	pkg    *types.Package
	ifaces map[Capability]*types.Interface
	// event is the parameter type of InputBinding.MaybeToAction.
	event types.Type
}

func newEngineAPI(pkg *types.Package) (*engineAPI, error) {
	api := &engineAPI{pkg: pkg, ifaces: make(map[Capability]*types.Interface)}
	for _, c := range []Capability{HasUuid, HasBox, HasEntity, HasHealth, HasSolidity} {
		iface, err := lookupInterface(pkg, c.iface())
		if err != nil {
			return nil, err
		}
		api.ifaces[c] = iface
	}
	binding, err := lookupInterface(pkg, MaybeToAction.iface())
	if err != nil {
		return nil, err
	}
	for i := 0; i < binding.NumMethods(); i++ {
		m := binding.Method(i)
		if m.Name() != MaybeToAction.method() {
			continue
		}
		sig := m.Type().(*types.Signature)
		if sig.Params().Len() == 1 {
			api.event = sig.Params().At(0).Type()
		}
	}
	if api.event == nil {
		return nil, fmt.Errorf("engine %s: InputBinding has no MaybeToAction(event) method", pkg.Path())
	}
	return api, nil
}

func lookupInterface(pkg *types.Package, name string) (*types.Interface, error) {
	obj := pkg.Scope().Lookup(name)
	if obj == nil {
		return nil, fmt.Errorf("engine %s: %s not found", pkg.Path(), name)
	}
	iface, ok := obj.Type().Underlying().(*types.Interface)
	if !ok {
		return nil, fmt.Errorf("engine %s: %s is not an interface", pkg.Path(), name)
	}
	return iface, nil
}

// resolver fills in member witnesses using the type-checked packages. One
// resolver serves every target of a run so a payload may rely on a
// capability derived for it in another target package.
type resolver struct {
	engine *engineAPI
	shapes map[string]*TypeShape

	done      map[*TypeShape]error
	resolving map[*TypeShape]bool

	// clean caches whether a shape derives without errors. Only clean
	// shapes witness capabilities for other shapes.
	clean    map[*TypeShape]bool
	checking map[*TypeShape]bool
	scratch  *emitter
}

func newResolver(engine *engineAPI, shapes []*TypeShape) *resolver {
	r := &resolver{
		engine:    engine,
		shapes:    make(map[string]*TypeShape, len(shapes)),
		done:      make(map[*TypeShape]error),
		resolving: make(map[*TypeShape]bool),
		clean:     make(map[*TypeShape]bool),
		checking:  make(map[*TypeShape]bool),
		scratch:   newEmitter("", "", "", true),
	}
	for _, s := range shapes {
		if s.pkg != nil {
			r.shapes[s.pkg.Path()+"."+s.Name] = s
		}
	}
	return r
}

func (r *resolver) resolve(s *TypeShape) error {
	if err, ok := r.done[s]; ok {
		return err
	}
	if r.resolving[s] {
		return nil
	}
	r.resolving[s] = true
	err := r.witness(s)
	delete(r.resolving, s)
	r.done[s] = err
	return err
}

func (r *resolver) witness(s *TypeShape) error {
	if s.pkg == nil {
		return s.diag(CodeUnsupportedShape, "", "", "declaration was not type-checked")
	}
	obj := s.pkg.Scope().Lookup(s.Name)
	if obj == nil {
		return s.diag(CodeUnsupportedShape, "", "", "declaration is not at package scope")
	}
	st, ok := obj.Type().Underlying().(*types.Struct)
	if !ok || st.NumFields() != len(s.Members) {
		return s.diag(CodeUnsupportedShape, "", "", "type checker disagrees with the declared struct")
	}
	enumType := obj.Type()

	for i := range s.Members {
		m := &s.Members[i]
		t := st.Field(i).Type()
		if s.Kind == KindEnum {
			ptr, ok := t.(*types.Pointer)
			if !ok {
				return s.diag(CodeUnsupportedShape, "", m.Name, "enum variants must be pointers")
			}
			t = ptr.Elem()
		}
		m.Type, m.Imports = render(s.pkg, t)

		if s.Kind != KindEnum {
			for _, c := range Capabilities {
				if !m.Marks[c] {
					continue
				}
				if !r.implements(t, c) {
					reason := fmt.Sprintf("tagged %s but %s does not implement %s", c.mark(), m.Type, c.iface())
					if r.failed(t) {
						reason = fmt.Sprintf("tagged %s but the derive of %s failed", c.mark(), m.Type)
					}
					return s.diag(CodeUnsatisfiedWitness, c, m.Name, reason)
				}
				m.Witness[c] = true
			}
			continue
		}

		m.Failed = r.failed(t)
		if r.implements(t, HasBox) {
			m.Witness[HasBox] = true
		}
		if r.implements(t, HasEntity) {
			m.Witness[RegisteredEntity] = true
		}
		if action, imports, ok := r.action(s.pkg, t); ok {
			m.Witness[MaybeToAction] = true
			m.Action = action
			m.ActionImports = imports
		}
		if m.Player {
			m.Converts = converts(s.pkg, t, "To"+s.Name, enumType)
		}
	}
	return nil
}

// implements reports whether t, *t, or an annotated type that cleanly
// derives c in the same run satisfies the engine interface for c.
func (r *resolver) implements(t types.Type, c Capability) bool {
	iface := r.engine.ifaces[c]
	if iface == nil {
		return false
	}
	if types.Implements(t, iface) {
		return true
	}
	if _, isPtr := t.(*types.Pointer); !isPtr && types.Implements(types.NewPointer(t), iface) {
		return true
	}
	s := r.pending(t)
	return s != nil && s.derives(c) && r.derivesCleanly(s)
}

// failed reports whether t is annotated in this run and its derive fails.
func (r *resolver) failed(t types.Type) bool {
	s := r.pending(t)
	return s != nil && !r.derivesCleanly(s)
}

// derivesCleanly runs every deriver of s into a scratch emitter and
// reports whether all of them succeed. A shape already being resolved or
// checked is on a cycle and is assumed clean.
func (r *resolver) derivesCleanly(s *TypeShape) bool {
	if ok, done := r.clean[s]; done {
		return ok
	}
	if r.resolving[s] || r.checking[s] {
		return true
	}
	r.checking[s] = true
	_, errs := deriveShape(r.scratch, r, s)
	delete(r.checking, s)
	r.clean[s] = len(errs) == 0
	return r.clean[s]
}

// action returns the action argument of t's MaybeToAction method, rendered
// for a file in package from.
func (r *resolver) action(from *types.Package, t types.Type) (string, []string, bool) {
	recv := t
	if _, isPtr := t.(*types.Pointer); !isPtr {
		recv = types.NewPointer(t)
	}
	obj, _, _ := types.LookupFieldOrMethod(recv, true, from, MaybeToAction.method())
	if fn, ok := obj.(*types.Func); ok {
		sig := fn.Type().(*types.Signature)
		if sig.Params().Len() != 1 || !types.Identical(sig.Params().At(0).Type(), r.engine.event) {
			return "", nil, false
		}
		if sig.Results().Len() != 2 || !types.Identical(sig.Results().At(1).Type(), types.Typ[types.Bool]) {
			return "", nil, false
		}
		action, imports := render(from, sig.Results().At(0).Type())
		return action, imports, true
	}

	// A nested binding enum generated in the same package has no method
	// yet; its action is the one its variants agree on.
	s := r.pending(t)
	if s == nil || s.pkg != from || !s.derives(MaybeToAction) || s.Kind != KindEnum {
		return "", nil, false
	}
	if !r.derivesCleanly(s) {
		return "", nil, false
	}
	if err := r.resolve(s); err != nil || len(s.Members) == 0 {
		return "", nil, false
	}
	first := s.Members[0]
	if !first.Witness[MaybeToAction] {
		return "", nil, false
	}
	return first.Action, first.ActionImports, true
}

// pending returns the annotated shape declaring t, if any.
func (r *resolver) pending(t types.Type) *TypeShape {
	if ptr, ok := t.(*types.Pointer); ok {
		t = ptr.Elem()
	}
	named, ok := t.(*types.Named)
	if !ok || named.Obj().Pkg() == nil {
		return nil
	}
	return r.shapes[named.Obj().Pkg().Path()+"."+named.Obj().Name()]
}

// converts reports whether *t has a method name() returning want.
func converts(from *types.Package, t types.Type, name string, want types.Type) bool {
	obj, _, _ := types.LookupFieldOrMethod(types.NewPointer(t), true, from, name)
	fn, ok := obj.(*types.Func)
	if !ok {
		return false
	}
	sig := fn.Type().(*types.Signature)
	return sig.Params().Len() == 0 && sig.Results().Len() == 1 &&
		types.Identical(sig.Results().At(0).Type(), want)
}

// render prints t as it must appear in a file of package from and returns
// the imports it needs.
func render(from *types.Package, t types.Type) (string, []string) {
	var imports []string
	s := types.TypeString(t, func(p *types.Package) string {
		if p == from {
			return ""
		}
		imports = append(imports, p.Path())
		return p.Name()
	})
	return s, imports
}
