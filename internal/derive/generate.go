package derive

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"

	"golang.org/x/tools/go/packages"
)

// DefaultOutput is the file written next to each target package.
const DefaultOutput = "scarab_derive.go"

// DefaultEnginePath is the import path of the engine whose capabilities are
// derived.
const DefaultEnginePath = "scarab/internal/engine"

// Options configures a generator run.
type Options struct {
	// Patterns are the go/packages patterns of the target packages.
	Patterns []string
	// Dir is the working directory for pattern resolution.
	Dir string
	// Output is the file name written in each target package directory.
	Output     string
	EnginePath string
	Tags       []string
	// DryRun skips writing files. The sources are still returned.
	DryRun bool
	Logger *slog.Logger
}

// File is the generated source for one package.
type File struct {
	Package string
	Path    string
	Types   []string
	Source  []byte
}

// Result is the outcome of a run. Types with diagnostics are absent from
// the generated files.
type Result struct {
	Files       []File
	Diagnostics []*Diagnostic
}

type deriveFunc func(e *emitter, s *TypeShape) error

var derivers = map[Capability]deriveFunc{
	HasUuid:          deriveHasUuid,
	HasEntity:        deriveHasEntity,
	HasBox:           deriveHasBox,
	HasHealth:        deriveHasHealth,
	HasSolidity:      deriveHasSolidity,
	RegisteredEntity: deriveRegisteredEntity,
	MaybeToAction:    deriveMaybeToAction,
}

// Run loads the target packages and writes the derived capability methods
// of every annotated type. The returned error covers infrastructure
// failures only; derivation failures are reported in Result.Diagnostics.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if len(opts.Patterns) == 0 {
		opts.Patterns = []string{"."}
	}
	if opts.Output == "" {
		opts.Output = DefaultOutput
	}
	if filepath.Base(opts.Output) != opts.Output {
		return nil, fmt.Errorf("output %q must be a file name", opts.Output)
	}
	if opts.EnginePath == "" {
		opts.EnginePath = DefaultEnginePath
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	l, err := load(ctx, opts, logger)
	if err != nil {
		return nil, err
	}
	api, err := newEngineAPI(l.engine.Types)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	perPkg := make([][]*TypeShape, len(l.targets))
	var all []*TypeShape
	for i, pkg := range l.targets {
		shapes, diags := inspect(l.fset, pkg)
		res.Diagnostics = append(res.Diagnostics, diags...)
		perPkg[i] = shapes
		all = append(all, shapes...)
		logger.Debug("inspected package", "package", pkg.PkgPath, "types", len(shapes), "diagnostics", len(diags))
	}

	r := newResolver(api, all)
	for i, pkg := range l.targets {
		if len(perPkg[i]) == 0 {
			continue
		}
		file, diags, err := generate(pkg, r, perPkg[i], opts, logger)
		res.Diagnostics = append(res.Diagnostics, diags...)
		if err != nil {
			return res, err
		}
		if !opts.DryRun {
			if err := writeFile(file.Path, file.Source); err != nil {
				return res, err
			}
			logger.Info("wrote file", "path", file.Path, "types", len(file.Types))
		}
		res.Files = append(res.Files, *file)
	}

	sort.SliceStable(res.Diagnostics, func(i, j int) bool {
		a, b := res.Diagnostics[i].Pos, res.Diagnostics[j].Pos
		if a.Filename != b.Filename {
			return a.Filename < b.Filename
		}
		return a.Offset < b.Offset
	})
	return res, nil
}

// generate derives every shape of one package into a single file.
func generate(pkg *packages.Package, r *resolver, shapes []*TypeShape, opts Options, logger *slog.Logger) (*File, []*Diagnostic, error) {
	dir, err := packageDir(pkg)
	if err != nil {
		return nil, nil, err
	}
	var modulePath string
	if pkg.Module != nil {
		modulePath = pkg.Module.Path
	}
	self := pkg.PkgPath == opts.EnginePath
	out := newEmitter(opts.EnginePath, engineName(opts.EnginePath, r), modulePath, self)

	file := &File{Package: pkg.PkgPath, Path: filepath.Join(dir, opts.Output)}
	var diags []*Diagnostic
	for _, s := range shapes {
		e, errs := deriveShape(out, r, s)
		if len(errs) > 0 {
			for _, err := range errs {
				d := asDiagnostic(err, s.Name)
				diags = append(diags, d)
				logger.Warn("derive failed", "type", s.Name, "code", d.Code, "error", d.Reason)
			}
			continue
		}
		out.adopt(e)
		file.Types = append(file.Types, s.Name)
		logger.Debug("derived type", "package", pkg.PkgPath, "type", s.Name, "capabilities", s.Derives)
	}

	src, err := out.file(pkg.Name)
	if err != nil {
		return nil, diags, fmt.Errorf("generate %s: %w", pkg.PkgPath, err)
	}
	file.Source = src
	return file, diags, nil
}

// deriveShape runs every requested deriver for s on a fresh emitter. All
// failures are returned so one run reports every problem with the type.
func deriveShape(parent *emitter, r *resolver, s *TypeShape) (*emitter, []error) {
	if err := r.resolve(s); err != nil {
		return nil, []error{err}
	}
	e := parent.child()
	if s.Kind == KindEnum {
		e.enumKind(s)
	}
	var errs []error
	for _, c := range Capabilities {
		if !s.derives(c) {
			continue
		}
		if err := derivers[c](e, s); err != nil {
			errs = append(errs, err)
		}
	}
	return e, errs
}

// engineName is the package name generated code uses for the engine.
func engineName(path string, r *resolver) string {
	if r.engine.pkg != nil {
		return r.engine.pkg.Name()
	}
	return filepath.Base(path)
}
