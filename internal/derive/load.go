package derive

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"
)

const loadMode = packages.NeedName | packages.NeedFiles | packages.NeedSyntax |
	packages.NeedTypes | packages.NeedTypesInfo | packages.NeedImports |
	packages.NeedDeps | packages.NeedModule

// loaded is the result of loading the target packages.
type loaded struct {
	fset    *token.FileSet
	targets []*packages.Package
	engine  *packages.Package
}

// load type-checks the target packages together with the engine. The
// previous output file of each target is reduced to its package clause so
// stale generated methods do not hide missing capabilities.
func load(ctx context.Context, opts Options, logger *slog.Logger) (*loaded, error) {
	var buildFlags []string
	if len(opts.Tags) > 0 {
		buildFlags = append(buildFlags, "-tags="+strings.Join(opts.Tags, ","))
	}

	list := &packages.Config{
		Context:    ctx,
		Mode:       packages.NeedName | packages.NeedFiles,
		Dir:        opts.Dir,
		BuildFlags: buildFlags,
	}
	roots, err := packages.Load(list, opts.Patterns...)
	if err != nil {
		return nil, fmt.Errorf("list packages %v: %w", opts.Patterns, err)
	}
	targetPaths := make(map[string]bool, len(roots))
	skip := make(map[string]bool, len(roots))
	for _, pkg := range roots {
		if len(pkg.Errors) > 0 {
			return nil, fmt.Errorf("list package %s: %w", pkg.PkgPath, pkg.Errors[0])
		}
		targetPaths[pkg.PkgPath] = true
		for _, dir := range packageDirs(pkg) {
			skip[filepath.Join(dir, opts.Output)] = true
		}
	}
	if len(targetPaths) == 0 {
		return nil, fmt.Errorf("no packages match %v", opts.Patterns)
	}

	fset := token.NewFileSet()
	cfg := &packages.Config{
		Context:    ctx,
		Mode:       loadMode,
		Dir:        opts.Dir,
		BuildFlags: buildFlags,
		Fset:       fset,
		ParseFile: func(fset *token.FileSet, filename string, src []byte) (*ast.File, error) {
			if skip[filepath.Clean(filename)] {
				return parser.ParseFile(fset, filename, src, parser.PackageClauseOnly)
			}
			return parser.ParseFile(fset, filename, src, parser.AllErrors|parser.ParseComments)
		},
	}
	patterns := append(append([]string(nil), opts.Patterns...), opts.EnginePath)
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("load packages %v: %w", patterns, err)
	}

	l := &loaded{fset: fset}
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			// Missing generated methods are expected type errors.
			logger.Debug("package error", "package", pkg.PkgPath, "error", e.Msg)
		}
		if pkg.Types == nil {
			return nil, fmt.Errorf("load package %s: no type information", pkg.PkgPath)
		}
		if pkg.PkgPath == opts.EnginePath {
			l.engine = pkg
		}
		if targetPaths[pkg.PkgPath] {
			l.targets = append(l.targets, pkg)
		}
	}
	if l.engine == nil {
		return nil, fmt.Errorf("engine package %s not found", opts.EnginePath)
	}
	return l, nil
}

func packageDirs(pkg *packages.Package) []string {
	seen := make(map[string]bool)
	var dirs []string
	for _, files := range [][]string{pkg.GoFiles, pkg.CompiledGoFiles, pkg.OtherFiles} {
		for _, f := range files {
			dir := filepath.Dir(f)
			if !seen[dir] {
				seen[dir] = true
				dirs = append(dirs, dir)
			}
		}
	}
	return dirs
}

// packageDir is the directory the output file of pkg is written to.
func packageDir(pkg *packages.Package) (string, error) {
	dirs := packageDirs(pkg)
	if len(dirs) == 0 {
		return "", fmt.Errorf("package %s has no files", pkg.PkgPath)
	}
	return dirs[0], nil
}

// inspect collects the shapes of the annotated declarations in pkg.
// Declarations that cannot be inspected are reported as diagnostics.
func inspect(fset *token.FileSet, pkg *packages.Package) ([]*TypeShape, []*Diagnostic) {
	var (
		shapes []*TypeShape
		diags  []*Diagnostic
	)
	for _, file := range pkg.Syntax {
		if ast.IsGenerated(file) {
			continue
		}
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}
			for _, spec := range gd.Specs {
				ts := spec.(*ast.TypeSpec)
				groups := []*ast.CommentGroup{ts.Doc}
				if len(gd.Specs) == 1 {
					groups = append(groups, gd.Doc)
				}
				d, err := parseDirectives(groups...)
				if err != nil {
					diags = append(diags, &Diagnostic{
						Code:   CodeUnknownDirective,
						Type:   ts.Name.Name,
						Reason: err.Error(),
						Pos:    fset.Position(ts.Name.Pos()),
					})
					continue
				}
				if len(d.derives) == 0 {
					continue
				}
				s, err := shapeOf(fset, ts, d)
				if err != nil {
					diags = append(diags, asDiagnostic(err, ts.Name.Name))
					continue
				}
				s.pkg = pkg.Types
				shapes = append(shapes, s)
			}
		}
	}
	return shapes, diags
}

func asDiagnostic(err error, typeName string) *Diagnostic {
	var d *Diagnostic
	if errors.As(err, &d) {
		return d
	}
	return &Diagnostic{Code: CodeUnsupportedShape, Type: typeName, Reason: err.Error()}
}

func writeFile(path string, src []byte) error {
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
