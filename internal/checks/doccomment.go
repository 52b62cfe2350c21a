package checks

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"path"
	"regexp"
	"strings"

	"github.com/matrun/matrun/internal/config"
)

// Doc comment rule codes. DC0xx find missing comments, DC1xx judge
// the comment itself.
const (
	CodePackageDoc = "DC001" // package has no doc comment
	CodeTypeDoc    = "DC002" // exported type has no doc comment
	CodeFuncDoc    = "DC003" // exported function has no doc comment
	CodeMethodDoc  = "DC004" // exported method has no doc comment
	CodeValueDoc   = "DC005" // exported const or var has no doc comment
	CodeDocName    = "DC101" // doc comment does not start with the name
	CodeDocPeriod  = "DC102" // doc comment does not end with a period
)

var generatedRe = regexp.MustCompile(`^// Code generated .* DO NOT EDIT\.$`)

// DocComment checks doc comments on exported declarations. Rule
// codes in Ignore are suppressed; test files and generated files are
// never checked.
type DocComment struct {
	ignore  map[string]bool
	exclude *config.Matcher
}

// NewDocComment builds the check from config.
func NewDocComment(cfg config.DocComment) *DocComment {
	ignore := make(map[string]bool, len(cfg.Ignore))
	for _, code := range cfg.Ignore {
		ignore[code] = true
	}
	return &DocComment{
		ignore:  ignore,
		exclude: config.NewMatcher(cfg.Exclude),
	}
}

// Name is the gate step name.
func (c *DocComment) Name() string { return "doccomment" }

// Run parses every non-test Go file under root and applies the rules.
// The package rule fires once per directory, on its first file.
func (c *DocComment) Run(root string) ([]Diagnostic, error) {
	var diags []Diagnostic

	type pkgState struct {
		firstFile string
		hasDoc    bool
	}
	pkgs := map[string]*pkgState{}
	var pkgOrder []string

	fset := token.NewFileSet()
	err := walkGoFiles(root, c.exclude, false, func(fullPath, rel string) error {
		file, err := parser.ParseFile(fset, fullPath, nil, parser.ParseComments)
		if err != nil {
			return fmt.Errorf("parse %s: %w", rel, err)
		}
		if isGenerated(file) {
			return nil
		}

		dir := path.Dir(rel)
		st, ok := pkgs[dir]
		if !ok {
			st = &pkgState{firstFile: rel}
			pkgs[dir] = st
			pkgOrder = append(pkgOrder, dir)
		}
		if file.Doc != nil {
			st.hasDoc = true
		}

		diags = append(diags, c.checkDecls(fset, file, rel)...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !c.ignore[CodePackageDoc] {
		for _, dir := range pkgOrder {
			if st := pkgs[dir]; !st.hasDoc {
				diags = append(diags, Diagnostic{
					File:    st.firstFile,
					Line:    1,
					Code:    CodePackageDoc,
					Message: fmt.Sprintf("package in %s has no doc comment", dir),
				})
			}
		}
	}

	sortDiagnostics(diags)
	return diags, nil
}

func (c *DocComment) checkDecls(fset *token.FileSet, file *ast.File, rel string) []Diagnostic {
	var diags []Diagnostic

	add := func(code string, pos token.Pos, msg string) {
		if c.ignore[code] {
			return
		}
		diags = append(diags, Diagnostic{
			File:    rel,
			Line:    fset.Position(pos).Line,
			Code:    code,
			Message: msg,
		})
	}

	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			if !d.Name.IsExported() {
				continue
			}
			code := CodeFuncDoc
			kind := "function"
			if d.Recv != nil {
				code = CodeMethodDoc
				kind = "method"
			}
			if d.Doc == nil {
				add(code, d.Pos(), fmt.Sprintf("exported %s %s has no doc comment", kind, d.Name.Name))
				continue
			}
			c.checkText(add, d.Doc, d.Name.Name)

		case *ast.GenDecl:
			switch d.Tok {
			case token.TYPE:
				for _, spec := range d.Specs {
					ts, ok := spec.(*ast.TypeSpec)
					if !ok || !ts.Name.IsExported() {
						continue
					}
					doc := ts.Doc
					if doc == nil && len(d.Specs) == 1 {
						doc = d.Doc
					}
					if doc == nil {
						add(CodeTypeDoc, ts.Pos(), fmt.Sprintf("exported type %s has no doc comment", ts.Name.Name))
						continue
					}
					c.checkText(add, doc, ts.Name.Name)
				}

			case token.CONST, token.VAR:
				if d.Doc != nil {
					continue
				}
				for _, spec := range d.Specs {
					vs, ok := spec.(*ast.ValueSpec)
					if !ok || vs.Doc != nil {
						continue
					}
					for _, name := range vs.Names {
						if name.IsExported() {
							add(CodeValueDoc, name.Pos(), fmt.Sprintf("exported value %s has no doc comment", name.Name))
							break
						}
					}
				}
			}
		}
	}
	return diags
}

// checkText applies the DC1xx rules to a present doc comment.
func (c *DocComment) checkText(add func(string, token.Pos, string), doc *ast.CommentGroup, name string) {
	text := strings.TrimSpace(doc.Text())
	if text == "" {
		return
	}

	first := text
	if i := strings.IndexAny(first, " \t\n"); i >= 0 {
		first = first[:i]
	}
	// Linkable forms like "[Name]" count as starting with the name.
	if trimmed := strings.Trim(first, "[]"); trimmed != name {
		add(CodeDocName, doc.Pos(), fmt.Sprintf("doc comment for %s should start with %q", name, name))
	}

	switch text[len(text)-1] {
	case '.', '!', '?':
	default:
		add(CodeDocPeriod, doc.End(), fmt.Sprintf("doc comment for %s should end with a period", name))
	}
}

func isGenerated(file *ast.File) bool {
	for _, group := range file.Comments {
		if group.Pos() > file.Package {
			break
		}
		for _, comment := range group.List {
			if generatedRe.MatchString(comment.Text) {
				return true
			}
		}
	}
	return false
}
