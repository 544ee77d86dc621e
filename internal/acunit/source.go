package acunit

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"
	"strings"
	"sync"
)

const unknownCondition = "?"

type parsedSource struct {
	fset *token.FileSet
	file *ast.File
}

// sources caches parsed files for the whole process. Unlike RunState it is
// shared by every run, hence the lock.
var sources = struct {
	sync.Mutex
	files map[string]*parsedSource
}{files: make(map[string]*parsedSource)}

// loadSource returns the parsed file at path, or nil when it cannot be read.
func loadSource(path string) *parsedSource {
	sources.Lock()
	defer sources.Unlock()

	if src, ok := sources.files[path]; ok {
		return src
	}

	var src *parsedSource
	fset := token.NewFileSet()
	if f, err := parser.ParseFile(fset, path, nil, parser.SkipObjectResolution); err == nil {
		src = &parsedSource{fset: fset, file: f}
	}
	sources.files[path] = src
	return src
}

// conditionText returns the source text of the first argument of the call to
// method found on line of the file at path.
func conditionText(path string, line int, method string) string {
	src := loadSource(path)
	if src == nil {
		return unknownCondition
	}

	call := findCall(src, line, method)
	if call == nil || len(call.Args) == 0 {
		return unknownCondition
	}

	var buf bytes.Buffer
	if err := printer.Fprint(&buf, src.fset, call.Args[0]); err != nil {
		return unknownCondition
	}
	return oneLine(buf.String())
}

// oneLine joins a condition written across several lines with single spaces
// so that its diagnostic stays on one line.
func oneLine(text string) string {
	if !strings.Contains(text, "\n") {
		return text
	}
	lines := strings.Split(text, "\n")
	parts := lines[:0]
	for _, l := range lines {
		if l = strings.TrimSpace(l); l != "" {
			parts = append(parts, l)
		}
	}
	return strings.Join(parts, " ")
}

// findCall locates the call expression the runtime attributed to line. The
// compiler positions a call at its opening parenthesis; calls merely spanning
// the line are accepted as a fallback. Two calls to method opening on the same
// line cannot be told apart, so neither is returned.
func findCall(src *parsedSource, line int, method string) *ast.CallExpr {
	var exact []*ast.CallExpr
	var spanning *ast.CallExpr

	ast.Inspect(src.file, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok || calleeName(call.Fun) != method {
			return true
		}
		if src.fset.Position(call.Lparen).Line == line {
			exact = append(exact, call)
			return true
		}
		start := src.fset.Position(call.Pos()).Line
		end := src.fset.Position(call.End()).Line
		if spanning == nil && start <= line && line <= end {
			spanning = call
		}
		return true
	})

	switch len(exact) {
	case 0:
		return spanning
	case 1:
		return exact[0]
	}
	return nil
}

func calleeName(fun ast.Expr) string {
	switch f := fun.(type) {
	case *ast.SelectorExpr:
		return f.Sel.Name
	case *ast.Ident:
		return f.Name
	case *ast.ParenExpr:
		return calleeName(f.X)
	}
	return ""
}
