package jscore

import (
	"encoding/json"
	"reflect"

	goyaml "github.com/goccy/go-yaml"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/cwbudde/go-jscore/internal/ast"
	"github.com/cwbudde/go-jscore/internal/scope"
)

// DumpFormat selects the rendering `cmd/jscore parse`/`cmd/jscore scope`
// use for their `--dump-format` flag.
type DumpFormat string

const (
	FormatText DumpFormat = "text"
	FormatJSON DumpFormat = "json"
	FormatYAML DumpFormat = "yaml"
)

// nodeFields walks an AST subtree generically via reflection, producing
// a plain `map[string]interface{}`/`[]interface{}`/scalar tree suitable
// for json.Marshal or goccy/go-yaml's Marshal. A generic walker is used
// instead of a hand-written MarshalJSON per node type because the node
// set has ~80 concrete types (internal/ast/node.go's Kind enum) and every
// one of them already exposes its shape through plain exported struct
// fields, so a generic walk covers every one without per-type dispatch.
func nodeFields(n ast.Node) map[string]interface{} {
	out := map[string]interface{}{
		"type":  n.Kind().String(),
		"start": n.Pos(),
		"end":   n.End(),
	}
	rv := reflect.ValueOf(n)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return out
		}
		rv = rv.Elem()
	}
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		if f.Anonymous && f.Name == "Base" {
			continue
		}
		out[f.Name] = valueToJSON(rv.Field(i))
	}
	return out
}

func valueToJSON(v reflect.Value) interface{} {
	if !v.IsValid() {
		return nil
	}
	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return valueToJSON(v.Elem())
	case reflect.Ptr:
		if v.IsNil() {
			return nil
		}
		if n, ok := v.Interface().(ast.Node); ok {
			return nodeFields(n)
		}
		return valueToJSON(v.Elem())
	case reflect.Slice, reflect.Array:
		l := v.Len()
		out := make([]interface{}, l)
		for i := 0; i < l; i++ {
			out[i] = valueToJSON(v.Index(i))
		}
		return out
	case reflect.Struct:
		if v.CanAddr() {
			if n, ok := v.Addr().Interface().(ast.Node); ok {
				return nodeFields(n)
			}
		}
		return v.Interface()
	default:
		return v.Interface()
	}
}

// DumpAST renders a parsed AST node (`*ast.Program`/`*ast.Module`, or any
// nested node) in the requested format.
func DumpAST(n ast.Node, format DumpFormat, selectPath string) ([]byte, error) {
	value := nodeFields(n)

	switch format {
	case FormatYAML:
		return goyaml.Marshal(value)
	default: // FormatJSON, FormatText (text falls back to indented JSON)
		data, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			return nil, err
		}
		// sjson attaches a small metadata envelope without re-walking the
		// AST value a second time through the reflection-based walker
		// above.
		data, err = sjson.SetBytes(data, "_meta.kind", n.Kind().String())
		if err != nil {
			return nil, err
		}
		if selectPath != "" {
			result := gjson.GetBytes(data, selectPath)
			return []byte(result.Raw), nil
		}
		return data, nil
	}
}

// scopeValue mirrors nodeFields but for the scope.FunctionScope /
// scope.BlockScope tree, which isn't an ast.Node and so isn't reachable
// from DumpAST's walker.
func scopeValue(fs *scope.FunctionScope) map[string]interface{} {
	if fs == nil {
		return nil
	}
	blocks := make([]interface{}, len(fs.Blocks))
	for i, b := range fs.Blocks {
		lex := make([]interface{}, len(b.Lexical))
		for j, l := range b.Lexical {
			kind := "let"
			if l.Kind == scope.LexicalConst {
				kind = "const"
			}
			lex[j] = map[string]interface{}{"name": l.Name, "kind": kind}
		}
		blocks[i] = map[string]interface{}{
			"index":         b.Index,
			"parentIndex":   b.ParentIndex,
			"hasParent":     b.HasParent,
			"lexical":       lex,
			"functionNames": b.FunctionNames,
			"usingNames":    b.UsingNames,
		}
	}
	children := make([]interface{}, len(fs.Children))
	for i, c := range fs.Children {
		children[i] = scopeValue(c)
	}
	return map[string]interface{}{
		"name":       fs.Name,
		"params":     fs.Params,
		"paramCount": fs.ParamCount,
		"length":     fs.Length,
		"flags":      fs.Flags,
		"varNames":   fs.VarNames,
		"blocks":     blocks,
		"children":   children,
	}
}

// DumpScopeTree renders the scope tree produced alongside a parse in the
// requested format.
func DumpScopeTree(fs *scope.FunctionScope, format DumpFormat) ([]byte, error) {
	value := scopeValue(fs)
	if format == FormatYAML {
		return goyaml.Marshal(value)
	}
	return json.MarshalIndent(value, "", "  ")
}

// DumpModuleRecords renders a module's static import/export interface in
// the requested format. ModuleRecords is plain exported data, so no
// reflective walk is needed.
func DumpModuleRecords(rec *ast.ModuleRecords, format DumpFormat) ([]byte, error) {
	if format == FormatYAML {
		return goyaml.Marshal(rec)
	}
	return json.MarshalIndent(rec, "", "  ")
}
