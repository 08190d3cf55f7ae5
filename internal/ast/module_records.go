package ast

// ImportEntry is one resolved row of a module's import table.
// ImportName is the name under which the binding is exported by the
// requested module: a named export, "default", or "*" for a namespace
// import. LocalName is the binding the import creates in this module.
type ImportEntry struct {
	ModuleRequest string
	ImportName    string
	LocalName     string
}

// ExportEntry is one row of a module's export table. Exactly one of
// LocalName and ModuleRequest is populated: local exports name a
// binding in this module, indirect exports forward a binding from the
// requested module, and star exports (ExportName empty) re-export the
// whole namespace.
type ExportEntry struct {
	ExportName    string
	ModuleRequest string
	ImportName    string
	LocalName     string
}

// ModuleRecords is the static module interface extracted from a parsed
// Module: the requested-specifier set plus the four entry lists of the
// ECMAScript module record. Linking and loading consume these; this
// package only derives them from syntax.
type ModuleRecords struct {
	RequestedModules      []string
	ImportEntries         []ImportEntry
	LocalExportEntries    []ExportEntry
	IndirectExportEntries []ExportEntry
	StarExportEntries     []ExportEntry
}

// defaultExportLocalName is the synthetic local binding name used for
// `export default <expression>`, which exports a value that has no
// declared name of its own.
const defaultExportLocalName = "*default*"

// Records derives the module's static import/export interface.
//
// Entries appear in source order within each list. An `export { x }`
// with no `from` clause whose local name was created by a named or
// default import is reclassified as an indirect export of the original
// binding; a re-exported namespace import stays local, since the
// namespace object itself is this module's binding.
func (m *Module) Records() *ModuleRecords {
	rec := &ModuleRecords{}
	requested := map[string]bool{}
	request := func(spec string) {
		if !requested[spec] {
			requested[spec] = true
			rec.RequestedModules = append(rec.RequestedModules, spec)
		}
	}

	for _, stmt := range m.Body {
		decl, ok := stmt.(*ImportDeclaration)
		if !ok {
			continue
		}
		request(decl.Source.Value)
		for _, s := range decl.Specifiers {
			switch s := s.(type) {
			case *ImportDefaultSpecifier:
				rec.ImportEntries = append(rec.ImportEntries, ImportEntry{
					ModuleRequest: decl.Source.Value,
					ImportName:    "default",
					LocalName:     s.Local.Name,
				})
			case *ImportNamespaceSpecifier:
				rec.ImportEntries = append(rec.ImportEntries, ImportEntry{
					ModuleRequest: decl.Source.Value,
					ImportName:    "*",
					LocalName:     s.Local.Name,
				})
			case *ImportSpecifier:
				rec.ImportEntries = append(rec.ImportEntries, ImportEntry{
					ModuleRequest: decl.Source.Value,
					ImportName:    s.Imported.Name,
					LocalName:     s.Local.Name,
				})
			}
		}
	}

	for _, stmt := range m.Body {
		switch decl := stmt.(type) {
		case *ExportNamedDeclaration:
			if decl.Source != nil {
				request(decl.Source.Value)
				for _, s := range decl.Specifiers {
					rec.IndirectExportEntries = append(rec.IndirectExportEntries, ExportEntry{
						ExportName:    s.Exported.Name,
						ModuleRequest: decl.Source.Value,
						ImportName:    s.Local.Name,
					})
				}
				continue
			}
			if decl.Declaration != nil {
				for _, name := range declaredNames(decl.Declaration) {
					rec.LocalExportEntries = append(rec.LocalExportEntries, ExportEntry{
						ExportName: name,
						LocalName:  name,
					})
				}
				continue
			}
			for _, s := range decl.Specifiers {
				rec.appendLocalExport(s.Exported.Name, s.Local.Name)
			}
		case *ExportDefaultDeclaration:
			local := defaultExportLocalName
			switch d := decl.Declaration.(type) {
			case *FunctionDecl:
				if d.ID != nil {
					local = d.ID.Name
				}
			case *ClassDecl:
				if d.ID != nil {
					local = d.ID.Name
				}
			}
			rec.LocalExportEntries = append(rec.LocalExportEntries, ExportEntry{
				ExportName: "default",
				LocalName:  local,
			})
		case *ExportAllDeclaration:
			request(decl.Source.Value)
			if decl.Exported != nil {
				rec.IndirectExportEntries = append(rec.IndirectExportEntries, ExportEntry{
					ExportName:    decl.Exported.Name,
					ModuleRequest: decl.Source.Value,
					ImportName:    "*",
				})
				continue
			}
			rec.StarExportEntries = append(rec.StarExportEntries, ExportEntry{
				ModuleRequest: decl.Source.Value,
			})
		}
	}
	return rec
}

// appendLocalExport records `export { local as exported }` with no
// `from` clause, reclassifying it as indirect when local is itself an
// imported binding (other than a namespace object).
func (rec *ModuleRecords) appendLocalExport(exported, local string) {
	for _, imp := range rec.ImportEntries {
		if imp.LocalName != local {
			continue
		}
		if imp.ImportName == "*" {
			break
		}
		rec.IndirectExportEntries = append(rec.IndirectExportEntries, ExportEntry{
			ExportName:    exported,
			ModuleRequest: imp.ModuleRequest,
			ImportName:    imp.ImportName,
		})
		return
	}
	rec.LocalExportEntries = append(rec.LocalExportEntries, ExportEntry{
		ExportName: exported,
		LocalName:  local,
	})
}

// declaredNames lists the bindings an exported declaration statement
// introduces, in source order.
func declaredNames(stmt Statement) []string {
	switch d := stmt.(type) {
	case *VariableDecl:
		var names []string
		for _, dc := range d.Declarations {
			names = appendPatternNames(names, dc.Target)
		}
		return names
	case *FunctionDecl:
		if d.ID != nil {
			return []string{d.ID.Name}
		}
	case *ClassDecl:
		if d.ID != nil {
			return []string{d.ID.Name}
		}
	}
	return nil
}

// appendPatternNames appends every identifier bound by p, recursing
// through destructuring forms. Elisions and computed keys bind nothing
// themselves.
func appendPatternNames(names []string, p Pattern) []string {
	switch p := p.(type) {
	case *Identifier:
		names = append(names, p.Name)
	case *ArrayPattern:
		for _, el := range p.Elements {
			if el != nil {
				names = appendPatternNames(names, el)
			}
		}
	case *ObjectPattern:
		for _, prop := range p.Properties {
			names = appendPatternNames(names, prop.Value)
		}
		if p.Rest != nil {
			names = appendPatternNames(names, p.Rest.Argument)
		}
	case *AssignmentPattern:
		names = appendPatternNames(names, p.Left)
	case *RestElement:
		names = appendPatternNames(names, p.Argument)
	}
	return names
}
