package jscore

import (
	"errors"
	"testing"

	"github.com/cwbudde/go-jscore/internal/ast"
	"github.com/cwbudde/go-jscore/internal/perrors"
)

func parseRecords(t *testing.T, source string) *ast.ModuleRecords {
	t.Helper()
	result := ParseModule(source)
	if !result.OK() {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if result.Records == nil {
		t.Fatal("expected Records on a clean module parse")
	}
	return result.Records
}

func TestModuleRecordsImportForms(t *testing.T) {
	rec := parseRecords(t, `
import d from "a";
import * as ns from "b";
import { x, y as z } from "c";
import "d";
`)
	want := []ast.ImportEntry{
		{ModuleRequest: "a", ImportName: "default", LocalName: "d"},
		{ModuleRequest: "b", ImportName: "*", LocalName: "ns"},
		{ModuleRequest: "c", ImportName: "x", LocalName: "x"},
		{ModuleRequest: "c", ImportName: "y", LocalName: "z"},
	}
	if len(rec.ImportEntries) != len(want) {
		t.Fatalf("got %d import entries, want %d: %+v", len(rec.ImportEntries), len(want), rec.ImportEntries)
	}
	for i, w := range want {
		if rec.ImportEntries[i] != w {
			t.Errorf("entry %d: got %+v, want %+v", i, rec.ImportEntries[i], w)
		}
	}
	wantReq := []string{"a", "b", "c", "d"}
	if len(rec.RequestedModules) != len(wantReq) {
		t.Fatalf("requested modules: got %v, want %v", rec.RequestedModules, wantReq)
	}
	for i, w := range wantReq {
		if rec.RequestedModules[i] != w {
			t.Errorf("requested[%d]: got %q, want %q", i, rec.RequestedModules[i], w)
		}
	}
}

func TestModuleRecordsRequestedModulesDeduped(t *testing.T) {
	rec := parseRecords(t, `import { a } from "m"; export { b } from "m";`)
	if len(rec.RequestedModules) != 1 || rec.RequestedModules[0] != "m" {
		t.Errorf("got %v, want exactly one request for %q", rec.RequestedModules, "m")
	}
}

func TestModuleRecordsLocalExports(t *testing.T) {
	rec := parseRecords(t, `
export const a = 1, [b, { c }] = q;
export function f() {}
export class C {}
export default 42;
`)
	want := []ast.ExportEntry{
		{ExportName: "a", LocalName: "a"},
		{ExportName: "b", LocalName: "b"},
		{ExportName: "c", LocalName: "c"},
		{ExportName: "f", LocalName: "f"},
		{ExportName: "C", LocalName: "C"},
		{ExportName: "default", LocalName: "*default*"},
	}
	if len(rec.LocalExportEntries) != len(want) {
		t.Fatalf("got %d local exports, want %d: %+v", len(rec.LocalExportEntries), len(want), rec.LocalExportEntries)
	}
	for i, w := range want {
		if rec.LocalExportEntries[i] != w {
			t.Errorf("entry %d: got %+v, want %+v", i, rec.LocalExportEntries[i], w)
		}
	}
}

func TestModuleRecordsDefaultExportNamedFunction(t *testing.T) {
	rec := parseRecords(t, `export default function f() {}`)
	if len(rec.LocalExportEntries) != 1 {
		t.Fatalf("got %+v", rec.LocalExportEntries)
	}
	got := rec.LocalExportEntries[0]
	if got.ExportName != "default" || got.LocalName != "f" {
		t.Errorf("got %+v, want default -> f", got)
	}
}

func TestModuleRecordsIndirectAndStarExports(t *testing.T) {
	rec := parseRecords(t, `
export { a as b } from "m";
export * as ns from "n";
export * from "o";
`)
	wantIndirect := []ast.ExportEntry{
		{ExportName: "b", ModuleRequest: "m", ImportName: "a"},
		{ExportName: "ns", ModuleRequest: "n", ImportName: "*"},
	}
	if len(rec.IndirectExportEntries) != len(wantIndirect) {
		t.Fatalf("got %d indirect exports, want %d: %+v", len(rec.IndirectExportEntries), len(wantIndirect), rec.IndirectExportEntries)
	}
	for i, w := range wantIndirect {
		if rec.IndirectExportEntries[i] != w {
			t.Errorf("indirect %d: got %+v, want %+v", i, rec.IndirectExportEntries[i], w)
		}
	}
	if len(rec.StarExportEntries) != 1 || rec.StarExportEntries[0].ModuleRequest != "o" {
		t.Errorf("star exports: got %+v, want one entry for %q", rec.StarExportEntries, "o")
	}
}

func TestModuleRecordsReexportedImportBecomesIndirect(t *testing.T) {
	rec := parseRecords(t, `
import { a } from "m";
import * as ns from "n";
export { a, ns };
`)
	if len(rec.IndirectExportEntries) != 1 {
		t.Fatalf("indirect: got %+v", rec.IndirectExportEntries)
	}
	ind := rec.IndirectExportEntries[0]
	if ind.ExportName != "a" || ind.ModuleRequest != "m" || ind.ImportName != "a" {
		t.Errorf("got %+v, want a re-export of m's a", ind)
	}
	// The namespace object is this module's own binding, so its
	// re-export stays local.
	if len(rec.LocalExportEntries) != 1 {
		t.Fatalf("local: got %+v", rec.LocalExportEntries)
	}
	loc := rec.LocalExportEntries[0]
	if loc.ExportName != "ns" || loc.LocalName != "ns" {
		t.Errorf("got %+v, want a local export of ns", loc)
	}
}

func TestScriptParseHasNoRecords(t *testing.T) {
	result := ParseProgram("var x = 1;")
	if result.Records != nil {
		t.Error("Script parses must not carry module records")
	}
}

type mapHost struct {
	modules map[string]string
}

func (h *mapHost) LoadModule(referrer, specifier string, typ ModuleType) (string, error) {
	src, ok := h.modules[specifier]
	if !ok {
		return "", errors.New("no such module")
	}
	return src, nil
}

func (h *mapHost) ImportModuleDynamically(referrer, specifier string, typ ModuleType, done func(*Result, error)) {
	src, err := h.LoadModule(referrer, specifier, typ)
	if err != nil {
		done(nil, err)
		return
	}
	done(ParseModule(src), nil)
}

func (h *mapHost) CanBlockExecution() bool { return false }

func TestLoadRequests(t *testing.T) {
	host := &mapHost{modules: map[string]string{
		"dep":    `export const x = 1;`,
		"broken": `export const = ;`,
	}}
	result := ParseModule(`import { x } from "dep"; import "missing"; export * from "broken";`)
	if !result.OK() {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}

	loaded := LoadRequests(host, "main", result.Records)
	if len(loaded) != 3 {
		t.Fatalf("got %d loaded modules, want 3", len(loaded))
	}
	if dep := loaded["dep"]; !dep.OK() || dep.Records == nil || len(dep.Records.LocalExportEntries) != 1 {
		t.Errorf("dep should parse cleanly with one local export, got %+v", dep)
	}
	missing := loaded["missing"]
	if missing.OK() {
		t.Fatal("missing module should carry a load diagnostic")
	}
	if missing.Errors[0].Kind != perrors.ReferenceError {
		t.Errorf("load failure kind: got %v, want ReferenceError", missing.Errors[0].Kind)
	}
	if broken := loaded["broken"]; broken.OK() {
		t.Error("broken module source should surface its parse diagnostics")
	}
}
