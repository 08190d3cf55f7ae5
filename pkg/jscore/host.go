package jscore

import (
	"github.com/cwbudde/go-jscore/internal/ast"
	"github.com/cwbudde/go-jscore/internal/perrors"
	"github.com/cwbudde/go-jscore/internal/token"
)

// ModuleType distinguishes what kind of module a specifier requests.
// Only JavaScript modules are parsed by this front end; a JSON request
// is passed through to the host unmodified.
type ModuleType int

const (
	ModuleJavaScript ModuleType = iota
	ModuleJSON
)

// Host is the callback surface an embedder supplies to the core. The
// core never resolves, fetches, or schedules anything itself: module
// texts come from LoadModule, `import()` completion is delegated to
// ImportModuleDynamically, and CanBlockExecution answers whether the
// current execution context may block (Atomics.wait).
//
// ImportModuleDynamically receives a completion callback in place of
// the promise object the ECMAScript host hook names, since promises
// belong to the object model this front end does not implement; the
// embedder resolves or rejects its own promise from the callback.
type Host interface {
	LoadModule(referrer, specifier string, typ ModuleType) (source string, err error)
	ImportModuleDynamically(referrer, specifier string, typ ModuleType, done func(*Result, error))
	CanBlockExecution() bool
}

// LoadRequests performs the synchronous first step of module linking:
// for every specifier in rec.RequestedModules it asks host.LoadModule
// for the text and parses it as a Module, keyed by specifier. Loading
// continues past individual failures so the caller sees every broken
// request at once; a specifier whose load failed maps to a Result
// holding only the load diagnostic.
//
// Transitive requests are not followed; each returned Result carries
// its own Records for the caller's linker to recurse on.
func LoadRequests(host Host, referrer string, rec *ast.ModuleRecords) map[string]*Result {
	loaded := make(map[string]*Result, len(rec.RequestedModules))
	for _, spec := range rec.RequestedModules {
		source, err := host.LoadModule(referrer, spec, ModuleJavaScript)
		if err != nil {
			loaded[spec] = &Result{Errors: []*perrors.Diagnostic{
				perrors.New(perrors.ReferenceError, token.Position{Line: 1, Column: 1},
					"cannot load module '%s': %s", spec, err.Error()),
			}}
			continue
		}
		loaded[spec] = ParseModule(source)
	}
	return loaded
}
