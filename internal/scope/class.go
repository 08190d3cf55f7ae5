package scope

// ClassScope tracks the private names (`#x`) declared by one class
// body, resolved outward through enclosing class scopes: a
// private-name reference inside a nested function or class expression
// must walk outward through Enclosing until it finds a class that
// declared that name, and a reference that reaches the top without a
// match is a SyntaxError.
type ClassScope struct {
	PrivateNames map[string]bool
	Enclosing    *ClassScope
}

func NewClassScope(enclosing *ClassScope) *ClassScope {
	return &ClassScope{PrivateNames: make(map[string]bool), Enclosing: enclosing}
}

// Declare records a private name declared directly in this class body
// (a private field, method, or accessor).
func (c *ClassScope) Declare(name string) {
	c.PrivateNames[name] = true
}

// Resolve reports whether name is visible from this class scope,
// searching this class and then each enclosing class in turn.
func (c *ClassScope) Resolve(name string) bool {
	for s := c; s != nil; s = s.Enclosing {
		if s.PrivateNames[name] {
			return true
		}
	}
	return false
}
