package expr

import (
	"fmt"
	"strings"
	"sync"

	"github.com/golang/groupcache/lru"
	"go.starlark.net/syntax"
)

// ExprCache caches the source-like string representation of syntax
// expressions, so parameter lists and default values are rendered once
// per node.
type ExprCache struct {
	cache *lru.Cache
	mu    sync.RWMutex // Mutex for thread safety
}

// NewExprCache creates a new ExprCache of the given size.
func NewExprCache(size int) *ExprCache {
	return &ExprCache{
		cache: lru.New(size),
	}
}

// Get returns the cached string for the given expression, if available.
func (c *ExprCache) Get(e syntax.Expr) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if val, ok := c.cache.Get(e); ok {
		return val.(string), true
	}
	return "", false
}

// Put adds the string representation for an expression into the cache.
func (c *ExprCache) Put(e syntax.Expr, str string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Add(e, str)
}

// ToString returns the string representation for the given expression,
// using the cache to avoid redundant computations.
func (c *ExprCache) ToString(e syntax.Expr) string {
	if e == nil {
		return ""
	}

	// Try reading with a read lock first.
	c.mu.RLock()
	if val, ok := c.cache.Get(e); ok {
		c.mu.RUnlock()
		return val.(string)
	}
	c.mu.RUnlock()

	result := c.render(e)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Add(e, result)
	return result
}

// render computes the string representation based on the expression type.
func (c *ExprCache) render(e syntax.Expr) string {
	switch e := e.(type) {
	case *syntax.Ident:
		return e.Name
	case *syntax.Literal:
		return e.Raw
	case *syntax.ParenExpr:
		return "(" + c.ToString(e.X) + ")"
	case *syntax.UnaryExpr:
		// Covers *args and **kwargs as well as ordinary unary operators.
		if e.X == nil {
			return e.Op.String()
		}
		return e.Op.String() + c.ToString(e.X)
	case *syntax.BinaryExpr:
		if e.Op == syntax.EQ {
			// Parameter default: no spaces, matching source convention.
			return c.ToString(e.X) + "=" + c.ToString(e.Y)
		}
		return c.ToString(e.X) + " " + e.Op.String() + " " + c.ToString(e.Y)
	case *syntax.DotExpr:
		return c.ToString(e.X) + "." + e.Name.Name
	case *syntax.IndexExpr:
		return c.ToString(e.X) + "[" + c.ToString(e.Y) + "]"
	case *syntax.CallExpr:
		args := make([]string, 0, len(e.Args))
		for _, a := range e.Args {
			args = append(args, c.ToString(a))
		}
		return c.ToString(e.Fn) + "(" + strings.Join(args, ", ") + ")"
	case *syntax.ListExpr:
		elems := make([]string, 0, len(e.List))
		for _, el := range e.List {
			elems = append(elems, c.ToString(el))
		}
		return "[" + strings.Join(elems, ", ") + "]"
	case *syntax.TupleExpr:
		elems := make([]string, 0, len(e.List))
		for _, el := range e.List {
			elems = append(elems, c.ToString(el))
		}
		return strings.Join(elems, ", ")
	case *syntax.DictExpr:
		entries := make([]string, 0, len(e.List))
		for _, el := range e.List {
			entries = append(entries, c.ToString(el))
		}
		return "{" + strings.Join(entries, ", ") + "}"
	case *syntax.DictEntry:
		return c.ToString(e.Key) + ": " + c.ToString(e.Value)
	case *syntax.CondExpr:
		return c.ToString(e.True) + " if " + c.ToString(e.Cond) + " else " + c.ToString(e.False)
	case *syntax.LambdaExpr:
		params := make([]string, 0, len(e.Params))
		for _, p := range e.Params {
			params = append(params, c.ToString(p))
		}
		return "lambda " + strings.Join(params, ", ") + ": " + c.ToString(e.Body)
	default:
		return fmt.Sprintf("<%T>", e)
	}
}

// Clear clears the cache.
func (c *ExprCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Clear()
}
