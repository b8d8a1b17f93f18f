// Package kit holds the transport-agnostic plumbing shared by the HTTP
// and MCP surfaces of the serve command.
package kit

import "context"

// Endpoint is a transport-agnostic action function. Each serve action
// (lookup, list datasets) is an Endpoint; HTTP handlers and MCP tools
// dispatch to the same ones.
type Endpoint func(ctx context.Context, request any) (response any, err error)

// Middleware wraps an Endpoint with cross-cutting concerns.
type Middleware func(Endpoint) Endpoint

// Chain composes middlewares so the first is outermost.
// Chain(a, b, c)(endpoint) == a(b(c(endpoint)))
func Chain(outer Middleware, others ...Middleware) Middleware {
	return func(next Endpoint) Endpoint {
		for i := len(others) - 1; i >= 0; i-- {
			next = others[i](next)
		}
		return outer(next)
	}
}
