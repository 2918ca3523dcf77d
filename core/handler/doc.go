// Package handler provides the request context and typed handler primitives
// the binding layer plugs into. Context implements binding.RequestContext:
// it exposes the raw request, delegates cancellation to the request's
// context, and carries the service registry custom binders are resolved from.
//
//	func createUser(ctx *handler.Context, in binding.Envelope[CreateUserRequest]) handler.Response {
//		req, ok := in.Value()
//		if !ok {
//			// optional parameter absent
//		}
//		return func(w http.ResponseWriter, r *http.Request) error {
//			return json.NewEncoder(w).Encode(req)
//		}
//	}
package handler
