package bindkit

import (
	"errors"
	"net/http"

	"github.com/forgeworks/bindkit/core/binding"
	"github.com/forgeworks/bindkit/core/handler"
)

// ErrNilResponse is passed to the error handler when a handler returns a nil
// response.
var ErrNilResponse = errors.New("handler returned nil response")

// DefaultErrorHandler renders binding failures with the status code they
// carry and everything else as a 500. Custom binder errors reach it exactly
// as the binder returned them; replace the handler per route to translate
// application error types.
func DefaultErrorHandler(ctx *handler.Context, err error) {
	logHandlerError(ctx, err)

	w := ctx.ResponseWriter()

	var bindErr binding.Error
	if errors.As(err, &bindErr) {
		http.Error(w, bindErr.Message, bindErr.Status)
		return
	}

	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
