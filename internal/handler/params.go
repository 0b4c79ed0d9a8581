package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

// queryParam binds the form-style query parameter name into dest, which must
// be a pointer. Optional parameters should bind into a pointer-to-pointer so
// absence stays nil.
func queryParam(r *http.Request, name string, required bool, dest any) error {
	if err := runtime.BindQueryParameter("form", true, required, name, r.URL.Query(), dest); err != nil {
		return fmt.Errorf("invalid format for parameter %s: %w", name, err)
	}
	return nil
}

// pathParam binds the simple-style path parameter name into dest.
func pathParam(r *http.Request, name string, dest any) error {
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), dest,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath})
	if err != nil {
		return fmt.Errorf("invalid format for parameter %s: %w", name, err)
	}
	return nil
}

// badRequest writes a 400 for a parameter or body that could not be bound.
func badRequest(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusBadRequest, requestBody(err.Error()))
}
