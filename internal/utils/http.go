package utils

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
)

// ExtractParam retrieves a named router parameter from the request context
// and removes file extensions like ".json".
func ExtractParam(r *http.Request, paramName string) string {
	params := httprouter.ParamsFromContext(r.Context())
	raw := params.ByName(paramName)
	return strings.Split(raw, ".json")[0]
}

// ExtractIDFromParams retrieves the "id" parameter value from the request context.
func ExtractIDFromParams(r *http.Request) string {
	return ExtractParam(r, "id")
}
