package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/vedran77/devtree/pkg/validator"
)

// Validate runs the route's field rules against the JSON body before the
// handler sees the request. Any failure answers 400 with the full rule-order
// list of {field, message} errors and halts the pipeline. On success the
// body is restored so the handler can decode it normally.
func Validate(rules []validator.Rule) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, err := io.ReadAll(r.Body)
			if err != nil {
				jsonError(w, http.StatusBadRequest, "cuerpo de la petición no válido")
				return
			}

			payload := map[string]any{}
			if len(body) > 0 {
				if err := json.Unmarshal(body, &payload); err != nil {
					jsonError(w, http.StatusBadRequest, "cuerpo de la petición no válido")
					return
				}
			}

			if errs := validator.Apply(rules, payload); len(errs) > 0 {
				jsonFieldErrors(w, errs)
				return
			}

			r.Body = io.NopCloser(bytes.NewReader(body))
			next.ServeHTTP(w, r)
		})
	}
}
