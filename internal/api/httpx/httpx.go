package httpx

import (
	"encoding/json"
	"net/http"
)

// WriteJSON writes v with the given status. Encoding errors are ignored: the
// header is already out and there is nothing useful left to tell the client.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
