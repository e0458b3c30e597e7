package authhttp

import (
	"encoding/json"
	"net/http"
)

type errResp struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// serverErr is for infrastructure failures (session store down) where the
// flash-and-redirect path itself cannot work.
func serverErr(w http.ResponseWriter, code string) {
	writeJSON(w, http.StatusInternalServerError, errResp{Error: code})
}
