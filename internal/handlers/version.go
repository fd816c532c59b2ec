package handlers

import (
	"net/http"

	"github.com/gatekit/gatekit/internal/httpx"
	"github.com/gatekit/gatekit/internal/version"
)

func Version(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, version.Get())
}
