package handlers

import (
	"net/http"

	apierrors "github.com/agussaepos/saepos-cms/internal/errors"
)

func (h *Handlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Backend.Dashboard(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
