package textapi

import (
	"net/http"

	"textlens/internal/handler/http/respond"
	"textlens/internal/stats"
	completeUC "textlens/internal/usecase/complete"
)

// CompleteHandler serves POST /complete.
type CompleteHandler struct{ Svc *completeUC.Service }

func (h CompleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeTextRequest(w, r)
	if !ok {
		return
	}

	result, err := h.Svc.Complete(r.Context(), *req.Text, req.MaxLength)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, struct {
		Completion *completeUC.Result `json:"completion"`
		Stats      stats.Snapshot     `json:"stats"`
	}{
		Completion: result,
		Stats:      h.Svc.Stats.Snapshot(),
	})
}
