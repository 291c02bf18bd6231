package handles

import (
	"github.com/AuraHubTeam/AuraHub/internal/streamtape"
)

// Handler groups the endpoint functions around the one long-lived upstream
// client. No other state exists; every method is request-scoped.
type Handler struct {
	client *streamtape.Client
}

func NewHandler(client *streamtape.Client) *Handler {
	return &Handler{client: client}
}
