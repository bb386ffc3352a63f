package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sherlockhq/leakengine/internal/models"
)

// selectionPayload mirrors the click events the chart components emit:
// a type tag plus a data object whose shape depends on the tag.
type selectionPayload struct {
	Type models.SelectionKind `json:"type"`
	Data json.RawMessage      `json:"data"`
}

// decodeSelection translates a raw selection event into a typed
// SelectionContext. This is pure input translation; what to say about the
// selection is the composer's job.
func decodeSelection(r *http.Request) (models.SelectionContext, error) {
	var p selectionPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		return models.SelectionContext{}, errors.New("invalid JSON body")
	}

	switch p.Type {
	case models.SelectionLeak:
		var leak models.LeakSelection
		if err := json.Unmarshal(p.Data, &leak); err != nil || leak.LeakType == "" {
			return models.SelectionContext{}, errors.New("leak selection requires leak_type")
		}
		return models.SelectionContext{Kind: models.SelectionLeak, Leak: &leak}, nil
	case models.SelectionChannel:
		var ch models.ChannelSelection
		if err := json.Unmarshal(p.Data, &ch); err != nil || ch.Channel == "" {
			return models.SelectionContext{}, errors.New("channel selection requires channel")
		}
		return models.SelectionContext{Kind: models.SelectionChannel, Channel: &ch}, nil
	case models.SelectionNone, "":
		return models.SelectionContext{Kind: models.SelectionNone}, nil
	}
	return models.SelectionContext{}, errors.New("unknown selection type")
}
