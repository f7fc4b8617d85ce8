package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mirrorlake/docsync/internal/logger"
	"github.com/mirrorlake/docsync/internal/service"
	"github.com/mirrorlake/docsync/internal/utils"
	"github.com/mirrorlake/docsync/models"
)

func (h *Handler) pushBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	replicaID, found := utils.GetReplicaIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.pushBatch").Msg("no replica ID was given")
		http.Error(w, "no replica ID was given", http.StatusUnauthorized)
		return
	}

	collection := chi.URLParam(r, "collection")
	if collection != h.services.Replication.Collection() {
		log.Error().Str("func", "*Handler.pushBatch").Str("collection", collection).Msg("unknown collection")
		http.Error(w, service.ErrUnknownCollection.Error(), http.StatusNotFound)
		return
	}

	var pushRequest models.PushRequest
	if err := json.NewDecoder(r.Body).Decode(&pushRequest); err != nil {
		log.Err(err).Str("func", "*Handler.pushBatch").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.Replication.HandlePush(ctx, replicaID, pushRequest.Documents); err != nil {
		log.Err(err).Str("func", "*Handler.pushBatch").Msg("error applying pushed batch")
		http.Error(w, "error applying pushed batch", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) pullSince(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	replicaID, found := utils.GetReplicaIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.pullSince").Msg("no replica ID was given")
		http.Error(w, "no replica ID was given", http.StatusUnauthorized)
		return
	}

	collection := chi.URLParam(r, "collection")
	if collection != h.services.Replication.Collection() {
		log.Error().Str("func", "*Handler.pullSince").Str("collection", collection).Msg("unknown collection")
		http.Error(w, service.ErrUnknownCollection.Error(), http.StatusNotFound)
		return
	}

	var pullRequest models.PullRequest
	if err := json.NewDecoder(r.Body).Decode(&pullRequest); err != nil {
		log.Err(err).Str("func", "*Handler.pullSince").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	response, err := h.services.Replication.HandlePull(ctx, replicaID, pullRequest.Checkpoint, pullRequest.Limit)
	if err != nil {
		log.Err(err).Str("func", "*Handler.pullSince").Msg("error reading pull window")
		http.Error(w, "error reading pull window", statusFromError(err))
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}
