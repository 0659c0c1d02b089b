package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/Dali-debug/Jinen/internal/metrics"
	"github.com/Dali-debug/Jinen/internal/records"
)

func (s *Server) handleRegisterChild(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	var childRequest struct {
		Name      string `json:"name"`
		Age       string `json:"age"`
		NurseryID string `json:"nurseryId"`
		Notes     string `json:"notes"`
	}

	if err := json.NewDecoder(r.Body).Decode(&childRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if childRequest.Name == "" || childRequest.NurseryID == "" {
		respondError(w, http.StatusBadRequest, "Missing name or nurseryId")
		return
	}

	// The registration fans out into the nursery's children index; refuse
	// to index against a nursery that does not exist.
	if _, err := s.store.GetNursery(r.Context(), childRequest.NurseryID); err != nil {
		s.respondStoreError(w, "register_child", "Nursery not found", "Failed to register child", err)
		return
	}

	child := records.Child{
		ID:        records.NewChildID(),
		ParentID:  user.ID,
		NurseryID: childRequest.NurseryID,
		Name:      childRequest.Name,
		Age:       childRequest.Age,
		Notes:     childRequest.Notes,
		Status:    records.ChildStatusPending,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.store.RegisterChild(r.Context(), child); err != nil {
		s.logger.Error("Register child failed", zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues("register_child").Inc()
		respondError(w, http.StatusInternalServerError, "Failed to register child")
		return
	}

	metrics.ChildrenRegisteredTotal.Inc()

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"child":   child,
	})
}

func (s *Server) handleParentChildren(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	children, err := s.store.ParentChildren(r.Context(), user.ID)
	if err != nil {
		s.logger.Error("Get parent children failed", zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues("parent_children").Inc()
		respondError(w, http.StatusInternalServerError, "Failed to fetch children")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"children": children})
}

func (s *Server) handleNurseryChildren(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireUser(w, r); !ok {
		return
	}
	nurseryID := mux.Vars(r)["id"]

	children, err := s.store.NurseryChildren(r.Context(), nurseryID)
	if err != nil {
		s.logger.Error("Get nursery children failed", zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues("nursery_children").Inc()
		respondError(w, http.StatusInternalServerError, "Failed to fetch children")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"children": children})
}

// handleChildStatus moves a registration out of "pending". Only the owner
// of the nursery the child was registered against may decide.
func (s *Server) handleChildStatus(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	childID := mux.Vars(r)["id"]

	var statusRequest struct {
		Status string `json:"status"`
	}

	if err := json.NewDecoder(r.Body).Decode(&statusRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	child, err := s.store.GetChild(r.Context(), childID)
	if err != nil {
		s.respondStoreError(w, "child_status", "Child not found", "Failed to update child status", err)
		return
	}

	nursery, err := s.store.GetNursery(r.Context(), child.NurseryID)
	if err != nil {
		s.respondStoreError(w, "child_status", "Nursery not found", "Failed to update child status", err)
		return
	}
	if nursery.OwnerID != user.ID {
		respondError(w, http.StatusForbidden, "Forbidden")
		return
	}

	updated, err := s.store.SetChildStatus(r.Context(), childID, statusRequest.Status)
	if err != nil {
		s.respondStoreError(w, "child_status", "Child not found", "Failed to update child status", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"child":   updated,
	})
}

func (s *Server) handlePostChildUpdate(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	childID := mux.Vars(r)["id"]

	var updateRequest struct {
		Title   string `json:"title"`
		Content string `json:"content"`
		Type    string `json:"type"`
	}

	if err := json.NewDecoder(r.Body).Decode(&updateRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	update := records.ChildUpdate{
		ID:        records.NewUpdateID(),
		ChildID:   childID,
		Title:     updateRequest.Title,
		Content:   updateRequest.Content,
		Type:      updateRequest.Type,
		CreatedBy: user.ID,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.store.AddChildUpdate(r.Context(), update); err != nil {
		s.logger.Error("Post child update failed", zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues("post_child_update").Inc()
		respondError(w, http.StatusInternalServerError, "Failed to post update")
		return
	}

	metrics.ChildUpdatesPostedTotal.Inc()

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"update":  update,
	})
}

func (s *Server) handleChildUpdates(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireUser(w, r); !ok {
		return
	}
	childID := mux.Vars(r)["id"]

	updates, err := s.store.ChildUpdates(r.Context(), childID)
	if err != nil {
		s.logger.Error("Get child updates failed", zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues("child_updates").Inc()
		respondError(w, http.StatusInternalServerError, "Failed to fetch updates")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"updates": updates})
}
