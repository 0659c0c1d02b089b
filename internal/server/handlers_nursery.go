package server

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/Dali-debug/Jinen/internal/metrics"
	"github.com/Dali-debug/Jinen/internal/records"
)

func (s *Server) handleCreateNursery(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	var nurseryRequest struct {
		Name            string  `json:"name"`
		Location        string  `json:"location"`
		Description     string  `json:"description"`
		Price           float64 `json:"price"`
		AvailablePlaces int     `json:"availablePlaces"`
		ImageURL        string  `json:"imageUrl"`
	}

	if err := json.NewDecoder(r.Body).Decode(&nurseryRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if nurseryRequest.Name == "" || nurseryRequest.Location == "" {
		respondError(w, http.StatusBadRequest, "Missing name or location")
		return
	}

	now := time.Now().UTC()
	nursery := records.Nursery{
		ID:              records.NewNurseryID(),
		OwnerID:         user.ID,
		Name:            nurseryRequest.Name,
		Location:        nurseryRequest.Location,
		Description:     nurseryRequest.Description,
		Price:           nurseryRequest.Price,
		AvailablePlaces: nurseryRequest.AvailablePlaces,
		ImageURL:        nurseryRequest.ImageURL,
		Rating:          0,
		RatingCount:     0,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.store.CreateNursery(r.Context(), nursery); err != nil {
		s.logger.Error("Create nursery failed", zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues("create_nursery").Inc()
		respondError(w, http.StatusInternalServerError, "Failed to create nursery")
		return
	}

	s.browseCache.Invalidate()
	metrics.NurseriesCreatedTotal.Inc()

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"nursery": nursery,
	})
}

func (s *Server) handleListNurseries(w http.ResponseWriter, r *http.Request) {
	filter, sortMode, err := parseBrowseQuery(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	nurseries, err := s.browseCache.List(r.Context())
	if err != nil {
		s.logger.Error("List nurseries failed", zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues("list_nurseries").Inc()
		respondError(w, http.StatusInternalServerError, "Failed to fetch nurseries")
		return
	}

	nurseries = filter.Apply(nurseries)
	records.SortNurseries(nurseries, sortMode)

	respondJSON(w, http.StatusOK, map[string]interface{}{"nurseries": nurseries})
}

func parseBrowseQuery(r *http.Request) (records.NurseryFilter, string, error) {
	filter := records.NurseryFilter{Query: r.URL.Query().Get("q")}

	parse := func(name string) (float64, error) {
		raw := r.URL.Query().Get(name)
		if raw == "" {
			return 0, nil
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil || value < 0 {
			return 0, errInvalidParam(name)
		}
		return value, nil
	}

	var err error
	if filter.MinPrice, err = parse("minPrice"); err != nil {
		return filter, "", err
	}
	if filter.MaxPrice, err = parse("maxPrice"); err != nil {
		return filter, "", err
	}
	if filter.MinRating, err = parse("minRating"); err != nil {
		return filter, "", err
	}

	return filter, r.URL.Query().Get("sort"), nil
}

type errInvalidParam string

func (e errInvalidParam) Error() string {
	return "Invalid value for '" + string(e) + "' parameter"
}

func (s *Server) handleGetNursery(w http.ResponseWriter, r *http.Request) {
	nurseryID := mux.Vars(r)["id"]

	nursery, err := s.store.GetNursery(r.Context(), nurseryID)
	if err != nil {
		s.respondStoreError(w, "get_nursery", "Nursery not found", "Failed to fetch nursery", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"nursery": nursery})
}

func (s *Server) handleUpdateNursery(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	nurseryID := mux.Vars(r)["id"]

	nursery, err := s.store.GetNursery(r.Context(), nurseryID)
	if err != nil {
		s.respondStoreError(w, "update_nursery", "Nursery not found", "Failed to update nursery", err)
		return
	}
	if nursery.OwnerID != user.ID {
		respondError(w, http.StatusForbidden, "Forbidden")
		return
	}

	var patch records.NurseryPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := s.store.UpdateNursery(r.Context(), nurseryID, patch)
	if err != nil {
		s.respondStoreError(w, "update_nursery", "Nursery not found", "Failed to update nursery", err)
		return
	}

	s.browseCache.Invalidate()

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"nursery": updated,
	})
}

func (s *Server) handleUploadImage(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	nurseryID := mux.Vars(r)["id"]

	nursery, err := s.store.GetNursery(r.Context(), nurseryID)
	if err != nil {
		s.respondStoreError(w, "upload_image", "Nursery not found", "Failed to upload image", err)
		return
	}
	if nursery.OwnerID != user.ID {
		respondError(w, http.StatusForbidden, "Forbidden")
		return
	}

	var uploadRequest struct {
		ImageData string `json:"imageData"`
		FileName  string `json:"fileName"`
	}

	if err := json.NewDecoder(r.Body).Decode(&uploadRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if uploadRequest.ImageData == "" || uploadRequest.FileName == "" {
		respondError(w, http.StatusBadRequest, "Missing imageData or fileName")
		return
	}

	data, err := decodeDataURL(uploadRequest.ImageData)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid image data")
		return
	}

	url, err := s.images.Put(r.Context(), nurseryID, uploadRequest.FileName, data)
	if err != nil {
		s.logger.Error("Image upload failed", zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues("upload_image").Inc()
		respondError(w, http.StatusInternalServerError, "Failed to upload image")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"url":     url,
	})
}

// decodeDataURL strips the "data:image/...;base64," prefix and decodes
// the payload. A bare base64 string is accepted too.
func decodeDataURL(imageData string) ([]byte, error) {
	payload := imageData
	if idx := strings.Index(imageData, ","); idx >= 0 {
		payload = imageData[idx+1:]
	}
	return base64.StdEncoding.DecodeString(payload)
}

func (s *Server) handlePutProgram(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	nurseryID := mux.Vars(r)["id"]

	var programRequest struct {
		Schedule   string `json:"schedule"`
		Activities string `json:"activities"`
	}

	if err := json.NewDecoder(r.Body).Decode(&programRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	program := records.Program{
		NurseryID:  nurseryID,
		Schedule:   programRequest.Schedule,
		Activities: programRequest.Activities,
		UpdatedBy:  user.ID,
		UpdatedAt:  time.Now().UTC(),
	}

	if err := s.store.PutProgram(r.Context(), program); err != nil {
		s.logger.Error("Update program failed", zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues("put_program").Inc()
		respondError(w, http.StatusInternalServerError, "Failed to update program")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"program": program,
	})
}

func (s *Server) handleGetProgram(w http.ResponseWriter, r *http.Request) {
	nurseryID := mux.Vars(r)["id"]

	program, err := s.store.GetProgram(r.Context(), nurseryID)
	if err != nil {
		if errors.Is(err, records.ErrNotFound) {
			// An unset program is not an error: the detail view renders
			// an empty state.
			respondJSON(w, http.StatusOK, map[string]interface{}{"program": nil})
			return
		}
		s.logger.Error("Get program failed", zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues("get_program").Inc()
		respondError(w, http.StatusInternalServerError, "Failed to fetch program")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"program": program})
}
