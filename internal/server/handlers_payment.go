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

// handleCreatePayment records a ledger entry. There is no processing
// behind it: the status is forced to "completed" on write.
func (s *Server) handleCreatePayment(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	var paymentRequest struct {
		NurseryID   string  `json:"nurseryId"`
		ChildID     string  `json:"childId"`
		Amount      float64 `json:"amount"`
		Description string  `json:"description"`
	}

	if err := json.NewDecoder(r.Body).Decode(&paymentRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if paymentRequest.NurseryID == "" {
		respondError(w, http.StatusBadRequest, "Missing nurseryId")
		return
	}

	payment := records.Payment{
		ID:          records.NewPaymentID(),
		ParentID:    user.ID,
		NurseryID:   paymentRequest.NurseryID,
		ChildID:     paymentRequest.ChildID,
		Amount:      paymentRequest.Amount,
		Description: paymentRequest.Description,
		Status:      records.PaymentStatusCompleted,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.store.RecordPayment(r.Context(), payment); err != nil {
		s.logger.Error("Record payment failed", zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues("record_payment").Inc()
		respondError(w, http.StatusInternalServerError, "Failed to create payment")
		return
	}

	metrics.PaymentsRecordedTotal.Inc()

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"payment": payment,
	})
}

func (s *Server) handleNurseryPayments(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireUser(w, r); !ok {
		return
	}
	nurseryID := mux.Vars(r)["id"]

	payments, err := s.store.NurseryPayments(r.Context(), nurseryID)
	if err != nil {
		s.logger.Error("Get nursery payments failed", zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues("nursery_payments").Inc()
		respondError(w, http.StatusInternalServerError, "Failed to fetch payments")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"payments": payments})
}

func (s *Server) handleParentPayments(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	payments, err := s.store.ParentPayments(r.Context(), user.ID)
	if err != nil {
		s.logger.Error("Get parent payments failed", zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues("parent_payments").Inc()
		respondError(w, http.StatusInternalServerError, "Failed to fetch payments")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"payments": payments})
}
