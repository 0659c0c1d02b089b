package records

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Dali-debug/Jinen/internal/kvstore"
)

type Store struct {
	kv kvstore.Store
}

func NewStore(kv kvstore.Store) *Store {
	return &Store{kv: kv}
}

// ---------- users ----------

func (s *Store) CreateUser(ctx context.Context, user User) error {
	return s.kv.Set(ctx, userKey(user.ID), user)
}

func (s *Store) GetUser(ctx context.Context, userID string) (*User, error) {
	var user User
	if err := s.kv.Get(ctx, userKey(userID), &user); err != nil {
		return nil, mapErr(err)
	}
	return &user, nil
}

// Profile returns the user record, with the owned nursery embedded for
// nursery accounts.
func (s *Store) Profile(ctx context.Context, userID string) (*Profile, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile := &Profile{User: *user}
	if user.UserType == UserTypeNursery {
		nursery, err := s.NurseryByOwner(ctx, userID)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return nil, err
		}
		profile.Nursery = nursery
	}
	return profile, nil
}

// ---------- nurseries ----------

// CreateNursery writes the nursery record and the owner's single-valued
// nursery pointer in one atomic step. The pointer is last-write-wins: a
// nursery account owns at most one nursery.
func (s *Store) CreateNursery(ctx context.Context, nursery Nursery) error {
	return s.kv.Update(ctx, func(txn kvstore.Txn) error {
		if err := txn.Set(ctx, nursery.ID, nursery); err != nil {
			return err
		}
		return txn.Set(ctx, ownerNurseryKey(nursery.OwnerID), nursery.ID)
	})
}

func (s *Store) GetNursery(ctx context.Context, nurseryID string) (*Nursery, error) {
	var nursery Nursery
	if err := s.kv.Get(ctx, nurseryID, &nursery); err != nil {
		return nil, mapErr(err)
	}
	return &nursery, nil
}

func (s *Store) NurseryByOwner(ctx context.Context, userID string) (*Nursery, error) {
	var nurseryID string
	if err := s.kv.Get(ctx, ownerNurseryKey(userID), &nurseryID); err != nil {
		return nil, mapErr(err)
	}
	return s.GetNursery(ctx, nurseryID)
}

// ListNurseries scans the nursery: prefix. The scan also matches index
// lists and program records living under nursery-prefixed keys, so
// anything that does not decode to a nursery record is skipped.
func (s *Store) ListNurseries(ctx context.Context) ([]Nursery, error) {
	values, err := s.kv.GetByPrefix(ctx, "nursery:")
	if err != nil {
		return nil, err
	}

	nurseries := make([]Nursery, 0, len(values))
	for _, raw := range values {
		var nursery Nursery
		if err := json.Unmarshal(raw, &nursery); err != nil {
			continue
		}
		if nursery.ID == "" || nursery.OwnerID == "" {
			continue
		}
		nurseries = append(nurseries, nursery)
	}
	return nurseries, nil
}

// UpdateNursery merges the patch into the stored record and refreshes
// updatedAt. The read and write share a transaction so two concurrent
// patches cannot silently drop each other's fields.
func (s *Store) UpdateNursery(ctx context.Context, nurseryID string, patch NurseryPatch) (*Nursery, error) {
	var nursery Nursery
	err := s.kv.Update(ctx, func(txn kvstore.Txn) error {
		if err := txn.Get(ctx, nurseryID, &nursery); err != nil {
			return mapErr(err)
		}
		applyPatch(&nursery, patch)
		nursery.UpdatedAt = time.Now().UTC()
		return txn.Set(ctx, nurseryID, nursery)
	})
	if err != nil {
		return nil, err
	}
	return &nursery, nil
}

func applyPatch(nursery *Nursery, patch NurseryPatch) {
	if patch.Name != nil {
		nursery.Name = *patch.Name
	}
	if patch.Location != nil {
		nursery.Location = *patch.Location
	}
	if patch.Description != nil {
		nursery.Description = *patch.Description
	}
	if patch.Price != nil {
		nursery.Price = *patch.Price
	}
	if patch.AvailablePlaces != nil {
		nursery.AvailablePlaces = *patch.AvailablePlaces
	}
	if patch.ImageURL != nil {
		nursery.ImageURL = *patch.ImageURL
	}
}

// ---------- children ----------

// RegisterChild writes the child record and fans it out to the parent's
// and the nursery's children indexes in one transaction.
func (s *Store) RegisterChild(ctx context.Context, child Child) error {
	return s.kv.Update(ctx, func(txn kvstore.Txn) error {
		if err := txn.Set(ctx, child.ID, child); err != nil {
			return err
		}
		if err := appendIndex(ctx, txn, parentChildrenKey(child.ParentID), child.ID); err != nil {
			return err
		}
		return appendIndex(ctx, txn, nurseryChildrenKey(child.NurseryID), child.ID)
	})
}

func (s *Store) GetChild(ctx context.Context, childID string) (*Child, error) {
	var child Child
	if err := s.kv.Get(ctx, childID, &child); err != nil {
		return nil, mapErr(err)
	}
	return &child, nil
}

func (s *Store) ParentChildren(ctx context.Context, userID string) ([]Child, error) {
	var children []Child
	if err := s.hydrateIndex(ctx, parentChildrenKey(userID), &children); err != nil {
		return nil, err
	}
	return children, nil
}

// NurseryChildren embeds each registering parent's user record so the
// nursery dashboard can show who filed the registration.
func (s *Store) NurseryChildren(ctx context.Context, nurseryID string) ([]ChildWithParent, error) {
	var children []Child
	if err := s.hydrateIndex(ctx, nurseryChildrenKey(nurseryID), &children); err != nil {
		return nil, err
	}

	parents, err := s.usersByID(ctx, parentIDs(children))
	if err != nil {
		return nil, err
	}

	out := make([]ChildWithParent, 0, len(children))
	for _, child := range children {
		out = append(out, ChildWithParent{
			Child:      child,
			ParentInfo: parents[child.ParentID],
		})
	}
	return out, nil
}

// SetChildStatus moves a pending registration to approved or rejected.
// No further transitions are modeled.
func (s *Store) SetChildStatus(ctx context.Context, childID, status string) (*Child, error) {
	if status != ChildStatusApproved && status != ChildStatusRejected {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTransition, status)
	}

	var child Child
	err := s.kv.Update(ctx, func(txn kvstore.Txn) error {
		if err := txn.Get(ctx, childID, &child); err != nil {
			return mapErr(err)
		}
		if child.Status != ChildStatusPending {
			return fmt.Errorf("%w: child is %q", ErrInvalidTransition, child.Status)
		}
		child.Status = status
		child.UpdatedAt = time.Now().UTC()
		return txn.Set(ctx, childID, child)
	})
	if err != nil {
		return nil, err
	}
	return &child, nil
}

// ---------- diary updates ----------

func (s *Store) AddChildUpdate(ctx context.Context, update ChildUpdate) error {
	return s.kv.Update(ctx, func(txn kvstore.Txn) error {
		if err := txn.Set(ctx, update.ID, update); err != nil {
			return err
		}
		return prependIndex(ctx, txn, childUpdatesKey(update.ChildID), update.ID)
	})
}

// ChildUpdates returns diary entries newest first.
func (s *Store) ChildUpdates(ctx context.Context, childID string) ([]ChildUpdate, error) {
	var updates []ChildUpdate
	if err := s.hydrateIndex(ctx, childUpdatesKey(childID), &updates); err != nil {
		return nil, err
	}
	return updates, nil
}

// ---------- programs ----------

// PutProgram replaces the nursery's program record. A single record with
// no history is kept per nursery.
func (s *Store) PutProgram(ctx context.Context, program Program) error {
	return s.kv.Set(ctx, programKey(program.NurseryID), program)
}

func (s *Store) GetProgram(ctx context.Context, nurseryID string) (*Program, error) {
	var program Program
	if err := s.kv.Get(ctx, programKey(nurseryID), &program); err != nil {
		return nil, mapErr(err)
	}
	return &program, nil
}

// ---------- payments ----------

// RecordPayment writes the ledger entry and prepends it to both payment
// histories atomically.
func (s *Store) RecordPayment(ctx context.Context, payment Payment) error {
	return s.kv.Update(ctx, func(txn kvstore.Txn) error {
		if err := txn.Set(ctx, payment.ID, payment); err != nil {
			return err
		}
		if err := prependIndex(ctx, txn, nurseryPaymentsKey(payment.NurseryID), payment.ID); err != nil {
			return err
		}
		return prependIndex(ctx, txn, parentPaymentsKey(payment.ParentID), payment.ID)
	})
}

func (s *Store) NurseryPayments(ctx context.Context, nurseryID string) ([]PaymentWithParent, error) {
	var payments []Payment
	if err := s.hydrateIndex(ctx, nurseryPaymentsKey(nurseryID), &payments); err != nil {
		return nil, err
	}

	parents, err := s.usersByID(ctx, paymentParentIDs(payments))
	if err != nil {
		return nil, err
	}

	out := make([]PaymentWithParent, 0, len(payments))
	for _, payment := range payments {
		out = append(out, PaymentWithParent{
			Payment:    payment,
			ParentInfo: parents[payment.ParentID],
		})
	}
	return out, nil
}

func (s *Store) ParentPayments(ctx context.Context, userID string) ([]Payment, error) {
	var payments []Payment
	if err := s.hydrateIndex(ctx, parentPaymentsKey(userID), &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// ---------- hydration helpers ----------

// hydrateIndex reads an index list and multi-gets its records into dest
// (a pointer to a slice), preserving index order. Ids whose record is
// missing are dropped rather than surfaced as an error: the store offers
// no referential integrity, so a dangling id must not break a list view.
func (s *Store) hydrateIndex(ctx context.Context, indexKey string, dest interface{}) error {
	var ids []string
	if err := s.kv.Get(ctx, indexKey, &ids); err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return nil
		}
		return err
	}
	if len(ids) == 0 {
		return nil
	}

	values, err := s.kv.MGet(ctx, ids)
	if err != nil {
		return err
	}

	present := make([]json.RawMessage, 0, len(values))
	for _, raw := range values {
		if raw != nil {
			present = append(present, raw)
		}
	}

	joined, err := json.Marshal(present)
	if err != nil {
		return err
	}
	return json.Unmarshal(joined, dest)
}

func (s *Store) usersByID(ctx context.Context, userIDs []string) (map[string]*User, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	keys := make([]string, len(userIDs))
	for i, id := range userIDs {
		keys[i] = userKey(id)
	}

	values, err := s.kv.MGet(ctx, keys)
	if err != nil {
		return nil, err
	}

	users := make(map[string]*User, len(userIDs))
	for _, raw := range values {
		if raw == nil {
			continue
		}
		var user User
		if err := json.Unmarshal(raw, &user); err != nil {
			return nil, err
		}
		users[user.ID] = &user
	}
	return users, nil
}

func parentIDs(children []Child) []string {
	seen := make(map[string]bool, len(children))
	ids := make([]string, 0, len(children))
	for _, child := range children {
		if !seen[child.ParentID] {
			seen[child.ParentID] = true
			ids = append(ids, child.ParentID)
		}
	}
	return ids
}

func paymentParentIDs(payments []Payment) []string {
	seen := make(map[string]bool, len(payments))
	ids := make([]string, 0, len(payments))
	for _, payment := range payments {
		if !seen[payment.ParentID] {
			seen[payment.ParentID] = true
			ids = append(ids, payment.ParentID)
		}
	}
	return ids
}

func mapErr(err error) error {
	if errors.Is(err, kvstore.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
