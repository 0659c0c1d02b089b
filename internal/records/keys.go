package records

import "github.com/google/uuid"

// Key layout of the flat namespace. Nursery, child, update and payment ids
// are their own store keys; user ids are bare and get prefixed.
func userKey(userID string) string         { return "user:" + userID }
func ownerNurseryKey(userID string) string { return "user:" + userID + ":nursery" }

func parentChildrenKey(userID string) string   { return "parent:" + userID + ":children" }
func nurseryChildrenKey(nurseryID string) string { return "nursery:" + nurseryID + ":children" }

func childUpdatesKey(childID string) string { return "child:" + childID + ":updates" }

func nurseryPaymentsKey(nurseryID string) string { return "nursery:" + nurseryID + ":payments" }
func parentPaymentsKey(userID string) string     { return "parent:" + userID + ":payments" }

func programKey(nurseryID string) string { return nurseryID + ":program" }

func NewNurseryID() string { return "nursery:" + uuid.NewString() }
func NewChildID() string   { return "child:" + uuid.NewString() }
func NewUpdateID() string  { return "update:" + uuid.NewString() }
func NewPaymentID() string { return "payment:" + uuid.NewString() }
