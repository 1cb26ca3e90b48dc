package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ApprovalStatus is the approval state shared by vendors, tenders and
// purchases. The set is closed; parsing rejects anything outside it.
type ApprovalStatus int

const (
	StatusPending ApprovalStatus = iota
	StatusApproved
	StatusRejected
)

var approvalStatusLabels = map[ApprovalStatus]string{
	StatusPending:  "pending",
	StatusApproved: "approved",
	StatusRejected: "rejected",
}

var approvalStatusCodes = map[string]ApprovalStatus{
	"pending":  StatusPending,
	"approved": StatusApproved,
	"rejected": StatusRejected,
}

func (s ApprovalStatus) String() string {
	if label, ok := approvalStatusLabels[s]; ok {
		return label
	}

	return "pending"
}

// ParseApprovalStatus returns the status for a given label (case-insensitive).
func ParseApprovalStatus(label string) (ApprovalStatus, bool) {
	status, ok := approvalStatusCodes[strings.ToLower(strings.TrimSpace(label))]

	return status, ok
}

func (s ApprovalStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *ApprovalStatus) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		return err
	}

	status, ok := ParseApprovalStatus(label)
	if !ok {
		return fmt.Errorf("unknown approval status %q", label)
	}
	*s = status

	return nil
}

// PurchaseCategory distinguishes ordinary purchases from the umbrella
// supply contracts (gas and consumable) whose rows feed the same recap.
type PurchaseCategory int

const (
	CategoryPurchase PurchaseCategory = iota
	CategoryKPG
	CategoryKPC
)

var purchaseCategoryLabels = map[PurchaseCategory]string{
	CategoryPurchase: "purchase",
	CategoryKPG:      "kpg",
	CategoryKPC:      "kpc",
}

var purchaseCategoryCodes = map[string]PurchaseCategory{
	"purchase": CategoryPurchase,
	"kpg":      CategoryKPG,
	"kpc":      CategoryKPC,
}

func (c PurchaseCategory) String() string {
	if label, ok := purchaseCategoryLabels[c]; ok {
		return label
	}

	return "purchase"
}

// ParsePurchaseCategory returns the category for a given label (case-insensitive).
func ParsePurchaseCategory(label string) (PurchaseCategory, bool) {
	category, ok := purchaseCategoryCodes[strings.ToLower(strings.TrimSpace(label))]

	return category, ok
}

func (c PurchaseCategory) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *PurchaseCategory) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		return err
	}

	category, ok := ParsePurchaseCategory(label)
	if !ok {
		return fmt.Errorf("unknown purchase category %q", label)
	}
	*c = category

	return nil
}
