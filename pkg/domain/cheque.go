package domain

import (
	"encoding/json"
)

// Cheque is a cheque record owned by the backend
type Cheque struct {
	ChequeNo        string `json:"chequeNo"`
	ApprovalGranted bool   `json:"approvalGranted"`
}

// UnmarshalJSON accepts the approval flag as either approvalGranted or
// approvalStatus, the latter being the name the backend serialises.
func (c *Cheque) UnmarshalJSON(data []byte) error {
	var raw struct {
		ChequeNo        string `json:"chequeNo"`
		ApprovalGranted *bool  `json:"approvalGranted"`
		ApprovalStatus  *bool  `json:"approvalStatus"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	c.ChequeNo = raw.ChequeNo
	switch {
	case raw.ApprovalGranted != nil:
		c.ApprovalGranted = *raw.ApprovalGranted
	case raw.ApprovalStatus != nil:
		c.ApprovalGranted = *raw.ApprovalStatus
	default:
		c.ApprovalGranted = false
	}

	return nil
}
