package dto

import (
	"github.com/kasozib/bar_pos_backend/internal/core/domain"
)

// CreateAccountRequest is the payload for registering a ledger account.
type CreateAccountRequest struct {
	Name        string `json:"name" binding:"required"`
	Type        string `json:"type" binding:"required,accounttype"`
	Description string `json:"description"`
}

// UpdateAccountRequest is the payload for editing a ledger account.
type UpdateAccountRequest struct {
	Name        string `json:"name" binding:"required"`
	Type        string `json:"type" binding:"required,accounttype"`
	Description string `json:"description"`
}

// AccountResponse is the external representation of an account.
type AccountResponse struct {
	AccountID   string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

// ToAccountResponse maps a domain account to its response form.
func ToAccountResponse(a domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:   a.AccountID,
		Name:        a.Name,
		Type:        string(a.Type),
		Description: a.Description,
	}
}

// ToAccountResponses maps a slice of domain accounts.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	out := make([]AccountResponse, len(accounts))
	for i, a := range accounts {
		out[i] = ToAccountResponse(a)
	}
	return out
}
