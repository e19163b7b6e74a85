package models

import "github.com/volatiletech/null"

// Coin is one entry of the upstream /coins listing.
type Coin struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Rank     int    `json:"rank"`
	IsNew    bool   `json:"is_new"`
	IsActive bool   `json:"is_active"`
	Type     string `json:"type"`
}

// CoinDetails extends Coin with descriptive metadata. The upstream feed is
// inconsistent across coins, so the descriptive fields are nullable and
// absence is not an error.
type CoinDetails struct {
	ID                string      `json:"id"`
	Name              string      `json:"name"`
	Symbol            string      `json:"symbol"`
	Rank              int         `json:"rank"`
	IsNew             bool        `json:"is_new"`
	IsActive          bool        `json:"is_active"`
	Type              string      `json:"type"`
	Description       null.String `json:"description,omitempty"`
	Message           null.String `json:"message,omitempty"`
	OpenSource        bool        `json:"open_source"`
	StartedAt         null.String `json:"started_at,omitempty"`
	DevelopmentStatus string      `json:"development_status"`
	HardwareWallet    bool        `json:"hardware_wallet"`
	ProofType         string      `json:"proof_type"`
	OrgStructure      string      `json:"org_structure"`
	HashAlgorithm     string      `json:"hash_algorithm"`
	FirstDataAt       string      `json:"first_data_at"`
	LastDataAt        string      `json:"last_data_at"`
}
