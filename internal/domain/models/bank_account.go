package models

// BankAccount is a destination account for manual transfers.
type BankAccount struct {
	ID            string `json:"id"`
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	AccountName   string `json:"accountName"`
	Logo          string `json:"logo"`
	IsActive      bool   `json:"isActive"`
}
