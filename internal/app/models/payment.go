package models

import "time"

// Payment is a monetary transaction applied against exactly one term.
type Payment struct {
	ID     int64     `json:"id" db:"payment_id"`
	Amount float64   `json:"amount" db:"amount"`
	Date   time.Time `json:"paymentDate" db:"payment_date"`
	TermID int64     `json:"termId" db:"term_id"`
}
