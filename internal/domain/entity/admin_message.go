package entity

import "time"

// AdminMessage is a broadcast sent by an administrator to the residents of an
// explicit list of condominiums. A limited sender's target list is narrowed
// to their own allow-list before anything is written.
type AdminMessage struct {
	ID             int64     `json:"id"`
	SenderID       int64     `json:"sender_id"`
	Title          string    `json:"title"`
	Body           string    `json:"body"`
	CondominiumIDs []int64   `json:"condominium_ids"`
	CreatedAt      time.Time `json:"created_at"`
}
