package domain

import "time"

type Message struct {
	ID            string    `json:"id"`
	SenderID      string    `json:"sender_id"`
	SenderName    string    `json:"sender_name,omitempty"`
	RecipientID   string    `json:"recipient_id"`
	RecipientName string    `json:"recipient_name,omitempty"`
	Subject       string    `json:"subject"`
	Content       string    `json:"content"`
	IsRead        bool      `json:"is_read"`
	CreatedOn     time.Time `json:"created_on"`
}
