package contact

import "time"

type Message struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"not null;column:name" json:"name"`
	Email     string    `gorm:"not null;column:email" json:"email"`
	Subject   string    `gorm:"not null;column:subject" json:"subject"`
	Body      string    `gorm:"not null;column:message" json:"message"`
	Timestamp time.Time `gorm:"not null;index;column:timestamp" json:"timestamp"`
}

func (Message) TableName() string { return "messages" }

type MessageInput struct {
	Name    string
	Email   string
	Subject string
	Body    string
}

// MessageRequest is the POST /api/contact body. Every field must be present;
// empty strings pass.
type MessageRequest struct {
	Name    *string `json:"name" binding:"required"`
	Email   *string `json:"email" binding:"required"`
	Subject *string `json:"subject" binding:"required"`
	Message *string `json:"message" binding:"required"`
}

func (r MessageRequest) Input() MessageInput {
	return MessageInput{
		Name:    deref(r.Name),
		Email:   deref(r.Email),
		Subject: deref(r.Subject),
		Body:    deref(r.Message),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (in MessageInput) Model(ts time.Time) *Message {
	return &Message{
		Name:      in.Name,
		Email:     in.Email,
		Subject:   in.Subject,
		Body:      in.Body,
		Timestamp: ts.UTC(),
	}
}
