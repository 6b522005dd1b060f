package models

import (
	"time"

	"github.com/google/uuid"
)

type NotificationVariant string

const (
	NotificationDefault     NotificationVariant = "default"
	NotificationDestructive NotificationVariant = "destructive"
	NotificationWarning     NotificationVariant = "warning"
)

// Notification - короткое уведомление для пользователя ("тост")
type Notification struct {
	ID          uuid.UUID           `json:"id"`
	Variant     NotificationVariant `json:"variant"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	CreatedAt   time.Time           `json:"created_at"`
}

func NewNotification(variant NotificationVariant, title, description string) Notification {
	return Notification{
		ID:          uuid.New(),
		Variant:     variant,
		Title:       title,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
}

// ErrorNotification - уведомление об ошибке с заголовком "Error"
func ErrorNotification(description string) Notification {
	return NewNotification(NotificationDestructive, "Error", description)
}
