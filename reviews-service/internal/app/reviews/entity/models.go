package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Названия коллекций MongoDB
const (
	ServicesCollection = "services"
	ReviewsCollection  = "reviews"
)

// Ключи полей документов
const (
	FieldID        = "_id"
	FieldName      = "name"
	FieldServiceID = "serviceId"
	FieldEmail     = "email"
	FieldMessage   = "message"
)

// Document - произвольный JSON-документ коллекции services или reviews.
// Схема не фиксируется: сохраняется то, что прислал клиент, плюс _id от хранилища
type Document map[string]interface{}

// String возвращает строковое значение поля или пустую строку
func (d Document) String(key string) string {
	if v, ok := d[key].(string); ok {
		return v
	}
	return ""
}

// Clone делает поверхностную копию, чтобы не менять тело запроса вызывающего
func (d Document) Clone() Document {
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// WithoutID возвращает копию без _id: идентификатор всегда назначает хранилище
func (d Document) WithoutID() Document {
	out := d.Clone()
	delete(out, FieldID)
	return out
}

// InsertResult - "сырой" результат вставки, как его отдает драйвер
type InsertResult struct {
	Acknowledged bool               `json:"acknowledged"`
	InsertedID   primitive.ObjectID `json:"insertedId"`
}

// Event типы доменных событий для Kafka
const (
	EventServiceCreated = "SERVICE_CREATED"
	EventReviewCreated  = "REVIEW_CREATED"
	EventReviewUpdated  = "REVIEW_UPDATED"
	EventReviewDeleted  = "REVIEW_DELETED"
)

type DomainEvent struct {
	EventType  string    `json:"event_type"`
	DocumentID string    `json:"document_id"`
	ServiceID  string    `json:"service_id,omitempty"`
	Email      string    `json:"email,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}
