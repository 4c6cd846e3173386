package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BaseModel carries the fields every stored document shares. Embed it with
// bson:",inline" so the fields land at the document root.
type BaseModel struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (b *BaseModel) SetID(id primitive.ObjectID) { b.ID = id }

func (b *BaseModel) GetID() primitive.ObjectID { return b.ID }

func (b *BaseModel) StampCreate(now time.Time) {
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	b.CreatedAt = now
	b.UpdatedAt = now
}

func (b *BaseModel) StampUpdate(now time.Time) { b.UpdatedAt = now }

// Envelope is the uniform JSON response shape returned by every route.
type Envelope struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data,omitempty"`
	Error      string      `json:"error,omitempty"`
	Message    string      `json:"message,omitempty"`
	Total      *int64      `json:"total,omitempty"`
	Page       *int        `json:"page,omitempty"`
	Limit      *int        `json:"limit,omitempty"`
	TotalPages *int        `json:"totalPages,omitempty"`
}

func OK(data interface{}) Envelope {
	return Envelope{Success: true, Data: data}
}

func OKMessage(data interface{}, message string) Envelope {
	return Envelope{Success: true, Data: data, Message: message}
}

func Fail(err string) Envelope {
	return Envelope{Success: false, Error: err}
}

// OKList wraps a paginated result set. totalPages is ceil(total/limit).
func OKList(data interface{}, total int64, page, limit int) Envelope {
	totalPages := TotalPages(total, limit)
	return Envelope{
		Success:    true,
		Data:       data,
		Total:      &total,
		Page:       &page,
		Limit:      &limit,
		TotalPages: &totalPages,
	}
}

func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
