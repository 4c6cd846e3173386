package database

import (
	"context"
	"errors"
	"time"

	"github.com/HarshwardhanPatil07/Piyush-Lifespaces-Pvt-Ltd-sub000/config"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Error taxonomy crossed by every Service method. Route handlers are the only
// layer that maps these onto HTTP status codes; nothing below them panics or
// leaks driver errors upward untyped.
var (
	ErrInvalidID = errors.New("invalid id format")
	ErrNotFound  = errors.New("record not found")
)

// ValidationError lists the fields that failed shape validation.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	msg := "validation failed on field(s): " + e.Fields[0]
	for _, f := range e.Fields[1:] {
		msg += ", " + f
	}
	return msg
}

// IsValidation reports whether err is a shape-validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

var validate = validator.New()

// Model is implemented by every stored entity through models.BaseModel.
type Model interface {
	SetID(primitive.ObjectID)
	GetID() primitive.ObjectID
	StampCreate(time.Time)
	StampUpdate(time.Time)
}

// Service is the generic record access layer: one instance per collection,
// parametrized by the entity shape. Every call resolves the collection through
// the connection manager so a dropped connection heals transparently.
type Service[T any] struct {
	name string
}

func NewService[T any](collection string) *Service[T] {
	return &Service[T]{name: collection}
}

func (s *Service[T]) coll(ctx context.Context) (*mongo.Collection, error) {
	return config.Collection(ctx, s.name)
}

// ParseID validates an id string into an ObjectID.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}

func toValidationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
		}
		return &ValidationError{Fields: fields}
	}
	return err
}

// Create validates doc against its shape, stamps id and timestamps, and
// persists it.
func (s *Service[T]) Create(ctx context.Context, doc *T) (*T, error) {
	if err := validate.Struct(doc); err != nil {
		return nil, toValidationError(err)
	}
	if m, ok := any(doc).(Model); ok {
		m.StampCreate(time.Now())
	}
	coll, err := s.coll(ctx)
	if err != nil {
		return nil, err
	}
	res, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	if m, ok := any(doc).(Model); ok && m.GetID().IsZero() {
		if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
			m.SetID(oid)
		}
	}
	return doc, nil
}

// Find returns the matching documents plus the total match count ignoring
// skip/limit, so callers can compute page counts. An empty result is success.
func (s *Service[T]) Find(ctx context.Context, filter bson.M, opt FindOptions) ([]T, int64, error) {
	coll, err := s.coll(ctx)
	if err != nil {
		return nil, 0, err
	}
	if filter == nil {
		filter = bson.M{}
	}
	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	cursor, err := coll.Find(ctx, filter, opt.mongo())
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)
	docs := make([]T, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, err
	}
	return docs, total, nil
}

// FindOne returns the first match or ErrNotFound.
func (s *Service[T]) FindOne(ctx context.Context, filter bson.M) (*T, error) {
	coll, err := s.coll(ctx)
	if err != nil {
		return nil, err
	}
	var doc T
	if err := coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

func (s *Service[T]) FindByID(ctx context.Context, id string) (*T, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	return s.FindOne(ctx, bson.M{"_id": oid})
}

// UpdateByID applies a partial patch and returns the post-update document.
// The patch is re-validated against the shape by merging it into the current
// document before anything is written.
func (s *Service[T]) UpdateByID(ctx context.Context, id string, patch bson.M) (*T, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	current, err := s.FindOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, err
	}
	merged, err := mergePatch(current, patch)
	if err != nil {
		return nil, err
	}
	if err := validate.Struct(merged); err != nil {
		return nil, toValidationError(err)
	}

	coll, err := s.coll(ctx)
	if err != nil {
		return nil, err
	}
	patch["updatedAt"] = time.Now()
	after := options.After
	var updated T
	err = coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": patch},
		options.FindOneAndUpdate().SetReturnDocument(after),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &updated, nil
}

// mergePatch overlays top-level patch keys onto the stored document and
// decodes the result back into the shape for validation.
func mergePatch[T any](current *T, patch bson.M) (*T, error) {
	raw, err := bson.Marshal(current)
	if err != nil {
		return nil, err
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	for k, v := range patch {
		doc[k] = v
	}
	mergedRaw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var merged T
	if err := bson.Unmarshal(mergedRaw, &merged); err != nil {
		return nil, err
	}
	return &merged, nil
}

// IncrementByID bumps a counter field. Counters are only ever incremented by
// the normal flow, never decremented.
func (s *Service[T]) IncrementByID(ctx context.Context, id string, field string, by int64) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}
	coll, err := s.coll(ctx)
	if err != nil {
		return err
	}
	res, err := coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$inc": bson.M{field: by}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateMany applies a patch to every match and returns the modified count.
func (s *Service[T]) UpdateMany(ctx context.Context, filter, patch bson.M) (int64, error) {
	coll, err := s.coll(ctx)
	if err != nil {
		return 0, err
	}
	patch["updatedAt"] = time.Now()
	res, err := coll.UpdateMany(ctx, filter, bson.M{"$set": patch})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

// DeleteByID removes the record permanently. A missing record is an error,
// not a silent no-op.
func (s *Service[T]) DeleteByID(ctx context.Context, id string) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}
	coll, err := s.coll(ctx)
	if err != nil {
		return err
	}
	res, err := coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SoftDeleteByID marks the record inactive with a deletion timestamp instead
// of removing it. Calling it twice is harmless.
func (s *Service[T]) SoftDeleteByID(ctx context.Context, id string) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}
	coll, err := s.coll(ctx)
	if err != nil {
		return err
	}
	now := time.Now()
	res, err := coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"isActive": false, "deletedAt": now, "updatedAt": now}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Service[T]) Count(ctx context.Context, filter bson.M) (int64, error) {
	coll, err := s.coll(ctx)
	if err != nil {
		return 0, err
	}
	if filter == nil {
		filter = bson.M{}
	}
	return coll.CountDocuments(ctx, filter)
}

// Aggregate passes a pipeline through verbatim and decodes all results.
func (s *Service[T]) Aggregate(ctx context.Context, pipeline mongo.Pipeline, results interface{}) error {
	coll, err := s.coll(ctx)
	if err != nil {
		return err
	}
	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)
	return cursor.All(ctx, results)
}

// Search runs a full-text query over the collection's text index combined
// with arbitrary equality/range filters. Results default to relevance order
// unless opt.Sort overrides it.
func (s *Service[T]) Search(ctx context.Context, text string, filter bson.M, opt FindOptions) ([]T, int64, error) {
	q := bson.M{}
	for k, v := range filter {
		q[k] = v
	}
	q["$text"] = bson.M{"$search": text}
	if opt.Sort == nil {
		opt.Sort = bson.D{{Key: "score", Value: bson.M{"$meta": "textScore"}}}
		opt.Projection = bson.M{"score": bson.M{"$meta": "textScore"}}
	}
	return s.Find(ctx, q, opt)
}
