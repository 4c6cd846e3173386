package database

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FindOptions carries the query shaping every list endpoint uses: sort,
// skip/limit pagination and an optional projection.
type FindOptions struct {
	Sort       bson.D
	Limit      int64
	Skip       int64
	Projection interface{}
}

func (o FindOptions) mongo() *options.FindOptions {
	opts := options.Find()
	if o.Sort != nil {
		opts.SetSort(o.Sort)
	}
	if o.Limit > 0 {
		opts.SetLimit(o.Limit)
	}
	if o.Skip > 0 {
		opts.SetSkip(o.Skip)
	}
	if o.Projection != nil {
		opts.SetProjection(o.Projection)
	}
	return opts
}

// SortSpec maps a field/order pair from the query string onto a mongo sort
// document. Anything other than "asc" sorts descending; an empty field falls
// back to newest-first.
func SortSpec(field, order string) bson.D {
	if field == "" {
		field = "createdAt"
	}
	dir := -1
	if order == "asc" {
		dir = 1
	}
	return bson.D{{Key: field, Value: dir}}
}

// PageWindow converts 1-indexed page/limit values into a skip/limit pair,
// clamping to the defaults (page 1, limit 10) on nonsense input.
func PageWindow(page, limit int) (skip, lim int64) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return int64(page-1) * int64(limit), int64(limit)
}
