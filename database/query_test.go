package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestSortSpec(t *testing.T) {
	tests := []struct {
		name  string
		field string
		order string
		want  bson.D
	}{
		{
			name:  "defaults to newest first",
			field: "",
			order: "",
			want:  bson.D{{Key: "createdAt", Value: -1}},
		},
		{
			name:  "explicit ascending",
			field: "price",
			order: "asc",
			want:  bson.D{{Key: "price", Value: 1}},
		},
		{
			name:  "explicit descending",
			field: "views",
			order: "desc",
			want:  bson.D{{Key: "views", Value: -1}},
		},
		{
			name:  "unknown order falls back to descending",
			field: "title",
			order: "sideways",
			want:  bson.D{{Key: "title", Value: -1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SortSpec(tt.field, tt.order))
		})
	}
}

func TestPageWindow(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		limit    int
		wantSkip int64
		wantLim  int64
	}{
		{name: "first page", page: 1, limit: 10, wantSkip: 0, wantLim: 10},
		{name: "third page", page: 3, limit: 10, wantSkip: 20, wantLim: 10},
		{name: "custom limit", page: 2, limit: 25, wantSkip: 25, wantLim: 25},
		{name: "zero page clamps to first", page: 0, limit: 10, wantSkip: 0, wantLim: 10},
		{name: "negative limit clamps to default", page: 2, limit: -5, wantSkip: 10, wantLim: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skip, lim := PageWindow(tt.page, tt.limit)
			assert.Equal(t, tt.wantSkip, skip)
			assert.Equal(t, tt.wantLim, lim)
		})
	}
}

func TestFindOptionsMongo(t *testing.T) {
	opt := FindOptions{
		Sort:  bson.D{{Key: "createdAt", Value: -1}},
		Limit: 10,
		Skip:  20,
	}
	m := opt.mongo()
	assert.Equal(t, int64(10), *m.Limit)
	assert.Equal(t, int64(20), *m.Skip)
	assert.Equal(t, opt.Sort, m.Sort)

	empty := FindOptions{}.mongo()
	assert.Nil(t, empty.Limit)
	assert.Nil(t, empty.Skip)
	assert.Nil(t, empty.Sort)
}
