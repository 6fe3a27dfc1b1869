package repository

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"shophub/internal/model"
)

// ListFilter carries the optional catalog list parameters.
type ListFilter struct {
	// Search is matched against the text index over title and
	// shortDescription. Blank or whitespace-only means no search filter.
	Search string
	// Category is an exact-match filter. Empty or the "All Categories"
	// sentinel means no filter. The value is not checked against the
	// category enum here: an unknown label simply matches nothing.
	Category string
}

// BuildListQuery translates a ListFilter into a Mongo filter document and
// find options. The sort order is always newest-first by creation time,
// regardless of which filters are applied.
func BuildListQuery(f ListFilter) (bson.M, *options.FindOptions) {
	query := bson.M{}

	if search := strings.TrimSpace(f.Search); search != "" {
		query["$text"] = bson.M{"$search": search}
	}

	if f.Category != "" && f.Category != model.AllCategoriesSentinel {
		query["category"] = f.Category
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return query, opts
}
