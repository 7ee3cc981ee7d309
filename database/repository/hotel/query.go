package hotelRepo

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
)

// BuildFilter translates a HotelQuery into the Mongo filter document. The
// isActive guard is unconditional so soft-deleted hotels never surface.
func BuildFilter(q HotelQuery) bson.M {
	filter := bson.M{"isActive": true}

	if q.Location != "" {
		filter["location"] = bson.M{
			"$regex":   regexp.QuoteMeta(q.Location),
			"$options": "i",
		}
	}

	if q.MinPrice != nil || q.MaxPrice != nil {
		price := bson.M{}
		if q.MinPrice != nil {
			price["$gte"] = *q.MinPrice
		}
		if q.MaxPrice != nil {
			price["$lte"] = *q.MaxPrice
		}
		filter["price"] = price
	}

	if q.MinRating != nil {
		filter["rating"] = bson.M{"$gte": *q.MinRating}
	}

	return filter
}

// BuildSort translates the sort selector into a Mongo sort document. A
// secondary key on id keeps the ordering deterministic across equal values.
func BuildSort(sortBy string) bson.D {
	var primary bson.E
	switch sortBy {
	case SortPriceDesc:
		primary = bson.E{Key: "price", Value: -1}
	case SortRating:
		primary = bson.E{Key: "rating", Value: -1}
	case SortName:
		primary = bson.E{Key: "name", Value: 1}
	default:
		primary = bson.E{Key: "price", Value: 1}
	}
	return bson.D{primary, {Key: "id", Value: 1}}
}
