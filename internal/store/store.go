// Package store is the only place that talks to MongoDB. It translates
// between external hex id strings and the internal ObjectID
// representation, so upper layers never handle ObjectIDs directly.
package store

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNoDocument is returned when an id does not resolve to a stored
// document. An id string that is not valid hex cannot resolve either,
// so it maps to the same error.
var ErrNoDocument = errors.New("store: no matching document")

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrNoDocument
	}
	return oid, nil
}
