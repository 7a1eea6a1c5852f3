package repository

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MetricsServiceName метка service для метрик хранилища
const MetricsServiceName = "reviews-service"

// ParseObjectID принимает только 24-символьный hex ObjectID
func ParseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return oid, nil
}
