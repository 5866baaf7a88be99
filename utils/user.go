package utils

import (
	"context"
	"time"

	"studyhub/db"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetUserIDFromEmail resolves an account's ObjectID from the email stored in
// the request context.
func GetUserIDFromEmail(email string) (primitive.ObjectID, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user, err := db.GetUserByEmail(ctx, email)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return user.ID, nil
}
