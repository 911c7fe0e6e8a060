// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

/*
EnsureAll is called at startup. Index creation is idempotent (CreateMany is a
no-op for indexes that already exist with the same keys and options). Errors
are aggregated so every problem is visible and startup can fail fast.

The unique indexes back the natural keys the API relies on: application-level
`id` strings per collection and the (propertyId, lob) composite key for the
per-LOB collections. Upserts still enforce those keys on their own; the
indexes make the guarantee durable and the lookups cheap.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	ensure := func(coll string, models []mongo.IndexModel) {
		zap.L().Info("ensuring indexes", zap.String("collection", coll), zap.Int("count", len(models)))
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			problems = append(problems, coll+": "+err.Error())
		}
	}

	ensure("users", []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetName("idx_users_id").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "username", Value: 1}, {Key: "role", Value: 1}},
			Options: options.Index().SetName("idx_users_username_role").SetUnique(true),
		},
	})

	ensure("sessions", []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "token", Value: 1}},
			Options: options.Index().SetName("idx_sessions_token").SetUnique(true),
		},
	})

	ensure("proposals", []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetName("idx_proposals_id").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "status", Value: 1}},
			Options: options.Index().SetName("idx_proposals_status"),
		},
	})

	ensure("properties", []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetName("idx_properties_id").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "state", Value: 1}},
			Options: options.Index().SetName("idx_properties_state"),
		},
		{
			Keys:    bson.D{{Key: "customerId", Value: 1}},
			Options: options.Index().SetName("idx_properties_customer"),
		},
		{
			Keys:    bson.D{{Key: "lobs", Value: 1}},
			Options: options.Index().SetName("idx_properties_lobs"),
		},
	})

	for _, coll := range []string{"exposures", "limits", "whatif"} {
		ensure(coll, []mongo.IndexModel{
			{
				Keys:    bson.D{{Key: "propertyId", Value: 1}, {Key: "lob", Value: 1}},
				Options: options.Index().SetName("idx_" + coll + "_property_lob").SetUnique(true),
			},
		})
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}
