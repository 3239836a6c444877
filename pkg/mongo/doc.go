// Package mongo opens the MongoDB database that stores portfolio content and
// users, and holds the small helpers repositories share: index creation,
// health checks and driver error classification.
//
//	db, client, err := mongo.Open(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Disconnect(context.Background())
package mongo
