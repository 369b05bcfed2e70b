// Package mongo connects to MongoDB with the official v2 driver.
//
// Configuration comes from MONGODB_* environment variables. New retries the initial
// ping; NewWithDatabase also returns the configured database handle.
//
//	client, db, err := mongo.NewWithDatabase(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Disconnect(context.Background())
package mongo
