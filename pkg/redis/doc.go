// Package redis connects to Redis with go-redis/v9.
//
// Connect retries the initial ping according to Config (REDIS_* environment variables)
// and Healthcheck exposes the same ping for the health endpoint.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
package redis
