package main

import (
	"context"
	"log"

	"github.com/TheUltraCommunity/Web-Chunauti-Server/config"
	"github.com/TheUltraCommunity/Web-Chunauti-Server/internal/bootstrap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	client, err := bootstrap.OpenMongo(context.Background(), bootstrap.MongoOptions{
		URI: cfg.Mongo.URI,
	})
	if err != nil {
		log.Fatalf("mongo: %v", err)
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "web-chunauti-server",
		Version:     cfg.App.Version,
		DB:          client.Database(cfg.Mongo.Database),
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal(err)
	}
}
