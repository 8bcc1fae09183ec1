package main

import (
	"context"
	"crypto/tls"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	mw "github.com/nanafox/simple-books-api/internal/api/middlewares"
	"github.com/nanafox/simple-books-api/internal/api/router"
	"github.com/nanafox/simple-books-api/internal/migrations"
	"github.com/nanafox/simple-books-api/internal/repository/sqlconnect"
	"github.com/nanafox/simple-books-api/pkg/utils"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
)

func main() {
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	db, err := sqlconnect.ConnectDB()
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer db.Close()

	if os.Getenv("AUTO_MIGRATE") != "0" {
		if err := runMigrations(db); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
	}

	chain := []utils.Middleware{
		mw.Cors,
		mw.ResponseTimeMiddleware,
		mw.BodySizeLimit,
		mw.Compression,
		mw.SecurityHeaders,
	}

	// Rate limiting is optional: it kicks in only when Redis is configured.
	if rdb := redisClient(); rdb != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := rdb.Ping(ctx).Err(); err != nil {
			cancel()
			log.Fatalf("Redis connection failed: %v", err)
		}
		cancel()
		fmt.Println("Connected to Redis, rate limiting enabled")

		tb := mw.NewRedisTokenBucket(rdb, 5, 20, mw.PerIPKey("tb"))
		chain = append(chain, tb.Middleware)
	}

	// RequestID before Recovery so panics log with an id.
	chain = append(chain, mw.RequestID, mw.Recovery)

	secureMux := utils.ApplyMiddleware(router.Router(db), chain...)

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           secureMux,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	fmt.Println("Server is running on port:", port)

	cert, key := os.Getenv("CERT_FILE"), os.Getenv("KEY_FILE")
	if cert != "" && key != "" {
		server.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		err = server.ListenAndServeTLS(cert, key)
	} else {
		err = server.ListenAndServe()
	}
	if err != nil {
		log.Fatalln("Error starting server:", err)
	}
}

func runMigrations(db *sql.DB) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db, ".")
}

// redisClient builds a client from either a full URL or split fields; nil
// when neither is set.
func redisClient() *redis.Client {
	if url := os.Getenv("UPSTASH_REDIS_URL"); url != "" {
		opt, err := redis.ParseURL(url) // e.g. rediss://default:<token>@host:port
		if err != nil {
			log.Fatalf("invalid UPSTASH_REDIS_URL: %v", err)
		}
		if opt.TLSConfig == nil {
			opt.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}
		opt.DialTimeout = 5 * time.Second
		opt.ReadTimeout = 1 * time.Second
		opt.WriteTimeout = 1 * time.Second
		return redis.NewClient(opt)
	}

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:         addr,
		Username:     os.Getenv("REDIS_USER"),
		Password:     os.Getenv("REDIS_PASSWORD"),
		DB:           0,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})
}
