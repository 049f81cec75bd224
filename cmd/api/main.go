package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/harentsoaR/doctors-portal-api/internal/config"
	"github.com/harentsoaR/doctors-portal-api/internal/handlers"
	"github.com/harentsoaR/doctors-portal-api/internal/middleware"
	"github.com/harentsoaR/doctors-portal-api/internal/services"
	"github.com/harentsoaR/doctors-portal-api/internal/store"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("server: %v", err)
	}
}

// run serves until a signal arrives or the listener fails. Deferred cleanup
// runs on both paths before main exits.
func run() error {
	cfg := config.Load()
	cfg.LogSummary()

	// --- Database Connection ---
	client, db := connectMongo(cfg)
	if client != nil {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := client.Disconnect(ctx); err != nil {
				log.Printf("mongo disconnect: %v", err)
			}
		}()
	}

	// --- Initialize Services ---
	verifier := newVerifier(cfg)
	payments := services.NewStripeGateway(cfg.StripeSecretKey)

	h := handlers.NewHandler(store.NewMongoStore(db), payments)

	// --- Gin Router ---
	r := newRouter(cfg)

	// ---  Middleware ---
	r.Use(middleware.RequestIDMiddleware())
	r.Use(gzip.Gzip(gzip.BestSpeed))
	r.Use(cors.New(corsConfig(cfg.CORSOrigins)))

	var limiter *middleware.RateLimiter
	stop := make(chan struct{})
	if cfg.PaymentRateLimit > 0 {
		limiter = middleware.NewRateLimiter(cfg.PaymentRateLimit, cfg.PaymentRateBurst)
		go limiter.Cleanup(time.Minute, 3*time.Minute, stop)
	}

	// --- Routes ---
	h.RegisterRoutes(r, verifier, limiter)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}
	serveErr := make(chan error, 1)
	go func() {
		log.Printf("Running Server at %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	var listenErr error
	select {
	case <-ch:
		log.Println("shutting down")
	case listenErr = <-serveErr:
		log.Printf("listen: %v", listenErr)
	}
	close(stop)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("http shutdown: %v", err)
	}
	return listenErr
}

// newRouter builds the engine. Only peers listed in TRUSTED_PROXIES may set
// the client address through X-Forwarded-For; otherwise the socket address
// is used.
func newRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		log.Printf("invalid TRUSTED_PROXIES %v, trusting none: %v", cfg.TrustedProxies, err)
		_ = r.SetTrustedProxies(nil)
	}
	return r
}

// connectMongo opens the shared client. Failures are logged and the server
// still starts; handlers then report the database as unavailable.
func connectMongo(cfg *config.Config) (*mongo.Client, *mongo.Database) {
	if cfg.MongoURI == "" {
		log.Println("No MongoDB URI configured, starting without a database.")
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Printf("Failed to connect to MongoDB: %v", err)
		return nil, nil
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Printf("MongoDB ping failed, requests will retry through the driver: %v", err)
	} else {
		log.Println("Successfully connected to MongoDB!")
	}
	return client, client.Database(cfg.MongoDatabase)
}

func newVerifier(cfg *config.Config) services.TokenVerifier {
	if cfg.FirebaseServiceAccount != "" {
		v, err := services.NewFirebaseVerifier(context.Background(), cfg.FirebaseServiceAccount)
		if err == nil {
			log.Println("Verifying bearer tokens with Firebase.")
			return v
		}
		log.Printf("Firebase init failed: %v", err)
	}
	if cfg.JWTSecret != "" {
		log.Println("Verifying bearer tokens with JWT_SECRET.")
		return services.NewJWTVerifier(cfg.JWTSecret)
	}
	log.Println("No identity provider configured, bearer tokens will be ignored.")
	return services.DisabledVerifier{}
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	c.AllowCredentials = true
	return c
}
