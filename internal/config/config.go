package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultPort     = "5000"
	defaultDatabase = "doctorsPortal"
)

// Config is everything the server reads from the environment at startup.
type Config struct {
	MongoURI               string
	MongoDatabase          string
	FirebaseServiceAccount string
	JWTSecret              string
	StripeSecretKey        string
	Port                   string
	CORSOrigins            []string
	TrustedProxies         []string
	PaymentRateLimit       float64
	PaymentRateBurst       int
}

// Load reads a .env file if one exists and then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}

	cfg := &Config{
		MongoURI:               mongoURI(),
		MongoDatabase:          env("MONGO_DATABASE", defaultDatabase),
		FirebaseServiceAccount: os.Getenv("FIREBASE_SERVICE_ACCOUNT"),
		JWTSecret:              os.Getenv("JWT_SECRET"),
		StripeSecretKey:        os.Getenv("STRIPE_SECRET_KEY"),
		Port:                   env("PORT", defaultPort),
		CORSOrigins:            splitList(env("CORS_ORIGINS", "*")),
		TrustedProxies:         splitList(os.Getenv("TRUSTED_PROXIES")),
		PaymentRateLimit:       envFloat("PAYMENT_RATE_LIMIT", 5),
		PaymentRateBurst:       envInt("PAYMENT_RATE_BURST", 10),
	}
	return cfg
}

// LogSummary prints which settings are present without leaking secrets.
func (c *Config) LogSummary() {
	log.Printf("MONGO_DATABASE: %s", c.MongoDatabase)
	log.Printf("PORT: %s", c.Port)
	log.Printf("TRUSTED_PROXIES: %v", c.TrustedProxies)
	logSecret("MONGO_URI", c.MongoURI)
	logSecret("FIREBASE_SERVICE_ACCOUNT", c.FirebaseServiceAccount)
	logSecret("JWT_SECRET", c.JWTSecret)
	logSecret("STRIPE_SECRET_KEY", c.StripeSecretKey)
}

func logSecret(name, value string) {
	if value != "" {
		log.Printf("%s is SET.", name)
	} else {
		log.Printf("%s is NOT SET.", name)
	}
}

// mongoURI prefers MONGO_URI and falls back to the Atlas-style
// DB_USER/DB_PASS/DB_CLUSTER triple.
func mongoURI() string {
	if uri := os.Getenv("MONGO_URI"); uri != "" {
		return uri
	}
	user, pass, cluster := os.Getenv("DB_USER"), os.Getenv("DB_PASS"), os.Getenv("DB_CLUSTER")
	if cluster == "" {
		return ""
	}
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority", user, pass, cluster)
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("ignoring %s=%q: %v", key, v, err)
		return fallback
	}
	return f
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("ignoring %s=%q: %v", key, v, err)
		return fallback
	}
	return n
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
