package utils

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Server configuration
	Port            string `yaml:"PORT"`
	FrontendURL     string `yaml:"FRONTEND_URL"`
	RateLimitMax    string `yaml:"RATE_LIMIT_MAX"`
	RateLimitWindow string `yaml:"RATE_LIMIT_WINDOW"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// JWT configuration
	JWTSecret    string `yaml:"JWT_SECRET"`
	JWTExpiresIn string `yaml:"JWT_EXPIRES_IN"`

	// Mailing configuration
	AppURL           string `yaml:"APP_URL"`
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`
}

var defaults = map[string]string{
	"PORT":              "4000",
	"FRONTEND_URL":      "*",
	"RATE_LIMIT_MAX":    "1000",
	"RATE_LIMIT_WINDOW": "5m",
	"JWT_EXPIRES_IN":    "24h",
	"DB_PORT":           "5432",
	"SMTP_PORT":         "587",
}

var config Config

// LoadConfig reads config.yaml, then .env, and lets the process environment
// override both.
func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
	} else if err = yaml.Unmarshal(file, &config); err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Error loading .env file: %s\n", err)
	}

	for key, field := range config.fields() {
		if value, ok := os.LookupEnv(key); ok && value != "" {
			*field = value
		}
	}
}

func (c *Config) fields() map[string]*string {
	return map[string]*string{
		"PORT":               &c.Port,
		"FRONTEND_URL":       &c.FrontendURL,
		"RATE_LIMIT_MAX":     &c.RateLimitMax,
		"RATE_LIMIT_WINDOW":  &c.RateLimitWindow,
		"DB_USER":            &c.DBUser,
		"DB_NAME":            &c.DBName,
		"DB_PASSWORD":        &c.DBPassword,
		"DB_PORT":            &c.DBPort,
		"DB_HOST":            &c.DBHost,
		"JWT_SECRET":         &c.JWTSecret,
		"JWT_EXPIRES_IN":     &c.JWTExpiresIn,
		"APP_URL":            &c.AppURL,
		"SMTP_HOST":          &c.SMTPHost,
		"SMTP_PORT":          &c.SMTPPort,
		"SMTP_SENDER_NAME":   &c.SMTPSenderName,
		"SMTP_AUTH_EMAIL":    &c.SMTPAuthEmail,
		"SMTP_AUTH_PASSWORD": &c.SMTPAuthPassword,
		"AWS_S3_BUCKET":      &c.AWSS3Bucket,
		"AWS_S3_REGION":      &c.AWSS3Region,
		"AWS_ACCESS_KEY":     &c.AWSAccessKey,
		"AWS_SECRET_KEY":     &c.AWSSecretKey,
	}
}

func GetConfig(key string) string {
	field, ok := config.fields()[key]
	if !ok {
		return ""
	}
	if *field == "" {
		return defaults[key]
	}
	return *field
}

func GetDurationConfig(key string) time.Duration {
	d, err := time.ParseDuration(GetConfig(key))
	if err != nil {
		d, _ = time.ParseDuration(defaults[key])
	}
	return d
}

func GetIntConfig(key string) int {
	n, err := strconv.Atoi(GetConfig(key))
	if err != nil {
		n, _ = strconv.Atoi(defaults[key])
	}
	return n
}
