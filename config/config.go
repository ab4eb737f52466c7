package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServicePort      string
	MetricsPort      string
	Environment      string
	PostgreSQLConfig PostgreSQLConfig
	JWTSecret        string
	StripeConfig     StripeConfig
	PayPalConfig     PayPalConfig
	CloudinaryConfig CloudinaryConfig
	KafkaConfig      KafkaConfig
	SMTPConfig       SMTPConfig
	TracingConfig    TracingConfig
	CheckoutConfig   CheckoutConfig
}

type PostgreSQLConfig struct {
	DBHost     string
	DBName     string
	DBPort     string
	DBUsername string
	DBPassword string
}

type StripeConfig struct {
	SecretKey string
}

type PayPalConfig struct {
	ClientID string
	Secret   string
	APIBase  string
}

type CloudinaryConfig struct {
	URL          string
	UploadFolder string
}

type KafkaConfig struct {
	BrokerAddress   string
	BrokerTopic     string
	BrokerPartition int
}

type SMTPConfig struct {
	Host     string
	Port     int
	Sender   string
	Password string
}

type TracingConfig struct {
	CollectorHost string
}

type CheckoutConfig struct {
	Currency          string
	TaxRate           float64
	FlatShippingCents int64
	TransferEmail     string
	CartTTLDays       int
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		ServicePort: os.Getenv("SERVICE_PORT"),
		MetricsPort: os.Getenv("METRICS_PORT"),
		Environment: os.Getenv("ENVIRONMENT"),
		PostgreSQLConfig: PostgreSQLConfig{
			DBHost:     os.Getenv("DB_HOST"),
			DBName:     os.Getenv("DB_NAME"),
			DBPort:     os.Getenv("DB_PORT"),
			DBUsername: os.Getenv("DB_USERNAME"),
			DBPassword: os.Getenv("DB_PASSWORD"),
		},
		JWTSecret: os.Getenv("JWT_SECRET"),
		StripeConfig: StripeConfig{
			SecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		},
		PayPalConfig: PayPalConfig{
			ClientID: os.Getenv("PAYPAL_CLIENT_ID"),
			Secret:   os.Getenv("PAYPAL_SECRET"),
			APIBase:  os.Getenv("PAYPAL_API_BASE"),
		},
		CloudinaryConfig: CloudinaryConfig{
			URL:          os.Getenv("CLOUDINARY_URL"),
			UploadFolder: getEnvOrDefault("CLOUDINARY_UPLOAD_FOLDER", "product_images"),
		},
		KafkaConfig: KafkaConfig{
			BrokerAddress:   os.Getenv("BROKER_ADDRESS"),
			BrokerTopic:     os.Getenv("BROKER_TOPIC"),
			BrokerPartition: getEnvInt("BROKER_PARTITION", 0),
		},
		SMTPConfig: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     getEnvInt("SMTP_PORT", 587),
			Sender:   os.Getenv("SMTP_SENDER"),
			Password: os.Getenv("SMTP_PASSWORD"),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
		CheckoutConfig: CheckoutConfig{
			Currency:          getEnvOrDefault("CHECKOUT_CURRENCY", "usd"),
			TaxRate:           getEnvFloat("CHECKOUT_TAX_RATE", 0.13),
			FlatShippingCents: int64(getEnvInt("CHECKOUT_FLAT_SHIPPING_CENTS", 500)),
			TransferEmail:     getEnvOrDefault("TRANSFER_EMAIL", "payments@candit.com"),
			CartTTLDays:       getEnvInt("CART_TTL_DAYS", 30),
		},
	}

	return &conf
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvFloat(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return fallback
	}
	return v
}
