package config

import (
	"math"
	"math/rand/v2"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func New() (*Config, error) {
	var Config Config
	if os.Getenv("GO_ENV") == "local" {
		_ = godotenv.Load(".env")
	}

	if err := env.Parse(&Config); err != nil {
		logrus.Errorf("Error initializing: %s", err.Error())
		return nil, err
	}
	return &Config, nil
}

type Config struct {
	APP
	DB
	Kafka
	Gateway
	Settlement
}

type APP struct {
	PORT      string `env:"APP_PORT" envDefault:"8080"`
	Env       string `env:"GO_ENV" envDefault:"production"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

func (a APP) IsLocal() bool {
	return a.Env == "local"
}

type DB struct {
	HOST         string `env:"DB_HOST"`
	USER         string `env:"DB_USER"`
	PASSWORD     string `env:"DB_PASSWORD"`
	NAME         string `env:"DB_NAME"`
	PORT         string `env:"DB_PORT"`
	SSLMODE      string `env:"DB_SSLMODE" envDefault:"disable"`
	MaxOpenConns int    `env:"DB_MAX_OPEN_CONNS" envDefault:"3"`
	MaxIdleConns int    `env:"DB_MAX_IDLE_CONNS" envDefault:"1"`
}

type Kafka struct {
	Brokers                 string        `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	SettlementConsumerGroup string        `env:"KAFKA_SETTLEMENT_GROUP_ID" envDefault:"settlement-service"`
	SubscriberTopics        string        `env:"KAFKA_SUBSCRIBER_TOPICS" envDefault:"settlements.requested"`
	PublishTopics           string        `env:"KAFKA_PUBLISH_TOPICS" envDefault:"settlements.completed,settlements.dlq"`
	RetryMaxAttempts        int           `env:"KAFKA_RETRY_MAX_ATTEMPTS" envDefault:"5"`
	RetryBaseDelay          time.Duration `env:"KAFKA_RETRY_BASE_DELAY" envDefault:"1s"`
	RetryMaxDelay           time.Duration `env:"KAFKA_RETRY_MAX_DELAY" envDefault:"30s"`
	RetryJitter             bool          `env:"KAFKA_RETRY_JITTER" envDefault:"true"`
}

// Gateway holds the connection settings for the debit gateway. The routing
// and account numbers are the fixed policy defaults placed on every request.
type Gateway struct {
	BaseURL        string        `env:"GATEWAY_BASE_URL,required,notEmpty"`
	AuthToken      string        `env:"GATEWAY_AUTH_TOKEN,required,notEmpty"`
	ConnectTimeout time.Duration `env:"GATEWAY_CONNECT_TIMEOUT" envDefault:"10s"`
	Timeout        time.Duration `env:"GATEWAY_TIMEOUT" envDefault:"30s"`
	RoutingNumber  string        `env:"GATEWAY_ROUTING_NUMBER" envDefault:"121000358"`
	AccountNumber  string        `env:"GATEWAY_ACCOUNT_NUMBER" envDefault:"5428610017522"`
}

type Settlement struct {
	CreatedBy      int           `env:"SETTLEMENT_CREATED_BY" envDefault:"1"`
	StorageTimeout time.Duration `env:"SETTLEMENT_STORAGE_TIMEOUT" envDefault:"5s"`
}

type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Jitter      bool
}

func (k Kafka) GetRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: k.RetryMaxAttempts,
		BaseDelay:   k.RetryBaseDelay,
		MaxDelay:    k.RetryMaxDelay,
		Jitter:      k.RetryJitter,
	}
}

// Backoff returns the delay before retry number attempt (zero based):
// exponential from BaseDelay, capped at MaxDelay, with +/-15% jitter.
func (r RetryConfig) Backoff(attempt int) time.Duration {
	delay := time.Duration(math.Pow(2, float64(attempt))) * r.BaseDelay

	if delay > r.MaxDelay {
		delay = r.MaxDelay
	}

	if r.Jitter {
		jitter := time.Duration(rand.Float64() * float64(delay) * 0.3)
		delay = delay + jitter - time.Duration(float64(delay)*0.15)
	}

	return delay
}

// ConfigureLogger applies the level and formatter to the standard logrus logger.
func (a APP) ConfigureLogger() {
	level, err := logrus.ParseLevel(a.LogLevel)
	if err != nil {
		logrus.Warnf("invalid LOG_LEVEL %q, falling back to info", a.LogLevel)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if a.LogFormat == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
		return
	}
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}
