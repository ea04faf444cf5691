package config

import (
	"flag"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

/*
RUN_ADDRESS / -a: address the HTTP API listens on;
DATABASE_URI / -d: Postgres DSN;
PAYMENT_GATEWAY_ADDRESS / -p: base URL of the payment gateway;
SECRET / -s: key for signing auth cookies;
AUTH_COOKIE_EXPIRES_IN / -e: auth cookie lifetime in seconds;
KAFKA_BROKERS / -k: comma separated brokers, empty means notifications are only logged;
KAFKA_TOPIC / -t: topic for order status notifications;
PAYMENT_POLL_TIMEOUT / -w: how long a payment link check may run;
PAYMENT_SESSION_TTL / -l: idle time after which a user's payment session is dropped;
LOG_LEVEL / -v: logrus level;
ADMIN_USERS / -u: comma separated usernames that get the admin role.
*/

const defaultSecret = "orderdesk-dev-secret"

type ServerConfig struct {
	RunAddress            string        `env:"RUN_ADDRESS"`
	DatabaseDSN           string        `env:"DATABASE_URI"`
	PaymentGatewayAddress string        `env:"PAYMENT_GATEWAY_ADDRESS"`
	SecretKey             string        `env:"SECRET"`
	CookieExpiresSeconds  int           `env:"AUTH_COOKIE_EXPIRES_IN"`
	KafkaBrokers          []string      `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaTopic            string        `env:"KAFKA_TOPIC"`
	PaymentPollTimeout    time.Duration `env:"PAYMENT_POLL_TIMEOUT"`
	PaymentSessionTTL     time.Duration `env:"PAYMENT_SESSION_TTL"`
	LogLevel              string        `env:"LOG_LEVEL"`
	AdminUsers            []string      `env:"ADMIN_USERS" envSeparator:","`

	Secret []byte
}

func NewConfig() (*ServerConfig, error) {
	return parse(flag.CommandLine, os.Args[1:])
}

func parse(fs *flag.FlagSet, args []string) (*ServerConfig, error) {
	var params ServerConfig
	err := env.Parse(&params)
	if err != nil {
		return nil, err
	}

	var commandLineParams ServerConfig
	var brokers, admins string

	fs.StringVar(&commandLineParams.RunAddress, "a", "localhost:8080", "Base address to listen on")
	fs.StringVar(&commandLineParams.DatabaseDSN, "d", "postgres://postgres@localhost:5432/orderdesk?sslmode=disable", "Database DSN")
	fs.StringVar(&commandLineParams.PaymentGatewayAddress, "p", "http://localhost:8081", "Payment gateway address")
	fs.StringVar(&commandLineParams.SecretKey, "s", defaultSecret, "Secret for auth cookies")
	fs.IntVar(&commandLineParams.CookieExpiresSeconds, "e", 86400, "Auth cookie lifetime in seconds")
	fs.StringVar(&brokers, "k", "", "Kafka brokers, comma separated")
	fs.StringVar(&commandLineParams.KafkaTopic, "t", "order-status", "Kafka topic for status notifications")
	fs.DurationVar(&commandLineParams.PaymentPollTimeout, "w", 10*time.Minute, "Payment link check timeout")
	fs.DurationVar(&commandLineParams.PaymentSessionTTL, "l", time.Hour, "Idle payment session lifetime")
	fs.StringVar(&commandLineParams.LogLevel, "v", "info", "Log level")
	fs.StringVar(&admins, "u", "", "Admin usernames, comma separated")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if params.RunAddress == "" {
		params.RunAddress = commandLineParams.RunAddress
	}
	if params.DatabaseDSN == "" {
		params.DatabaseDSN = commandLineParams.DatabaseDSN
	}
	if params.PaymentGatewayAddress == "" {
		params.PaymentGatewayAddress = commandLineParams.PaymentGatewayAddress
	}
	if params.SecretKey == "" {
		params.SecretKey = commandLineParams.SecretKey
	}
	if params.CookieExpiresSeconds == 0 {
		params.CookieExpiresSeconds = commandLineParams.CookieExpiresSeconds
	}
	if len(params.KafkaBrokers) == 0 {
		params.KafkaBrokers = splitList(brokers)
	}
	if params.KafkaTopic == "" {
		params.KafkaTopic = commandLineParams.KafkaTopic
	}
	if params.PaymentPollTimeout == 0 {
		params.PaymentPollTimeout = commandLineParams.PaymentPollTimeout
	}
	if params.PaymentSessionTTL == 0 {
		params.PaymentSessionTTL = commandLineParams.PaymentSessionTTL
	}
	if params.LogLevel == "" {
		params.LogLevel = commandLineParams.LogLevel
	}

	// a session must outlive the check that drives it
	if params.PaymentSessionTTL < params.PaymentPollTimeout {
		params.PaymentSessionTTL = params.PaymentPollTimeout
	}
	if len(params.AdminUsers) == 0 {
		params.AdminUsers = splitList(admins)
	}

	params.Secret = []byte(params.SecretKey)

	return &params, nil
}

func splitList(raw string) []string {
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
