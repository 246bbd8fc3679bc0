package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"db"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Kafka     KafkaConfig     `mapstructure:"kafka"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Log       LogConfig       `mapstructure:"log"`
	Payroll   PayrollConfig   `mapstructure:"payroll"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
}

type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

type DatabaseConfig struct {
	Host       string `mapstructure:"host"`
	Port       string `mapstructure:"port"`
	Name       string `mapstructure:"name"`
	User       string `mapstructure:"user"`
	Password   string `mapstructure:"password"`
	SSLMode    string `mapstructure:"sslmode"`
	MaxRetries int    `mapstructure:"max_retries"`
}

func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode,
	)
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type KafkaConfig struct {
	Broker               string        `mapstructure:"broker"`
	SessionClosedGroupID string        `mapstructure:"session_closed_group_id"`
	OutboxPollInterval   time.Duration `mapstructure:"outbox_poll_interval"`
	OutboxBatchSize      int           `mapstructure:"outbox_batch_size"`
	OutboxClaimLease     time.Duration `mapstructure:"outbox_claim_lease"`
	OutboxMaxAttempts    int           `mapstructure:"outbox_max_attempts"`
	ConsumerRetries      int           `mapstructure:"consumer_retries"`
	ConsumerRetryBackoff time.Duration `mapstructure:"consumer_retry_backoff"`
}

type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type PayrollConfig struct {
	// GenerationLeaseTTL bounds how long a period may sit in processing
	// before another Generate call may reclaim it.
	GenerationLeaseTTL         time.Duration `mapstructure:"generation_lease_ttl"`
	DefaultWorkingHoursPerDay  int           `mapstructure:"default_working_hours_per_day"`
	DefaultWorkingDaysPerMonth int           `mapstructure:"default_working_days_per_month"`
}

type SchedulerConfig struct {
	NightlySpec  string        `mapstructure:"nightly_spec"`
	BatchLockTTL time.Duration `mapstructure:"batch_lock_ttl"`
}

// Load reads configuration. Precedence: environment > config file > defaults.
// A .env file, if present, is loaded into the environment first.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	v.SetDefault("server.port", "3000")
	v.SetDefault("server.read_timeout", "5s")
	v.SetDefault("server.write_timeout", "10s")
	v.SetDefault("server.idle_timeout", "60s")

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.name", "workforce")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_retries", 5)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)

	v.SetDefault("kafka.broker", "")
	v.SetDefault("kafka.session_closed_group_id", "go-workforce-daily-summary")
	v.SetDefault("kafka.outbox_poll_interval", "3s")
	v.SetDefault("kafka.outbox_batch_size", 50)
	v.SetDefault("kafka.outbox_claim_lease", "30s")
	v.SetDefault("kafka.outbox_max_attempts", 20)
	v.SetDefault("kafka.consumer_retries", 5)
	v.SetDefault("kafka.consumer_retry_backoff", "500ms")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("payroll.generation_lease_ttl", "5m")
	v.SetDefault("payroll.default_working_hours_per_day", 8)
	v.SetDefault("payroll.default_working_days_per_month", 22)

	v.SetDefault("scheduler.nightly_spec", "15 0 * * *")
	v.SetDefault("scheduler.batch_lock_ttl", "30m")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("WF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("config: server.port is required")
	}
	if c.Payroll.GenerationLeaseTTL <= 0 {
		return fmt.Errorf("config: payroll.generation_lease_ttl must be positive")
	}
	if c.Payroll.DefaultWorkingHoursPerDay <= 0 || c.Payroll.DefaultWorkingDaysPerMonth <= 0 {
		return fmt.Errorf("config: payroll working hours/days defaults must be positive")
	}
	return nil
}
