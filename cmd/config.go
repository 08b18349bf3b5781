package cmd

import "fmt"

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// RedisAddr is optional; without it order events are not published.
	RedisAddr     string
	RedisPassword string
	RedisChannel  string

	// DefaultCity is used when neither the address nor the coordinates
	// identify a city.
	DefaultCity         string
	ShortHopThresholdKm float64
	LongHaulThresholdKm float64
	SnapshotRefreshSpec string
}

// DSN returns the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
