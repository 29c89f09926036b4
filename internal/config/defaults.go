package config

import "time"

const (
	defaultTokenIssuer           = "go-task-keeper"
	defaultTokenDuration         = 7 * 24 * time.Hour
	defaultPasswordHashCost      = 12
	defaultPasswordResetDuration = time.Hour
	defaultEnvironment           = "production"
	defaultLogLevel              = "info"
	defaultHTTPAddress           = "localhost:8080"
	defaultMongoDatabase         = "task-management"
)

// defaultConfig returns the values used when no source sets a field.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:           defaultTokenIssuer,
			TokenDuration:         defaultTokenDuration,
			PasswordHashCost:      defaultPasswordHashCost,
			PasswordResetDuration: defaultPasswordResetDuration,
			Environment:           defaultEnvironment,
			LogLevel:              defaultLogLevel,
		},
		Storage: Storage{
			Driver: DriverPostgres,
			Mongo: Mongo{
				Database: defaultMongoDatabase,
			},
		},
		Server: Server{
			HTTPAddress: defaultHTTPAddress,
		},
	}
}
