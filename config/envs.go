package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP   string // Host IP for the server
	RESTPort int    // Port for the REST API
	GinMode  string // Mode for the Gin framework (e.g., release, debug, test)
	MazeSeed int64  // Seed for the maze generator; fixed seeds give reproducible mazes
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		HostIP:   getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort: getEnvAsIntWithDefault("REST_PORT", 8080),
		GinMode:  getEnvWithDefault("GIN_MODE", "release"),
		MazeSeed: getEnvAsInt64WithDefault("MAZE_SEED", time.Now().UnixNano()),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves the value of an environment variable as an integer.
// It logs a fatal error if the variable is set but cannot be parsed.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

func getEnvAsInt64WithDefault(key string, defaultValue int64) int64 {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}
