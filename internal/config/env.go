package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Load loads environment variables from a .env file in the working directory.
// Variables already set in the environment take precedence.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found")
	}
}

// StringVariable returns the value of an environment variable or a default value
func StringVariable(name, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(name)); value != "" {
		return value
	}
	return defaultValue
}

// IntVariable returns the value of an environment variable as int, or
// defaultValue when it is unset or not a number.
func IntVariable(name string, defaultValue int) int {
	value := StringVariable(name, "")
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Ignoring %s=%q: not an integer", name, value)
		return defaultValue
	}
	return n
}

// BoolVariable returns the value of an environment variable as bool, or
// defaultValue when it is unset or not a boolean.
func BoolVariable(name string, defaultValue bool) bool {
	value := StringVariable(name, "")
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Ignoring %s=%q: not a boolean", name, value)
		return defaultValue
	}
	return b
}
