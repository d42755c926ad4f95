package utils

import (
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

var (
	defaultedMu   sync.Mutex
	defaultedKeys = map[string]bool{}
)

func getEnv[T any](key string, defaultValue T, parse func(string) (T, error)) T {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		markDefaulted(key, true)
		return defaultValue
	}

	parsed, err := parse(value)
	if err != nil {
		log.Printf("Error parsing %s: %v, will use default value", key, err)
		markDefaulted(key, true)
		return defaultValue
	}
	markDefaulted(key, false)
	return parsed
}

func markDefaulted(key string, defaulted bool) {
	defaultedMu.Lock()
	defer defaultedMu.Unlock()
	defaultedKeys[key] = defaulted
}

// EnvDefaulted reports whether the last read of key fell back to its default.
func EnvDefaulted(key string) bool {
	defaultedMu.Lock()
	defer defaultedMu.Unlock()
	return defaultedKeys[key]
}

func GetEnvString(key, defaultValue string) string {
	return getEnv(key, defaultValue, func(v string) (string, error) { return v, nil })
}

func GetEnvInt(key string, defaultValue int) int {
	return getEnv(key, defaultValue, strconv.Atoi)
}

func GetEnvBool(key string, defaultValue bool) bool {
	return getEnv(key, defaultValue, strconv.ParseBool)
}

// GetEnvDuration accepts Go duration strings such as "15s" or "5m".
func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	return getEnv(key, defaultValue, time.ParseDuration)
}

// GetEnvList splits a comma separated value, dropping blanks.
func GetEnvList(key string, defaultValue []string) []string {
	return getEnv(key, defaultValue, func(v string) ([]string, error) {
		var items []string
		for _, item := range strings.Split(v, ",") {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
		return items, nil
	})
}
