package cmd

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"pizzashop/internal/pkg/errs"

	"github.com/joho/godotenv"
)

// Config holds the process settings read from the environment.
type Config struct {
	HTTPPort        string
	RandomSeed      uint64
	KitchenSchedule string
	BulkThreshold   int
	FamilyThreshold int
	LogLevel        string
	LogFile         string
	CatalogFile     string
}

// Defaults applied when a variable is unset.
const (
	DefaultHTTPPort        = "8080"
	DefaultKitchenSchedule = "*/5 * * * * *"
	DefaultBulkThreshold   = 5
	DefaultLogLevel        = "info"
)

// LoadConfig reads envFile into the environment, if it exists, and builds a Config.
// Variables already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	seed, seedErr := uintVariable("RANDOM_SEED", 0)
	bulk, bulkErr := intVariable("BULK_THRESHOLD", DefaultBulkThreshold)
	family, familyErr := intVariable("FAMILY_THRESHOLD", 0)
	if err := errors.Join(seedErr, bulkErr, familyErr); err != nil {
		return Config{}, err
	}

	return Config{
		HTTPPort:        stringVariable("HTTP_PORT", DefaultHTTPPort),
		RandomSeed:      seed,
		KitchenSchedule: stringVariable("KITCHEN_SCHEDULE", DefaultKitchenSchedule),
		BulkThreshold:   bulk,
		FamilyThreshold: family,
		LogLevel:        stringVariable("LOG_LEVEL", DefaultLogLevel),
		LogFile:         stringVariable("LOG_FILE", ""),
		CatalogFile:     stringVariable("CATALOG_FILE", ""),
	}, nil
}

func stringVariable(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func intVariable(key string, fallback int) (int, error) {
	v := stringVariable(key, "")
	if v == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(key, err)
	}
	return n, nil
}

func uintVariable(key string, fallback uint64) (uint64, error) {
	v := stringVariable(key, "")
	if v == "" {
		return fallback, nil
	}

	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(key, err)
	}
	return n, nil
}
