// Package keyring provides access to the system keychain for provider API
// keys, used as a fallback when the environment does not set them.
package keyring

import (
	"fmt"

	"github.com/zalando/go-keyring"
)

const serviceName = "postcraft"

// APIKey represents a named API key stored in the keychain.
type APIKey string

const (
	// OpenAI is the keychain entry for the OpenAI API key (images).
	OpenAI APIKey = "openai-api-key"
	// Anthropic is the keychain entry for the Anthropic API key (text).
	Anthropic APIKey = "anthropic-api-key"
)

// Get retrieves an API key value from the system keychain.
func Get(apiKey APIKey) (string, error) {
	value, err := keyring.Get(serviceName, string(apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to get %s from keychain: %w", apiKey, err)
	}
	return value, nil
}

// Set stores an API key value in the system keychain.
func Set(apiKey APIKey, value string) error {
	if err := keyring.Set(serviceName, string(apiKey), value); err != nil {
		return fmt.Errorf("failed to set %s in keychain: %w", apiKey, err)
	}
	return nil
}

// IsSet checks if an API key exists in the keychain.
func IsSet(apiKey APIKey) bool {
	_, err := keyring.Get(serviceName, string(apiKey))
	return err == nil
}
