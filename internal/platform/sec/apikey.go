// Copyright (c) 2026 Turath. All rights reserved.
// Author: dev@turath-dz.org

package sec

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashAPIKey hashes a plain-text operator key using the bcrypt algorithm.
// Used by ops tooling to produce the ADMIN_API_KEY_HASH setting.
func HashAPIKey(plainTextKey string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plainTextKey), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("sec: failed to hash api key: %w", err)
	}
	return string(hashedBytes), nil
}

// CheckAPIKey compares a plain-text operator key with its stored bcrypt hash.
func CheckAPIKey(plainTextKey, existingHash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(existingHash), []byte(plainTextKey))
	return err == nil
}
