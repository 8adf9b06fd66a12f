// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// PasswordDigest returns the hex encoded SHA-256 of a site password. Sites
// never send the plain password: the digest is what travels in the basic
// auth header and what the central server hashes with bcrypt.
//
// Example usage:
//
//	req.SetBasicAuth(username, utils.PasswordDigest(password))
func PasswordDigest(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
