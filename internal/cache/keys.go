// Collegium - College and Course Comparison Analytics
// Copyright 2026 Collegium Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/collegium/collegium

package cache

import (
	"crypto/sha256"
	"fmt"
	"strings"
)

// keySeparator joins argument string forms before hashing. Arguments are
// joined, not hashed individually, so the key is sensitive to order.
const keySeparator = "|"

// GenerateKey produces a deterministic cache key from a method prefix and
// an ordered argument list. Each argument is coerced to its string form,
// so 1 and "1" hash identically; that coercion is intentional because the
// HTTP layer delivers ids as strings while internal callers pass ints.
//
// Equal value sequences in equal order always produce equal keys. Any
// change in value or order produces a different key.
//
//	key := cache.GenerateKey("compare:rankings", ids, startYear, endYear)
func GenerateKey(prefix string, args ...interface{}) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = fmt.Sprintf("%v", arg)
	}

	hash := sha256.Sum256([]byte(strings.Join(parts, keySeparator)))
	return fmt.Sprintf("%s:%x", prefix, hash[:16])
}
