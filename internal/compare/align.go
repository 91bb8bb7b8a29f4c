// Collegium - College and Course Comparison Analytics
// Copyright 2026 Collegium Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/collegium/collegium

package compare

import "github.com/collegium/collegium/internal/models"

// AlignSlots maps N requested entity ids onto positional slots
// prefix_1..prefix_N in input order. Ids absent from lookup get the na
// placeholder so every response carries exactly N identically shaped
// slots. Duplicate ids produce independent slots.
func AlignSlots[T any](prefix string, ids []int64, lookup map[int64]T, na func(int64) T) map[string]T {
	slots := make(map[string]T, len(ids))
	for i, id := range ids {
		key := models.SlotKey(prefix, i+1)
		if v, ok := lookup[id]; ok {
			slots[key] = v
		} else {
			slots[key] = na(id)
		}
	}
	return slots
}
