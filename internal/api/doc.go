// Collegium - College and Course Comparison Analytics
// Copyright 2026 Collegium Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/collegium/collegium

// Package api exposes the comparison engine over HTTP. All endpoints are
// read-only GETs served from the cache-aside path, wrapped in a
// standardized APIResponse envelope. The router is chi with request id,
// CORS, rate limiting and prometheus middleware.
package api
