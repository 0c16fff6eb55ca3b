// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/md5"
	"encoding/hex"
	"time"
)

// TimestampLayout is the UTC request timestamp format (yyyyMMddHHmmss)
// expected by the API in both the signature and the request path.
const TimestampLayout = "20060102150405"

// Timestamp formats t in UTC using [TimestampLayout].
//
// Example usage:
//
//	ts := utils.Timestamp(time.Now()) // "20260217153000"
func Timestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// Signature computes the per-request signature required by every API call:
// the lowercase hex MD5 digest of devID + method + authKey + timestamp.
//
// The method must be the bare method name without the response format
// suffix (e.g. "createsession", "getplayer").
//
// Example usage:
//
//	sig := utils.Signature("1004", "getplayer", "23DF3C7E9BD14D84BF892AD206B6755C", "20260217153000")
func Signature(devID, method, authKey, timestamp string) string {
	sum := md5.Sum([]byte(devID + method + authKey + timestamp))
	return hex.EncodeToString(sum[:])
}
