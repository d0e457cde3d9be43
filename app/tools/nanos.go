/*
 * Copyright (C) 2019-2025 Hedera Hashgraph, LLC
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package tools

import "math"

const (
	NanosPerSecond int64 = 1_000_000_000
	NanosPerDay          = 86_400 * NanosPerSecond
)

// maxClampedSeconds is the largest seconds value whose nanosecond representation fits in an int64
const maxClampedSeconds = math.MaxInt64 / NanosPerSecond

// ToNanosClamped converts a seconds / nanos pair to a single nanosecond timestamp, clamping to the
// int64 range instead of wrapping. Entity expiration times on the wire routinely exceed the range.
func ToNanosClamped(seconds int64, nanos int32) int64 {
	if seconds > maxClampedSeconds {
		return math.MaxInt64
	}

	if seconds < -maxClampedSeconds {
		return math.MinInt64
	}

	total := seconds * NanosPerSecond
	if nanos > 0 && total > math.MaxInt64-int64(nanos) {
		return math.MaxInt64
	}

	return total + int64(nanos)
}

// EpochDay returns the number of whole days between the unix epoch and the nanosecond timestamp,
// rounding towards negative infinity
func EpochDay(timestamp int64) int64 {
	day := timestamp / NanosPerDay
	if timestamp < 0 && timestamp%NanosPerDay != 0 {
		day--
	}
	return day
}

// AddNanosClamped adds a duration in nanoseconds to a timestamp, clamping on overflow in either
// direction.
func AddNanosClamped(timestamp, delta int64) int64 {
	if delta > 0 && timestamp > math.MaxInt64-delta {
		return math.MaxInt64
	}

	if delta < 0 && timestamp < math.MinInt64-delta {
		return math.MinInt64
	}

	return timestamp + delta
}
