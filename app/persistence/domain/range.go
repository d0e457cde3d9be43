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

package domain

import "github.com/jackc/pgtype"

// NewTimestampRange returns a [lower,) range with an unbounded upper, i.e. a currently valid row
func NewTimestampRange(lowerInclusive int64) pgtype.Int8range {
	return pgtype.Int8range{
		Lower:     pgtype.Int8{Int: lowerInclusive, Status: pgtype.Present},
		Upper:     pgtype.Int8{Status: pgtype.Null},
		LowerType: pgtype.Inclusive,
		UpperType: pgtype.Unbounded,
		Status:    pgtype.Present,
	}
}

// NewClosedTimestampRange returns a [lower, upper) range for an archived history row
func NewClosedTimestampRange(lowerInclusive, upperExclusive int64) pgtype.Int8range {
	return pgtype.Int8range{
		Lower:     pgtype.Int8{Int: lowerInclusive, Status: pgtype.Present},
		Upper:     pgtype.Int8{Int: upperExclusive, Status: pgtype.Present},
		LowerType: pgtype.Inclusive,
		UpperType: pgtype.Exclusive,
		Status:    pgtype.Present,
	}
}

// GetTimestampLower returns the inclusive lower bound of a timestamp range
func GetTimestampLower(timestampRange pgtype.Int8range) int64 {
	return timestampRange.Lower.Int
}

// IsTimestampRangeOpen returns true if the range has an unbounded upper, i.e. it's the current row
func IsTimestampRangeOpen(timestampRange pgtype.Int8range) bool {
	return timestampRange.Upper.Status == pgtype.Null || timestampRange.UpperType == pgtype.Unbounded
}
