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

package parser

import "github.com/hashgraph/hedera-mirror-node/hedera-mirror-importer/app/persistence/domain"

// HookContext identifies one hook invocation: the hook id scoped to its owning entity
type HookContext struct {
	HookId  int64
	OwnerId domain.EntityId
}

// HookQueue is the strict FIFO execution order of the hooks declared on one record. Entries are
// laid out in three phases: every pre-transaction hook in declared order, then the pre half of
// every pre/post pair, then the post half of the same pairs. A pair therefore contributes two
// entries with identical contexts. The queue never replenishes once drained.
type HookQueue struct {
	entries []HookContext
	next    int
}

func NewHookQueue(preTransaction []HookContext, prePost []HookContext) *HookQueue {
	entries := make([]HookContext, 0, len(preTransaction)+2*len(prePost))
	entries = append(entries, preTransaction...)
	entries = append(entries, prePost...)
	entries = append(entries, prePost...)
	return &HookQueue{entries: entries}
}

// Poll removes and returns the next context, or ok=false every time once the queue is exhausted
func (q *HookQueue) Poll() (HookContext, bool) {
	if q.next >= len(q.entries) {
		return HookContext{}, false
	}

	context := q.entries[q.next]
	q.next++
	return context, true
}

// HasHooks reports whether any context remains without consuming it
func (q *HookQueue) HasHooks() bool {
	return q.next < len(q.entries)
}

// Size returns the total number of contexts the queue was built with
func (q *HookQueue) Size() int {
	return len(q.entries)
}
