/*
 * Copyright 2025 tomoncle.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package smartenum

import "sync"

var defaultRegistry = newSetRegistry()

// MemberInfo is the type-erased view of one declared member.
type MemberInfo struct {
	Value       int    `json:"value" yaml:"value"`
	DisplayName string `json:"display_name" yaml:"display_name"`
}

// SetDescriptor is the type-erased view of one concrete set: its Go type name
// and the declared members in declaration order. Persistence and catalog
// tooling walk descriptors instead of concrete types.
type SetDescriptor struct {
	Name    string       `json:"name" yaml:"name"`
	Members []MemberInfo `json:"members" yaml:"members"`
}

type setRegistry struct {
	mutex sync.RWMutex
	sets  []SetDescriptor
	index map[string]int
}

func newSetRegistry() *setRegistry {
	return &setRegistry{index: make(map[string]int)}
}

func (r *setRegistry) add(desc SetDescriptor) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if i, ok := r.index[desc.Name]; ok {
		r.sets[i] = desc
		return
	}
	r.index[desc.Name] = len(r.sets)
	r.sets = append(r.sets, desc)
}

func (r *setRegistry) snapshot() []SetDescriptor {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	result := make([]SetDescriptor, len(r.sets))
	copy(result, r.sets)
	return result
}

// Describe builds the descriptor of T without registering it.
func Describe[T Set[T]]() SetDescriptor {
	desc := SetDescriptor{Name: SetName[T]()}
	for member := range All[T]() {
		desc.Members = append(desc.Members, MemberInfo{
			Value:       member.Value(),
			DisplayName: member.DisplayName(),
		})
	}
	return desc
}

// Register records the set in the process-wide registry so catalog tooling
// can discover it. Registration validates the uniqueness invariant and panics
// on a duplicate declared value, since that is a programming error in a
// closed set. Registering the same set again replaces its descriptor.
func Register[T Set[T]]() {
	if err := Validate[T](); err != nil {
		panic(err)
	}
	defaultRegistry.add(Describe[T]())
}

// RegisteredSets returns a snapshot of all registered set descriptors in
// registration order.
func RegisteredSets() []SetDescriptor {
	return defaultRegistry.snapshot()
}
