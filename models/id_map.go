// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// BiMap is an invertible map. Every key maps to at most one value and every
// value to at most one key. Put overwrites silently: a stale pairing on
// either side is dropped so the two directions never disagree.
//
// BiMap is not safe for concurrent use.
type BiMap[K, V comparable] struct {
	forward map[K]V
	inverse map[V]K
}

// NewBiMap returns an empty [BiMap].
func NewBiMap[K, V comparable]() *BiMap[K, V] {
	return &BiMap[K, V]{
		forward: make(map[K]V),
		inverse: make(map[V]K),
	}
}

// Put pairs key with value, replacing any previous pairing of either.
func (m *BiMap[K, V]) Put(key K, value V) {
	if old, ok := m.forward[key]; ok {
		delete(m.inverse, old)
	}
	if old, ok := m.inverse[value]; ok {
		delete(m.forward, old)
	}
	m.forward[key] = value
	m.inverse[value] = key
}

// Get returns the value paired with key.
func (m *BiMap[K, V]) Get(key K) (V, bool) {
	v, ok := m.forward[key]
	return v, ok
}

// GetKey returns the key paired with value.
func (m *BiMap[K, V]) GetKey(value V) (K, bool) {
	k, ok := m.inverse[value]
	return k, ok
}

// Len returns the number of pairs.
func (m *BiMap[K, V]) Len() int {
	return len(m.forward)
}

// IDMap translates local task ids to remote task ids and back.
type IDMap = BiMap[int64, string]

// NewIDMap returns an empty [IDMap].
func NewIDMap() *IDMap {
	return NewBiMap[int64, string]()
}

// RemoteRef translates a local tree reference into a remote one.
// A nil reference resolves to "" with ok set. An unknown reference
// resolves to "" with ok unset.
func RemoteRef(ids *IDMap, ref *int64) (remote string, ok bool) {
	if ref == nil {
		return "", true
	}
	return ids.Get(*ref)
}

// LocalRef translates a remote tree reference into a local one.
// It returns nil when remote is empty or unknown.
func LocalRef(ids *IDMap, remote string) *int64 {
	if remote == "" {
		return nil
	}
	id, ok := ids.GetKey(remote)
	if !ok {
		return nil
	}
	return &id
}
