package types

import (
	"strings"

	"github.com/petar/GoLLRB/llrb"
)

type pairStringBytesMap struct {
	key   string
	value []byte
}

func (a *pairStringBytesMap) Less(b llrb.Item) bool {
	if b == ninf {
		return false
	} else if b == pinf {
		return true
	} else {
		return strings.Compare(a.key, b.(*pairStringBytesMap).key) < 0
	}
}

// StringBytesMap is an ordered string and []byte map
type StringBytesMap struct {
	m *llrb.LLRB
}

// NewStringBytesMap returns a StringBytesMap
func NewStringBytesMap() *StringBytesMap {
	sm := &StringBytesMap{
		m: llrb.New(),
	}
	return sm
}

// Len returns the length of the map
func (sm *StringBytesMap) Len() int {
	return sm.m.Len()
}

// Has returns data of the key is exist or not
func (sm *StringBytesMap) Has(key string) bool {
	return sm.m.Has(&pairStringBytesMap{key: key})
}

// Get returns data of the key
func (sm *StringBytesMap) Get(key string) ([]byte, bool) {
	item := sm.m.Get(&pairStringBytesMap{key: key})
	if item == nil {
		return []byte{}, false
	}
	return item.(*pairStringBytesMap).value, true
}

// Put adds data of the key
func (sm *StringBytesMap) Put(key string, value []byte) {
	nvalue := make([]byte, len(value))
	copy(nvalue, value)
	sm.m.ReplaceOrInsert(&pairStringBytesMap{key: key, value: nvalue})
}

// Delete removes data of the key
func (sm *StringBytesMap) Delete(key string) {
	sm.m.Delete(&pairStringBytesMap{key: key})
}

// EachAll iterates all elements
func (sm *StringBytesMap) EachAll(fn func(string, []byte) bool) {
	sm.m.AscendRange(ninf, pinf, func(item llrb.Item) bool {
		return fn(item.(*pairStringBytesMap).key, item.(*pairStringBytesMap).value)
	})
}

// EachPrefix iterates elements that has the given prefix
func (sm *StringBytesMap) EachPrefix(prefix string, fn func(string, []byte) bool) {
	sm.m.AscendRange(&pairStringBytesMap{key: prefix}, &pairStringBytesMap{key: prefix + string([]byte{255})}, func(item llrb.Item) bool {
		return fn(item.(*pairStringBytesMap).key, item.(*pairStringBytesMap).value)
	})
}
