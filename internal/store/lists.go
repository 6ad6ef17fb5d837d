package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/tidwall/gjson"
)

// Lists is the named-list collection. Names keep insertion order and each
// list keeps its entry order.
type Lists struct {
	names   []string
	entries map[string][]string
}

func NewLists() *Lists {
	return &Lists{entries: map[string][]string{}}
}

func (l *Lists) Len() int { return len(l.names) }

// Names returns a copy of the list names in order.
func (l *Lists) Names() []string {
	return slices.Clone(l.names)
}

// Get returns a copy of the entries stored under name.
func (l *Lists) Get(name string) ([]string, bool) {
	e, ok := l.entries[name]
	if !ok {
		return nil, false
	}
	return cloneEntries(e), true
}

// Set stores entries under name, keeping the list's position if it exists
// and appending it otherwise.
func (l *Lists) Set(name string, entries []string) {
	if _, ok := l.entries[name]; !ok {
		l.names = append(l.names, name)
	}
	l.entries[name] = cloneEntries(entries)
}

// Delete removes name and reports whether it was present.
func (l *Lists) Delete(name string) bool {
	if _, ok := l.entries[name]; !ok {
		return false
	}
	delete(l.entries, name)
	l.names = slices.DeleteFunc(l.names, func(n string) bool { return n == name })
	return true
}

// Rename saves entries under newName and removes oldName if the name changed.
// A different list already called newName is overwritten. When newName is
// fresh the list keeps oldName's position.
func (l *Lists) Rename(oldName, newName string, entries []string) {
	if oldName == "" || oldName == newName {
		l.Set(newName, entries)
		return
	}
	_, oldExists := l.entries[oldName]
	_, newExists := l.entries[newName]
	if oldExists && !newExists {
		l.names[slices.Index(l.names, oldName)] = newName
		delete(l.entries, oldName)
		l.entries[newName] = cloneEntries(entries)
		return
	}
	l.Set(newName, entries)
	l.Delete(oldName)
}

func (l *Lists) Clone() *Lists {
	out := NewLists()
	for _, name := range l.names {
		out.Set(name, l.entries[name])
	}
	return out
}

// MarshalJSON writes an object keyed by list name, in list order.
func (l *Lists) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range l.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(l.entries[name])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object of string arrays. Key order in the document
// becomes list order.
func (l *Lists) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return errors.New("malformed json")
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return fmt.Errorf("want an object of lists, got %s", doc.Type)
	}
	out := NewLists()
	var err error
	doc.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		if !value.IsArray() {
			err = fmt.Errorf("list %q: want an array, got %s", name, value.Type)
			return false
		}
		entries := []string{}
		for _, e := range value.Array() {
			if e.Type != gjson.String {
				err = fmt.Errorf("list %q: entry %s is not a string", name, e.Raw)
				return false
			}
			entries = append(entries, e.String())
		}
		out.Set(name, entries)
		return true
	})
	if err != nil {
		return err
	}
	*l = *out
	return nil
}

func cloneEntries(e []string) []string {
	return append(make([]string, 0, len(e)), e...)
}
