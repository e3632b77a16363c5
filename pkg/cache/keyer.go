package cache

import "fmt"

// Keyer builds cache keys.
type Keyer interface {
	// HTTPKey returns the key for a single addressable resource, such as
	// the summary of one title.
	HTTPKey(namespace, key string) string

	// QueryKey returns the key for a parameterised query. Parts are hashed,
	// so free text and numbers can be mixed safely.
	QueryKey(namespace string, parts ...any) string
}

// DefaultKeyer is the unscoped [Keyer].
type DefaultKeyer struct{}

// NewDefaultKeyer returns a DefaultKeyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// HTTPKey returns "http:<namespace>:<key>".
func (DefaultKeyer) HTTPKey(namespace, key string) string {
	return fmt.Sprintf("http:%s:%s", namespace, key)
}

// QueryKey returns "query:<namespace>:<sha256 of parts>".
func (DefaultKeyer) QueryKey(namespace string, parts ...any) string {
	return hashKey("query:"+namespace, parts...)
}
