package cache

// ScopedKeyer wraps a Keyer with a prefix, so that several sources can share
// one backend without colliding. The wikipedia client scopes by language:
//
//	en := NewScopedKeyer(NewDefaultKeyer(), "wikipedia:en:")
//	de := NewScopedKeyer(NewDefaultKeyer(), "wikipedia:de:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// HTTPKey generates a prefixed resource key.
func (k *ScopedKeyer) HTTPKey(namespace, key string) string {
	return k.prefix + k.inner.HTTPKey(namespace, key)
}

// QueryKey generates a prefixed query key.
func (k *ScopedKeyer) QueryKey(namespace string, parts ...any) string {
	return k.prefix + k.inner.QueryKey(namespace, parts...)
}
