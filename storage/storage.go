// Package storage provides durable keyed JSON snapshots, the server-side
// counterpart of the storefront's client storage. Stores persist whole
// snapshots per key; the last writer wins.
package storage

// Well-known snapshot keys.
const (
	KeyCart     = "cart"
	KeyUser     = "user"
	KeyLanguage = "language"
	KeyBanners  = "baksho_banners"
)

// Store is a keyed JSON snapshot store. Get unmarshals the stored value into
// v and reports whether the key existed; a value that cannot be unmarshaled
// is reported as absent so callers fall back to defaults.
type Store interface {
	Get(key string, v any) (bool, error)
	Put(key string, v any) error
	Delete(key string) error
	Close() error
}
