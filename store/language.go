package store

import (
	"errors"
	"log"
	"sync"

	"github.com/polockprog2/FreshMart-sub000/storage"
)

// Supported locales.
const (
	LangEN = "EN"
	LangBN = "BN"
	LangDE = "DE"
)

// ErrUnknownLanguage is returned for codes outside the supported set.
var ErrUnknownLanguage = errors.New("unknown language code")

// translations maps locale → key → display string for the storefront chrome.
var translations = map[string]map[string]string{
	LangEN: {
		"search_placeholder": "Search groceries...",
		"add_to_cart":        "Add to Cart",
		"checkout":           "Checkout",
		"free_delivery":      "Free delivery over $50",
		"my_orders":          "My Orders",
	},
	LangBN: {
		"search_placeholder": "মুদি খুঁজুন...",
		"add_to_cart":        "কার্টে যোগ করুন",
		"checkout":           "চেকআউট",
		"free_delivery":      "৫০ ডলারের বেশি কেনাকাটায় ফ্রি ডেলিভারি",
		"my_orders":          "আমার অর্ডার",
	},
	LangDE: {
		"search_placeholder": "Lebensmittel suchen...",
		"add_to_cart":        "In den Warenkorb",
		"checkout":           "Zur Kasse",
		"free_delivery":      "Gratisversand ab 50 $",
		"my_orders":          "Meine Bestellungen",
	},
}

// Language owns the selected locale, persisted under the "language" key.
type Language struct {
	mu      sync.Mutex
	current string
	storage storage.Store
	notifier
}

// NewLanguage rehydrates the selected locale, defaulting to EN.
func NewLanguage(st storage.Store) *Language {
	l := &Language{current: LangEN, storage: st}
	var code string
	if ok, err := st.Get(storage.KeyLanguage, &code); err != nil {
		log.Printf("⚠️ Failed to load language snapshot: %v", err)
	} else if ok {
		if _, known := translations[code]; known {
			l.current = code
		}
	}
	return l
}

// Current returns the selected locale code.
func (l *Language) Current() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.current
}

// Set selects a locale and persists the choice.
func (l *Language) Set(code string) error {
	if _, known := translations[code]; !known {
		return ErrUnknownLanguage
	}
	l.mu.Lock()
	l.current = code
	if err := l.storage.Put(storage.KeyLanguage, code); err != nil {
		log.Printf("❌ Failed to persist language snapshot: %v", err)
	}
	l.mu.Unlock()
	l.notify()
	return nil
}

// Table returns the translation table for the selected locale.
func (l *Language) Table() map[string]string {
	l.mu.Lock()
	defer l.mu.Unlock()
	table := translations[l.current]
	cp := make(map[string]string, len(table))
	for k, v := range table {
		cp[k] = v
	}
	return cp
}

// Subscribe registers a callback invoked after every locale change.
func (l *Language) Subscribe(fn func()) func() {
	return l.subscribe(fn)
}
