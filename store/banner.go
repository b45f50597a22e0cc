package store

import (
	"log"
	"sort"
	"sync"
	"time"

	"github.com/polockprog2/FreshMart-sub000/mockapi"
	"github.com/polockprog2/FreshMart-sub000/models"
	"github.com/polockprog2/FreshMart-sub000/storage"
)

// BannerUpdate carries optional banner fields; nil means leave unchanged.
type BannerUpdate struct {
	Title    *string            `json:"title"`
	Subtitle *string            `json:"subtitle"`
	ImageURL *string            `json:"imageUrl"`
	Link     *string            `json:"link"`
	Type     *models.BannerType `json:"type"`
	Priority *int               `json:"priority"`
}

// Banners owns the promotional banner collection, persisted wholesale under
// the "baksho_banners" key and seeded from defaults on first load.
type Banners struct {
	mu      sync.Mutex
	banners []models.Banner
	storage storage.Store
	lastID  int64
	notifier
}

// NewBanners rehydrates the banner collection, falling back to the seeded
// defaults when no snapshot exists.
func NewBanners(st storage.Store) *Banners {
	b := &Banners{storage: st}
	var banners []models.Banner
	ok, err := st.Get(storage.KeyBanners, &banners)
	if err != nil {
		log.Printf("⚠️ Failed to load banner snapshot: %v", err)
	}
	if ok {
		b.banners = banners
	} else {
		b.banners = defaultBanners()
		b.persistLocked()
	}
	for _, bn := range b.banners {
		if bn.ID > b.lastID {
			b.lastID = bn.ID
		}
	}
	return b
}

func defaultBanners() []models.Banner {
	return []models.Banner{
		{ID: 1, Title: "Fresh Deals Every Day", Subtitle: "Up to 25% off seasonal fruit", ImageURL: "https://images.freshmart.test/banners/fruit-sale.jpg", Link: "/products?category=Fruits", Type: models.BannerTypeWeeklySale, Active: true, Priority: 1},
		{ID: 2, Title: "Free Delivery Over $50", Subtitle: "Stock the pantry, skip the fee", ImageURL: "https://images.freshmart.test/banners/free-delivery.jpg", Link: "/products", Type: models.BannerTypeAd, Active: true, Priority: 2},
		{ID: 3, Title: "Bakery Mornings", Subtitle: "Croissants baked before 7am", ImageURL: "https://images.freshmart.test/banners/bakery.jpg", Link: "/products?category=Bakery", Type: models.BannerTypeAd, Active: false, Priority: 3},
	}
}

// Add assigns a time-based unique id, forces the banner active, and appends
// it. Same-millisecond adds bump the id to keep it unique.
func (b *Banners) Add(banner models.Banner) models.Banner {
	b.mu.Lock()
	id := time.Now().UnixMilli()
	if id <= b.lastID {
		id = b.lastID + 1
	}
	b.lastID = id
	banner.ID = id
	banner.Active = true
	b.banners = append(b.banners, banner)
	b.persistLocked()
	b.mu.Unlock()
	b.notify()
	return banner
}

// Update merges the provided fields into the banner with the given id.
func (b *Banners) Update(id int64, in BannerUpdate) (models.Banner, error) {
	b.mu.Lock()
	for i := range b.banners {
		if b.banners[i].ID != id {
			continue
		}
		bn := &b.banners[i]
		if in.Title != nil {
			bn.Title = *in.Title
		}
		if in.Subtitle != nil {
			bn.Subtitle = *in.Subtitle
		}
		if in.ImageURL != nil {
			bn.ImageURL = *in.ImageURL
		}
		if in.Link != nil {
			bn.Link = *in.Link
		}
		if in.Type != nil {
			bn.Type = *in.Type
		}
		if in.Priority != nil {
			bn.Priority = *in.Priority
		}
		updated := *bn
		b.persistLocked()
		b.mu.Unlock()
		b.notify()
		return updated, nil
	}
	b.mu.Unlock()
	return models.Banner{}, mockapi.ErrNotFound
}

// Delete removes the banner with the given id.
func (b *Banners) Delete(id int64) error {
	b.mu.Lock()
	for i := range b.banners {
		if b.banners[i].ID == id {
			b.banners = append(b.banners[:i], b.banners[i+1:]...)
			b.persistLocked()
			b.mu.Unlock()
			b.notify()
			return nil
		}
	}
	b.mu.Unlock()
	return mockapi.ErrNotFound
}

// ToggleStatus flips a banner's active flag.
func (b *Banners) ToggleStatus(id int64) (models.Banner, error) {
	b.mu.Lock()
	for i := range b.banners {
		if b.banners[i].ID == id {
			b.banners[i].Active = !b.banners[i].Active
			updated := b.banners[i]
			b.persistLocked()
			b.mu.Unlock()
			b.notify()
			return updated, nil
		}
	}
	b.mu.Unlock()
	return models.Banner{}, mockapi.ErrNotFound
}

// All returns a copy of the full collection.
func (b *Banners) All() []models.Banner {
	b.mu.Lock()
	defer b.mu.Unlock()
	cp := make([]models.Banner, len(b.banners))
	copy(cp, b.banners)
	return cp
}

// Active returns active banners ordered by priority, for the rotating
// storefront banner.
func (b *Banners) Active() []models.Banner {
	b.mu.Lock()
	defer b.mu.Unlock()
	var active []models.Banner
	for _, bn := range b.banners {
		if bn.Active {
			active = append(active, bn)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].Priority < active[j].Priority
	})
	return active
}

// Subscribe registers a callback invoked after every collection change.
func (b *Banners) Subscribe(fn func()) func() {
	return b.subscribe(fn)
}

func (b *Banners) persistLocked() {
	if err := b.storage.Put(storage.KeyBanners, b.banners); err != nil {
		log.Printf("❌ Failed to persist banner snapshot: %v", err)
	}
}
