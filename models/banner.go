package models

type BannerType string

const (
	BannerTypeAd         BannerType = "ad"
	BannerTypeWeeklySale BannerType = "weekly-sale"
)

type Banner struct {
	ID       int64      `json:"id"` // time-based, assigned by the banner store
	Title    string     `json:"title"`
	Subtitle string     `json:"subtitle"`
	ImageURL string     `json:"imageUrl"`
	Link     string     `json:"link"`
	Type     BannerType `json:"type"`
	Active   bool       `json:"active"`
	Priority int        `json:"priority"`
}
