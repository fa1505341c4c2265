package core

import (
	"sort"
	"sync"
)

// Banner is a type that provides details for a persistent on-screen
// notification banner
type Banner interface {
	BannerPriority() Priority
	Cancel()
	IsCancelled() bool
}

// BannerService provides methods for creating and managing on-screen
// persistent banners. The methods must be safe for concurrent use.
type BannerService interface {
	// Add establishes a new banner managed by the service.
	Add(Banner)
	// Top returns the banner that should be displayed right now
	Top() Banner
}

type bannerService struct {
	sync.Mutex
	invalidate func()
	banners    []Banner
}

var _ BannerService = &bannerService{}

// NewBannerService constructs a BannerService. invalidate, if non-nil, is
// called whenever a banner is added.
func NewBannerService(invalidate func()) BannerService {
	return &bannerService{
		invalidate: invalidate,
	}
}

func (b *bannerService) Add(banner Banner) {
	b.Lock()
	b.banners = append(b.banners, banner)
	sort.SliceStable(b.banners, func(i, j int) bool {
		return b.banners[i].BannerPriority() > b.banners[j].BannerPriority()
	})
	b.Unlock()
	if b.invalidate != nil {
		b.invalidate()
	}
}

func (b *bannerService) Top() Banner {
	b.Lock()
	defer b.Unlock()
	for len(b.banners) > 0 && b.banners[0].IsCancelled() {
		b.banners = b.banners[1:]
	}
	if len(b.banners) < 1 {
		return nil
	}
	return b.banners[0]
}

type Priority uint8

const (
	Debug Priority = iota
	Info
	Warn
	Error
)

// MessageBanner requests a banner displaying the provided text until
// cancelled.
type MessageBanner struct {
	Priority
	Text      string
	cancelled bool
	sync.Mutex
}

func (m *MessageBanner) BannerPriority() Priority {
	return m.Priority
}

func (m *MessageBanner) Cancel() {
	m.Lock()
	defer m.Unlock()
	m.cancelled = true
}

func (m *MessageBanner) IsCancelled() bool {
	m.Lock()
	defer m.Unlock()
	return m.cancelled
}
