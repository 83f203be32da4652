package services

import (
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/harentsoaR/pet24-api/internal/models"
)

const DefaultDoctorPhoto = "/images/default-doctor.svg"

// postImageKeywords is checked in order; the first keyword found in a post
// title picks the image topic.
var postImageKeywords = []struct {
	word  string
	topic string
}{
	{"گربه", "cat"},
	{"سگ", "dog"},
	{"حیوان", "pet"},
	{"پت", "pet"},
	{"خرگوش", "rabbit"},
	{"پرنده", "bird"},
	{"ماهی", "fish"},
	{"همستر", "hamster"},
	{"خوک", "guinea-pig"},
}

// MediaResolver fills in missing doctor photos and product images. The
// chosen URLs are cached per record id for the life of the process.
type MediaResolver struct {
	mu            sync.Mutex
	doctorPhotos  map[string]string
	productImages map[string]string
}

func NewMediaResolver() *MediaResolver {
	return &MediaResolver{
		doctorPhotos:  make(map[string]string),
		productImages: make(map[string]string),
	}
}

func (m *MediaResolver) EnsureDoctorPhotos(doctors []models.Doctor) []models.Doctor {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range doctors {
		d := &doctors[i]
		if photo := strings.TrimSpace(d.Photo); photo != "" {
			d.Photo = photo
			m.doctorPhotos[d.ID] = photo
			continue
		}
		if _, ok := m.doctorPhotos[d.ID]; !ok {
			m.doctorPhotos[d.ID] = DefaultDoctorPhoto
		}
		d.Photo = m.doctorPhotos[d.ID]
	}
	return doctors
}

func (m *MediaResolver) EnsureProductImages(products []models.Product) []models.Product {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range products {
		p := &products[i]
		if image := strings.TrimSpace(p.Image); image != "" {
			p.Image = image
			m.productImages[p.ID] = image
			continue
		}
		if _, ok := m.productImages[p.ID]; !ok {
			seed := p.Name
			if seed == "" {
				seed = p.ID
			}
			if seed == "" {
				seed = fmt.Sprintf("product-%d", len(m.productImages)+1)
			}
			m.productImages[p.ID] = diceBearURL("shapes", seed)
		}
		p.Image = m.productImages[p.ID]
	}
	return products
}

// PostImageFor picks a placeholder image for a post by its title.
func PostImageFor(title string) string {
	topic := "pet"
	for _, kw := range postImageKeywords {
		if strings.Contains(title, kw.word) {
			topic = kw.topic
			break
		}
	}
	return "https://source.unsplash.com/800x600/?" + topic + ",animal"
}

// componentUnescape undoes the QueryEscape choices that differ from
// JavaScript's encodeURIComponent.
var componentUnescape = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

func diceBearURL(style, seed string) string {
	return fmt.Sprintf("https://api.dicebear.com/7.x/%s/png?seed=%s&size=512", style, componentUnescape.Replace(url.QueryEscape(seed)))
}
