package maps

import (
	"math"
	"strings"
	"sync"
)

// PanoLink is a navigable connection from the current panorama to an
// adjacent one, tagged with its outgoing compass heading.
type PanoLink struct {
	Heading     float64 `json:"heading"`
	Description string  `json:"description,omitempty"`
	Position    LatLng  `json:"position"`
}

// Panorama is the Street View camera: a position, a point of view, and
// the set of links leading to neighboring panoramas. Links are
// supplied by whatever imagery source backs the panorama.
type Panorama struct {
	mu       sync.RWMutex
	visible  bool
	position LatLng
	pov      Pov
	links    []PanoLink
}

// NewPanorama creates a hidden panorama at the origin.
func NewPanorama() *Panorama {
	return &Panorama{}
}

// Visible reports whether the panorama is shown.
func (p *Panorama) Visible() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.visible
}

// SetVisible shows or hides the panorama.
func (p *Panorama) SetVisible(v bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.visible = v
}

// Position returns the panorama position.
func (p *Panorama) Position() LatLng {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.position
}

// SetPosition moves the panorama. Links from the previous position no
// longer apply and are cleared; the imagery source repopulates them.
func (p *Panorama) SetPosition(pos LatLng) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.position = pos
	p.links = nil
}

// Pov returns the current camera orientation.
func (p *Panorama) Pov() Pov {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.pov
}

// SetPov sets the camera orientation, normalizing the heading.
func (p *Panorama) SetPov(pov Pov) {
	p.mu.Lock()
	defer p.mu.Unlock()
	pov.Heading = NormalizeHeading(pov.Heading)
	p.pov = pov
}

// Links returns the navigable links at the current position.
func (p *Panorama) Links() []PanoLink {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]PanoLink, len(p.links))
	copy(out, p.links)
	return out
}

// SetLinks replaces the navigable links at the current position.
func (p *Panorama) SetLinks(links []PanoLink) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.links = make([]PanoLink, len(links))
	copy(p.links, links)
}

// navigation link tolerance in degrees either side of the requested
// compass heading
const linkTolerance = 45

// Navigate moves to the linked panorama closest to the given compass
// direction (north, northeast, ...). It returns the link taken and
// false when no link lies within tolerance of that direction.
func (p *Panorama) Navigate(direction string) (PanoLink, bool) {
	target, ok := CompassHeading(direction)
	if !ok {
		return PanoLink{}, false
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	best := -1
	bestDist := math.MaxFloat64
	for i, link := range p.links {
		d := angularDistance(link.Heading, target)
		if d <= linkTolerance && d < bestDist {
			best = i
			bestDist = d
		}
	}
	if best < 0 {
		return PanoLink{}, false
	}

	link := p.links[best]
	p.position = link.Position
	p.links = nil
	return link, true
}

var compassHeadings = map[string]float64{
	"north":     0,
	"northeast": 45,
	"east":      90,
	"southeast": 135,
	"south":     180,
	"southwest": 225,
	"west":      270,
	"northwest": 315,
}

// CompassHeading resolves a compass direction name to degrees from
// true north. The lookup is case-insensitive.
func CompassHeading(direction string) (float64, bool) {
	h, ok := compassHeadings[strings.ToLower(strings.TrimSpace(direction))]
	return h, ok
}

// angularDistance is the smallest angle between two headings.
func angularDistance(a, b float64) float64 {
	d := math.Abs(NormalizeHeading(a) - NormalizeHeading(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}
