package dnd

import "github.com/matzehuels/stackshift/pkg/geom"

// Proxy is the stock floating visual: a rectangle carrying the dragged item
// and a label for renderers.
type Proxy struct {
	Item  Item
	Label string
	frame geom.Rect
}

// NewProxy creates a proxy at frame.
func NewProxy(item Item, label string, frame geom.Rect) *Proxy {
	return &Proxy{Item: item, Label: label, frame: frame}
}

func (p *Proxy) Frame() geom.Rect        { return p.frame }
func (p *Proxy) SetFrame(frame geom.Rect) { p.frame = frame }

var _ Visual = (*Proxy)(nil)
