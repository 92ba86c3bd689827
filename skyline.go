package quilt

import (
	"fmt"
	"math"
	"slices"
)

// skylineSeg is one horizontal run of the profile: the occupied region's top
// boundary is at height y over the span [x, x+w).
type skylineSeg struct {
	x, y, w int
}

func (s skylineSeg) left() int  { return s.x }
func (s skylineSeg) right() int { return s.x + s.w - 1 }

// SkylinePacker is a greedy bottom-left packer. It tracks the upper boundary
// of packed content as an ordered, gap-free run of horizontal segments and
// places each rectangle flush against the boundary at the position with the
// lowest resulting bottom edge.
//
// Not safe for concurrent use; see Packer.
type SkylinePacker[K comparable] struct {
	config Config
	border Rect

	// segs partition [border.Left(), border.Right()] sorted by x, with no
	// gaps and no overlaps.
	segs []skylineSeg
}

// NewSkylinePacker returns an empty packer for the bin described by config.
// The profile starts as a single segment spanning the whole usable width at
// height zero (border padding excluded).
func NewSkylinePacker[K comparable](config Config) *SkylinePacker[K] {
	bp := config.BorderPadding
	border := Rect{
		X: bp,
		Y: bp,
		W: config.MaxWidth - 2*bp,
		H: config.MaxHeight - 2*bp,
	}
	return &SkylinePacker[K]{
		config: config,
		border: border,
		segs:   []skylineSeg{{x: border.X, y: border.Y, w: border.W}},
	}
}

// canPut reports whether a w x h rectangle fits flush against the skyline
// starting at segment i. The rectangle is bottom-justified: its top edge sits
// on the highest segment it spans. Walking past the end of the profile while
// width remains uncovered means the bookkeeping is corrupt and panics.
func (p *SkylinePacker[K]) canPut(i, w, h int) (Rect, bool) {
	rect := Rect{X: p.segs[i].x, Y: p.border.Y, W: w, H: h}
	widthLeft := w
	for {
		rect.Y = max(rect.Y, p.segs[i].y)
		if !p.border.Contains(rect) {
			return Rect{}, false
		}
		if p.segs[i].w >= widthLeft {
			return rect, true
		}
		widthLeft -= p.segs[i].w
		i++
		if i >= len(p.segs) {
			panic("quilt: skyline profile ended before covering the requested width")
		}
	}
}

// findSkyline scans every segment as a candidate start for a w x h rectangle,
// in both orientations when rotation is enabled. Among the candidates that
// fit it keeps the one with the smallest bottom edge, breaking ties by the
// smallest starting segment width.
func (p *SkylinePacker[K]) findSkyline(w, h int) (int, Rect, bool) {
	bottom := math.MaxInt
	width := math.MaxInt
	index := -1
	var best Rect

	consider := func(i int, r Rect) {
		if r.Bottom() < bottom || (r.Bottom() == bottom && p.segs[i].w < width) {
			bottom = r.Bottom()
			width = p.segs[i].w
			index = i
			best = r
		}
	}

	for i := range p.segs {
		if r, ok := p.canPut(i, w, h); ok {
			consider(i, r)
		}
		if p.config.AllowRotation {
			if r, ok := p.canPut(i, h, w); ok {
				consider(i, r)
			}
		}
	}

	if index < 0 {
		return 0, Rect{}, false
	}
	return index, best, true
}

// split records rect as packed: a new segment is inserted at rect's bottom,
// and every following segment the rectangle overlaps is removed or shrunk
// from its left edge, keeping the profile contiguous.
func (p *SkylinePacker[K]) split(index int, rect Rect) {
	seg := skylineSeg{x: rect.Left(), y: rect.Bottom() + 1, w: rect.W}

	if seg.right() > p.border.Right() {
		panic(fmt.Sprintf("quilt: new skyline segment %+v exceeds bin right edge %d", seg, p.border.Right()))
	}
	// A rectangle flush with the bin floor leaves a segment one past the
	// last row; nothing can be placed on it, but the profile stays whole.
	if seg.y > p.border.Bottom()+1 {
		panic(fmt.Sprintf("quilt: new skyline segment %+v exceeds bin bottom edge %d", seg, p.border.Bottom()))
	}

	p.segs = slices.Insert(p.segs, index, seg)

	for i := index + 1; i < len(p.segs); {
		if p.segs[i-1].left() > p.segs[i].left() {
			panic("quilt: skyline profile out of order")
		}
		if p.segs[i].left() > p.segs[i-1].right() {
			break
		}
		shrink := p.segs[i-1].right() - p.segs[i].left() + 1
		if p.segs[i].w <= shrink {
			p.segs = slices.Delete(p.segs, i, i+1)
			continue
		}
		p.segs[i].x += shrink
		p.segs[i].w -= shrink
		break
	}
}

// merge fuses adjacent segments of equal height into one, keeping the
// profile, and therefore the search cost, minimal.
func (p *SkylinePacker[K]) merge() {
	for i := 1; i < len(p.segs); {
		if p.segs[i-1].y == p.segs[i].y {
			p.segs[i-1].w += p.segs[i].w
			p.segs = slices.Delete(p.segs, i, i+1)
			continue
		}
		i++
	}
}

// Pack implements Packer. The placed size is the texture size plus
// TexturePadding plus twice TextureExtrusion in each dimension; the returned
// Frame has the padding stripped back out.
func (p *SkylinePacker[K]) Pack(key K, textureRect Rect) (Frame[K], bool) {
	if textureRect.W <= 0 || textureRect.H <= 0 {
		return Frame[K]{}, false
	}

	pad := p.config.sizePadding()
	w := textureRect.W + pad
	h := textureRect.H + pad

	i, rect, ok := p.findSkyline(w, h)
	if !ok {
		return Frame[K]{}, false
	}

	p.split(i, rect)
	p.merge()

	rotated := w != rect.W
	rect.W -= pad
	rect.H -= pad

	return Frame[K]{
		Key:     key,
		Frame:   rect,
		Rotated: rotated,
		Source:  Rect{W: textureRect.W, H: textureRect.H},
	}, true
}

// CanPack implements Packer. It is stricter than Pack: it also requires the
// skyline segment the placement would create to stay within the bin, so a
// true result guarantees an immediately following Pack of the same rectangle
// succeeds.
func (p *SkylinePacker[K]) CanPack(textureRect Rect) bool {
	if textureRect.W <= 0 || textureRect.H <= 0 {
		return false
	}
	pad := p.config.sizePadding()
	_, rect, ok := p.findSkyline(textureRect.W+pad, textureRect.H+pad)
	if !ok {
		return false
	}
	seg := skylineSeg{x: rect.Left(), y: rect.Bottom() + 1, w: rect.W}
	return seg.right() <= p.border.Right() && seg.y <= p.border.Bottom()
}

// CenterBeforeTrimming implements Packer. The untrimmed center is the placed
// rectangle's center displaced by the frame's trim offset, clamped to the
// bin.
func (p *SkylinePacker[K]) CenterBeforeTrimming(frame Frame[K]) (int, int) {
	cx := frame.Frame.X + frame.Frame.W/2
	cy := frame.Frame.Y + frame.Frame.H/2

	ox, oy := frame.TrimOffset()
	cx += ox
	cy += oy

	cx = min(max(cx, p.border.X), p.config.MaxWidth)
	cy = min(max(cy, p.border.Y), p.config.MaxHeight)
	return cx, cy
}
