// Command wheel-gif renders a spin session as an animated GIF. It uses the
// same timeline and winner math as the interactive wheel, so a given seed
// produces the same winner here as in a live session.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"
	"math"
	"os"
	"sync"
	"time"

	"github.com/fogleman/gg"
	"github.com/gdamore/tcell/v2"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/lixenwraith/spinwheel/entries"
	"github.com/lixenwraith/spinwheel/render"
	"github.com/lixenwraith/spinwheel/spin"
)

var (
	entriesFlag  = flag.String("entries", "", "Entries file path (YAML, required)")
	outFlag      = flag.String("out", "wheel.gif", "Output GIF path")
	seedFlag     = flag.Int64("seed", 0, "Random seed, 0 seeds from the clock")
	durationFlag = flag.Duration("duration", 6*time.Second, "Spin duration")
	lingerFlag   = flag.Duration("linger", 2*time.Second, "Hold on the winner after the spin")
	fpsFlag      = flag.Int("fps", 25, "Frames per second")
	sizeFlag     = flag.Int("size", 480, "Canvas size in pixels")
)

// maxGIFEntries keeps the frame palette within the GIF 256-color limit
// after the fixed UI colors are accounted for.
const maxGIFEntries = 240

var (
	colorOutline = color.RGBA{32, 34, 37, 255}
	colorLabel   = color.RGBA{255, 255, 255, 255}
	colorShadow  = color.RGBA{0, 0, 0, 255}
)

func main() {
	flag.Parse()

	if *entriesFlag == "" {
		fmt.Fprintln(os.Stderr, "wheel-gif: -entries is required")
		flag.Usage()
		os.Exit(1)
	}
	if *fpsFlag < 1 || *fpsFlag > 50 {
		fmt.Fprintln(os.Stderr, "wheel-gif: -fps must be between 1 and 50")
		os.Exit(1)
	}

	file, err := entries.LoadFile(*entriesFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "wheel-gif: %v\n", err)
		os.Exit(1)
	}
	if len(file.Entries) > maxGIFEntries {
		fmt.Fprintf(os.Stderr, "wheel-gif: too many entries for GIF export (%d > %d)\n",
			len(file.Entries), maxGIFEntries)
		os.Exit(1)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	out, err := os.Create(*outFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "wheel-gif: %v\n", err)
		os.Exit(1)
	}

	winner, err := generate(out, file, uint64(seed), *durationFlag, *lingerFlag, *fpsFlag, *sizeFlag)
	if err != nil {
		out.Close()
		fmt.Fprintf(os.Stderr, "wheel-gif: %v\n", err)
		os.Exit(1)
	}
	if err := out.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "wheel-gif: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("wrote %s: winner %q (seed %d)\n", *outFlag, file.Entries[winner], seed)
}

// generate renders the full spin into w and returns the winning index.
func generate(w io.Writer, file *entries.File, seed uint64, duration, linger time.Duration, fps, size int) (int, error) {
	source := spin.NewSource(seed)

	// Same travel formula as a live session: ten guaranteed turns plus a
	// random fraction of one more
	delta := spin.BaseSpinDegrees + source.Float64()*spin.FullCircle
	tl := spin.Timeline{Start: 0, Delta: delta, Duration: duration}
	final := tl.Start + tl.Delta
	winner := spin.WinningIndex(final, len(file.Entries))

	ft, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return 0, fmt.Errorf("parsing font: %w", err)
	}

	pal := render.NewPalette(len(file.Entries))

	frameDur := time.Second / time.Duration(fps)
	spinning := int(duration / frameDur)
	lingering := int(linger / frameDur)
	frames := spinning + lingering
	if frames == 0 {
		return 0, fmt.Errorf("duration too short for %d fps", fps)
	}

	rendered := make([]image.Image, frames)

	var wg sync.WaitGroup
	wg.Add(frames)

	for frame := 0; frame < frames; frame++ {
		go func(frame int) {
			defer wg.Done()

			rotation, done := tl.Rotation(time.Duration(frame) * frameDur)
			if frame >= spinning {
				rotation, done = final, true
			}

			dc := gg.NewContext(size, size)
			// Faces are not safe for concurrent use, one per frame
			dc.SetFontFace(truetype.NewFace(ft, &truetype.Options{
				Size:    float64(size) / 34,
				Hinting: font.HintingFull,
			}))
			drawFrame(dc, file, pal, size, rotation, winner, done)
			rendered[frame] = dc.Image()
		}(frame)
	}

	wg.Wait()

	// Quantize to a shared palette: fixed UI colors plus one per segment
	palette := []color.Color{
		toRGBA(render.RgbBackground),
		toRGBA(render.RgbHub),
		toRGBA(render.RgbWinnerGold),
		colorOutline,
		colorLabel,
		colorShadow,
	}
	for i := range pal {
		palette = append(palette, toRGBA(pal.At(i)))
	}

	images := make([]*image.Paletted, frames)
	delays := make([]int, frames)
	delay := 100 / fps // GIF delay unit is 10ms

	for i, frame := range rendered {
		bounds := frame.Bounds()
		paletted := image.NewPaletted(bounds, palette)
		draw.Draw(paletted, bounds, frame, bounds.Min, draw.Src)
		images[i] = paletted
		delays[i] = delay
	}

	return winner, gif.EncodeAll(w, &gif.GIF{
		Image: images,
		Delay: delays,
	})
}

// drawFrame renders one animation frame: disc, labels, pointer, and once
// the spin is done, the winner callout.
func drawFrame(dc *gg.Context, file *entries.File, pal render.Palette, size int, rotation float64, winner int, done bool) {
	cx, cy := float64(size)/2, float64(size)/2
	radius := float64(size) * 0.40

	dc.SetColor(toRGBA(render.RgbBackground))
	dc.Clear()

	if file.Title != "" {
		dc.SetColor(toRGBA(render.RgbWinnerGold))
		dc.DrawStringAnchored(file.Title, cx, float64(size)*0.05, 0.5, 0.5)
	}

	n := len(file.Entries)
	width := spin.SegmentWidth(n)

	// Segment i faces the band [rotation+i*width, rotation+(i+1)*width) of
	// screen angle, measured clockwise from 12 o'clock. gg arcs take math
	// angles from 3 o'clock, so shift by -90 degrees.
	for i := 0; i < n; i++ {
		a1 := gg.Radians(rotation + float64(i)*width - 90)
		a2 := gg.Radians(rotation + float64(i+1)*width - 90)

		dc.MoveTo(cx, cy)
		dc.DrawArc(cx, cy, radius, a1, a2)
		dc.ClosePath()
		dc.SetColor(toRGBA(pal.At(i)))
		dc.Fill()
	}

	// Division lines
	dc.SetLineWidth(2)
	dc.SetColor(colorOutline)
	for i := 0; i < n; i++ {
		a := gg.Radians(rotation + float64(i)*width - 90)
		dc.MoveTo(cx, cy)
		dc.LineTo(cx+math.Cos(a)*radius, cy+math.Sin(a)*radius)
		dc.Stroke()
	}

	// Rim
	dc.SetLineWidth(3)
	dc.SetColor(colorOutline)
	dc.DrawCircle(cx, cy, radius)
	dc.Stroke()

	// Labels along each segment's bisector, flipped upright on the left half
	for i := 0; i < n; i++ {
		mid := gg.Radians(rotation + (float64(i)+0.5)*width - 90)
		lx := cx + math.Cos(mid)*radius*0.62
		ly := cy + math.Sin(mid)*radius*0.62

		dc.Push()
		dc.Translate(lx, ly)
		dc.Rotate(mid)
		if math.Cos(mid) < 0 {
			dc.Rotate(math.Pi)
		}
		dc.SetColor(colorShadow)
		dc.DrawStringAnchored(file.Entries[i], 1, 1, 0.5, 0.5)
		dc.SetColor(colorLabel)
		dc.DrawStringAnchored(file.Entries[i], 0, 0, 0.5, 0.5)
		dc.Pop()
	}

	// Hub
	dc.SetColor(toRGBA(render.RgbHub))
	dc.DrawCircle(cx, cy, radius*0.16)
	dc.Fill()
	dc.SetLineWidth(2)
	dc.SetColor(colorOutline)
	dc.DrawCircle(cx, cy, radius*0.16)
	dc.Stroke()

	// Pointer at 3 o'clock, tip toward the rim
	arrow := float64(size) * 0.05
	tipX := cx + radius - arrow*0.3
	dc.NewSubPath()
	dc.MoveTo(tipX, cy)
	dc.LineTo(tipX+arrow, cy-arrow/2)
	dc.LineTo(tipX+arrow, cy+arrow/2)
	dc.ClosePath()
	if done {
		dc.SetColor(toRGBA(render.RgbWinnerGold))
	} else {
		dc.SetColor(colorLabel)
	}
	dc.FillPreserve()
	dc.SetLineWidth(2)
	dc.SetColor(colorOutline)
	dc.Stroke()

	if done {
		dc.SetColor(toRGBA(render.RgbWinnerGold))
		dc.DrawStringAnchored("winner: "+file.Entries[winner], cx, cy+radius+float64(size)*0.06, 0.5, 0.5)
	}
}

func toRGBA(c tcell.Color) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{uint8(r), uint8(g), uint8(b), 255}
}
