//go:build !tinygo && cgo

package hal

import (
	"image"

	"algcalc/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// WindowConfig controls the desktop window.
type WindowConfig struct {
	Scale  int
	TPS    int
	Invert bool
}

// windowKeys maps physical keys to input names, plain and with shift
// held (US layout). An empty shifted name falls back to the plain one.
var windowKeys = []struct {
	key            ebiten.Key
	plain, shifted string
}{
	{ebiten.KeyDigit0, "0", ""},
	{ebiten.KeyDigit1, "1", ""},
	{ebiten.KeyDigit2, "2", ""},
	{ebiten.KeyDigit3, "3", ""},
	{ebiten.KeyDigit4, "4", ""},
	{ebiten.KeyDigit5, "5", ""},
	{ebiten.KeyDigit6, "6", ""},
	{ebiten.KeyDigit7, "7", ""},
	{ebiten.KeyDigit8, "8", "*"},
	{ebiten.KeyDigit9, "9", ""},
	{ebiten.KeyNumpad0, "0", ""},
	{ebiten.KeyNumpad1, "1", ""},
	{ebiten.KeyNumpad2, "2", ""},
	{ebiten.KeyNumpad3, "3", ""},
	{ebiten.KeyNumpad4, "4", ""},
	{ebiten.KeyNumpad5, "5", ""},
	{ebiten.KeyNumpad6, "6", ""},
	{ebiten.KeyNumpad7, "7", ""},
	{ebiten.KeyNumpad8, "8", ""},
	{ebiten.KeyNumpad9, "9", ""},
	{ebiten.KeyNumpadAdd, "+", ""},
	{ebiten.KeyNumpadSubtract, "-", ""},
	{ebiten.KeyNumpadMultiply, "*", ""},
	{ebiten.KeyNumpadDivide, "/", ""},
	{ebiten.KeyNumpadDecimal, ".", ""},
	{ebiten.KeyNumpadEnter, "enter", ""},
	{ebiten.KeyEqual, "=", "+"},
	{ebiten.KeyMinus, "-", ""},
	{ebiten.KeySlash, "/", ""},
	{ebiten.KeyPeriod, ".", ""},
	{ebiten.KeyComma, ",", ""},
	{ebiten.KeyX, "x", ""},
	{ebiten.KeyF, "f", ""},
	{ebiten.KeyBackspace, "backspace", ""},
	{ebiten.KeyDelete, "delete", ""},
	{ebiten.KeyArrowLeft, "left", ""},
	{ebiten.KeyArrowRight, "right", ""},
	{ebiten.KeyEnter, "enter", ""},
	{ebiten.KeyEscape, "escape", ""},
}

// RunWindow starts a desktop window that shows committed frames and
// turns keyboard input into matrix presses. It blocks until the window
// closes or run returns.
func RunWindow(cfg Config, wcfg WindowConfig, run func(HAL) error) error {
	if wcfg.Scale <= 0 {
		wcfg.Scale = 3
	}
	if wcfg.TPS <= 0 {
		wcfg.TPS = 60
	}
	h, err := newHost(cfg)
	if err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() { done <- run(h) }()

	g := &hostGame{
		h:      h,
		done:   done,
		invert: wcfg.Invert,
		frame:  NewFramebuffer(PanelWidth, PanelHeight),
		img:    image.NewRGBA(image.Rect(0, 0, PanelWidth, PanelHeight)),
		held:   make(map[ebiten.Key]string),
	}
	ebiten.SetWindowTitle(buildinfo.Name + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(PanelWidth*wcfg.Scale, PanelHeight*wcfg.Scale)
	ebiten.SetTPS(wcfg.TPS)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h      *hostHAL
	done   <-chan error
	invert bool

	frame *Framebuffer
	img   *image.RGBA
	fbImg *ebiten.Image

	// held remembers the input name each physical key pressed, so the
	// release goes to the same cell even if shift changed meanwhile.
	held map[ebiten.Key]string
}

func (g *hostGame) Update() error {
	select {
	case err := <-g.done:
		if err != nil {
			return err
		}
		return ebiten.Termination
	default:
	}

	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	for _, k := range windowKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			name := k.plain
			if shift && k.shifted != "" {
				name = k.shifted
			}
			if g.h.setKey(name, true) {
				g.held[k.key] = name
			}
		}
		if inpututil.IsKeyJustReleased(k.key) {
			if name, ok := g.held[k.key]; ok {
				g.h.setKey(name, false)
				delete(g.held, k.key)
			}
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	if g.fbImg == nil {
		g.fbImg = ebiten.NewImage(PanelWidth, PanelHeight)
	}
	g.h.disp.snapshot(g.frame)

	ink, paper := byte(0x00), byte(0xFF)
	if g.invert {
		ink, paper = paper, ink
	}
	dst := g.img.Pix
	for y := 0; y < PanelHeight; y++ {
		for x := 0; x < PanelWidth; x++ {
			v := paper
			if g.frame.Black(x, y) {
				v = ink
			}
			j := y*g.img.Stride + x*4
			dst[j+0] = v
			dst[j+1] = v
			dst[j+2] = v
			dst[j+3] = 0xFF
		}
	}

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return PanelWidth, PanelHeight
}
