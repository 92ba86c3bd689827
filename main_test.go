package quilt

import (
	"os"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// testGame hosts the test run inside an ebiten game loop so that
// (*ebiten.Image).At and friends are usable from tests.
type testGame struct {
	m    *testing.M
	code int
}

func (g *testGame) Update() error {
	g.code = g.m.Run()
	return ebiten.Termination
}

func (*testGame) Draw(*ebiten.Image) {}

func (*testGame) Layout(int, int) (int, int) {
	return 320, 240
}

func TestMain(m *testing.M) {
	g := &testGame{m: m, code: 1}
	if err := ebiten.RunGame(g); err != nil {
		panic(err)
	}
	if g.code != 0 {
		os.Exit(g.code)
	}
}
