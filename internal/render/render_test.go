package render

import (
	"strings"
	"testing"

	"github.com/vovakirdan/playcell/internal/buffer"
)

func TestParseKind(t *testing.T) {
	cases := []struct {
		name string
		want Kind
	}{
		{"plain", Plain},
		{"text", Text},
		{"", Text},
		{"canvas", Text}, // unknown names fall back to text
	}
	for _, c := range cases {
		if got := ParseKind(c.name); got != c.want {
			t.Errorf("ParseKind(%q) = %v, expected %v", c.name, got, c.want)
		}
	}
}

func TestKindString(t *testing.T) {
	if Text.String() != "text" || Plain.String() != "plain" {
		t.Errorf("kind names = %q/%q", Text.String(), Plain.String())
	}
}

func TestNewSelectsBackend(t *testing.T) {
	if _, ok := New(Plain).(plainRenderer); !ok {
		t.Error("New(Plain) should return the plain renderer")
	}
	if _, ok := New(Text).(*textRenderer); !ok {
		t.Error("New(Text) should return the text renderer")
	}
}

func fillBuffer(rows []string) *buffer.Buffer {
	b := buffer.New(len(rows[0]), len(rows), buffer.Cell{})
	for y, row := range rows {
		for x, ch := range row {
			b.Set(buffer.Cell{Char: ch}, x, y)
		}
	}
	return b
}

func TestPlainRenderer(t *testing.T) {
	b := fillBuffer([]string{"ab", "cd"})

	got := plainRenderer{}.Render(nil, b)
	if got != "ab\ncd" {
		t.Errorf("plain output = %q, expected \"ab\\ncd\"", got)
	}
}

func TestTextRendererUnstyledPassthrough(t *testing.T) {
	b := fillBuffer([]string{"ab", "cd"})

	got := newTextRenderer().Render(nil, b)
	if got != "ab\ncd" {
		t.Errorf("unstyled output = %q, expected \"ab\\ncd\"", got)
	}
}

func TestTextRendererKeepsCharacterOrder(t *testing.T) {
	b := buffer.New(4, 1, buffer.Cell{})
	b.Set(buffer.Cell{Char: 'r', Color: "1"}, 0, 0)
	b.Set(buffer.Cell{Char: 'r', Color: "1"}, 1, 0)
	b.Set(buffer.Cell{Char: 'g', Color: "2"}, 2, 0)
	b.Set(buffer.Cell{Char: 'p'}, 3, 0)

	// Escape sequences depend on the terminal profile, so assert on the
	// characters only: every cell present, in row order.
	got := newTextRenderer().Render(nil, b)
	stripped := make([]rune, 0, 4)
	for _, ch := range got {
		switch ch {
		case 'r', 'g', 'p', ' ':
			stripped = append(stripped, ch)
		}
	}
	if string(stripped) != "rrgp" {
		t.Errorf("cell characters = %q, expected \"rrgp\" (raw %q)", string(stripped), got)
	}
	if strings.Contains(got, "\n") {
		t.Error("single-row frame should not contain a newline")
	}
}

func TestTextRendererCachesStyles(t *testing.T) {
	r := newTextRenderer()
	b := buffer.New(2, 1, buffer.Cell{Color: "3"})

	r.Render(nil, b)
	r.Render(nil, b)

	if len(r.styles) != 1 {
		t.Errorf("style cache holds %d entries, expected 1", len(r.styles))
	}
}
