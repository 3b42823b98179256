package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		expectedW     int
		expectedH     int
	}{
		{"terminal", 80, 24, 80, 24},
		{"empty", 0, 0, 0, 0},
		{"negative clamps", -3, 5, 0, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(tc.width, tc.height)
			if s.Width() != tc.expectedW || s.Height() != tc.expectedH {
				t.Fatalf("size = %dx%d, expected %dx%d", s.Width(), s.Height(), tc.expectedW, tc.expectedH)
			}
			if strings.Trim(s.String(), " \n") != "" {
				t.Error("new screen is not blank")
			}
		})
	}
}

func TestScreenClipping(t *testing.T) {
	s := NewScreen(4, 3)

	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 3}} {
		s.SetColored(p[0], p[1], 'X', ColorRed)
		if got := s.GetCell(p[0], p[1]); got != blank {
			t.Errorf("GetCell(%d, %d) = %+v, expected blank", p[0], p[1], got)
		}
	}
	if got := s.String(); got != "    \n    \n    " {
		t.Errorf("out-of-bounds writes leaked: %q", got)
	}

	s.DrawText(2, 1, "abcdef")
	if got := s.Row(1); got != "  ab" {
		t.Errorf("Row(1) = %q, expected %q", got, "  ab")
	}
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(6, 2)
	s.DrawTextColored(1, 0, "█▀●", ColorCyan)
	s.Set(0, 1, '─')

	tests := []struct {
		x, y     int
		expected Cell
	}{
		{0, 0, blank},
		{1, 0, Cell{'█', ColorCyan}},
		{2, 0, Cell{'▀', ColorCyan}},
		{3, 0, Cell{'●', ColorCyan}},
		{0, 1, Cell{'─', ColorDefault}},
	}
	for _, tc := range tests {
		if got := s.GetCell(tc.x, tc.y); got != tc.expected {
			t.Errorf("GetCell(%d, %d) = %+v, expected %+v", tc.x, tc.y, got, tc.expected)
		}
	}

	s.Clear()
	if got := s.GetCell(2, 0); got != blank {
		t.Errorf("after Clear GetCell(2, 0) = %+v", got)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	tests := []struct {
		width    int
		text     string
		expected string
	}{
		{10, "PAUSED", "  PAUSED  "},
		{9, "CLEAR!", " CLEAR!  "},
		{5, "▼▼▼", " ▼▼▼ "},
	}

	for _, tc := range tests {
		s := NewScreen(tc.width, 1)
		s.DrawTextCentered(0, tc.text)
		if got := s.Row(0); got != tc.expected {
			t.Errorf("centered %q in %d = %q, expected %q", tc.text, tc.width, got, tc.expected)
		}
	}
}

func TestScreenBox(t *testing.T) {
	s := NewScreen(6, 4)
	box := NewRect(0, 0, 6, 4)
	s.DrawRect(box, '.', ColorYellow)
	s.DrawBox(box)

	expected := strings.Join([]string{
		"┌────┐",
		"│....│",
		"│....│",
		"└────┘",
	}, "\n")
	if got := s.String(); got != expected {
		t.Errorf("String() =\n%s\nexpected\n%s", got, expected)
	}
	if c := s.GetCell(2, 2).Color; c != ColorYellow {
		t.Errorf("fill color = %v, expected yellow", c)
	}
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "abcd")
	s.DrawText(0, 1, "efgh")

	s.Resize(2, 3)
	if got := s.String(); got != "ab\nef\n  " {
		t.Errorf("after shrink = %q", got)
	}

	s.Resize(3, 1)
	if got := s.String(); got != "ab " {
		t.Errorf("after grow = %q", got)
	}
}

func TestScreenRowOutOfRange(t *testing.T) {
	s := NewScreen(3, 1)
	for _, y := range []int{-1, 1} {
		if got := s.Row(y); got != "   " {
			t.Errorf("Row(%d) = %q, expected blank", y, got)
		}
	}
}
