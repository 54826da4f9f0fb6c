package cursor

import (
	"errors"
	"testing"
)

func TestCursorNext(t *testing.T) {
	c := New("ab")

	for i, want := range []byte("ab") {
		got, err := c.Next()
		if err != nil {
			t.Fatalf("Next() #%d error: %v", i, err)
		}
		if got != want {
			t.Errorf("Next() #%d = %q, want %q", i, got, want)
		}
	}

	if !c.AtEnd() {
		t.Errorf("AtEnd() = false, want true")
	}
	if _, err := c.Next(); !errors.Is(err, ErrEndOfInput) {
		t.Errorf("Next() at end error = %v, want %v", err, ErrEndOfInput)
	}
	if c.Offset() != 2 {
		t.Errorf("Offset() = %d, want 2", c.Offset())
	}
}

func TestCursorEmpty(t *testing.T) {
	c := New("")
	if !c.AtEnd() {
		t.Errorf("AtEnd() = false, want true")
	}
	if _, err := c.Next(); !errors.Is(err, ErrEndOfInput) {
		t.Errorf("Next() error = %v, want %v", err, ErrEndOfInput)
	}
	if c.Offset() != 0 {
		t.Errorf("Offset() = %d, want 0", c.Offset())
	}
}

func TestCursorPushBack(t *testing.T) {
	tests := []struct {
		name    string
		consume int
		back    int
		want    int
	}{
		{"one", 3, 1, 2},
		{"several", 3, 2, 1},
		{"clamped", 2, 5, 0},
		{"zero", 2, 0, 2},
		{"negative", 2, -1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New("abcd")
			for i := 0; i < tt.consume; i++ {
				if _, err := c.Next(); err != nil {
					t.Fatalf("Next() error: %v", err)
				}
			}
			c.PushBack(tt.back)
			if c.Offset() != tt.want {
				t.Errorf("Offset() = %d, want %d", c.Offset(), tt.want)
			}
		})
	}
}

func TestCursorSaveRestore(t *testing.T) {
	c := New("hello")
	c.Next()
	mark := c.Save()

	c.Next()
	c.Next()
	if c.Offset() != 3 {
		t.Fatalf("Offset() = %d, want 3", c.Offset())
	}

	c.Restore(mark)
	if c.Offset() != 1 {
		t.Errorf("Offset() after Restore = %d, want 1", c.Offset())
	}
	ch, _ := c.Next()
	if ch != 'e' {
		t.Errorf("Next() after Restore = %q, want %q", ch, 'e')
	}
	if c.Remaining() != 3 {
		t.Errorf("Remaining() = %d, want 3", c.Remaining())
	}
}

func TestCursorRestoreForeignMark(t *testing.T) {
	long := New("abcdef")
	for !long.AtEnd() {
		long.Next()
	}
	mark := long.Save()

	short := New("ab")
	short.Restore(mark)
	if short.Offset() != short.Len() {
		t.Errorf("Offset() = %d, want %d", short.Offset(), short.Len())
	}
}
