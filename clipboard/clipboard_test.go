package clipboard

import (
	"bytes"
	"errors"
	"testing"
)

func TestHandleClose(t *testing.T) {
	released := 0
	h := NewHandle([]byte{1, 2, 3}, func() error {
		released++
		return nil
	})

	if got := h.Bytes(); !bytes.Equal(got, []byte{1, 2, 3}) {
		t.Errorf("Bytes = %v, want [1 2 3]", got)
	}

	if err := h.Close(); err != nil {
		t.Errorf("Close returned error: %v", err)
	}
	if err := h.Close(); err != nil {
		t.Errorf("second Close returned error: %v", err)
	}
	if released != 1 {
		t.Errorf("release hook ran %d times, want 1", released)
	}
	if h.Bytes() != nil {
		t.Error("Bytes after Close should be nil")
	}
}

func TestHandleCloseReturnsReleaseError(t *testing.T) {
	wantErr := errors.New("unlock failed")
	h := NewHandle(nil, func() error { return wantErr })

	if err := h.Close(); !errors.Is(err, wantErr) {
		t.Errorf("Close error = %v, want %v", err, wantErr)
	}
	// The error is not replayed on later closes.
	if err := h.Close(); err != nil {
		t.Errorf("second Close returned error: %v", err)
	}
}

func TestHandleWithoutRelease(t *testing.T) {
	h := NewHandle([]byte{9}, nil)
	if err := h.Close(); err != nil {
		t.Errorf("Close returned error: %v", err)
	}
}

func TestMemoryAcquireDIB(t *testing.T) {
	m := NewMemory([]byte{0xca, 0xfe})

	h, err := m.AcquireDIB()
	if err != nil {
		t.Fatalf("AcquireDIB returned error: %v", err)
	}
	defer h.Close()

	if got := h.Bytes(); !bytes.Equal(got, []byte{0xca, 0xfe}) {
		t.Errorf("Bytes = %v, want [ca fe]", got)
	}
}

func TestMemoryAcquireDIBEmpty(t *testing.T) {
	m := NewMemory(nil)
	if _, err := m.AcquireDIB(); !errors.Is(err, ErrNoBitmap) {
		t.Errorf("AcquireDIB error = %v, want ErrNoBitmap", err)
	}
}

func TestMemorySetText(t *testing.T) {
	m := NewMemory(nil)
	src := []byte{0x48, 0x00, 0x00, 0x00}

	if err := m.SetText(src); err != nil {
		t.Fatalf("SetText returned error: %v", err)
	}

	// The sink keeps its own copy.
	src[0] = 0xff
	if got := m.Text(); !bytes.Equal(got, []byte{0x48, 0x00, 0x00, 0x00}) {
		t.Errorf("Text = %v, want the originally published bytes", got)
	}
}
