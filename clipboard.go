package scenecmd

import (
	"log/slog"

	"github.com/cespare/xxhash/v2"
)

// TextClipboard is the OS-level clipboard boundary. Implementations may
// block briefly on the host's clipboard service; callers treat both
// operations as synchronous external calls.
type TextClipboard interface {
	ReadText() (string, error)
	WriteText(text string) error
}

// MemoryClipboard is an in-process TextClipboard for headless hosts and
// tests.
type MemoryClipboard struct {
	text string
}

// ReadText returns the stored text.
func (c *MemoryClipboard) ReadText() (string, error) {
	return c.text, nil
}

// WriteText replaces the stored text.
func (c *MemoryClipboard) WriteText(text string) error {
	c.text = text
	return nil
}

// ClipboardBridge holds the last-copied entity payload in process memory
// and mirrors it to the OS clipboard, so a paste can recover the payload
// even when another application became the clipboard source, and other
// applications can receive entities copied here.
//
// The bridge starts empty and is never proactively cleared; a stored
// payload persists for the process lifetime until overwritten. Like the
// rest of the command layer it is confined to the editor thread.
type ClipboardBridge struct {
	os TextClipboard

	// last-copied payload text; "" until the first copy
	payload string

	// content hash of the last text mirrored to the OS clipboard, used
	// to skip redundant OS writes
	mirrored uint64
}

// NewClipboardBridge creates a bridge over the given OS clipboard.
// Passing nil uses an in-process MemoryClipboard.
func NewClipboardBridge(os TextClipboard) *ClipboardBridge {
	if os == nil {
		os = &MemoryClipboard{}
	}
	return &ClipboardBridge{os: os}
}

// Set stores payload text and mirrors it to the OS clipboard. An OS
// write failure is reported but does not invalidate the process copy.
func (b *ClipboardBridge) Set(text string) {
	b.payload = text

	sum := xxhash.Sum64String(text)
	if sum == b.mirrored {
		return
	}
	if err := b.os.WriteText(text); err != nil {
		slog.Warn("scenecmd: failed to mirror payload to OS clipboard", "err", err)
		return
	}
	b.mirrored = sum
}

// SetPayload encodes a payload and stores it.
func (b *ClipboardBridge) SetPayload(p *EntityTreePayload) error {
	text, err := p.Encode()
	if err != nil {
		return err
	}
	b.Set(text)
	return nil
}

// Get returns the stored payload text. When the process copy is empty,
// it is lazily re-populated from the OS clipboard, so entities copied by
// another process (or before this one's copy was overwritten there) can
// still be pasted. Returns "" when neither side has content.
func (b *ClipboardBridge) Get() string {
	if b.payload != "" {
		return b.payload
	}
	text, err := b.os.ReadText()
	if err != nil {
		slog.Warn("scenecmd: failed to read OS clipboard", "err", err)
		return ""
	}
	if text != "" {
		b.payload = text
		b.mirrored = xxhash.Sum64String(text)
	}
	return b.payload
}

// HasContent reports whether a paste could find payload text, checking
// the process copy first and the OS clipboard second.
func (b *ClipboardBridge) HasContent() bool {
	return b.Get() != ""
}
