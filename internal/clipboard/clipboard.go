// Package clipboard moves images between the editor and a clipboard.
package clipboard

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"strings"
	"sync"

	pimage "paintr/internal/image"

	"github.com/atotto/clipboard"
)

// Clipboard reads and writes images.
//
// GetImage returns (nil, nil) when the clipboard is empty or holds
// something that is not an image.
type Clipboard interface {
	GetImage() (*image.RGBA, error)
	PutImage(img image.Image) error
}

const dataURIPrefix = "data:image/png;base64,"

// EncodeDataURI encodes img as PNG inside a data URI.
func EncodeDataURI(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode clipboard image: %w", err)
	}
	return dataURIPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// DecodeDataURI decodes a PNG data URI. It returns false when text is not
// a well-formed image URI.
func DecodeDataURI(text string) (*image.RGBA, bool) {
	payload, ok := strings.CutPrefix(strings.TrimSpace(text), dataURIPrefix)
	if !ok {
		return nil, false
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, false
	}
	img, err := pimage.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, false
	}
	return img, true
}

// System is the operating system clipboard. Images travel as PNG data
// URIs in the text clipboard.
type System struct {
	readAll  func() (string, error)
	writeAll func(text string) error
}

// NewSystem returns the OS clipboard. It fails when no clipboard utility
// is available on this platform.
func NewSystem() (*System, error) {
	if clipboard.Unsupported {
		return nil, fmt.Errorf("system clipboard unavailable")
	}
	return &System{readAll: clipboard.ReadAll, writeAll: clipboard.WriteAll}, nil
}

// GetImage implements Clipboard.
func (s *System) GetImage() (*image.RGBA, error) {
	text, err := s.readAll()
	if err != nil {
		if text == "" {
			// xclip and xsel exit non-zero on an empty clipboard.
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read clipboard: %w", err)
	}
	img, ok := DecodeDataURI(text)
	if !ok {
		return nil, nil
	}
	return img, nil
}

// PutImage implements Clipboard.
func (s *System) PutImage(img image.Image) error {
	text, err := EncodeDataURI(img)
	if err != nil {
		return err
	}
	if err := s.writeAll(text); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	return nil
}

// Memory is an in-process clipboard.
type Memory struct {
	mu  sync.Mutex
	img *image.RGBA
}

// NewMemory returns an empty in-process clipboard.
func NewMemory() *Memory {
	return &Memory{}
}

// GetImage implements Clipboard. The result is a private copy.
func (m *Memory) GetImage() (*image.RGBA, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.img == nil {
		return nil, nil
	}
	return pimage.Clone(m.img), nil
}

// PutImage implements Clipboard.
func (m *Memory) PutImage(img image.Image) error {
	copied := pimage.Clone(pimage.ToRGBA(img))
	m.mu.Lock()
	m.img = copied
	m.mu.Unlock()
	return nil
}
