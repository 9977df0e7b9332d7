package form

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image/png"
	"strings"
)

// ErrNotDrawn is returned by ImagePNG for typed signatures.
var ErrNotDrawn = errors.New("form: signature is not a drawn image")

// ImagePNG decodes a drawn signature into PNG bytes. The capture widget
// submits a data URL ("data:image/png;base64,..."); bare base64 is also
// accepted. The decoded bytes are verified to be a parseable PNG so a
// renderer can trust what it embeds, and failures stay recoverable at the
// call site (the renderer degrades to a textual signature).
func (s Signature) ImagePNG() ([]byte, error) {
	if s.Kind != SignatureDrawn {
		return nil, ErrNotDrawn
	}

	raw := strings.TrimSpace(s.Value)
	if raw == "" {
		return nil, errors.New("form: drawn signature is empty")
	}

	if idx := strings.Index(raw, ","); idx >= 0 && strings.HasPrefix(raw, "data:") {
		header := raw[:idx]
		if !strings.Contains(header, "image/png") {
			return nil, fmt.Errorf("form: unsupported signature media type %q", header)
		}
		raw = raw[idx+1:]
	}

	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("form: decode signature image: %w", err)
	}
	if _, err := png.DecodeConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("form: verify signature image: %w", err)
	}
	return data, nil
}
