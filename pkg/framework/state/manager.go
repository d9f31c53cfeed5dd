// Package state wraps a processor's opaque state blob in a versioned
// container so hosts can persist it.
package state

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Magic opens every state container.
const Magic = "VST3GO"

// Version is the container version written by Save.
const Version uint32 = 1

// MaxPayload bounds the payload size accepted by Load.
const MaxPayload = 64 << 20

// ErrInvalidFormat is returned when data does not start with Magic.
var ErrInvalidFormat = errors.New("invalid state format")

// Holder is the part of a processor that owns state.
type Holder interface {
	GetStateInformation(w io.Writer) error
	SetStateInformation(data []byte) error
}

// Manager handles plugin state saving and loading
type Manager struct {
	version uint32
}

// NewManager creates a new state manager
func NewManager() *Manager {
	return &Manager{version: Version}
}

// Save writes the holder's state to w inside a container
func (m *Manager) Save(w io.Writer, h Holder) error {
	var payload bytes.Buffer
	if err := h.GetStateInformation(&payload); err != nil {
		return fmt.Errorf("get state: %w", err)
	}
	if payload.Len() > MaxPayload {
		return fmt.Errorf("state payload of %d bytes exceeds %d", payload.Len(), MaxPayload)
	}

	if _, err := io.WriteString(w, Magic); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, m.version); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(payload.Len())); err != nil {
		return err
	}
	_, err := w.Write(payload.Bytes())
	return err
}

// Load reads a container from r and hands its payload to the holder
func (m *Manager) Load(r io.Reader, h Holder) error {
	payload, err := m.Read(r)
	if err != nil {
		return err
	}
	if err := h.SetStateInformation(payload); err != nil {
		return fmt.Errorf("set state: %w", err)
	}
	return nil
}

// Read decodes a container and returns its payload without applying it
func (m *Manager) Read(r io.Reader) ([]byte, error) {
	header := make([]byte, len(Magic))
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if string(header) != Magic {
		return nil, ErrInvalidFormat
	}

	var version uint32
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return nil, fmt.Errorf("read version: %w", err)
	}
	if version > m.version {
		return nil, fmt.Errorf("state version %d is newer than supported version %d", version, m.version)
	}

	var size uint32
	if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
		return nil, fmt.Errorf("read payload size: %w", err)
	}
	if size > MaxPayload {
		return nil, fmt.Errorf("state payload of %d bytes exceeds %d", size, MaxPayload)
	}

	payload := make([]byte, size)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}
	return payload, nil
}
