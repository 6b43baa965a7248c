package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
)

const (
	SDKName    = "HeidelpayGo"
	SDKVersion = "1.2.0"
)

// Metadata holds free-form key/value pairs attached to a payment.
// On the wire it is a single flat object.
type Metadata struct {
	ID          string
	SDKName     string
	SDKVersion  string
	ShopType    string
	ShopVersion string
	values      map[string]string
}

func NewMetadata() *Metadata {
	return &Metadata{
		SDKName:    SDKName,
		SDKVersion: SDKVersion,
		values:     make(map[string]string),
	}
}

func (m *Metadata) GetID() string {
	return m.ID
}

func (m *Metadata) SetID(id string) {
	m.ID = id
}

func (m *Metadata) URI(appendID bool) string {
	return resourceURI("metadata", m.ID, appendID)
}

// AddMetadata sets a custom value. The reserved keys of the flat object are rejected.
func (m *Metadata) AddMetadata(key, value string) error {
	switch key {
	case "id", "sdkName", "sdkVersion", "shopType", "shopVersion":
		return NewInvalidArgumentError("metadata key", fmt.Errorf("%q is reserved", key))
	}
	if m.values == nil {
		m.values = make(map[string]string)
	}
	m.values[key] = value
	return nil
}

func (m *Metadata) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Values returns a copy of the custom values.
func (m *Metadata) Values() map[string]string {
	return maps.Clone(m.values)
}

func (m *Metadata) MarshalJSON() ([]byte, error) {
	flat := make(map[string]string, len(m.values)+5)
	maps.Copy(flat, m.values)
	setIfNotEmpty(flat, "id", m.ID)
	setIfNotEmpty(flat, "sdkName", m.SDKName)
	setIfNotEmpty(flat, "sdkVersion", m.SDKVersion)
	setIfNotEmpty(flat, "shopType", m.ShopType)
	setIfNotEmpty(flat, "shopVersion", m.ShopVersion)
	return json.Marshal(flat)
}

// UnmarshalJSON keeps the raw text of non-string values, so numbers survive unchanged.
func (m *Metadata) UnmarshalJSON(data []byte) error {
	var flat map[string]json.RawMessage
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}
	if m.values == nil {
		m.values = make(map[string]string)
	}
	for key, raw := range flat {
		value, err := metadataValue(raw)
		if err != nil {
			return fmt.Errorf("metadata %q: %w", key, err)
		}
		switch key {
		case "id":
			m.ID = value
		case "sdkName":
			m.SDKName = value
		case "sdkVersion":
			m.SDKVersion = value
		case "shopType":
			m.ShopType = value
		case "shopVersion":
			m.ShopVersion = value
		default:
			m.values[key] = value
		}
	}
	return nil
}

func metadataValue(raw json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	switch {
	case len(trimmed) == 0, bytes.Equal(trimmed, []byte("null")):
		return "", nil
	case trimmed[0] == '"':
		var value string
		if err := json.Unmarshal(trimmed, &value); err != nil {
			return "", err
		}
		return value, nil
	default:
		return string(trimmed), nil
	}
}

func setIfNotEmpty(m map[string]string, key, value string) {
	if value != "" {
		m[key] = value
	}
}
