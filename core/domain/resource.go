// Package domain defines the gateway resources and how they map to the wire format.
package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Resource is any gateway-managed entity identified by an id.
type Resource interface {
	GetID() string
	SetID(id string)
	// URI returns the path of the resource relative to the API version root.
	URI(appendID bool) string
}

// Expose returns the JSON-compatible map that is sent to the gateway for r.
func Expose(r Resource) (map[string]any, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, NewSerializationError(err)
	}

	exposed := make(map[string]any)
	if err := json.Unmarshal(data, &exposed); err != nil {
		return nil, NewSerializationError(err)
	}
	return exposed, nil
}

// Hydrate overwrites the fields of r with the values found in a gateway response.
func Hydrate(r Resource, body []byte) error {
	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, r); err != nil {
		return NewSerializationError(fmt.Errorf("hydrating %T: %w", r, err))
	}
	return nil
}

func joinURI(parts ...string) string {
	trimmed := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.Trim(p, "/")
		if p != "" {
			trimmed = append(trimmed, p)
		}
	}
	return strings.Join(trimmed, "/")
}

// resourceURI appends id to base when requested and known.
func resourceURI(base, id string, appendID bool) string {
	if appendID && id != "" {
		return joinURI(base, id)
	}
	return joinURI(base)
}

// Entity carries the id shared by every resource.
type Entity struct {
	ID string `json:"id,omitempty"`
}

func (e *Entity) GetID() string {
	return e.ID
}

func (e *Entity) SetID(id string) {
	e.ID = id
}
