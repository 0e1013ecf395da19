package clinic

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const maxBodyBytes = 1 << 20

var errNoInput = errors.New("No input data provided")

// badRequestError es un error de forma del payload (400 con el mensaje tal cual).
type badRequestError struct {
	msg string
}

func (e *badRequestError) Error() string { return e.msg }

func badRequest(format string, args ...any) error {
	return &badRequestError{msg: fmt.Sprintf(format, args...)}
}

// payload decodifica el body a un map para poder distinguir "campo ausente"
// de "campo enviado como null" (semántica PATCH).
type payload map[string]json.RawMessage

// decodePayload: body ausente o null => errNoInput. En updates (nonEmpty)
// un objeto vacío también es errNoInput.
func decodePayload(r *http.Request, nonEmpty bool) (payload, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return nil, badRequest("invalid json")
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 || string(body) == "null" {
		return nil, errNoInput
	}

	var p payload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, badRequest("invalid json")
	}
	if nonEmpty && len(p) == 0 {
		return nil, errNoInput
	}
	return p, nil
}

func (p payload) has(key string) bool {
	_, ok := p[key]
	return ok
}

// raw devuelve el valor o nil si está ausente o es null.
func (p payload) raw(key string) json.RawMessage {
	v, ok := p[key]
	if !ok || isNull(v) {
		return nil
	}
	return v
}

func isNull(v json.RawMessage) bool {
	return string(bytes.TrimSpace(v)) == "null"
}

// str: ausente => nil; null => "" (falla luego en required); otro tipo => 400.
func (p payload) str(key string) (*string, error) {
	v, ok := p[key]
	if !ok {
		return nil, nil
	}
	var s string
	if isNull(v) {
		return &s, nil
	}
	if err := json.Unmarshal(v, &s); err != nil {
		return nil, badRequest("%s must be a string", key)
	}
	return &s, nil
}

func (p payload) strValue(key string) (string, error) {
	s, err := p.str(key)
	if err != nil || s == nil {
		return "", err
	}
	return *s, nil
}

// id: ausente o null => nil.
func (p payload) id(key string) (*int64, error) {
	v := p.raw(key)
	if v == nil {
		return nil, nil
	}
	n, ok := parseInt(v)
	if !ok {
		return nil, badRequest("%s must be an integer", key)
	}
	return &n, nil
}

// ref acepta {"id": n} o n a secas. Ausente o null => nil.
func (p payload) ref(key string) (*int64, error) {
	v := p.raw(key)
	if v == nil {
		return nil, nil
	}
	if n, ok := parseInt(v); ok {
		return &n, nil
	}

	var obj payload
	if err := json.Unmarshal(v, &obj); err == nil {
		id, err := obj.id("id")
		if err != nil {
			return nil, badRequest("%s.id must be an integer", key)
		}
		if id == nil {
			return nil, badRequest("%s must be an object with an id", key)
		}
		return id, nil
	}
	return nil, badRequest("%s must be an object with an id", key)
}

// date: ausente => Present=false; null o "" => Present con nil.
func (p payload) date(key string) (DatePatch, error) {
	v, ok := p[key]
	if !ok {
		return DatePatch{}, nil
	}
	if isNull(v) {
		return DatePatch{Present: true}, nil
	}

	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return DatePatch{}, badRequest("%s must be YYYY-MM-DD", key)
	}
	t, err := ParseDate(strings.TrimSpace(s))
	if err != nil {
		return DatePatch{}, badRequest("%s must be YYYY-MM-DD", key)
	}
	return DatePatch{Present: true, Value: t}, nil
}

// specialties acepta una lista de {"id": n}, {"name": s}, n o s.
// Ausente => nil; null => lista vacía (limpia el set en un update).
func (p payload) specialties(key string) (*[]SpecialtyRef, error) {
	v, ok := p[key]
	if !ok {
		return nil, nil
	}
	refs := make([]SpecialtyRef, 0)
	if isNull(v) {
		return &refs, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(v, &items); err != nil {
		return nil, badRequest("%s must be a list", key)
	}

	for _, item := range items {
		if n, ok := parseInt(item); ok {
			refs = append(refs, SpecialtyRef{ID: &n})
			continue
		}
		var name string
		if err := json.Unmarshal(item, &name); err == nil {
			refs = append(refs, SpecialtyRef{Name: &name})
			continue
		}

		var obj payload
		if err := json.Unmarshal(item, &obj); err != nil {
			return nil, badRequest("%s must be a list of objects", key)
		}
		id, err := obj.id("id")
		if err != nil {
			return nil, badRequest("%s.id must be an integer", key)
		}
		if id != nil {
			refs = append(refs, SpecialtyRef{ID: id})
			continue
		}
		n, err := obj.str("name")
		if err != nil {
			return nil, badRequest("%s.name must be a string", key)
		}
		// sin id ni name: referencia vacía, se descarta
		if n != nil {
			refs = append(refs, SpecialtyRef{Name: n})
		}
	}
	return &refs, nil
}

// parseInt acepta solo números JSON enteros.
func parseInt(v json.RawMessage) (int64, bool) {
	v = bytes.TrimSpace(v)
	// json.Number también acepta strings como "5"
	if len(v) == 0 || v[0] == '"' {
		return 0, false
	}
	dec := json.NewDecoder(bytes.NewReader(v))
	dec.UseNumber()

	var n json.Number
	if err := dec.Decode(&n); err != nil {
		return 0, false
	}
	i, err := n.Int64()
	if err != nil {
		return 0, false
	}
	return i, true
}
