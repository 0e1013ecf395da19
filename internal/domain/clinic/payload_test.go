package clinic

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPayload(t *testing.T, body string, nonEmpty bool) (payload, error) {
	t.Helper()
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	return decodePayload(r, nonEmpty)
}

func TestDecodePayload(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		nonEmpty bool
		wantErr  string
	}{
		{"empty body", "", false, "No input data provided"},
		{"null", " null ", false, "No input data provided"},
		{"empty object on create", "{}", false, ""},
		{"empty object on update", "{}", true, "No input data provided"},
		{"broken", `{"name":`, false, "invalid json"},
		{"array", `[1,2]`, false, "invalid json"},
		{"ok", `{"name":"Leo"}`, true, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newPayload(t, tt.body, tt.nonEmpty)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.EqualError(t, err, tt.wantErr)
		})
	}

	_, err := newPayload(t, "", false)
	assert.True(t, errors.Is(err, errNoInput))
}

func TestPayloadStr(t *testing.T) {
	p, err := newPayload(t, `{"name":"Leo","city":null,"age":3}`, false)
	require.NoError(t, err)

	s, err := p.str("name")
	require.NoError(t, err)
	assert.Equal(t, "Leo", *s)

	s, err = p.str("city")
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "", *s)

	s, err = p.str("missing")
	require.NoError(t, err)
	assert.Nil(t, s)

	_, err = p.str("age")
	require.EqualError(t, err, "age must be a string")
}

func TestPayloadIDAndRef(t *testing.T) {
	p, err := newPayload(t, `{"ownerId":7,"quoted":"7","float":1.5,"type":{"id":3},"bare":4,"nullType":null,"bad":{"name":"dog"}}`, false)
	require.NoError(t, err)

	id, err := p.id("ownerId")
	require.NoError(t, err)
	assert.Equal(t, int64(7), *id)

	_, err = p.id("quoted")
	require.EqualError(t, err, "quoted must be an integer")
	_, err = p.id("float")
	require.EqualError(t, err, "float must be an integer")

	ref, err := p.ref("type")
	require.NoError(t, err)
	assert.Equal(t, int64(3), *ref)

	ref, err = p.ref("bare")
	require.NoError(t, err)
	assert.Equal(t, int64(4), *ref)

	ref, err = p.ref("nullType")
	require.NoError(t, err)
	assert.Nil(t, ref)

	_, err = p.ref("bad")
	require.EqualError(t, err, "bad must be an object with an id")
}

func TestPayloadDate(t *testing.T) {
	p, err := newPayload(t, `{"date":"2013-01-04","cleared":null,"blank":"","bad":"04/01/2013"}`, false)
	require.NoError(t, err)

	d, err := p.date("date")
	require.NoError(t, err)
	assert.True(t, d.Present)
	assert.Equal(t, "2013-01-04", d.Value.Format("2006-01-02"))

	d, err = p.date("cleared")
	require.NoError(t, err)
	assert.True(t, d.Present)
	assert.Nil(t, d.Value)

	d, err = p.date("blank")
	require.NoError(t, err)
	assert.True(t, d.Present)
	assert.Nil(t, d.Value)

	d, err = p.date("missing")
	require.NoError(t, err)
	assert.False(t, d.Present)

	_, err = p.date("bad")
	require.EqualError(t, err, "bad must be YYYY-MM-DD")
}

func TestPayloadSpecialties(t *testing.T) {
	p, err := newPayload(t, `{"specialties":[{"id":1},{"name":"surgery"},2,"dentistry",{}],"none":null,"bad":"radiology"}`, false)
	require.NoError(t, err)

	refs, err := p.specialties("specialties")
	require.NoError(t, err)
	require.Len(t, *refs, 4)
	assert.Equal(t, int64(1), *(*refs)[0].ID)
	assert.Equal(t, "surgery", *(*refs)[1].Name)
	assert.Equal(t, int64(2), *(*refs)[2].ID)
	assert.Equal(t, "dentistry", *(*refs)[3].Name)

	refs, err = p.specialties("none")
	require.NoError(t, err)
	require.NotNil(t, refs)
	assert.Empty(t, *refs)

	refs, err = p.specialties("missing")
	require.NoError(t, err)
	assert.Nil(t, refs)

	_, err = p.specialties("bad")
	require.EqualError(t, err, "bad must be a list")
}
