package shopify

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeRecord(t *testing.T, raw string) Record {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var r Record
	require.NoError(t, dec.Decode(&r))
	return r
}

func TestRecordString(t *testing.T) {
	r := decodeRecord(t, `{"title":"Dress","id":123,"price":19.5,"flag":true,"barcode":null,"nested":{"a":1}}`)

	assert.Equal(t, "Dress", r.String("title", ""))
	assert.Equal(t, "123", r.String("id", ""))
	assert.Equal(t, "19.5", r.String("price", ""))
	assert.Equal(t, "true", r.String("flag", ""))
	assert.Equal(t, "none", r.String("barcode", "none"))
	assert.Equal(t, "none", r.String("missing", "none"))
	assert.Equal(t, "none", r.String("nested", "none"))
}

func TestRecordInt(t *testing.T) {
	r := decodeRecord(t, `{"qty":5,"neg":-2,"float":3.0,"frac":2.5,"text":"7","bad":"x","nil":null}`)

	assert.Equal(t, int64(5), r.Int("qty", 0))
	assert.Equal(t, int64(-2), r.Int("neg", 0))
	assert.Equal(t, int64(3), r.Int("float", 0))
	assert.Equal(t, int64(-1), r.Int("frac", -1))
	assert.Equal(t, int64(7), r.Int("text", 0))
	assert.Equal(t, int64(-1), r.Int("bad", -1))
	assert.Equal(t, int64(-1), r.Int("nil", -1))
	assert.Equal(t, int64(-1), r.Int("missing", -1))
}

func TestRecordNested(t *testing.T) {
	r := decodeRecord(t, `{"image":{"src":"a.jpg"},"images":[{"src":"b.jpg"},"junk",{"src":"c.jpg"}],"values":["Red",1,null]}`)

	require.NotNil(t, r.Record("image"))
	assert.Equal(t, "a.jpg", r.Record("image").String("src", ""))
	assert.Nil(t, r.Record("images"))
	assert.Nil(t, r.Record("missing"))

	images := r.Records("images")
	require.Len(t, images, 3)
	assert.Equal(t, "b.jpg", images[0].String("src", ""))
	assert.Empty(t, images[1])
	assert.Equal(t, "", images[1].String("src", ""))
	assert.Equal(t, "c.jpg", images[2].String("src", ""))
	assert.Nil(t, r.Records("image"))

	assert.Equal(t, []string{"Red", "1"}, r.Strings("values"))
	assert.True(t, r.Has("image"))
	assert.False(t, r.Has("missing"))
}

func TestRecordTypedSlices(t *testing.T) {
	r := Record{
		"variants": []Record{{"sku": "A"}},
		"images":   []map[string]any{{"src": "x.jpg"}},
		"values":   []string{"Blue"},
	}

	assert.Equal(t, "A", r.Records("variants")[0].String("sku", ""))
	assert.Equal(t, "x.jpg", r.Records("images")[0].String("src", ""))
	assert.Equal(t, []string{"Blue"}, r.Strings("values"))
}
