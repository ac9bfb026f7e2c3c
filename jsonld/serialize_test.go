package jsonld

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/noid/registry"
)

const (
	schemasNS = "https://ex.org/schemas/"
	widgetIRI = schemasNS + "widget"
	gaugeIRI  = "https://other.net/instruments/gauge"
)

// widget is a minimal registered domain type whose data form is its
// scale value.
type widget struct {
	Scale float64
}

func (w widget) ToData() any {
	return w.Scale
}

func newWidget(data any) (widget, error) {
	scale, ok := data.(float64)
	if !ok {
		return widget{}, fmt.Errorf("widget data must be a number, got %T", data)
	}
	return widget{Scale: scale}, nil
}

// gauge is a second registered type in a different namespace.
type gauge struct {
	Unit string
}

func (g gauge) ToData() any {
	return g.Unit
}

func newGauge(data any) (gauge, error) {
	unit, ok := data.(string)
	if !ok {
		return gauge{}, fmt.Errorf("gauge data must be a string, got %T", data)
	}
	return gauge{Unit: unit}, nil
}

// plain is deliberately unregistered and not Serializable.
type plain struct {
	N int
}

func newTestRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg := registry.New()
	require.NoError(t, registry.Register(reg, widgetIRI, newWidget))
	require.NoError(t, registry.Register(reg, gaugeIRI, newGauge))
	return reg
}

func TestSerializer_SingleObject(t *testing.T) {
	ser := NewSerializer(newTestRegistry(t))

	t.Run("registered object wraps under abbreviated local name", func(t *testing.T) {
		result, err := ser.ToJSONLD(widget{Scale: 2.5})
		require.NoError(t, err)

		doc, ok := result.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, 2.5, doc["sche:widget"])

		context, ok := doc["@context"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, schemasNS, context["sche"])
	})

	t.Run("unregistered object uses the generic key", func(t *testing.T) {
		result, err := ser.ToJSONLD(plain{N: 1})
		require.NoError(t, err)

		doc := result.(map[string]any)
		assert.Equal(t, plain{N: 1}, doc["value"])
		assert.NotContains(t, doc, "@context")
	})
}

func TestSerializer_Map(t *testing.T) {
	ser := NewSerializer(newTestRegistry(t))

	t.Run("registered values get abbreviated keys", func(t *testing.T) {
		result, err := ser.ToJSONLD(map[string]any{
			"w": widget{Scale: 1.5},
			"g": gauge{Unit: "kPa"},
		})
		require.NoError(t, err)

		doc := result.(map[string]any)
		assert.Equal(t, 1.5, doc["sche:widget"])
		assert.Equal(t, "kPa", doc["inst:gauge"])

		context := doc["@context"].(map[string]any)
		assert.Equal(t, schemasNS, context["sche"])
		assert.Equal(t, "https://other.net/instruments/", context["inst"])
	})

	t.Run("unregistered values keep their original keys", func(t *testing.T) {
		result, err := ser.ToJSONLD(map[string]any{
			"w":     widget{Scale: 1.0},
			"notes": "manual entry",
		})
		require.NoError(t, err)

		doc := result.(map[string]any)
		assert.Equal(t, 1.0, doc["sche:widget"])
		assert.Equal(t, "manual entry", doc["notes"])
	})

	t.Run("incoming @context key is not serialized as data", func(t *testing.T) {
		result, err := ser.ToJSONLD(map[string]any{
			"@context": map[string]any{"stale": "https://stale.example/"},
			"w":        widget{Scale: 1.0},
		})
		require.NoError(t, err)

		doc := result.(map[string]any)
		context := doc["@context"].(map[string]any)
		assert.NotContains(t, context, "stale")
	})
}

func TestSerializer_List(t *testing.T) {
	ser := NewSerializer(newTestRegistry(t))

	t.Run("order is preserved", func(t *testing.T) {
		result, err := ser.ToJSONLD([]any{
			widget{Scale: 1.0},
			widget{Scale: 2.0},
			widget{Scale: 3.0},
		})
		require.NoError(t, err)

		doc := result.(map[string]any)
		list, ok := doc["@list"].([]any)
		require.True(t, ok)
		require.Len(t, list, 3)

		for i, expected := range []float64{1.0, 2.0, 3.0} {
			item := list[i].(map[string]any)
			assert.Equal(t, expected, item["sche:widget"])
		}
	})

	t.Run("empty list", func(t *testing.T) {
		result, err := ser.ToJSONLD([]any{})
		require.NoError(t, err)

		doc := result.(map[string]any)
		assert.Equal(t, []any{}, doc["@list"])
		assert.NotContains(t, doc, "@context")
	})

	t.Run("typed slices are accepted", func(t *testing.T) {
		result, err := ser.ToJSONLD([]widget{{Scale: 1.0}, {Scale: 2.0}})
		require.NoError(t, err)

		doc := result.(map[string]any)
		require.Len(t, doc["@list"], 2)
	})

	t.Run("mixed registered and plain items", func(t *testing.T) {
		result, err := ser.ToJSONLD([]any{widget{Scale: 1.0}, "annotation"})
		require.NoError(t, err)

		doc := result.(map[string]any)
		list := doc["@list"].([]any)
		require.Len(t, list, 2)
		assert.Equal(t, "annotation", list[1])
	})
}

func TestSerializer_WithoutContext(t *testing.T) {
	ser := NewSerializer(newTestRegistry(t))

	t.Run("map keeps original keys", func(t *testing.T) {
		result, err := ser.ToJSONLD(map[string]any{
			"w": widget{Scale: 1.5},
		}, WithoutContext())
		require.NoError(t, err)

		doc := result.(map[string]any)
		assert.Equal(t, 1.5, doc["w"])
		assert.NotContains(t, doc, "@context")
		assert.NotContains(t, doc, "sche:widget")
	})

	t.Run("empty list has no context", func(t *testing.T) {
		result, err := ser.ToJSONLD([]any{}, WithoutContext())
		require.NoError(t, err)

		doc := result.(map[string]any)
		assert.Equal(t, map[string]any{"@list": []any{}}, doc)
	})

	t.Run("list items use bare local names", func(t *testing.T) {
		result, err := ser.ToJSONLD([]any{widget{Scale: 2.0}}, WithoutContext())
		require.NoError(t, err)

		doc := result.(map[string]any)
		item := doc["@list"].([]any)[0].(map[string]any)
		assert.Equal(t, 2.0, item["widget"])
	})
}

func TestSerializer_WithIndent(t *testing.T) {
	ser := NewSerializer(newTestRegistry(t))

	result, err := ser.ToJSONLD(widget{Scale: 2.5}, WithIndent("  "))
	require.NoError(t, err)

	text, ok := result.(string)
	require.True(t, ok, "indented output must be a JSON string")
	assert.Contains(t, text, "\n")

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(text), &decoded))
	assert.Equal(t, 2.5, decoded["sche:widget"])
}

func TestSerializer_SerializableHook(t *testing.T) {
	ser := NewSerializer(newTestRegistry(t))

	// gauge.ToData returns its unit string; the serialized value must be
	// the data form, not the struct.
	result, err := ser.ToJSONLD(map[string]any{"g": gauge{Unit: "mbar"}})
	require.NoError(t, err)

	doc := result.(map[string]any)
	assert.Equal(t, "mbar", doc["inst:gauge"])
}

func BenchmarkSerializer_ToJSONLD(b *testing.B) {
	reg := registry.New()
	if err := registry.Register(reg, widgetIRI, newWidget); err != nil {
		b.Fatal(err)
	}
	ser := NewSerializer(reg)
	data := map[string]any{"w": widget{Scale: 2.5}}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ser.ToJSONLD(data); err != nil {
			b.Fatal(err)
		}
	}
}
