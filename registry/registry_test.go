package registry

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/noid/errors"
	"github.com/c360/noid/metric"
)

type widget struct {
	Size  float64
	Label string
}

type gadget struct {
	Name string
}

func newWidget(data any) (widget, error) {
	m, ok := data.(map[string]any)
	if !ok {
		return widget{}, fmt.Errorf("widget data must be an object, got %T", data)
	}
	w := widget{}
	if size, ok := m["size"].(float64); ok {
		w.Size = size
	}
	if label, ok := m["label"].(string); ok {
		w.Label = label
	}
	return w, nil
}

func newGadget(data any) (gadget, error) {
	name, ok := data.(string)
	if !ok {
		return gadget{}, fmt.Errorf("gadget data must be a string, got %T", data)
	}
	return gadget{Name: name}, nil
}

const (
	widgetIRI = "https://ex.org/schemas/widget"
	gadgetIRI = "https://ex.org/schemas/gadget"
)

func TestRegistry_RegisterAndCreate(t *testing.T) {
	reg := New()
	require.NoError(t, Register(reg, widgetIRI, newWidget))

	obj, err := reg.Create(widgetIRI, map[string]any{"size": 2.5, "label": "big"})
	require.NoError(t, err)

	w, ok := obj.(widget)
	require.True(t, ok, "expected a widget, got %T", obj)
	assert.Equal(t, 2.5, w.Size)
	assert.Equal(t, "big", w.Label)
}

func TestRegistry_CreateUnknownIRI(t *testing.T) {
	reg := New()
	require.NoError(t, Register(reg, widgetIRI, newWidget))

	obj, err := reg.Create("https://ex.org/schemas/missing", nil)
	require.Error(t, err)
	assert.Nil(t, obj)

	var unknown *errors.UnknownIRIError
	require.True(t, stderrors.As(err, &unknown))
	assert.Equal(t, "https://ex.org/schemas/missing", unknown.IRI)
	assert.Equal(t, []string{widgetIRI}, unknown.Known)
	assert.NotContains(t, unknown.Known, unknown.IRI)
}

func TestRegistry_CreateFactoryFailure(t *testing.T) {
	reg := New()
	require.NoError(t, Register(reg, gadgetIRI, newGadget))

	t.Run("factory error is chained", func(t *testing.T) {
		obj, err := reg.Create(gadgetIRI, 42.0)
		require.Error(t, err)
		assert.Nil(t, obj)

		var fve *errors.FactoryValidationError
		require.True(t, stderrors.As(err, &fve))
		assert.Equal(t, gadgetIRI, fve.IRI)
		assert.Equal(t, 42.0, fve.Data)
		assert.Error(t, fve.Unwrap())
	})

	t.Run("factory panic is recovered", func(t *testing.T) {
		panicIRI := "https://ex.org/schemas/panicky"
		require.NoError(t, Register(reg, panicIRI, func(data any) (widget, error) {
			panic("boom")
		}))

		obj, err := reg.Create(panicIRI, nil)
		require.Error(t, err)
		assert.Nil(t, obj)

		var fve *errors.FactoryValidationError
		require.True(t, stderrors.As(err, &fve))
		assert.Contains(t, fve.Error(), "panicked")
	})

	t.Run("nil product without error is a factory error", func(t *testing.T) {
		nilIRI := "https://ex.org/schemas/nilly"
		require.NoError(t, Register(reg, nilIRI, func(data any) (*widget, error) {
			return nil, nil
		}))

		obj, err := reg.Create(nilIRI, nil)
		require.Error(t, err)
		assert.Nil(t, obj)
	})
}

func TestRegistry_CollisionSemantics(t *testing.T) {
	t.Run("same factory re-registration is a no-op", func(t *testing.T) {
		reg := New()
		require.NoError(t, Register(reg, widgetIRI, newWidget))
		require.NoError(t, Register(reg, widgetIRI, newWidget))
		assert.Equal(t, 1, reg.Len())
	})

	t.Run("distinct factory collides", func(t *testing.T) {
		reg := New()
		require.NoError(t, Register(reg, widgetIRI, newWidget))

		err := Register(reg, widgetIRI, func(data any) (widget, error) {
			return widget{}, nil
		})
		require.Error(t, err)

		var collision *errors.RegistrationCollisionError
		require.True(t, stderrors.As(err, &collision))
		assert.Equal(t, widgetIRI, collision.IRI)
		assert.True(t, errors.IsFatal(err))
	})
}

func TestRegistry_RegisterValidation(t *testing.T) {
	reg := New()

	t.Run("empty IRI rejected", func(t *testing.T) {
		err := Register(reg, "", newWidget)
		require.Error(t, err)
		assert.True(t, errors.IsInvalid(err))
	})

	t.Run("nil factory rejected", func(t *testing.T) {
		err := Register[widget](reg, widgetIRI, nil)
		require.Error(t, err)
		assert.True(t, errors.IsInvalid(err))
	})
}

func TestRegistry_IRIForObject(t *testing.T) {
	reg := New()
	require.NoError(t, Register(reg, widgetIRI, newWidget))
	require.NoError(t, Register(reg, gadgetIRI, newGadget))

	t.Run("constructed object maps back to its IRI", func(t *testing.T) {
		obj, err := reg.Create(widgetIRI, map[string]any{"size": 1.0})
		require.NoError(t, err)

		iri, ok := reg.IRIForObject(obj)
		require.True(t, ok)
		assert.Equal(t, widgetIRI, iri)
	})

	t.Run("unregistered type has no IRI", func(t *testing.T) {
		_, ok := reg.IRIForObject("a plain string")
		assert.False(t, ok)
	})

	t.Run("nil object has no IRI", func(t *testing.T) {
		_, ok := reg.IRIForObject(nil)
		assert.False(t, ok)
	})

	t.Run("first registered IRI wins for a shared type", func(t *testing.T) {
		aliasIRI := "https://ex.org/alt/widget"
		require.NoError(t, Register(reg, aliasIRI, func(data any) (widget, error) {
			return widget{}, nil
		}))

		iri, ok := reg.IRIForObject(widget{})
		require.True(t, ok)
		assert.Equal(t, widgetIRI, iri, "reverse lookup must honor registration order")
	})
}

func TestRegistry_Introspection(t *testing.T) {
	reg := New()
	require.NoError(t, Register(reg, gadgetIRI, newGadget))
	require.NoError(t, Register(reg, widgetIRI, newWidget,
		WithDescription("A widget"),
		WithExample(map[string]any{"size": 1.0})))

	t.Run("IRIs are sorted snapshots", func(t *testing.T) {
		iris := reg.IRIs()
		assert.Equal(t, []string{gadgetIRI, widgetIRI}, iris)

		iris[0] = "mutated"
		assert.Equal(t, []string{gadgetIRI, widgetIRI}, reg.IRIs())
	})

	t.Run("Types preserves registration order", func(t *testing.T) {
		types := reg.Types()
		require.Len(t, types, 2)
		assert.Equal(t, "gadget", types[0].Name())
		assert.Equal(t, "widget", types[1].Name())
	})

	t.Run("Describe returns a copy", func(t *testing.T) {
		desc, ok := reg.Describe(widgetIRI)
		require.True(t, ok)
		assert.Equal(t, "A widget", desc.Description)

		desc.Example["size"] = 99.0
		again, _ := reg.Describe(widgetIRI)
		assert.Equal(t, 1.0, again.Example["size"])
	})

	t.Run("Describe unknown IRI", func(t *testing.T) {
		_, ok := reg.Describe("https://ex.org/schemas/missing")
		assert.False(t, ok)
	})
}

func TestRegistrationContext(t *testing.T) {
	t.Run("binds under namespace plus name", func(t *testing.T) {
		reg := New()
		ctx := reg.Namespace("https://ex.org/schemas/")
		require.NoError(t, RegisterIn(ctx, "widget", newWidget))

		assert.Equal(t, widgetIRI, ctx.IRI("widget"))
		_, err := reg.Create(widgetIRI, map[string]any{})
		assert.NoError(t, err)
	})

	t.Run("IRI is fixed at registration time", func(t *testing.T) {
		reg := New()
		ctx := reg.Namespace("https://ex.org/v1/")
		require.NoError(t, RegisterIn(ctx, "widget", newWidget))

		// A later context for another namespace has no effect on the
		// earlier binding.
		other := reg.Namespace("https://ex.org/v2/")
		require.NoError(t, RegisterIn(other, "gadget", newGadget))

		assert.Contains(t, reg.IRIs(), "https://ex.org/v1/widget")
		assert.Contains(t, reg.IRIs(), "https://ex.org/v2/gadget")
	})

	t.Run("empty namespace rejected", func(t *testing.T) {
		reg := New()
		ctx := reg.Namespace("")
		err := RegisterIn(ctx, "widget", newWidget)
		require.Error(t, err)
		assert.True(t, errors.IsInvalid(err))
	})

	t.Run("empty name rejected", func(t *testing.T) {
		reg := New()
		ctx := reg.Namespace("https://ex.org/schemas/")
		err := RegisterIn(ctx, "", newWidget)
		require.Error(t, err)
	})

	t.Run("keyword name rejected", func(t *testing.T) {
		reg := New()
		ctx := reg.Namespace("https://ex.org/schemas/")
		err := RegisterIn(ctx, "@context", newWidget)
		require.Error(t, err)
	})

	t.Run("IRI-shaped name rejected", func(t *testing.T) {
		reg := New()
		ctx := reg.Namespace("https://ex.org/schemas/")

		err := RegisterIn(ctx, "https://other.net/widget", newWidget)
		require.Error(t, err)
		assert.True(t, errors.IsInvalid(err))

		err = RegisterIn(ctx, "ex:widget", newWidget)
		require.Error(t, err)
	})

	t.Run("WithType gives an untyped binding reverse lookup", func(t *testing.T) {
		reg := New()
		ctx := reg.Namespace("https://ex.org/schemas/")
		require.NoError(t, ctx.Register("widget", func(data any) (any, error) {
			return widget{}, nil
		}, WithType(reflect.TypeOf(widget{}))))

		iri, ok := reg.IRIForObject(widget{})
		require.True(t, ok)
		assert.Equal(t, widgetIRI, iri)

		desc, ok := reg.Describe(widgetIRI)
		require.True(t, ok)
		assert.Equal(t, reflect.TypeOf(widget{}), desc.Type)
	})

	t.Run("untyped Register dispatches without reverse lookup", func(t *testing.T) {
		reg := New()
		ctx := reg.Namespace("https://ex.org/schemas/")
		require.NoError(t, ctx.Register("raw", func(data any) (any, error) {
			return map[string]any{"raw": data}, nil
		}))

		obj, err := reg.Create("https://ex.org/schemas/raw", "x")
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"raw": "x"}, obj)
	})
}

func TestMustRegister(t *testing.T) {
	t.Run("panics on collision", func(t *testing.T) {
		reg := New()
		MustRegister(reg, widgetIRI, newWidget)

		assert.Panics(t, func() {
			MustRegister(reg, widgetIRI, func(data any) (widget, error) {
				return widget{}, nil
			})
		})
	})

	t.Run("MustRegisterIn succeeds", func(t *testing.T) {
		reg := New()
		ctx := reg.Namespace("https://ex.org/schemas/")
		assert.NotPanics(t, func() {
			MustRegisterIn(ctx, "widget", newWidget)
		})
	})
}

func TestGlobalRegistry(t *testing.T) {
	ResetGlobal()
	t.Cleanup(ResetGlobal)

	first := Global()
	second := Global()
	assert.Same(t, first, second)

	require.NoError(t, Register(first, widgetIRI, newWidget))
	assert.Equal(t, 1, second.Len())

	ResetGlobal()
	assert.Equal(t, 0, Global().Len())
}

func TestRegistry_WithMetrics(t *testing.T) {
	metrics := metric.NewMetrics()
	reg := New().WithMetrics(metrics)

	require.NoError(t, Register(reg, widgetIRI, newWidget))
	_, err := reg.Create(widgetIRI, map[string]any{})
	require.NoError(t, err)
	_, err = reg.Create("https://ex.org/schemas/missing", nil)
	require.Error(t, err)

	// Recording must not panic and the gauge must track registrations;
	// exposition is covered by the metric package tests.
	assert.Equal(t, 1, reg.Len())
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	reg := New()
	require.NoError(t, Register(reg, widgetIRI, newWidget))

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			_, _ = reg.Create(widgetIRI, map[string]any{"size": 1.0})
			_, _ = reg.IRIForObject(widget{})
			_ = reg.IRIs()
		}
	}()

	for i := 0; i < 50; i++ {
		iri := fmt.Sprintf("https://ex.org/schemas/late%d", i)
		require.NoError(t, Register(reg, iri, newGadget))
	}
	<-done

	assert.Equal(t, 51, reg.Len())
}

func BenchmarkRegistry_Create(b *testing.B) {
	reg := New()
	if err := Register(reg, widgetIRI, newWidget); err != nil {
		b.Fatal(err)
	}
	data := map[string]any{"size": 2.5, "label": "big"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := reg.Create(widgetIRI, data); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRegistry_IRIForObject(b *testing.B) {
	reg := New()
	if err := Register(reg, widgetIRI, newWidget); err != nil {
		b.Fatal(err)
	}
	w := widget{Size: 1}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		reg.IRIForObject(w)
	}
}
