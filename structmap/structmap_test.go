package structmap

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yajbe-format/yajbe-go"
)

type Address struct {
	City string `yajbe:"city"`
	Zip  string `yajbe:"zip,omitempty"`
}

type Person struct {
	Name    string   `yajbe:"name"`
	Age     int      `yajbe:"age"`
	Tags    []string `yajbe:"tags,omitempty"`
	Address Address  `yajbe:"address"`
	Ignored string   `yajbe:"-"`
	Secret  string   `yajbe:",omitempty"`
}

func TestToValueAndBack(t *testing.T) {
	p := Person{
		Name: "ada",
		Age:  36,
		Tags: []string{"x", "y"},
		Address: Address{
			City: "london",
		},
		Ignored: "skip-me",
	}

	v, err := ToValue(&p)
	require.NoError(t, err)

	m, ok := v.(yajbe.Map)
	require.True(t, ok)
	require.Equal(t, yajbe.String("ada"), m["name"])
	require.Equal(t, yajbe.Int(36), m["age"])
	require.NotContains(t, m, "Ignored")
	require.NotContains(t, m, "Secret")

	addr, ok := m["address"].(yajbe.Map)
	require.True(t, ok)
	require.Equal(t, yajbe.String("london"), addr["city"])
	require.NotContains(t, addr, "zip")

	encoded, err := yajbe.Encode(v, yajbe.EncodeOptions{})
	require.NoError(t, err)
	decoded, err := yajbe.Decode(encoded, yajbe.DecodeOptions{})
	require.NoError(t, err)

	var out Person
	require.NoError(t, FromValue(&out, decoded))
	require.Equal(t, "ada", out.Name)
	require.Equal(t, 36, out.Age)
	require.Equal(t, []string{"x", "y"}, out.Tags)
	require.Equal(t, "london", out.Address.City)
	require.Equal(t, "", out.Ignored)
}

func TestOmitEmptySkipsZeroValue(t *testing.T) {
	p := Person{Name: "bob", Age: 0}
	v, err := ToValue(&p)
	require.NoError(t, err)
	m := v.(yajbe.Map)
	require.NotContains(t, m, "tags")
}
