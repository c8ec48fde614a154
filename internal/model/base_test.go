package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListValue(t *testing.T) {
	v, err := StringList{"dipirona", "penicilina"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["dipirona","penicilina"]`, v)

	v, err = StringList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}

func TestStringListScan(t *testing.T) {
	var l StringList
	require.NoError(t, l.Scan([]byte(`["dipirona"]`)))
	assert.Equal(t, StringList{"dipirona"}, l)

	var fromString StringList
	require.NoError(t, fromString.Scan(`["a","b"]`))
	assert.Len(t, fromString, 2)

	var fromNil StringList
	require.NoError(t, fromNil.Scan(nil))
	assert.Nil(t, fromNil)

	var bad StringList
	assert.Error(t, bad.Scan(42))
}

func TestContatoListRoundTrip(t *testing.T) {
	contatos := ContatoList{{Nome: "João", Telefone: "11999990000"}}

	v, err := contatos.Value()
	require.NoError(t, err)

	var scanned ContatoList
	require.NoError(t, scanned.Scan(v.(string)))
	assert.Equal(t, contatos, scanned)
}
