package vcard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Empty(t *testing.T) {
	contacts, warnings := Parse("")
	assert.Empty(t, contacts)
	assert.Empty(t, warnings)
}

func TestParse_SinglePair(t *testing.T) {
	contacts, warnings := Parse("Azim\n+7 925 198-90-91\n")
	require.Len(t, contacts, 1)
	assert.Equal(t, Contact{Name: "Azim", Phone: "+79251989091"}, contacts[0])
	assert.Empty(t, warnings)
}

func TestParse_BlankLinesDropped(t *testing.T) {
	contacts, warnings := Parse("\n\nAzim\r\n\r\n  +7 925 198-90-91  \n\n")
	require.Len(t, contacts, 1)
	assert.Equal(t, "+79251989091", contacts[0].Phone)
	assert.Empty(t, warnings)
}

func TestParse_DanglingTrailingName(t *testing.T) {
	contacts, warnings := Parse("Alice\n+1 555 0100\nBob")
	require.Len(t, contacts, 1)
	assert.Equal(t, Contact{Name: "Alice", Phone: "+15550100"}, contacts[0])
	require.Len(t, warnings, 1)
	assert.Equal(t, WarnDanglingName, warnings[0].Kind)
	assert.Contains(t, warnings[0].String(), "Bob")
}

func TestParse_UnnormalizablePhone(t *testing.T) {
	contacts, warnings := Parse("Alice\nnotaphone")
	assert.Empty(t, contacts)
	require.Len(t, warnings, 1)
	assert.Equal(t, WarnBadPhone, warnings[0].Kind)
	assert.Contains(t, warnings[0].String(), "Alice")
	assert.Contains(t, warnings[0].String(), "notaphone")
}

func TestParse_BarePlusIsNotAPhone(t *testing.T) {
	contacts, warnings := Parse("Alice\n+")
	assert.Empty(t, contacts)
	require.Len(t, warnings, 1)
	assert.Equal(t, WarnBadPhone, warnings[0].Kind)
}

func TestParse_BadPairSkippedProcessingContinues(t *testing.T) {
	contacts, warnings := Parse("Alice\nnotaphone\nBob\n+1 555 0100")
	require.Len(t, contacts, 1)
	assert.Equal(t, "Bob", contacts[0].Name)
	require.Len(t, warnings, 1)
	assert.Equal(t, "Alice", warnings[0].Name)
}

func TestParse_OrderPreserved(t *testing.T) {
	input := "Азиза Лавры Узбечка\n+7 925 198-90-91\n" +
		"Аида Лавры\n+7 928 218-00-04\n" +
		"Алжана Лавры ASADULAEVA\n+7 967 619-99-99\n"
	contacts, warnings := Parse(input)
	require.Len(t, contacts, 3)
	assert.Empty(t, warnings)
	assert.Equal(t, []Contact{
		{Name: "Азиза Лавры Узбечка", Phone: "+79251989091"},
		{Name: "Аида Лавры", Phone: "+79282180004"},
		{Name: "Алжана Лавры ASADULAEVA", Phone: "+79676199999"},
	}, contacts)
}
