package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalogs(t *testing.T) {
	require.NoError(t, Load("tr"))
	msg, ok := Lookup("missing_file")
	assert.True(t, ok)
	assert.NotEqual(t, "No file uploaded", msg)

	require.NoError(t, Load("en"))
	msg, ok = Lookup("missing_file")
	assert.True(t, ok)
	assert.Equal(t, "No file uploaded", msg)

	_, ok = Lookup("no_such_code")
	assert.False(t, ok)
}

func TestLoadUnknownLocale(t *testing.T) {
	assert.Error(t, Load("xx"))
}

func TestCatalogsCoverTheSameCodes(t *testing.T) {
	require.NoError(t, Load("en"))
	mu.RLock()
	en := make(map[string]struct{}, len(messages))
	for k := range messages {
		en[k] = struct{}{}
	}
	mu.RUnlock()

	require.NoError(t, Load("tr"))
	mu.RLock()
	defer mu.RUnlock()
	assert.Len(t, messages, len(en))
	for k := range messages {
		assert.Contains(t, en, k)
	}
}
