package norm_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tawesoft/norm/norm"
)

func TestForm_ReadAll(t *testing.T) {
	got, err := norm.NFC.ReadAll(strings.NewReader(eAcuteDecomposed))
	assert.NoError(t, err)
	assert.Equal(t, eAcutePrecomposed, got)
}

func TestForm_ReadAll_SkipsInvalidUTF8(t *testing.T) {
	// "e" + an invalid lone continuation byte + combining acute: the bad
	// byte should be dropped rather than turning into a literal U+FFFD that
	// then takes part in normalization.
	r := strings.NewReader("e\x80\u0301")
	got, err := norm.NFC.ReadAll(r)
	assert.NoError(t, err)
	assert.Equal(t, eAcutePrecomposed, got)
}

func TestForm_ReadAll_Empty(t *testing.T) {
	got, err := norm.NFD.ReadAll(strings.NewReader(""))
	assert.NoError(t, err)
	assert.Equal(t, "", got)
}
