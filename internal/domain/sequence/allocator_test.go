package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatClientCode(t *testing.T) {
	t.Run("pads to six digits", func(t *testing.T) {
		assert.Equal(t, "CL-000006", FormatClientCode(6))
	})

	t.Run("keeps larger numbers intact", func(t *testing.T) {
		assert.Equal(t, "CL-1234567", FormatClientCode(1234567))
	})
}

func TestFormatQuoteNumber(t *testing.T) {
	assert.Equal(t, "QT-000042", FormatQuoteNumber(42))
}
