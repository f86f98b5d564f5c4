package linebreak

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveClosure(t *testing.T) {
	// After LB1 the stream never contains AI, SG, XX, SA or CJ.
	for r := rune(0); r <= 0x10FFFF; r++ {
		c := DefaultClasses(r)
		switch c {
		case AI, SG, XX, SA, CJ:
			t.Fatalf("DefaultClasses(%#U) = %s, not resolved by LB1", r, c)
		}
	}
}

func TestResolve(t *testing.T) {
	assert.Equal(t, AL, Resolve(0x10FFFF, XX))
	assert.Equal(t, AL, Resolve(0xD800, SG))
	assert.Equal(t, AL, Resolve(0x00A7, AI))
	assert.Equal(t, NS, Resolve(0x3041, CJ))

	// SA splits on General_Category: marks become CM, the rest AL.
	assert.Equal(t, CM, Resolve(0x0E48, SA), "mai ek is Mn")
	assert.Equal(t, AL, Resolve(0x0E01, SA), "ko kai is Lo")

	// Concrete classes pass through untouched.
	assert.Equal(t, ID, Resolve(0x4E00, ID))
	assert.Equal(t, SP, Resolve(' ', SP))
}
