package words_test

import (
	"math"
	"testing"

	"github.com/arthur-debert/tagline/pkg/words"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsWord(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "zero"},
		{1, "one"},
		{13, "thirteen"},
		{20, "twenty"},
		{21, "twenty-one"},
		{40, "forty"},
		{100, "one hundred"},
		{101, "one hundred one"},
		{123, "one hundred twenty-three"},
		{1000, "one thousand"},
		{3523, "three thousand five hundred twenty-three"},
		{1000000, "one million"},
		{1002003, "one million two thousand three"},
		{-42, "negative forty-two"},
		{1000000000000, "one trillion"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, words.AsWord(tt.n))
		})
	}
}

func TestAsWordInt64Bounds(t *testing.T) {
	// MinInt64 has no int64 negation, so it exercises the uint64
	// magnitude path.
	assert.Equal(t,
		"negative nine quintillion two hundred twenty-three quadrillion "+
			"three hundred seventy-two trillion thirty-six billion "+
			"eight hundred fifty-four million seven hundred seventy-five thousand "+
			"eight hundred eight",
		words.AsWord(math.MinInt64))

	assert.Equal(t,
		"nine quintillion two hundred twenty-three quadrillion "+
			"three hundred seventy-two trillion thirty-six billion "+
			"eight hundred fifty-four million seven hundred seventy-five thousand "+
			"eight hundred seven",
		words.AsWord(math.MaxInt64))
}

func TestAsWordFloat(t *testing.T) {
	tests := []struct {
		f    float64
		want string
	}{
		{123.5, "one hundred twenty-three and a half"},
		{2.25, "two and one quarter"},
		{1.75, "one and three quarters"},
		{3.14, "three point one four"},
		{0.07, "zero point zero seven"},
		{-1.5, "negative one and a half"},
		{10, "ten"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got, err := words.AsWordFloat(tt.f)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAsPrice(t *testing.T) {
	assert.Equal(t, "€20.00", words.AsPrice(20, ""))
	assert.Equal(t, "$19.99", words.AsPrice(19.99, "$"))
	assert.Equal(t, "£0.50", words.AsPrice(0.5, "£"))
}
