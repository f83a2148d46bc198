package prime

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pricofy/prime-checker/internal/domain"
)

func TestIsPrime(t *testing.T) {
	tests := []struct {
		name     string
		n        int64
		expected bool
	}{
		{"negative", -5, false},
		{"min int64", math.MinInt64, false},
		{"zero", 0, false},
		{"one", 1, false},
		{"two", 2, true},
		{"three", 3, true},
		{"four", 4, false},
		{"seven", 7, true},
		{"nine", 9, false},
		{"thirteen", 13, true},
		{"twenty five", 25, false},
		{"ninety seven", 97, true},
		{"one hundred", 100, false},
		{"13x17", 221, false},
		{"7919", 7919, true},
		{"97x103", 9991, false},
		{"mersenne 31", 2147483647, true},
		{"largest prime below 2^32", 4294967291, true},
		{"65521 squared", 4293001441, false},
		{"max int64", math.MaxInt64, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsPrime(tt.n)
			if result != tt.expected {
				t.Errorf("IsPrime(%d) = %v, want %v", tt.n, result, tt.expected)
			}
		})
	}
}

func TestIsPrime_EvenNumbers(t *testing.T) {
	for n := int64(4); n <= 1000; n += 2 {
		if IsPrime(n) {
			t.Errorf("IsPrime(%d) = true, even numbers above 2 are composite", n)
		}
	}
}

func TestIsPrime_MatchesSieve(t *testing.T) {
	const limit = 5000
	composite := make([]bool, limit+1)
	for i := 2; i*i <= limit; i++ {
		if !composite[i] {
			for j := i * i; j <= limit; j += i {
				composite[j] = true
			}
		}
	}

	for n := 2; n <= limit; n++ {
		if IsPrime(int64(n)) != !composite[n] {
			t.Errorf("IsPrime(%d) = %v, sieve says %v", n, IsPrime(int64(n)), !composite[n])
		}
	}
}

func TestIsPrime_Idempotent(t *testing.T) {
	for _, n := range []int64{-1, 2, 17, 18, 7919, 9991} {
		assert.Equal(t, IsPrime(n), IsPrime(n), "IsPrime(%d) must be stable", n)
	}
}

func TestIsqrt(t *testing.T) {
	tests := []struct {
		n        int64
		expected int64
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{3, 1},
		{4, 2},
		{8, 2},
		{9, 3},
		{10, 3},
		{4293001440, 65520},
		{4293001441, 65521},
		{4293001442, 65521},
		{3037000499 * 3037000499, 3037000499},
		{3037000499*3037000499 - 1, 3037000498},
		{math.MaxInt64, 3037000499},
	}

	for _, tt := range tests {
		result := isqrt(tt.n)
		if result != tt.expected {
			t.Errorf("isqrt(%d) = %d, want %d", tt.n, result, tt.expected)
		}
	}
}

func TestIsqrt_AroundLargeSquares(t *testing.T) {
	// Float64 loses precision above 2^53; check the correction near those squares.
	for r := int64(94906265); r < 94906275; r++ {
		sq := r * r
		assert.Equal(t, r, isqrt(sq), "isqrt(%d)", sq)
		assert.Equal(t, r-1, isqrt(sq-1), "isqrt(%d)", sq-1)
		assert.Equal(t, r, isqrt(sq+1), "isqrt(%d)", sq+1)
	}
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "17 is a prime number", Message(17, true))
	assert.Equal(t, "18 is not a prime number", Message(18, false))
	assert.Equal(t, "-3 is not a prime number", Message(-3, false))
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		n        int64
		expected domain.PrimeResponse
	}{
		{17, domain.PrimeResponse{Number: 17, IsPrime: true, Message: "17 is a prime number"}},
		{18, domain.PrimeResponse{Number: 18, IsPrime: false, Message: "18 is not a prime number"}},
		{1, domain.PrimeResponse{Number: 1, IsPrime: false, Message: "1 is not a prime number"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Evaluate(tt.n))
	}
}

func TestEvaluate_RoundTrip(t *testing.T) {
	for _, n := range []int64{2, 97, 100, math.MaxInt64} {
		resp := Evaluate(n)

		data, err := json.Marshal(resp)
		require.NoError(t, err)

		var decoded domain.PrimeResponse
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, resp, decoded)
	}
}
