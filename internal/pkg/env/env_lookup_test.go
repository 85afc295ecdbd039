package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrySetFromEnv(t *testing.T) {
	t.Setenv("PAYMENTS_TEST_STRING", "from-env")

	val := "default"
	TrySetFromEnv("PAYMENTS_TEST_STRING", &val)
	assert.Equal(t, "from-env", val)

	untouched := "default"
	TrySetFromEnv("PAYMENTS_TEST_MISSING", &untouched)
	assert.Equal(t, "default", untouched)
}

func TestTrySetBoolFromEnv(t *testing.T) {
	type testCase struct {
		name     string
		envValue string
		initial  bool
		expected bool
	}

	tests := []testCase{
		{name: "true value", envValue: "true", initial: false, expected: true},
		{name: "false value", envValue: "0", initial: true, expected: false},
		{name: "garbage keeps default", envValue: "maybe", initial: true, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PAYMENTS_TEST_BOOL", tt.envValue)

			val := tt.initial
			TrySetBoolFromEnv("PAYMENTS_TEST_BOOL", &val)
			assert.Equal(t, tt.expected, val)
		})
	}
}
