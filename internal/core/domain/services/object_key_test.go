package services_test

import (
	"regexp"
	"testing"
	"time"

	"nailorders/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestObjectKeyGenerator_NewKey(t *testing.T) {
	fixed := time.UnixMilli(1735689600000)
	gen := services.NewObjectKeyGeneratorWith(
		func() time.Time { return fixed },
		func() string { return "abc123" },
	)

	testCases := []struct {
		filename string
		want     string
	}{
		{"photo.PNG", "order-1735689600000-abc123.png"},
		{"photo.jpeg", "order-1735689600000-abc123.jpeg"},
		{"noext", "order-1735689600000-abc123.jpg"},
		{"weird.p$g", "order-1735689600000-abc123.jpg"},
	}

	for _, tc := range testCases {
		t.Run(tc.filename, func(t *testing.T) {
			assert.Equal(t, tc.want, gen.NewKey("order", tc.filename))
		})
	}
}

func TestObjectKeyGenerator_Entropy(t *testing.T) {
	gen := services.NewObjectKeyGenerator()
	pattern := regexp.MustCompile(`^order-o1-\d{13}-[0-9a-f]{12}4[0-9a-f]{3}\.webp$`)

	seen := make(map[string]struct{})
	for range 1000 {
		key := gen.NewKey("order-o1", "x.webp")
		assert.Regexp(t, pattern, key)
		seen[key] = struct{}{}
	}
	assert.Len(t, seen, 1000)
}
