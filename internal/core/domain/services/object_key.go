package services

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

const defaultImageExt = "jpg"

// ObjectKeyGenerator derives storage keys of the form
// <prefix>-<unix millis>-<random token>.<ext>. The token is the first 16 hex
// digits of a UUIDv4; one of them is the fixed version digit, leaving 60
// random bits.
type ObjectKeyGenerator struct {
	now   func() time.Time
	token func() string
}

func NewObjectKeyGenerator() ObjectKeyGenerator {
	return ObjectKeyGenerator{
		now:   time.Now,
		token: randomToken,
	}
}

// NewObjectKeyGeneratorWith builds a generator with fixed clock and token
// sources.
func NewObjectKeyGeneratorWith(now func() time.Time, token func() string) ObjectKeyGenerator {
	return ObjectKeyGenerator{now: now, token: token}
}

// NewKey keeps the extension of filename (lower-cased, "jpg" when missing).
func (g ObjectKeyGenerator) NewKey(prefix, filename string) string {
	return fmt.Sprintf("%s-%d-%s.%s", prefix, g.now().UnixMilli(), g.token(), extension(filename))
}

func extension(filename string) string {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(filename), "."))
	if ext == "" {
		return defaultImageExt
	}
	for _, r := range ext {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return defaultImageExt
		}
	}
	return ext
}

func randomToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
}
