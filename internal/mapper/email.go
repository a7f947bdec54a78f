package mapper

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FakeEmailDomain is the sentinel domain of synthetic addresses. Addresses at this
// domain are never sent back to the directory while fake addresses are enabled.
const FakeEmailDomain = "bogus.email.address"

// NewFakeEmailAddress builds a placeholder address of the form <unix-millis>.<token>@bogus.email.address.
func NewFakeEmailAddress(now time.Time) string {
	token := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return fmt.Sprintf("%d.%s@%s", now.UnixMilli(), token, FakeEmailDomain)
}

// IsFakeEmailAddress reports whether the address lives at the sentinel domain.
func IsFakeEmailAddress(address string) bool {
	at := strings.LastIndexByte(address, '@')
	if at < 0 {
		return false
	}
	return strings.EqualFold(address[at+1:], FakeEmailDomain)
}
