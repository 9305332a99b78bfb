package types

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

const (
	UUID_PREFIX_ORDER      = "order"
	UUID_PREFIX_ORDER_ITEM = "item"
	UUID_PREFIX_PRODUCT    = "prod"
	UUID_PREFIX_CUSTOMER   = "cust"
	UUID_PREFIX_USER       = "user"
	UUID_PREFIX_TENANT     = "tenant"
)

// GenerateUUID returns a k-sortable unique identifier
func GenerateUUID() string {
	entropy := ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
	return strings.ToLower(ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String())
}

// GenerateUUIDWithPrefix returns a k-sortable unique identifier
// with a prefix ex order_0ujsswThIGTUYm2K8FjOOfXtY1K
func GenerateUUIDWithPrefix(prefix string) string {
	if prefix == "" {
		return GenerateUUID()
	}
	return fmt.Sprintf("%s_%s", prefix, GenerateUUID())
}
