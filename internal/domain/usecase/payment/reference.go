package payment

import (
	"fmt"
	"strings"

	"github.com/announcement7/balance-system-backend/internal/domain/entity"
	coreport "github.com/announcement7/balance-system-backend/internal/domain/port/core"
	"github.com/google/uuid"
)

// ReferenceGenerator produces the caller-and-gateway-visible
// correlation keys for payment attempts. References sort roughly by
// creation time for humans; uniqueness comes from the uuid suffix, not
// the timestamp.
type ReferenceGenerator struct {
	timeProvider coreport.TimeProvider
}

// NewReferenceGenerator creates a new ReferenceGenerator
func NewReferenceGenerator(timeProvider coreport.TimeProvider) *ReferenceGenerator {
	return &ReferenceGenerator{timeProvider: timeProvider}
}

// Generate returns a new reference scoped to the payment kind,
// e.g. "DEPOSIT-1735689600000-9F2B4C1A"
func (g *ReferenceGenerator) Generate(kind entity.PaymentKind) string {
	millis := g.timeProvider.Now().UnixMilli()
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("%s%d-%s", kind.ReferencePrefix(), millis, suffix)
}
