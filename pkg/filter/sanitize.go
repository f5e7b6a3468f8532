package filter

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicyOnce sync.Once
	strictPolicy     *bluemonday.Policy
)

// Sanitize strips markup from strings using a strict bluemonday policy. Pass
// a custom policy to allow a curated subset of elements.
func Sanitize(policies ...*bluemonday.Policy) Filter {
	policy := sanitizer()
	if len(policies) > 0 && policies[0] != nil {
		policy = policies[0]
	}
	return Func(func(value any) any {
		return mapStrings(value, policy.Sanitize)
	})
}

func sanitizer() *bluemonday.Policy {
	strictPolicyOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strictPolicy
}
