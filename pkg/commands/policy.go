package commands

import (
	"sync"
)

// Policy decides how a command's raw results are displayed.
type Policy struct {
	RequiresRawMode bool
	RequiresPaging  bool
	// ContentType is the fallback when a raw result does not name one.
	ContentType string
}

// PolicyProvider maps command names to policies. Unknown names get the zero
// policy.
type PolicyProvider struct {
	mu       sync.RWMutex
	policies map[string]Policy
}

func NewPolicyProvider() *PolicyProvider {
	p := &PolicyProvider{policies: make(map[string]Policy)}

	p.policies["cat"] = Policy{RequiresRawMode: true, RequiresPaging: true, ContentType: "text"}
	for _, name := range []string{"ls", "cd", "pwd", "clear", "history", "help", "/?"} {
		p.policies[name] = Policy{}
	}
	return p
}

func (p *PolicyProvider) Policy(name string) Policy {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.policies[name]
}

func (p *PolicyProvider) ShouldEnableRawMode(name string) bool {
	return p.Policy(name).RequiresRawMode
}

func (p *PolicyProvider) ShouldEnablePaging(name string) bool {
	return p.Policy(name).RequiresPaging
}

func (p *PolicyProvider) SetPolicy(name string, policy Policy) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.policies[name] = policy
}
