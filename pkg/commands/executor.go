package commands

import (
	"context"

	"github.com/kcaldas/termblog/pkg/logging"
	"github.com/kcaldas/termblog/pkg/session"
)

// RawSession is the part of the terminal session the executor drives.
type RawSession interface {
	SetMode(mode session.Mode)
	HandleRawOutput(raw session.RawOutput)
}

// Executor runs commands and sends raw results down the raw-mode path when
// the command's policy asks for it.
type Executor struct {
	policies *PolicyProvider
	logger   logging.Logger
}

func NewExecutor(policies *PolicyProvider) *Executor {
	if policies == nil {
		policies = NewPolicyProvider()
	}
	return &Executor{
		policies: policies,
		logger:   logging.NewComponentLogger("executor"),
	}
}

func (x *Executor) Policies() *PolicyProvider {
	return x.policies
}

// Eval executes cmd and routes its result. raw reports that the result was
// handed to the session and must not be appended to the scrollback again.
func (x *Executor) Eval(ctx context.Context, cmd Command, args []string, env Env, sess RawSession) (res *Result, raw bool) {
	res = cmd.Execute(ctx, args, env)
	return res, x.Route(cmd.GetName(), res, sess)
}

// Route sends a raw result down the raw-mode path when the named command's
// policy asks for raw mode, and reports whether it did.
func (x *Executor) Route(name string, res *Result, sess RawSession) bool {
	if res == nil || res.Type != TypeRaw || !x.policies.ShouldEnableRawMode(name) {
		return false
	}

	policy := x.policies.Policy(name)
	out := session.RawOutput{
		Content:        res.Content,
		ContentType:    contentType(res, policy),
		RequiresPaging: policy.RequiresPaging,
	}
	if res.Meta != nil {
		out.RequiresPaging = out.RequiresPaging || res.Meta.RequiresPaging
		out.Title = res.Meta.Title
	}

	x.logger.Debug("raw output", "command", name, "content_type", out.ContentType, "paging", out.RequiresPaging)
	sess.SetMode(session.Raw)
	sess.HandleRawOutput(out)
	return true
}

// contentType resolves result meta, then policy, then "text".
func contentType(res *Result, policy Policy) string {
	if res.Meta != nil && res.Meta.ContentType != "" {
		return res.Meta.ContentType
	}
	if policy.ContentType != "" {
		return policy.ContentType
	}
	return "text"
}
