// Package permissions is the access-control decision layer. The rule set
// is a plain table mapping (resource, action) to predicates over the
// request identity, so the whole policy is auditable in one place and
// testable without storage or transport.
package permissions

import (
	"blogapi/internal/domain"
	"blogapi/internal/domain/models"
)

// Resource identifies a protected resource type.
type Resource string

const (
	ResourceArticle Resource = "article"
	ResourceComment Resource = "comment"
	ResourceProfile Resource = "profile"
	ResourceUser    Resource = "user"
)

// Action identifies what the caller wants to do.
type Action string

const (
	ActionList     Action = "list"
	ActionRetrieve Action = "retrieve"
	ActionCreate   Action = "create"
	ActionUpdate   Action = "update"
	ActionDelete   Action = "delete"
)

// Owned is implemented by resource instances whose author gates
// object-level decisions.
type Owned interface {
	OwnerID() string
}

// Rule is one entry of the policy table. Condition is the coarse check
// run for every request; ObjectCondition, when set, is additionally run
// for actions that target a specific existing instance. Create never has
// an object condition: no instance exists yet, the creator becomes the
// owner.
type Rule struct {
	Condition       func(models.Identity) bool
	ObjectCondition func(models.Identity, Owned) bool
}

func allowAny(models.Identity) bool { return true }

func isAuthenticated(id models.Identity) bool { return id.IsAuthenticated }

func isStaff(id models.Identity) bool { return id.IsAuthenticated && id.IsStaff }

func ownerOrStaff(id models.Identity, obj Owned) bool {
	return id.IsStaff || id.IsOwner(obj.OwnerID())
}

// rules is the complete access policy. Comment update/delete is
// owner-or-staff: authors manage their own comments and staff can
// moderate anyone's (see DESIGN.md).
var rules = map[Resource]map[Action]Rule{
	ResourceArticle: {
		ActionList:     {Condition: allowAny},
		ActionRetrieve: {Condition: allowAny},
		ActionCreate:   {Condition: isStaff},
		ActionUpdate:   {Condition: isStaff},
		ActionDelete:   {Condition: isStaff},
	},
	ResourceComment: {
		ActionList:   {Condition: allowAny},
		ActionCreate: {Condition: isAuthenticated},
		ActionUpdate: {Condition: isAuthenticated, ObjectCondition: ownerOrStaff},
		ActionDelete: {Condition: isAuthenticated, ObjectCondition: ownerOrStaff},
	},
	ResourceProfile: {
		ActionRetrieve: {Condition: isAuthenticated},
		ActionUpdate:   {Condition: isAuthenticated},
	},
	ResourceUser: {
		// Registration is open to anonymous callers.
		ActionCreate: {Condition: allowAny},
	},
}

// Evaluate runs the coarse check for (identity, resource, action).
// Returns nil on allow. A denial distinguishes the caller having no
// resolved identity (Unauthorized) from a resolved identity with
// insufficient privilege (Forbidden); callers at the HTTP boundary map
// these to 401 and 403. Unknown resource/action pairs deny.
func Evaluate(identity models.Identity, resource Resource, action Action) error {
	rule, ok := rules[resource][action]
	if !ok {
		return deny(identity)
	}
	if rule.Condition(identity) {
		return nil
	}
	return deny(identity)
}

// EvaluateObject runs the coarse check and then, if the rule carries an
// object-level condition, evaluates it against the specific instance.
// Object conditions only ever run after the coarse check passes.
func EvaluateObject(identity models.Identity, resource Resource, action Action, obj Owned) error {
	if err := Evaluate(identity, resource, action); err != nil {
		return err
	}
	rule := rules[resource][action]
	if rule.ObjectCondition != nil && !rule.ObjectCondition(identity, obj) {
		return &domain.ForbiddenError{Message: "you do not have permission to perform this action"}
	}
	return nil
}

func deny(identity models.Identity) error {
	if !identity.IsAuthenticated {
		return &domain.UnauthorizedError{Message: "authentication required"}
	}
	return &domain.ForbiddenError{Message: "you do not have permission to perform this action"}
}
