// Package domain contains core concepts of the donation system.
// This file defines the status state machine: which actor may move a
// donation from one status to another. Every permission check in the
// application must go through this table instead of re-deriving it.
package domain

import (
	"fmt"

	"github.com/samber/lo"

	"mealbridge/errors"
)

// Action is a named transition request against the backend.
type Action string

const (
	ActionAccept  Action = "accept"
	ActionTransit Action = "transit"
	ActionPickup  Action = "pickup"
	ActionCancel  Action = "cancel"
	ActionReject  Action = "reject"
)

// Target returns the status a successful action settles on.
func (a Action) Target() Status {
	switch a {
	case ActionAccept:
		return StatusAccepted
	case ActionTransit:
		return StatusInTransit
	case ActionPickup:
		return StatusPickedUp
	case ActionCancel:
		return StatusCancelled
	case ActionReject:
		return StatusRejected
	}
	return ""
}

// rule is one row of the transition table.
type rule struct {
	from    []Status
	roles   []Role
	precond func(actor User, d Donation) bool
}

// transitions is the single source of truth for the state machine.
//
//	pending  -> accepted   (ngo, any pending donation; sets acceptedBy)
//	accepted -> in_transit (the accepting ngo only)
//	accepted | in_transit -> picked_up (the accepting ngo only)
//	pending  -> cancelled  (the owning donor only)
//	pending  -> rejected   (ngo or admin)
//
// pending -> expired is driven by the backend's expiry sweep and is
// deliberately absent: the client never requests it.
var transitions = map[Action]rule{
	ActionAccept: {
		from:  []Status{StatusPending},
		roles: []Role{RoleNGO},
	},
	ActionTransit: {
		from:    []Status{StatusAccepted},
		roles:   []Role{RoleNGO},
		precond: func(actor User, d Donation) bool { return d.AcceptedBy != nil && d.AcceptedBy.ID == actor.ID },
	},
	ActionPickup: {
		from:    []Status{StatusAccepted, StatusInTransit},
		roles:   []Role{RoleNGO},
		precond: func(actor User, d Donation) bool { return d.AcceptedBy != nil && d.AcceptedBy.ID == actor.ID },
	},
	ActionCancel: {
		from:    []Status{StatusPending},
		roles:   []Role{RoleDonor},
		precond: func(actor User, d Donation) bool { return d.DonorID == actor.ID },
	},
	ActionReject: {
		from:  []Status{StatusPending},
		roles: []Role{RoleNGO, RoleAdmin},
	},
}

// Allowed checks an action against the table. It returns
// errors.ErrTransitionNotSupported when no row matches the current
// status, and errors.ErrNotAllowed when a row matches but the actor
// fails the role or ownership check. The donation is never mutated.
func Allowed(actor User, d Donation, action Action) error {
	r, ok := transitions[action]
	if !ok {
		return fmt.Errorf("%w: unknown action %q", errors.ErrTransitionNotSupported, action)
	}
	if !lo.Contains(r.from, d.Status) {
		return fmt.Errorf("%w: cannot %s a donation in status %q", errors.ErrTransitionNotSupported, action, d.Status)
	}
	if !lo.Contains(r.roles, actor.Role) {
		return fmt.Errorf("%w: role %q may not %s", errors.ErrNotAllowed, actor.Role, action)
	}
	if r.precond != nil && !r.precond(actor, d) {
		return fmt.Errorf("%w: actor %s may not %s donation %s", errors.ErrNotAllowed, actor.ID, action, d.ID)
	}
	return nil
}

func CanAccept(actor User, d Donation) bool  { return Allowed(actor, d, ActionAccept) == nil }
func CanTransit(actor User, d Donation) bool { return Allowed(actor, d, ActionTransit) == nil }
func CanPickup(actor User, d Donation) bool  { return Allowed(actor, d, ActionPickup) == nil }
func CanCancel(actor User, d Donation) bool  { return Allowed(actor, d, ActionCancel) == nil }
func CanReject(actor User, d Donation) bool  { return Allowed(actor, d, ActionReject) == nil }

// SuccessLabel is the user-facing confirmation shown after the backend
// acknowledges a transition.
func SuccessLabel(action Action) string {
	switch action {
	case ActionAccept:
		return "Donation has been accepted successfully"
	case ActionPickup:
		return "Donation has been marked as picked up"
	case ActionTransit:
		return "Donation is now in transit"
	case ActionCancel:
		return "Donation has been cancelled"
	case ActionReject:
		return "Donation has been rejected"
	}
	return ""
}
