package provider

import "github.com/Sohilkhan0021/anceller-admin-sub002/models"

// AccountAction is one admin-triggered account transition, with the
// confirmation copy the console must render before executing it.
type AccountAction struct {
	Name    string               `json:"name"`
	Label   string               `json:"label"`
	Target  models.AccountStatus `json:"target"`
	Confirm models.ConfirmCopy   `json:"confirm"`
}

const (
	ActionBlock    = "block"
	ActionSuspend  = "suspend"
	ActionActivate = "activate"
)

// Block and Suspend both resolve to SUSPENDED: the provider entity has no
// backend-distinguishable blocked state, only the badge copy differs. The
// table keeps one row per action so a future BLOCKED value needs only a
// target change.
var (
	blockAction = AccountAction{
		Name:   ActionBlock,
		Label:  "Block Provider",
		Target: models.AccountStatusSuspended,
		Confirm: models.ConfirmCopy{
			Title:        "Block this provider?",
			Description:  "The provider will lose access to the platform and stop receiving bookings.",
			ConfirmLabel: "Block",
			Style:        "destructive",
		},
	}
	suspendAction = AccountAction{
		Name:   ActionSuspend,
		Label:  "Suspend Provider",
		Target: models.AccountStatusSuspended,
		Confirm: models.ConfirmCopy{
			Title:        "Suspend this provider?",
			Description:  "The provider will be temporarily unable to receive bookings.",
			ConfirmLabel: "Suspend",
			Style:        "destructive",
		},
	}
	activateAction = AccountAction{
		Name:   ActionActivate,
		Label:  "Activate Provider",
		Target: models.AccountStatusActive,
		Confirm: models.ConfirmCopy{
			Title:        "Activate this provider?",
			Description:  "The provider will regain access and start receiving bookings again.",
			ConfirmLabel: "Activate",
			Style:        "success",
		},
	}
)

// accountTransitions maps current account status to the actions offered.
// INACTIVE has no row: no transition out of it is defined in the console.
var accountTransitions = map[models.AccountStatus][]AccountAction{
	models.AccountStatusActive:    {blockAction, suspendAction},
	models.AccountStatusSuspended: {activateAction},
	models.AccountStatusBlocked:   {activateAction},
}

// OfferedAccountActions returns the transitions legal from the given status.
// The set is purely a function of current status.
func OfferedAccountActions(status models.AccountStatus) []AccountAction {
	actions := accountTransitions[status]
	out := make([]AccountAction, len(actions))
	copy(out, actions)
	return out
}

// accountActionFor resolves an action name against the current status,
// reporting whether that transition is legal right now.
func accountActionFor(status models.AccountStatus, name string) (AccountAction, bool) {
	for _, a := range accountTransitions[status] {
		if a.Name == name {
			return a, true
		}
	}
	return AccountAction{}, false
}
