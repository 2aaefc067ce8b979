package auth

type Action string

const (
	ActionAccountList       Action = "accounts.list"
	ActionAccountCreate     Action = "accounts.create"
	ActionAccountUpdate     Action = "accounts.update"
	ActionAccountDelete     Action = "accounts.delete"
	ActionAccountUpdateSelf Action = "accounts.update-self"
	ActionEmployeeCreate    Action = "employees.create"
	ActionEmployeeUpdate    Action = "employees.update"
	ActionEmployeeDelete    Action = "employees.delete"
	ActionAttendanceCreate  Action = "attendance.create"
	ActionAttendanceDelete  Action = "attendance.delete"
	ActionPayrollCreate     Action = "payroll.create"
	ActionPayrollDelete     Action = "payroll.delete"
	ActionReportCreate      Action = "reports.create"
	ActionReportDelete      Action = "reports.delete"
	ActionReportExport      Action = "reports.export"
	ActionSettingsUpdate    Action = "settings.update"
	ActionSettingsDelete    Action = "settings.delete"
	ActionFeedbackDelete    Action = "feedback.delete"
)

const (
	ReasonForbiddenRole       = "forbidden-role"
	ReasonSelfAction          = "forbidden-self-action"
	ReasonPeerProtection      = "forbidden-peer-protection"
	ReasonPrivilegeEscalation = "forbidden-privilege-escalation"
)

// Subject is the authenticated requester as carried in the token claims.
type Subject struct {
	AccountID string
	Role      string
}

// Target describes the account an account-management action operates on.
// AccountID is empty for creation. Role is the target's current role (for
// creation, the role being requested). NewRole carries a requested role
// change on create/update and is empty otherwise.
type Target struct {
	AccountID string
	Role      string
	NewRole   string
}

type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision        { return Decision{Allowed: true} }
func deny(r string) Decision { return Decision{Allowed: false, Reason: r} }

// roleActions is the base role→action table. Actions absent from the table
// are permitted to every authenticated role.
var roleActions = map[Action][]string{
	ActionAccountList:      {RoleAdmin, RoleSupport},
	ActionAccountCreate:    {RoleAdmin, RoleSupport},
	ActionAccountUpdate:    {RoleAdmin, RoleSupport},
	ActionAccountDelete:    {RoleAdmin, RoleSupport},
	ActionEmployeeCreate:   {RoleAdmin, RoleManager},
	ActionEmployeeUpdate:   {RoleAdmin, RoleManager},
	ActionEmployeeDelete:   {RoleAdmin, RoleManager},
	ActionAttendanceCreate: {RoleAdmin, RoleManager, RoleOfficeStaff},
	ActionAttendanceDelete: {RoleAdmin, RoleManager, RoleOfficeStaff},
	ActionPayrollCreate:    {RoleAdmin, RoleManager},
	ActionPayrollDelete:    {RoleAdmin, RoleManager},
	ActionReportCreate:     {RoleAdmin, RoleManager},
	ActionReportDelete:     {RoleAdmin, RoleManager},
	ActionReportExport:     {RoleAdmin, RoleManager},
	ActionSettingsDelete:   {RoleAdmin},
	ActionFeedbackDelete:   {RoleAdmin},
}

// Decide is the single access-control decision point. It is pure: no I/O, no
// logging, never panics. An unknown requester role denies with
// forbidden-role rather than erroring.
func Decide(requester Subject, action Action, target *Target) Decision {
	if !ValidRole(requester.Role) {
		return deny(ReasonForbiddenRole)
	}

	if allowed, restricted := roleActions[action]; restricted {
		if !containsRole(allowed, requester.Role) {
			return deny(ReasonForbiddenRole)
		}
	}

	if target == nil {
		return allow()
	}

	// Guards on account-management actions. Evaluated in order; the first
	// matching rule decides.
	switch action {
	case ActionAccountUpdate, ActionAccountDelete:
		if target.AccountID != "" && target.AccountID == requester.AccountID {
			return deny(ReasonSelfAction)
		}
		if target.Role == RoleAdmin && requester.Role != RoleAdmin {
			return deny(ReasonForbiddenRole)
		}
		if requester.Role == RoleSupport {
			if action == ActionAccountUpdate && target.NewRole == RoleAdmin {
				return deny(ReasonPrivilegeEscalation)
			}
			if target.Role == RoleSupport || target.NewRole == RoleSupport {
				return deny(ReasonPeerProtection)
			}
		}
	case ActionAccountCreate:
		if requester.Role == RoleSupport {
			if target.NewRole == RoleAdmin {
				return deny(ReasonPrivilegeEscalation)
			}
			if target.NewRole == RoleSupport {
				return deny(ReasonPeerProtection)
			}
		}
		if target.NewRole == RoleAdmin && requester.Role != RoleAdmin {
			return deny(ReasonPrivilegeEscalation)
		}
	case ActionAccountUpdateSelf:
		if target.NewRole != "" {
			return deny(ReasonPrivilegeEscalation)
		}
	}

	return allow()
}

func containsRole(roles []string, role string) bool {
	for _, candidate := range roles {
		if candidate == role {
			return true
		}
	}
	return false
}
