package auth

import "testing"

func TestAccountManagementLimitedToAdminAndSupport(t *testing.T) {
	for _, role := range []string{RoleManager, RoleOfficeStaff} {
		for _, action := range []Action{ActionAccountList, ActionAccountCreate, ActionAccountUpdate, ActionAccountDelete} {
			d := Decide(Subject{AccountID: "a1", Role: role}, action, nil)
			if d.Allowed {
				t.Fatalf("%s should not be allowed %s", role, action)
			}
			if d.Reason != ReasonForbiddenRole {
				t.Fatalf("%s on %s: expected %s, got %s", role, action, ReasonForbiddenRole, d.Reason)
			}
		}
	}

	for _, role := range []string{RoleAdmin, RoleSupport} {
		if d := Decide(Subject{AccountID: "a1", Role: role}, ActionAccountList, nil); !d.Allowed {
			t.Fatalf("%s should be allowed to list accounts, denied with %s", role, d.Reason)
		}
	}
}

func TestSelfActionDeniedForEveryRole(t *testing.T) {
	for _, role := range AllRoles {
		for _, action := range []Action{ActionAccountUpdate, ActionAccountDelete} {
			d := Decide(
				Subject{AccountID: "a1", Role: role},
				action,
				&Target{AccountID: "a1", Role: role},
			)
			if d.Allowed {
				t.Fatalf("%s acting on own account via %s should be denied", role, action)
			}
			if role == RoleAdmin || role == RoleSupport {
				if d.Reason != ReasonSelfAction {
					t.Fatalf("%s on %s: expected %s, got %s", role, action, ReasonSelfAction, d.Reason)
				}
			}
		}
	}
}

func TestAdminAccountsProtectedFromNonAdmins(t *testing.T) {
	d := Decide(
		Subject{AccountID: "s1", Role: RoleSupport},
		ActionAccountDelete,
		&Target{AccountID: "a1", Role: RoleAdmin},
	)
	if d.Allowed {
		t.Fatal("support deleting an admin account should be denied")
	}
	if d.Reason != ReasonForbiddenRole {
		t.Fatalf("expected %s, got %s", ReasonForbiddenRole, d.Reason)
	}

	d = Decide(
		Subject{AccountID: "a1", Role: RoleAdmin},
		ActionAccountDelete,
		&Target{AccountID: "a2", Role: RoleAdmin},
	)
	if !d.Allowed {
		t.Fatalf("admin deleting another admin should be allowed, denied with %s", d.Reason)
	}
}

func TestSupportCannotCreateAdmins(t *testing.T) {
	d := Decide(
		Subject{AccountID: "s1", Role: RoleSupport},
		ActionAccountCreate,
		&Target{Role: RoleAdmin, NewRole: RoleAdmin},
	)
	if d.Allowed {
		t.Fatal("support creating an admin account should be denied")
	}
	if d.Reason != ReasonPrivilegeEscalation {
		t.Fatalf("expected %s, got %s", ReasonPrivilegeEscalation, d.Reason)
	}
}

func TestSupportPeerProtection(t *testing.T) {
	d := Decide(
		Subject{AccountID: "s1", Role: RoleSupport},
		ActionAccountCreate,
		&Target{Role: RoleSupport, NewRole: RoleSupport},
	)
	if d.Allowed {
		t.Fatal("support creating another support account should be denied")
	}
	if d.Reason != ReasonPeerProtection {
		t.Fatalf("create: expected %s, got %s", ReasonPeerProtection, d.Reason)
	}

	d = Decide(
		Subject{AccountID: "s1", Role: RoleSupport},
		ActionAccountUpdate,
		&Target{AccountID: "s2", Role: RoleSupport, NewRole: RoleManager},
	)
	if d.Allowed {
		t.Fatal("support updating another support account should be denied")
	}
	if d.Reason != ReasonPeerProtection {
		t.Fatalf("update: expected %s, got %s", ReasonPeerProtection, d.Reason)
	}

	d = Decide(
		Subject{AccountID: "s1", Role: RoleSupport},
		ActionAccountUpdate,
		&Target{AccountID: "o1", Role: RoleOfficeStaff, NewRole: RoleSupport},
	)
	if d.Allowed {
		t.Fatal("support promoting an account into support should be denied")
	}
	if d.Reason != ReasonPeerProtection {
		t.Fatalf("promote: expected %s, got %s", ReasonPeerProtection, d.Reason)
	}
}

func TestSupportCannotEscalateViaUpdate(t *testing.T) {
	d := Decide(
		Subject{AccountID: "s1", Role: RoleSupport},
		ActionAccountUpdate,
		&Target{AccountID: "o1", Role: RoleOfficeStaff, NewRole: RoleAdmin},
	)
	if d.Allowed {
		t.Fatal("support promoting an account to admin should be denied")
	}
	if d.Reason != ReasonPrivilegeEscalation {
		t.Fatalf("expected %s, got %s", ReasonPrivilegeEscalation, d.Reason)
	}
}

func TestSupportCanManageRegularAccounts(t *testing.T) {
	d := Decide(
		Subject{AccountID: "s1", Role: RoleSupport},
		ActionAccountUpdate,
		&Target{AccountID: "o1", Role: RoleOfficeStaff, NewRole: RoleManager},
	)
	if !d.Allowed {
		t.Fatalf("support promoting office staff to manager should be allowed, denied with %s", d.Reason)
	}

	d = Decide(
		Subject{AccountID: "s1", Role: RoleSupport},
		ActionAccountDelete,
		&Target{AccountID: "m1", Role: RoleManager},
	)
	if !d.Allowed {
		t.Fatalf("support deleting a manager account should be allowed, denied with %s", d.Reason)
	}
}

func TestSelfUpdateCannotChangeRole(t *testing.T) {
	for _, role := range AllRoles {
		d := Decide(Subject{AccountID: "a1", Role: role}, ActionAccountUpdateSelf, &Target{AccountID: "a1"})
		if !d.Allowed {
			t.Fatalf("%s updating own profile should be allowed, denied with %s", role, d.Reason)
		}

		d = Decide(Subject{AccountID: "a1", Role: role}, ActionAccountUpdateSelf, &Target{AccountID: "a1", NewRole: RoleAdmin})
		if d.Allowed {
			t.Fatalf("%s changing own role should be denied", role)
		}
		if d.Reason != ReasonPrivilegeEscalation {
			t.Fatalf("%s: expected %s, got %s", role, ReasonPrivilegeEscalation, d.Reason)
		}
	}
}

func TestEmployeeManagementRoles(t *testing.T) {
	for _, action := range []Action{ActionEmployeeCreate, ActionEmployeeUpdate, ActionEmployeeDelete} {
		for _, role := range []string{RoleAdmin, RoleManager} {
			if d := Decide(Subject{AccountID: "a1", Role: role}, action, nil); !d.Allowed {
				t.Fatalf("%s should be allowed %s, denied with %s", role, action, d.Reason)
			}
		}
		for _, role := range []string{RoleOfficeStaff, RoleSupport} {
			d := Decide(Subject{AccountID: "a1", Role: role}, action, nil)
			if d.Allowed {
				t.Fatalf("%s should not be allowed %s", role, action)
			}
			if d.Reason != ReasonForbiddenRole {
				t.Fatalf("%s on %s: expected %s, got %s", role, action, ReasonForbiddenRole, d.Reason)
			}
		}
	}
}

func TestAttendanceExcludesSupport(t *testing.T) {
	for _, role := range []string{RoleAdmin, RoleManager, RoleOfficeStaff} {
		if d := Decide(Subject{AccountID: "a1", Role: role}, ActionAttendanceCreate, nil); !d.Allowed {
			t.Fatalf("%s should be allowed to record attendance, denied with %s", role, d.Reason)
		}
	}
	d := Decide(Subject{AccountID: "s1", Role: RoleSupport}, ActionAttendanceCreate, nil)
	if d.Allowed {
		t.Fatal("support should not be allowed to record attendance")
	}
	if d.Reason != ReasonForbiddenRole {
		t.Fatalf("expected %s, got %s", ReasonForbiddenRole, d.Reason)
	}
}

func TestSettingsUpdateOpenToAllRolesDeleteAdminOnly(t *testing.T) {
	for _, role := range AllRoles {
		if d := Decide(Subject{AccountID: "a1", Role: role}, ActionSettingsUpdate, nil); !d.Allowed {
			t.Fatalf("%s should be allowed to update settings, denied with %s", role, d.Reason)
		}
	}

	for _, role := range []string{RoleManager, RoleOfficeStaff, RoleSupport} {
		d := Decide(Subject{AccountID: "a1", Role: role}, ActionSettingsDelete, nil)
		if d.Allowed {
			t.Fatalf("%s should not be allowed to reset settings", role)
		}
	}
	if d := Decide(Subject{AccountID: "a1", Role: RoleAdmin}, ActionSettingsDelete, nil); !d.Allowed {
		t.Fatalf("admin should be allowed to reset settings, denied with %s", d.Reason)
	}
}

func TestUnknownRoleAlwaysDenied(t *testing.T) {
	for _, role := range []string{"", "admin", "Superuser"} {
		d := Decide(Subject{AccountID: "a1", Role: role}, ActionSettingsUpdate, nil)
		if d.Allowed {
			t.Fatalf("unknown role %q should be denied", role)
		}
		if d.Reason != ReasonForbiddenRole {
			t.Fatalf("role %q: expected %s, got %s", role, ReasonForbiddenRole, d.Reason)
		}
	}
}

func TestRoleActionsOnlyNameKnownRoles(t *testing.T) {
	for action, roles := range roleActions {
		if len(roles) == 0 {
			t.Fatalf("action %s restricts to no roles", action)
		}
		for _, role := range roles {
			if !ValidRole(role) {
				t.Fatalf("action %s names unknown role %s", action, role)
			}
		}
	}
}
