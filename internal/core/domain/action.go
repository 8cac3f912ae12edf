package domain

// Action names a protected enrollment operation for authorization checks.
type Action string

const (
	ActionListEnrollments  Action = "enrollment:list"
	ActionReadEnrollments  Action = "enrollment:read"
	ActionCreateEnrollment Action = "enrollment:create"
	ActionDeleteEnrollment Action = "enrollment:delete"
	ActionResetStore       Action = "store:reset"
)
