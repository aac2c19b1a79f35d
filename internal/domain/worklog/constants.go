package worklog

type Type string

const (
	TypeTimeSheet Type = "timesheet"
	TypeExpense   Type = "expense"
)

type Status string

const (
	StatusNotSubmitted  Status = "not_submitted"
	StatusSubmitted     Status = "submitted"
	StatusApproved      Status = "approved"
	StatusDeclined      Status = "declined"
	StatusProcessed     Status = "processed"
	StatusMarkProcessed Status = "mark_processed"
)

var transitions = map[Status][]Status{
	StatusNotSubmitted: {StatusSubmitted},
	StatusSubmitted:    {StatusApproved, StatusDeclined},
	StatusDeclined:     {StatusSubmitted},
	StatusApproved:     {StatusProcessed, StatusMarkProcessed},
}
