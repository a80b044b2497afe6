package ledger

import "github.com/SscSPs/route_lending_app/internal/core/domain"

// Statement is a credit together with its derived summary and schedule.
type Statement struct {
	Credit   domain.Credit `json:"credit"`
	Summary  Summary       `json:"summary"`
	Schedule []Installment `json:"schedule"`
}

// NewStatement recomputes c from payments and derives its summary as of today.
func NewStatement(c domain.Credit, payments []domain.Payment, today domain.Date) Statement {
	c = Recompute(c, payments)
	return Statement{
		Credit:   c,
		Summary:  Summarize(c, payments, today),
		Schedule: Schedule(c),
	}
}

// Standing is a client's position on a collection day: its active credit, if
// any, and where that credit stands.
type Standing struct {
	Client  domain.Client
	Credit  *domain.Credit
	Summary *Summary
}

// Owes reports whether the client has an installment to collect.
func (s Standing) Owes() bool {
	return s.Credit != nil && s.Summary != nil && s.Summary.Balance.IsPositive()
}

// IsOverdue reports whether the client's active credit is behind schedule.
func (s Standing) IsOverdue() bool {
	return s.Summary != nil && s.Summary.IsOverdue
}

// Standings pairs each client with its active credit (keyed by client) and the
// credit's summary. Clients keep the order they were given in.
func Standings(clients []domain.Client, credits map[string]domain.Credit, payments map[string][]domain.Payment, today domain.Date) []Standing {
	out := make([]Standing, 0, len(clients))
	for _, cl := range clients {
		st := Standing{Client: cl}
		if cr, ok := credits[cl.ClientID]; ok {
			history := payments[cr.CreditID]
			cr = Recompute(cr, history)
			sum := Summarize(cr, history, today)
			st.Credit = &cr
			st.Summary = &sum
		}
		out = append(out, st)
	}
	return out
}

// Overdue filters standings down to clients whose active credit is behind.
func Overdue(standings []Standing) []Standing {
	out := []Standing{}
	for _, s := range standings {
		if s.IsOverdue() {
			out = append(out, s)
		}
	}
	return out
}
