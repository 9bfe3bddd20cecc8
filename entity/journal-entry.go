package entity

type JournalItem struct {
	AccountID int64   `json:"account_id"`
	Name      string  `json:"name"`
	Debit     float64 `json:"debit"`
	Credit    float64 `json:"credit"`
}

// JournalEntry is a manual account.move with balanced debit/credit
// lines against existing accounts, posted with action_post.
type JournalEntry struct {
	Name      string        `json:"name"`
	Date      string        `json:"date"`
	JournalID int64         `json:"journal_id"`
	Ref       string        `json:"ref,omitempty"`
	Lines     []JournalItem `json:"lines"`
}

// Balanced reports whether total debits equal total credits.
func (j *JournalEntry) Balanced() bool {
	var debit, credit float64
	for _, line := range j.Lines {
		debit += line.Debit
		credit += line.Credit
	}
	return debit == credit
}

func (j *JournalEntry) Values() map[string]interface{} {
	lines := make([]interface{}, 0, len(j.Lines))
	for _, line := range j.Lines {
		lines = append(lines, CreateCommand(map[string]interface{}{
			"account_id": line.AccountID,
			"name":       line.Name,
			"debit":      line.Debit,
			"credit":     line.Credit,
		}))
	}
	values := map[string]interface{}{
		"name":       j.Name,
		"date":       j.Date,
		"journal_id": j.JournalID,
		"line_ids":   lines,
	}
	if j.Ref != "" {
		values["ref"] = j.Ref
	}
	return values
}
