package migrate

import (
	"fmt"
	"io"
	"time"
)

// RecordError describes one skipped record so the operator can reconcile
// the final counts against the source.
type RecordError struct {
	UserEmail string
	Kind      string
	Label     string
	Message   string
}

// Report accumulates per-kind counters and per-record errors over one run.
// It is returned by the orchestrator so callers and tests can assert on it
// directly instead of parsing log output.
type Report struct {
	Users        int
	Products     int
	Revenues     int
	Expenses     int
	Transactions int
	Dreams       int
	Bets         int
	Goals        int
	Debts        int

	Errors   []RecordError
	Duration time.Duration
}

func (r *Report) addError(email, kind, label string, err error) {
	r.Errors = append(r.Errors, RecordError{
		UserEmail: email,
		Kind:      kind,
		Label:     label,
		Message:   err.Error(),
	})
}

// Print writes the final summary in the format the operators of the
// original tool expect.
func (r *Report) Print(w io.Writer) {
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w, "🎉 MIGRAÇÃO CONCLUÍDA!")
	fmt.Fprintln(w, "📊 Estatísticas:")
	fmt.Fprintf(w, "   - Usuários migrados: %d\n", r.Users)
	fmt.Fprintf(w, "   - Produtos migrados: %d\n", r.Products)
	fmt.Fprintf(w, "   - Receitas migradas: %d\n", r.Revenues)
	fmt.Fprintf(w, "   - Despesas migradas: %d\n", r.Expenses)
	fmt.Fprintf(w, "   - Transações migradas: %d\n", r.Transactions)
	fmt.Fprintf(w, "   - Sonhos migrados: %d\n", r.Dreams)
	fmt.Fprintf(w, "   - Apostas migradas: %d\n", r.Bets)
	fmt.Fprintf(w, "   - Metas migradas: %d\n", r.Goals)
	fmt.Fprintf(w, "   - Dívidas migradas: %d\n", r.Debts)
	fmt.Fprintf(w, "   - Erros: %d\n", len(r.Errors))
	fmt.Fprintf(w, "   - Duração: %s\n", r.Duration.Round(time.Millisecond))
	fmt.Fprintln(w, "==================================================")
}
