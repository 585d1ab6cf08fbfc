// Package migrate drives the one-way migration of user aggregates from the
// Firestore source into the Postgres destination.
package migrate

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/JoelSantos-JS/alidash-migrate/internal/mapper"
	"github.com/JoelSantos-JS/alidash-migrate/internal/model"
	"github.com/JoelSantos-JS/alidash-migrate/internal/source"
	"github.com/JoelSantos-JS/alidash-migrate/internal/store"
)

// Migrator processes source users strictly sequentially: identity
// resolution first, then the eight entity kinds in a fixed order. A record
// failure skips only that record and a user failure skips only that user;
// already-written rows are never rolled back.
type Migrator struct {
	source   source.Reader
	dest     store.Store
	throttle *Throttle
	now      func() time.Time
}

// New creates a Migrator. throttle may be nil to run without pacing (used
// by tests).
func New(src source.Reader, dest store.Store, throttle *Throttle) *Migrator {
	return &Migrator{
		source:   src,
		dest:     dest,
		throttle: throttle,
		now:      time.Now,
	}
}

// Run migrates every source user and returns the accumulated report. Only a
// source read failure is fatal; everything downstream is isolated per user
// or per record.
func (m *Migrator) Run(ctx context.Context) (*Report, error) {
	start := time.Now()

	users, err := m.source.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading source users: %w", err)
	}

	report := &Report{}
	if len(users) == 0 {
		log.Println("⚠️  Nenhum usuário encontrado na origem, nada a migrar")
		report.Duration = time.Since(start)
		return report, nil
	}

	log.Printf("🚀 Iniciando migração de %d usuários", len(users))

	for i, su := range users {
		log.Printf("👤 [%d/%d] Migrando usuário %s (%s)", i+1, len(users), su.Email, su.ExternalID)

		userID, ok := m.resolveUser(ctx, su, report)
		if !ok {
			continue
		}

		m.migrateProducts(ctx, su, userID, report)
		m.migrateRevenues(ctx, su, userID, report)
		m.migrateExpenses(ctx, su, userID, report)
		m.migrateTransactions(ctx, su, userID, report)
		m.migrateDreams(ctx, su, userID, report)
		m.migrateBets(ctx, su, userID, report)
		m.migrateGoals(ctx, su, userID, report)
		m.migrateDebts(ctx, su, userID, report)

		if m.throttle != nil && i < len(users)-1 {
			if err := m.throttle.Wait(ctx); err != nil {
				report.Duration = time.Since(start)
				return report, err
			}
		}
	}

	report.Duration = time.Since(start)
	return report, nil
}

// resolveUser maps one source user to a destination user id, creating the
// destination row when the email has never been seen. A source user with an
// empty email matches the (single) destination row with an empty email; all
// such users share that row.
func (m *Migrator) resolveUser(ctx context.Context, su *model.SourceUser, report *Report) (string, bool) {
	existing, found, err := m.dest.GetUserByEmail(ctx, su.Email)
	if err != nil {
		log.Printf("   ❌ Erro ao buscar usuário %s, pulando: %v", su.Email, err)
		report.addError(su.Email, "user", su.Email, err)
		return "", false
	}

	if found {
		if existing.ExternalID == "" {
			// Backfill only; an already-set external id is never overwritten.
			if err := m.dest.SetUserExternalID(ctx, existing.ID, su.ExternalID); err != nil {
				log.Printf("   ⚠️  Não foi possível preencher o firebase_uid de %s: %v", su.Email, err)
			}
		}
		log.Printf("   ✓ Usuário já existe no destino (id %s)", existing.ID)
		report.Users++
		return existing.ID, true
	}

	now := m.now()
	user := &model.User{
		ExternalID:  su.ExternalID,
		Email:       su.Email,
		Name:        firstNonEmpty(su.Name, su.DisplayName),
		AvatarURL:   firstNonEmpty(su.AvatarURL, su.PhotoURL),
		AccountType: firstNonEmpty(su.AccountType, "personal"),
		CreatedAt:   timeOrNow(su.CreatedAt, now),
		UpdatedAt:   timeOrNow(su.UpdatedAt, now),
	}

	created, err := m.dest.CreateUser(ctx, user)
	if err != nil {
		log.Printf("   ❌ Erro ao criar usuário %s, pulando: %v", su.Email, err)
		report.addError(su.Email, "user", su.Email, err)
		return "", false
	}

	log.Printf("   ✓ Usuário criado no destino (id %s)", created.ID)
	report.Users++
	return created.ID, true
}

func (m *Migrator) migrateProducts(ctx context.Context, su *model.SourceUser, userID string, report *Report) {
	for _, rec := range su.Products {
		p, err := mapper.MapProduct(rec, userID, m.now())
		if err != nil {
			log.Printf("   ❌ Produto %q ignorado: %v", mapper.Label(rec), err)
			report.addError(su.Email, "product", mapper.Label(rec), err)
			continue
		}

		_, found, err := m.dest.GetProductByName(ctx, userID, p.Name)
		if err != nil {
			log.Printf("   ❌ Erro ao verificar produto %q: %v", p.Name, err)
			report.addError(su.Email, "product", p.Name, err)
			continue
		}
		if found {
			log.Printf("   ⏭️  Produto %q já existe, pulando", p.Name)
			continue
		}

		if err := m.dest.CreateProduct(ctx, p); err != nil {
			log.Printf("   ❌ Erro ao inserir produto %q: %v", p.Name, err)
			report.addError(su.Email, "product", p.Name, err)
			continue
		}
		report.Products++
	}
}

func (m *Migrator) migrateRevenues(ctx context.Context, su *model.SourceUser, userID string, report *Report) {
	for _, rec := range su.Revenues {
		r, err := mapper.MapRevenue(rec, userID, m.now())
		if err != nil {
			log.Printf("   ❌ Receita %q ignorada: %v", mapper.Label(rec), err)
			report.addError(su.Email, "revenue", mapper.Label(rec), err)
			continue
		}
		if err := m.dest.CreateRevenue(ctx, r); err != nil {
			log.Printf("   ❌ Erro ao inserir receita %q: %v", r.Description, err)
			report.addError(su.Email, "revenue", r.Description, err)
			continue
		}
		report.Revenues++
	}
}

func (m *Migrator) migrateExpenses(ctx context.Context, su *model.SourceUser, userID string, report *Report) {
	for _, rec := range su.Expenses {
		e, err := mapper.MapExpense(rec, userID, m.now())
		if err != nil {
			log.Printf("   ❌ Despesa %q ignorada: %v", mapper.Label(rec), err)
			report.addError(su.Email, "expense", mapper.Label(rec), err)
			continue
		}
		if err := m.dest.CreateExpense(ctx, e); err != nil {
			log.Printf("   ❌ Erro ao inserir despesa %q: %v", e.Description, err)
			report.addError(su.Email, "expense", e.Description, err)
			continue
		}
		report.Expenses++
	}
}

func (m *Migrator) migrateTransactions(ctx context.Context, su *model.SourceUser, userID string, report *Report) {
	for _, rec := range su.Transactions {
		tx, err := mapper.MapTransaction(rec, userID, m.now())
		if err != nil {
			log.Printf("   ❌ Transação %q ignorada: %v", mapper.Label(rec), err)
			report.addError(su.Email, "transaction", mapper.Label(rec), err)
			continue
		}
		if err := m.dest.CreateTransaction(ctx, tx); err != nil {
			log.Printf("   ❌ Erro ao inserir transação %q: %v", tx.Description, err)
			report.addError(su.Email, "transaction", tx.Description, err)
			continue
		}
		report.Transactions++
	}
}

func (m *Migrator) migrateDreams(ctx context.Context, su *model.SourceUser, userID string, report *Report) {
	for _, rec := range su.Dreams {
		d, err := mapper.MapDream(rec, userID, m.now())
		if err != nil {
			log.Printf("   ❌ Sonho %q ignorado: %v", mapper.Label(rec), err)
			report.addError(su.Email, "dream", mapper.Label(rec), err)
			continue
		}
		if err := m.dest.CreateDream(ctx, d); err != nil {
			log.Printf("   ❌ Erro ao inserir sonho %q: %v", d.Name, err)
			report.addError(su.Email, "dream", d.Name, err)
			continue
		}
		report.Dreams++
	}
}

func (m *Migrator) migrateBets(ctx context.Context, su *model.SourceUser, userID string, report *Report) {
	for _, rec := range su.Bets {
		b, err := mapper.MapBet(rec, userID, m.now())
		if err != nil {
			log.Printf("   ❌ Aposta %q ignorada: %v", mapper.Label(rec), err)
			report.addError(su.Email, "bet", mapper.Label(rec), err)
			continue
		}
		if err := m.dest.CreateBet(ctx, b); err != nil {
			log.Printf("   ❌ Erro ao inserir aposta %q: %v", b.Description, err)
			report.addError(su.Email, "bet", b.Description, err)
			continue
		}
		report.Bets++
	}
}

func (m *Migrator) migrateGoals(ctx context.Context, su *model.SourceUser, userID string, report *Report) {
	for _, rec := range su.Goals {
		g, err := mapper.MapGoal(rec, userID, m.now())
		if err != nil {
			log.Printf("   ❌ Meta %q ignorada: %v", mapper.Label(rec), err)
			report.addError(su.Email, "goal", mapper.Label(rec), err)
			continue
		}
		if err := m.dest.CreateGoal(ctx, g); err != nil {
			log.Printf("   ❌ Erro ao inserir meta %q: %v", g.Name, err)
			report.addError(su.Email, "goal", g.Name, err)
			continue
		}
		report.Goals++
	}
}

func (m *Migrator) migrateDebts(ctx context.Context, su *model.SourceUser, userID string, report *Report) {
	for _, rec := range su.Debts {
		d, err := mapper.MapDebt(rec, userID, m.now())
		if err != nil {
			log.Printf("   ❌ Dívida %q ignorada: %v", mapper.Label(rec), err)
			report.addError(su.Email, "debt", mapper.Label(rec), err)
			continue
		}
		if err := m.dest.CreateDebt(ctx, d); err != nil {
			log.Printf("   ❌ Erro ao inserir dívida %q: %v", d.CreditorName, err)
			report.addError(su.Email, "debt", d.CreditorName, err)
			continue
		}
		report.Debts++
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func timeOrNow(t *time.Time, now time.Time) time.Time {
	if t != nil {
		return *t
	}
	return now
}
