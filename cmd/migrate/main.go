// migrate copies all Alidash user data from the Firebase Firestore project
// into the Supabase Postgres database, matching users by email and
// backfilling the Firestore uid on existing rows.
//
// Usage:
//
//	export GOOGLE_APPLICATION_CREDENTIALS=/path/to/service-account.json
//	export FIREBASE_PROJECT_ID=your-project-id
//	export DATABASE_URL=postgres://...
//	go run ./cmd/migrate/
package main

import (
	"context"
	"log"
	"os"

	firebase "firebase.google.com/go/v4"

	"github.com/JoelSantos-JS/alidash-migrate/internal/config"
	"github.com/JoelSantos-JS/alidash-migrate/internal/database"
	"github.com/JoelSantos-JS/alidash-migrate/internal/migrate"
	"github.com/JoelSantos-JS/alidash-migrate/internal/source"
	"github.com/JoelSantos-JS/alidash-migrate/internal/store"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Configuração inválida: %v", err)
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.FirebaseProjectID})
	if err != nil {
		log.Fatalf("❌ Falha ao inicializar o Firebase: %v", err)
	}

	fsClient, err := app.Firestore(ctx)
	if err != nil {
		log.Fatalf("❌ Falha ao conectar no Firestore: %v", err)
	}
	defer fsClient.Close()

	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("❌ Falha ao preparar o esquema de destino: %v", err)
	}

	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Falha ao abrir o banco de destino: %v", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("❌ Banco de destino inacessível: %v", err)
	}

	reader := source.NewFirestoreReader(fsClient, cfg.SourceCollection)
	dest := store.NewPostgresStore(db)
	m := migrate.New(reader, dest, migrate.NewThrottle(cfg.UsersPerMinute))

	report, err := m.Run(ctx)
	if err != nil {
		log.Fatalf("❌ Migração abortada: %v", err)
	}

	report.Print(os.Stdout)
}
